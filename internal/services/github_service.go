package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/alimgiray/folio/internal/models"
	"github.com/alimgiray/folio/pkg/config"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
)

var ErrNotOwner = errors.New("signed-in GitHub account is not the site owner")

// GitHubService handles the owner's GitHub sign-in
type GitHubService struct {
	oauthConfig *oauth2.Config
	ownerLogin  string
	apiURL      string
}

func NewGitHubService(cfg config.GitHubConfig, ownerLogin string) *GitHubService {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.CallbackURL,
		// Identity only; the inbox needs no repository access
		Scopes:   []string{"read:user"},
		Endpoint: githuboauth.Endpoint,
	}

	return &GitHubService{
		oauthConfig: oauthConfig,
		ownerLogin:  ownerLogin,
		apiURL:      cfg.APIURL,
	}
}

// Enabled reports whether OAuth credentials are configured
func (s *GitHubService) Enabled() bool {
	return s.oauthConfig.ClientID != "" && s.oauthConfig.ClientSecret != ""
}

// NewState returns a random OAuth state value
func (s *GitHubService) NewState() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GetAuthURL returns the GitHub OAuth authorization URL
func (s *GitHubService) GetAuthURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state)
}

// ExchangeCodeForToken exchanges authorization code for access token
func (s *GitHubService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}
	return token, nil
}

// GetOwner retrieves the authenticated user and checks it is the site owner
func (s *GitHubService) GetOwner(ctx context.Context, token *oauth2.Token) (*models.Owner, error) {
	client, err := NewGitHubClient(token.AccessToken, s.apiURL)
	if err != nil {
		return nil, err
	}

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}

	return s.ownerFromUser(user)
}

func (s *GitHubService) ownerFromUser(user *github.User) (*models.Owner, error) {
	if !strings.EqualFold(user.GetLogin(), s.ownerLogin) {
		return nil, ErrNotOwner
	}

	return &models.Owner{
		Login:     user.GetLogin(),
		Name:      user.GetName(),
		AvatarURL: user.GetAvatarURL(),
	}, nil
}
