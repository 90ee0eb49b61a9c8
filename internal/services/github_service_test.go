package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/alimgiray/folio/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newUserServer(t *testing.T, login string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user", r.URL.Path)
		assert.Equal(t, "Bearer gho_test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"login":%q,"name":"The Owner","avatar_url":"https://avatars.example/1"}`, login)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGetOwnerAcceptsOwner(t *testing.T) {
	server := newUserServer(t, "Octocat")
	service := NewGitHubService(config.GitHubConfig{APIURL: server.URL}, "octocat")

	owner, err := service.GetOwner(context.Background(), &oauth2.Token{AccessToken: "gho_test"})

	require.NoError(t, err)
	assert.Equal(t, "Octocat", owner.Login)
	assert.Equal(t, "The Owner", owner.Name)
	assert.Equal(t, "https://avatars.example/1", owner.AvatarURL)
}

func TestGetOwnerRejectsOthers(t *testing.T) {
	server := newUserServer(t, "intruder")
	service := NewGitHubService(config.GitHubConfig{APIURL: server.URL}, "octocat")

	_, err := service.GetOwner(context.Background(), &oauth2.Token{AccessToken: "gho_test"})

	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestGetAuthURL(t *testing.T) {
	service := NewGitHubService(config.GitHubConfig{
		ClientID:    "client",
		CallbackURL: "http://localhost:8080/auth/github/callback",
	}, "octocat")

	authURL, err := url.Parse(service.GetAuthURL("xyz"))
	require.NoError(t, err)

	assert.Equal(t, "github.com", authURL.Host)
	assert.Equal(t, "client", authURL.Query().Get("client_id"))
	assert.Equal(t, "xyz", authURL.Query().Get("state"))
	assert.Equal(t, "read:user", authURL.Query().Get("scope"))
}

func TestEnabledAndState(t *testing.T) {
	assert.False(t, NewGitHubService(config.GitHubConfig{}, "octocat").Enabled())

	service := NewGitHubService(config.GitHubConfig{ClientID: "id", ClientSecret: "secret"}, "octocat")
	assert.True(t, service.Enabled())

	first, err := service.NewState()
	require.NoError(t, err)
	second, err := service.NewState()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
