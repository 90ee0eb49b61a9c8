package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alimgiray/folio/internal/models"
	"github.com/alimgiray/folio/pkg/config"
	"github.com/alimgiray/folio/pkg/logger"
	"github.com/google/go-github/v57/github"
	"github.com/google/go-querystring/query"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// ErrFeedUnavailable covers network failures, non-success statuses and malformed bodies
var ErrFeedUnavailable = errors.New("project feed unavailable")

// ProjectSource produces the tagged result of one fetch
type ProjectSource interface {
	Fetch(ctx context.Context) models.FeedResult
}

type ProjectFeedService struct {
	client *github.Client
	cfg    config.FeedConfig
	log    *logrus.Entry
}

func NewProjectFeedService(client *github.Client, cfg config.FeedConfig) *ProjectFeedService {
	if cfg.PerPage <= 0 {
		cfg.PerPage = config.DefaultFeedPerPage
	}
	if cfg.Sort == "" {
		cfg.Sort = config.DefaultFeedSort
	}
	if cfg.PlaceholderImage == "" {
		cfg.PlaceholderImage = config.DefaultPlaceholderImage
	}

	return &ProjectFeedService{
		client: client,
		cfg:    cfg,
		log:    logger.Component("project_feed").WithField("account", cfg.Account),
	}
}

// NewGitHubClient creates the client used by the feed. The token is optional
// and only raises the upstream rate limit; apiURL overrides api.github.com.
func NewGitHubClient(token, apiURL string) (*github.Client, error) {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL: %w", err)
		}
		client.BaseURL = baseURL
	}

	return client, nil
}

// FetchProjects returns the mapped repositories of the configured account.
// Failures are logged and reported as an empty list.
func (s *ProjectFeedService) FetchProjects(ctx context.Context) []models.Project {
	result := s.Fetch(ctx)
	if result.Err != nil {
		return []models.Project{}
	}
	return result.Projects
}

// Fetch issues one listing request and returns the tagged result
func (s *ProjectFeedService) Fetch(ctx context.Context) models.FeedResult {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Second)
		defer cancel()
	}

	descriptors, err := s.listRepositories(ctx)
	if err != nil {
		s.logFailure(err)
		return models.FeedResult{Projects: []models.Project{}, Err: err}
	}

	projects := make([]models.Project, 0, len(descriptors))
	for _, descriptor := range descriptors {
		if descriptor == nil {
			continue
		}
		projects = append(projects, s.projectFromDescriptor(descriptor))
	}

	s.log.WithField("count", len(projects)).Debug("Fetched projects")
	return models.FeedResult{Projects: projects}
}

// listRepositories requests users/{account}/repos. The response is decoded
// into RepositoryDescriptor rather than github.Repository so updated_at stays unparsed.
func (s *ProjectFeedService) listRepositories(ctx context.Context) ([]*models.RepositoryDescriptor, error) {
	opts := &github.RepositoryListOptions{
		Sort:        s.cfg.Sort,
		ListOptions: github.ListOptions{PerPage: s.cfg.PerPage},
	}

	values, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding list options: %v", ErrFeedUnavailable, err)
	}

	path := fmt.Sprintf("users/%s/repos?%s", url.PathEscape(s.cfg.Account), values.Encode())
	req, err := s.client.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrFeedUnavailable, err)
	}

	var descriptors []*models.RepositoryDescriptor
	if _, err := s.client.Do(ctx, req, &descriptors); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFeedUnavailable, err)
	}

	return descriptors, nil
}

func (s *ProjectFeedService) projectFromDescriptor(d *models.RepositoryDescriptor) models.Project {
	// Only null and "" count as absent; other values pass through verbatim
	description := models.DescriptionPlaceholder
	if d.Description != nil && *d.Description != "" {
		description = *d.Description
	}

	technologies := []string{}
	if d.Language != nil && *d.Language != "" {
		technologies = append(technologies, *d.Language)
	}

	liveLink := ""
	if d.Homepage != nil {
		liveLink = *d.Homepage
	}

	return models.Project{
		ID:           d.ID,
		Title:        d.Name,
		Description:  description,
		Image:        s.cfg.PlaceholderImage,
		Technologies: technologies,
		LiveLink:     liveLink,
		GithubLink:   d.HTMLURL,
		Stars:        nonNegative(d.StargazersCount),
		Forks:        nonNegative(d.ForksCount),
		UpdatedAt:    d.UpdatedAt,
	}
}

func (s *ProjectFeedService) logFailure(err error) {
	entry := s.log.WithError(err)

	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	var respErr *github.ErrorResponse
	switch {
	case errors.As(err, &rateErr):
		entry = entry.WithField("rate_limit_reset", rateErr.Rate.Reset.Time)
	case errors.As(err, &abuseErr):
		entry = entry.WithField("retry_after", abuseErr.GetRetryAfter())
	case errors.As(err, &respErr) && respErr.Response != nil:
		entry = entry.WithField("status", respErr.Response.StatusCode)
	}

	entry.Error("Failed to fetch projects")
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
