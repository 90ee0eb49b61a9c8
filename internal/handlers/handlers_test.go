package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/alimgiray/folio/internal/models"
	"github.com/alimgiray/folio/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.SetOutput(io.Discard)
}

// stubSource returns a fixed result, optionally blocking until release is closed
type stubSource struct {
	result   models.FeedResult
	release  chan struct{}
	canceled chan struct{}
}

func (s *stubSource) Fetch(ctx context.Context) models.FeedResult {
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			if s.canceled != nil {
				close(s.canceled)
			}
			return models.FeedResult{Err: ctx.Err()}
		}
	}
	return s.result
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	router := gin.New()
	router.LoadHTMLFiles(TemplateFiles(filepath.Join("..", "..", "web", "templates"))...)
	return router
}

func perform(t *testing.T, router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	require.NotNil(t, req)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sampleProjects() []models.Project {
	return []models.Project{
		{
			ID:           1,
			Title:        "folio",
			Description:  "Personal site",
			Image:        "/static/images/project-placeholder.svg",
			Technologies: []string{"Go"},
			LiveLink:     "https://folio.example.com",
			GithubLink:   "https://github.com/octocat/folio",
			Stars:        3,
			Forks:        1,
			UpdatedAt:    "2024-01-01",
		},
		{
			ID:           2,
			Title:        "dotfiles",
			Description:  models.DescriptionPlaceholder,
			Image:        "/static/images/project-placeholder.svg",
			Technologies: []string{},
			LiveLink:     "",
			GithubLink:   "https://github.com/octocat/dotfiles",
			UpdatedAt:    "2023-06-01",
		},
	}
}
