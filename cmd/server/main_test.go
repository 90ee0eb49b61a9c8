package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/alimgiray/folio/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRoutedEngine(ownerEnabled bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.LoadHTMLFiles(handlers.TemplateFiles(filepath.Join("..", "..", "web", "templates"))...)
	setupRoutes(router, routeDeps{
		ownerLogin:   "octocat",
		ownerEnabled: ownerEnabled,
	})
	return router
}

func TestOwnerRoutesAbsentWithoutSessionSecret(t *testing.T) {
	router := newRoutedEngine(false)

	for _, path := range []string{"/admin/inbox", "/admin/inbox/export", "/login", "/auth/github"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestOwnerRoutesGuardedWithSessionSecret(t *testing.T) {
	router := newRoutedEngine(true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/inbox/export", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
