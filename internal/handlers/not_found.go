package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type NotFoundHandler struct{}

func NewNotFoundHandler() *NotFoundHandler {
	return &NotFoundHandler{}
}

// NotFound handles 404 errors for non-existent routes
func (h *NotFoundHandler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	data := gin.H{
		"Title":         "404 - Page Not Found",
		"User":          nil,
		"RequestedPath": c.Request.URL.Path,
		"Year":          time.Now().Year(),
	}

	c.HTML(http.StatusNotFound, "404", data)
}
