package handlers

import (
	"net/http"
	"time"

	"github.com/alimgiray/folio/internal/animation"
	"github.com/alimgiray/folio/internal/middleware"
	"github.com/alimgiray/folio/internal/models"
	"github.com/alimgiray/folio/internal/navigation"
	"github.com/alimgiray/folio/internal/services"
	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	contentService  *services.ContentService
	relayConfigured bool
	scrollDuration  time.Duration
}

func NewHomeHandler(contentService *services.ContentService, relayConfigured bool) *HomeHandler {
	return &HomeHandler{
		contentService:  contentService,
		relayConfigured: relayConfigured,
		scrollDuration:  navigation.DefaultScrollDuration,
	}
}

// Index renders the landing page. The projects section starts in the loading
// state; the page script resolves it over /ws/projects.
func (h *HomeHandler) Index(c *gin.Context) {
	content := h.contentService.Content()

	data := gin.H{
		"Title":         content.Name,
		"User":          middleware.GetSession(c),
		"Content":       content,
		"NavLinks":      navigation.Links(h.scrollDuration),
		"CircularText":  animation.NewCircularText(content.CircularText),
		"FlowingMenu":   animation.NewFlowingMenu(content.MarqueeItems),
		"Feed":          models.FeedSnapshot{State: models.FeedStateLoading, Projects: []models.Project{}},
		"ContactStatus": contactStatusFromQuery(c.Query("contact")),
		"ContactReady":  h.relayConfigured,
		"Year":          time.Now().Year(),
	}

	c.HTML(http.StatusOK, "index", data)
}

// contactStatusFromQuery maps the redirect marker of a form post to a banner
func contactStatusFromQuery(value string) string {
	switch value {
	case "sent", "failed", "invalid":
		return value
	default:
		return ""
	}
}
