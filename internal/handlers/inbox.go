package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/alimgiray/folio/internal/middleware"
	"github.com/alimgiray/folio/internal/services"
	"github.com/alimgiray/folio/pkg/logger"
	"github.com/gin-gonic/gin"
)

const inboxPageSize = 200

type InboxHandler struct {
	contactService *services.ContactService
	exportService  *services.ExportService
}

func NewInboxHandler(contactService *services.ContactService, exportService *services.ExportService) *InboxHandler {
	return &InboxHandler{
		contactService: contactService,
		exportService:  exportService,
	}
}

// Inbox lists the latest contact submissions
func (h *InboxHandler) Inbox(c *gin.Context) {
	messages, err := h.contactService.RecentMessages(c.Request.Context(), inboxPageSize)
	if err != nil {
		logger.WithError(err).Error("Failed to list contact messages")
		c.String(http.StatusInternalServerError, "Failed to load messages")
		return
	}

	c.HTML(http.StatusOK, "inbox", gin.H{
		"Title":    "Inbox",
		"User":     middleware.GetSession(c),
		"Messages": messages,
		"Year":     time.Now().Year(),
	})
}

// Export downloads every stored submission as an XLSX workbook
func (h *InboxHandler) Export(c *gin.Context) {
	messages, err := h.contactService.RecentMessages(c.Request.Context(), 0)
	if err != nil {
		logger.WithError(err).Error("Failed to list contact messages for export")
		c.String(http.StatusInternalServerError, "Failed to export messages")
		return
	}

	workbook, err := h.exportService.ContactMessagesWorkbook(messages)
	if err != nil {
		logger.WithError(err).Error("Failed to build export workbook")
		c.String(http.StatusInternalServerError, "Failed to export messages")
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("contact-messages-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	if err := workbook.Write(c.Writer); err != nil {
		logger.WithError(err).Error("Failed to write export workbook")
	}
}
