package handlers

import (
	"net/http"

	"github.com/alimgiray/folio/internal/models"
	"github.com/alimgiray/folio/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit accepts the contact form. JSON clients get {"success": bool};
// plain form posts are redirected back to the contact section.
func (h *ContactHandler) Submit(c *gin.Context) {
	wantsJSON := c.ContentType() == binding.MIMEJSON

	var form models.ContactForm
	if err := c.ShouldBind(&form); err != nil || form.HasBlankField() {
		if wantsJSON {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please fill in your name, a valid email and a message."})
			return
		}
		c.Redirect(http.StatusSeeOther, "/?contact=invalid#contact")
		return
	}

	_, err := h.contactService.Submit(c.Request.Context(), form)
	success := err == nil

	if wantsJSON {
		status := http.StatusOK
		if !success {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"success": success})
		return
	}

	if success {
		c.Redirect(http.StatusSeeOther, "/?contact=sent#contact")
		return
	}
	c.Redirect(http.StatusSeeOther, "/?contact=failed#contact")
}
