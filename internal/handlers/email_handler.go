package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/job-mailer/internal/dtos"
	"github.com/justsurfingit/job-mailer/internal/services"
)

type EmailHandler struct {
	Applications *services.ApplicationService
}

func NewEmailHandler(apps *services.ApplicationService) *EmailHandler {
	return &EmailHandler{Applications: apps}
}

// GenerateEmail is the POST /emails/generate endpoint
func (h *EmailHandler) GenerateEmail(c *gin.Context) {
	var req dtos.GenerateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	email, err := h.Applications.GenerateEmail(c.Request.Context(), req.Input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.GenerateEmailResponse{Success: true, Email: email})
}

// SendEmail is the POST /emails/send endpoint
func (h *EmailHandler) SendEmail(c *gin.Context) {
	var req dtos.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	if err := h.Applications.SendEmail(c.Request.Context(), req.Email()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email sent successfully"})
}
