package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/job-mailer/internal/dtos"
	"github.com/justsurfingit/job-mailer/internal/models"
	"github.com/justsurfingit/job-mailer/internal/services"
)

type ProfileHandler struct {
	Profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.Profiles.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewProfileView(p))
}

func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req dtos.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	p, err := h.Profiles.Save(c.Request.Context(), &models.Profile{
		FullName:     req.FullName,
		SenderEmail:  req.SenderEmail,
		AppPassword:  req.AppPassword,
		GeminiAPIKey: req.GeminiAPIKey,
		Phone:        req.Phone,
		LinkedIn:     req.LinkedIn,
		GitHub:       req.GitHub,
		Portfolio:    req.Portfolio,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewProfileView(p))
}
