package handlers

import (
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/job-mailer/internal/middleware"
)

type Handlers struct {
	Email   *EmailHandler
	Resume  *ResumeHandler
	Profile *ProfileHandler
}

func NewRouter(allowOrigins []string, h Handlers) *gin.Engine {
	useJSONFieldNames()

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Recovery(), middleware.Logging())

	config := cors.DefaultConfig()
	if len(allowOrigins) == 0 || slices.Contains(allowOrigins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowOrigins
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader}
	config.ExposeHeaders = []string{middleware.RequestIDHeader}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)

		api.GET("/profile", h.Profile.GetProfile)
		api.PUT("/profile", h.Profile.SaveProfile)
		api.POST("/resume", h.Resume.UploadResume)

		api.POST("/emails/generate", h.Email.GenerateEmail)
		api.POST("/emails/send", h.Email.SendEmail)
	}
	return r
}
