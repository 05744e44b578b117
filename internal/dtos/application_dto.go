package dtos

import "github.com/justsurfingit/job-mailer/internal/models"

type GenerateEmailRequest struct {
	JobPost       string `json:"jobPost" binding:"required"`
	Instructions  string `json:"instructions"`
	Template      string `json:"template" binding:"required"`
	ReceiverEmail string `json:"receiverEmail"`
}

func (r GenerateEmailRequest) Input() models.GenerationInput {
	return models.GenerationInput{
		JobPost:      r.JobPost,
		Instructions: r.Instructions,
		Style:        models.ParseStyle(r.Template),
		Recipient:    r.ReceiverEmail,
	}
}

type GenerateEmailResponse struct {
	Success bool                   `json:"success"`
	Email   *models.GeneratedEmail `json:"email"`
}

type SendEmailRequest struct {
	ReceiverEmail string `json:"receiverEmail" binding:"required"`
	Subject       string `json:"subject" binding:"required"`
	Body          string `json:"body" binding:"required"`
}

func (r SendEmailRequest) Email() *models.GeneratedEmail {
	return &models.GeneratedEmail{
		Subject:       r.Subject,
		Body:          r.Body,
		ReceiverEmail: r.ReceiverEmail,
	}
}

// SaveProfileRequest replaces every non-resume field of the profile.
type SaveProfileRequest struct {
	FullName     string `json:"fullName" binding:"required"`
	SenderEmail  string `json:"senderMail" binding:"required,email"`
	AppPassword  string `json:"appPassword" binding:"required"`
	GeminiAPIKey string `json:"geminiKey" binding:"required"`
	Phone        string `json:"phone"`
	LinkedIn     string `json:"linkedin" binding:"omitempty,url"`
	GitHub       string `json:"github" binding:"omitempty,url"`
	Portfolio    string `json:"portfolio" binding:"omitempty,url"`
}

// ProfileView is the read model of a profile; secrets are reported, never returned.
type ProfileView struct {
	FullName            string `json:"fullName"`
	SenderEmail         string `json:"senderMail"`
	Phone               string `json:"phone,omitempty"`
	LinkedIn            string `json:"linkedin,omitempty"`
	GitHub              string `json:"github,omitempty"`
	Portfolio           string `json:"portfolio,omitempty"`
	ResumeFileName      string `json:"resumeFileName"`
	HasResumeContent    bool   `json:"hasResumeContent"`
	AppPasswordSet      bool   `json:"appPasswordSet"`
	GeminiKeyConfigured bool   `json:"geminiKeyConfigured"`
}

func NewProfileView(p *models.Profile) ProfileView {
	return ProfileView{
		FullName:            p.FullName,
		SenderEmail:         p.SenderEmail,
		Phone:               p.Phone,
		LinkedIn:            p.LinkedIn,
		GitHub:              p.GitHub,
		Portfolio:           p.Portfolio,
		ResumeFileName:      p.ResumeFileName,
		HasResumeContent:    p.ResumeContent != "",
		AppPasswordSet:      p.AppPassword != "",
		GeminiKeyConfigured: p.GeminiAPIKey != "",
	}
}

type UploadResumeResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	FileName string `json:"fileName"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
