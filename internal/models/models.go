package models

import (
	"strings"
	"time"
)

// Profile is the single persisted configuration record for the installation.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FullName     string `json:"fullName"`
	SenderEmail  string `json:"senderMail"`
	AppPassword  string `json:"appPassword"`
	GeminiAPIKey string `json:"geminiKey"`

	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`

	// ResumeFileName and ResumeContent are always replaced together.
	ResumeFileName string `json:"resumeFileName"`
	ResumeContent  string `gorm:"type:text" json:"resumeContent"`
}

// SetResume replaces the stored resume reference and its extracted text as a pair.
func (p *Profile) SetResume(fileName, content string) {
	p.ResumeFileName = fileName
	p.ResumeContent = content
}

type Style string

const (
	StyleStandard  Style = "standard"
	StyleCreative  Style = "creative"
	StyleTechnical Style = "technical"
	StyleExecutive Style = "executive"
)

var Styles = []Style{StyleStandard, StyleCreative, StyleTechnical, StyleExecutive}

// ParseStyle maps a selector onto a known style, falling back to standard.
func ParseStyle(raw string) Style {
	s := Style(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Styles {
		if s == known {
			return s
		}
	}
	return StyleStandard
}

// GenerationInput describes one generation request.
type GenerationInput struct {
	JobPost      string
	Instructions string
	Style        Style
	Recipient    string
}

// GeneratedEmail is the validated model output.
type GeneratedEmail struct {
	Subject       string `json:"subject"`
	Body          string `json:"body"`
	Signature     string `json:"signature"`
	ReceiverEmail string `json:"receiverEmail"`
}

type Attachment struct {
	FileName string
	Path     string
}

// OutboundMessage is what a mail transport delivers.
type OutboundMessage struct {
	From       string
	To         string
	Subject    string
	TextBody   string
	HTMLBody   string
	Attachment Attachment
}
