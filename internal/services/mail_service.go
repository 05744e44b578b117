package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/justsurfingit/job-mailer/internal/apperrors"
	"github.com/justsurfingit/job-mailer/internal/logger"
	"github.com/justsurfingit/job-mailer/internal/models"
)

// SenderCredentials authenticate the sender against the mail transport.
type SenderCredentials struct {
	Username string
	Password string
}

// Transport hands a composed message to an outbound mail service.
type Transport interface {
	Send(ctx context.Context, msg *models.OutboundMessage, creds SenderCredentials) error
}

type MailService struct {
	Transport Transport
	// ResumeDir is where uploaded resumes live.
	ResumeDir string
}

func NewMailService(transport Transport, resumeDir string) *MailService {
	return &MailService{Transport: transport, ResumeDir: resumeDir}
}

// Compose builds the outbound message for email using the sender identity
// and resume stored in the profile.
func (s *MailService) Compose(email *models.GeneratedEmail, p *models.Profile) (*models.OutboundMessage, error) {
	if p == nil || blank(p.ResumeFileName) || blank(p.SenderEmail) || blank(p.AppPassword) || blank(p.FullName) {
		return nil, apperrors.Configuration("incomplete user data for email")
	}

	resumePath := filepath.Join(s.ResumeDir, p.ResumeFileName)
	if _, err := os.Stat(resumePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.Configuration("resume file missing, upload your resume again")
		}
		return nil, apperrors.Internal(fmt.Errorf("stat resume: %w", err))
	}

	return &models.OutboundMessage{
		From:     p.SenderEmail,
		To:       email.ReceiverEmail,
		Subject:  email.Subject,
		TextBody: email.Body,
		HTMLBody: strings.ReplaceAll(email.Body, "\n", "<br/>"),
		Attachment: models.Attachment{
			FileName: fmt.Sprintf("%s's Resume.pdf", p.FullName),
			Path:     resumePath,
		},
	}, nil
}

// Send composes and dispatches email synchronously. Success means the
// transport accepted the message.
func (s *MailService) Send(ctx context.Context, email *models.GeneratedEmail, p *models.Profile) error {
	msg, err := s.Compose(email, p)
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx).With("component", "mail", "operation", "send")
	log.Info("dispatching email", "to", msg.To, "attachment", msg.Attachment.FileName)

	creds := SenderCredentials{Username: p.SenderEmail, Password: p.AppPassword}
	if err := s.Transport.Send(ctx, msg, creds); err != nil {
		log.Error("dispatch failed", "error", err)
		return apperrors.Dispatch(err)
	}

	log.Info("email accepted by transport", "to", msg.To)
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
