package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"

	"github.com/justsurfingit/job-mailer/internal/models"
)

const smtpsPort = 465

// buildMessage renders msg as a multipart/alternative message with the
// resume attached.
func buildMessage(msg *models.OutboundMessage) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("set recipient: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
	m.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)
	if msg.Attachment.Path != "" {
		m.AttachFile(msg.Attachment.Path, mail.WithFileName(msg.Attachment.FileName))
	}
	return m, nil
}

// SMTPTransport delivers through an SMTP relay using the sender's app password.
type SMTPTransport struct {
	Host string
	Port int
}

func NewSMTPTransport(host string, port int) *SMTPTransport {
	return &SMTPTransport{Host: host, Port: port}
}

func (t *SMTPTransport) Send(ctx context.Context, msg *models.OutboundMessage, creds SenderCredentials) error {
	m, err := buildMessage(msg)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(t.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(creds.Username),
		mail.WithPassword(creds.Password),
	}
	if t.Port == smtpsPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(t.Host, opts...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}

// GmailTransport delivers through the Gmail API with an OAuth token.
// The app password is not used.
type GmailTransport struct {
	Service *gmail.Service
}

func NewGmailTransport(srv *gmail.Service) *GmailTransport {
	return &GmailTransport{Service: srv}
}

func (t *GmailTransport) Send(ctx context.Context, msg *models.OutboundMessage, _ SenderCredentials) error {
	m, err := buildMessage(msg)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return fmt.Errorf("render message: %w", err)
	}

	raw := &gmail.Message{Raw: base64.URLEncoding.EncodeToString(buf.Bytes())}
	if _, err := t.Service.Users.Messages.Send("me", raw).Context(ctx).Do(); err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			return fmt.Errorf("gmail send failed (%d): %s", apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("gmail send: %w", err)
	}
	return nil
}
