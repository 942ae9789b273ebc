package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"contractapi/internal/config"
)

var ErrEmailNotConfigured = errors.New("email service not configured (missing RESEND_API_KEY)")

// InvitationEmail carries what the invitation template needs.
type InvitationEmail struct {
	To        string
	Name      string
	Role      string
	Token     string
	InvitedBy string
}

// Mailer sends transactional email.
type Mailer interface {
	SendInvitation(ctx context.Context, e InvitationEmail) error
}

// ResendMailer sends through Resend. In dev mode it logs the message instead.
type ResendMailer struct {
	client  *resend.Client
	from    string
	appURL  string
	appName string
	isDev   bool
	log     *zap.Logger
}

func NewResendMailer(cfg config.EmailConfig, appURL, appName string, isDev bool, log *zap.Logger) *ResendMailer {
	var client *resend.Client
	if cfg.ResendAPIKey != "" && !isDev {
		client = resend.NewClient(cfg.ResendAPIKey)
	}
	return &ResendMailer{
		client:  client,
		from:    cfg.From,
		appURL:  appURL,
		appName: appName,
		isDev:   isDev,
		log:     log,
	}
}

func (m *ResendMailer) SendInvitation(ctx context.Context, e InvitationEmail) error {
	acceptURL := fmt.Sprintf("%s/invitations/%s", m.appURL, e.Token)
	subject, body := invitationEmailTemplate(e, acceptURL, m.appName)

	if m.isDev {
		m.log.Info("email sent (dev mode)",
			zap.String("type", "invitation"),
			zap.String("to", e.To),
			zap.String("subject", subject),
			zap.String("url", acceptURL),
		)
		return nil
	}
	if m.client == nil {
		return ErrEmailNotConfigured
	}

	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{e.To},
		Subject: subject,
		Text:    body,
	})
	if err == nil {
		m.log.Info("email sent", zap.String("type", "invitation"), zap.String("to", e.To))
	}
	return err
}

func invitationEmailTemplate(e InvitationEmail, acceptURL, appName string) (string, string) {
	subject := fmt.Sprintf("You're invited to join %s", appName)
	greeting := "Hi"
	if e.Name != "" {
		greeting = "Hi " + e.Name
	}
	inviter := "A teammate"
	if e.InvitedBy != "" {
		inviter = e.InvitedBy
	}
	body := fmt.Sprintf(`%s,

%s invited you to %s as %s.

Accept the invitation here:
%s

The link expires in 7 days. If you weren't expecting this, you can ignore this email.

- The %s team`, greeting, inviter, appName, e.Role, acceptURL, appName)
	return subject, body
}
