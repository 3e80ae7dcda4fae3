package mailer

import (
	"context"
	"fmt"
	"log"

	"eventhub-backend/internal/models"

	"github.com/resend/resend-go/v2"
)

// Mailer sends the invitation email when a guest is added to an event.
// Delivery is best-effort; callers fire it in the background and only log
// failures.
type Mailer interface {
	SendGuestInvite(ctx context.Context, guest *models.Guest, event *models.Event) error
}

// ResendMailer sends guest invitations through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *ResendMailer) SendGuestInvite(ctx context.Context, guest *models.Guest, event *models.Event) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{guest.Email},
		Subject: fmt.Sprintf("You're invited: %s", event.Title),
		Html: fmt.Sprintf(`
			<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
				<h2 style="color: #333;">You're invited, %s!</h2>
				<p>You have been invited to <strong>%s</strong>.</p>
				<p>📅 %s<br>📍 %s</p>
				<p style="color: #888; font-size: 14px; margin-top: 16px;">
					No account is needed — just show up.
				</p>
			</div>
		`, guest.Name, event.Title, event.Date.Format("Monday, 2 January 2006 at 15:04"), event.Venue),
	}

	sent, err := m.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send invite email: %w", err)
	}
	log.Printf("📧 Invite email sent to %s (ID: %s)", guest.Email, sent.Id)
	return nil
}
