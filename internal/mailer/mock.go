package mailer

import (
	"context"
	"log"

	"eventhub-backend/internal/models"
)

// MockMailer logs invitations instead of sending them. Used when no Resend
// API key is configured.
type MockMailer struct{}

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) SendGuestInvite(ctx context.Context, guest *models.Guest, event *models.Event) error {
	log.Printf("📧 [MockMailer] Invite for %s <%s> to %q", guest.Name, guest.Email, event.Title)
	return nil
}
