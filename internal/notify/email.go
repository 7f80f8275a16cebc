package notify

import (
	"context"
	"fmt"
	"strings"

	"staffly-backend/internal/models"

	"github.com/resend/resend-go/v2"
)

// EmailNotifier sends the owner of an employee record an email whenever
// new feedback arrives, via Resend.
type EmailNotifier struct {
	client *resend.Client
	from   string
}

func NewEmailNotifier(apiKey, from string) *EmailNotifier {
	return &EmailNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (n *EmailNotifier) NotifyFeedback(ctx context.Context, ownerEmail, employeeName string, fb *models.Feedback) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{ownerEmail},
		Subject: fmt.Sprintf("New feedback for %s", employeeName),
		Html: fmt.Sprintf(`
			<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
				<h2 style="color: #333;">New feedback received</h2>
				<p><strong>%s</strong> just got a new review:</p>
				<p style="font-size: 20px;">%s</p>
				<blockquote style="border-left: 3px solid #ddd; margin: 0; padding-left: 12px; color: #555;">%s</blockquote>
			</div>
		`, employeeName, stars(fb.Rating), fb.Text),
	}

	_, err := n.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}
	return nil
}

func stars(rating int) string {
	return strings.Repeat("⭐", rating)
}

var _ Notifier = (*EmailNotifier)(nil)
