package notify

import (
	"context"
	"log"

	"staffly-backend/internal/models"
)

// LogNotifier implements the Notifier interface by logging notices to
// stdout. Used when no email provider is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyFeedback(ctx context.Context, ownerEmail, employeeName string, fb *models.Feedback) error {
	log.Printf("📨 [LogNotifier] Would notify %s: new %d-star feedback for %s", ownerEmail, fb.Rating, employeeName)
	return nil
}

var _ Notifier = (*LogNotifier)(nil)
