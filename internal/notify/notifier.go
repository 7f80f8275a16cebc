package notify

import (
	"context"

	"staffly-backend/internal/models"
)

// Notifier delivers a new-feedback notice to the employee record's owner.
// This abstraction allows swapping the log-only notifier with the real
// email integration without refactoring.
type Notifier interface {
	NotifyFeedback(ctx context.Context, ownerEmail, employeeName string, fb *models.Feedback) error
}
