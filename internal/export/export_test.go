package export

import (
	"bytes"
	"testing"
	"time"

	"staffly-backend/internal/models"
	"staffly-backend/internal/rating"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilePDF(t *testing.T) {
	emp := &models.Employee{
		FirstName:   "Ada",
		MiddleName:  "King",
		Surname:     "Lovelace",
		Email:       "a@x.com",
		PhoneNumber: "123",
		Street:      "12 St James Square",
		City:        "London",
		Country:     "UK",
	}
	feedback := []models.Feedback{
		{Rating: 5, Text: "exceptional analytical skills", CreatedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)},
		{Rating: 4, Text: "great collaborator", CreatedAt: time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC)},
	}

	pdfBytes, err := ProfilePDF(emp, feedback, rating.Aggregate(feedback))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")))
	assert.Greater(t, len(pdfBytes), 500)
}

func TestProfilePDF_NoFeedback(t *testing.T) {
	emp := &models.Employee{FirstName: "Grace", Surname: "Hopper", Email: "g@x.com", PhoneNumber: "456"}

	pdfBytes, err := ProfilePDF(emp, nil, rating.Aggregate(nil))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")))
}

func TestFeedbackQR(t *testing.T) {
	png, err := FeedbackQR("http://localhost:3000/", "abc123", 0)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))
}

func TestFeedbackQR_SizeCapped(t *testing.T) {
	png, err := FeedbackQR("http://localhost:3000", "abc123", 10_000)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
