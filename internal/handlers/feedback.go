package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"staffly-backend/internal/apperrors"
	"staffly-backend/internal/models"
	"staffly-backend/internal/notify"
	"staffly-backend/internal/rating"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// FeedbackStore is the slice of the feedback repository the handler needs.
type FeedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	FindByEmployeeID(ctx context.Context, employeeID bson.ObjectID) ([]models.Feedback, error)
}

// UserStore resolves the owner account behind an employee record.
type UserStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
}

type FeedbackHandler struct {
	employees EmployeeStore
	feedback  FeedbackStore
	users     UserStore
	notifier  notify.Notifier
}

func NewFeedbackHandler(employees EmployeeStore, feedback FeedbackStore, users UserStore, notifier notify.Notifier) *FeedbackHandler {
	return &FeedbackHandler{
		employees: employees,
		feedback:  feedback,
		users:     users,
		notifier:  notifier,
	}
}

type SubmitFeedbackRequest struct {
	Text   string `json:"feedback"`
	Rating int    `json:"rating"`
}

// --- POST /employees/{id}/feedback ---

func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	emp, err := h.findEmployee(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.Validation("invalid request body"))
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeError(w, apperrors.Validation("feedback text is required"))
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeError(w, apperrors.Validation("rating must be between 1 and 5"))
		return
	}

	feedback := &models.Feedback{
		EmployeeID: emp.ID,
		Text:       req.Text,
		Rating:     req.Rating,
		CreatedAt:  time.Now(),
	}

	if err := h.feedback.Create(r.Context(), feedback); err != nil {
		writeError(w, apperrors.Persistence(err))
		return
	}

	// Notify the record's owner in a background goroutine (best-effort)
	go h.notifyOwner(emp, feedback)

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "thank you for your feedback",
		"feedback": feedback,
	})
}

// --- GET /employees/{id}/feedback ---

func (h *FeedbackHandler) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.findEmployee(r)
	if err != nil {
		writeError(w, err)
		return
	}

	entries, err := h.feedback.FindByEmployeeID(r.Context(), emp.ID)
	if err != nil {
		writeError(w, apperrors.Persistence(err))
		return
	}

	summary := rating.Aggregate(entries)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"feedback":      entries,
		"averageRating": summary.DisplayAverage(),
		"feedbackCount": summary.Count,
	})
}

func (h *FeedbackHandler) findEmployee(r *http.Request) (*models.Employee, error) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return nil, apperrors.NotFound("employee")
	}
	emp, err := h.employees.FindByID(r.Context(), id)
	if err != nil {
		return nil, apperrors.Persistence(err)
	}
	if emp == nil {
		return nil, apperrors.NotFound("employee")
	}
	return emp, nil
}

func (h *FeedbackHandler) notifyOwner(emp *models.Employee, feedback *models.Feedback) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	owner, err := h.users.FindByID(ctx, emp.OwnerUserID)
	if err != nil || owner == nil {
		log.Printf("Error resolving owner for employee %s: %v", emp.ID.Hex(), err)
		return
	}
	if err := h.notifier.NotifyFeedback(ctx, owner.Email, emp.FullName(), feedback); err != nil {
		log.Printf("Error sending feedback notification: %v", err)
	}
}
