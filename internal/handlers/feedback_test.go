package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staffly-backend/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type fakeEmployeeStore struct {
	all []models.Employee
	err error
}

func (f *fakeEmployeeStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.all {
		if f.all[i].ID == id {
			return &f.all[i], nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeStore) FindAll(ctx context.Context) ([]models.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.all, nil
}

type fakeFeedbackStore struct {
	byEmployee map[bson.ObjectID][]models.Feedback
	created    []*models.Feedback
	err        error
}

func (f *fakeFeedbackStore) Create(ctx context.Context, feedback *models.Feedback) error {
	if f.err != nil {
		return f.err
	}
	feedback.ID = bson.NewObjectID()
	f.created = append(f.created, feedback)
	return nil
}

func (f *fakeFeedbackStore) FindByEmployeeID(ctx context.Context, employeeID bson.ObjectID) ([]models.Feedback, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byEmployee[employeeID], nil
}

type fakeUserStore struct {
	users map[bson.ObjectID]*models.User
}

func (f *fakeUserStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	return f.users[id], nil
}

type fakeNotifier struct {
	notices chan string
}

func (f *fakeNotifier) NotifyFeedback(ctx context.Context, ownerEmail, employeeName string, fb *models.Feedback) error {
	f.notices <- ownerEmail
	return nil
}

func feedbackRouter(h *FeedbackHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/employees/{id}/feedback", h.Submit)
	r.Get("/employees/{id}/feedback", h.ListForEmployee)
	return r
}

func submitBody(t *testing.T, text string, rating int) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(SubmitFeedbackRequest{Text: text, Rating: rating})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestSubmitFeedback_OK(t *testing.T) {
	owner := bson.NewObjectID()
	emp := models.Employee{ID: bson.NewObjectID(), FirstName: "Ada", Surname: "Lovelace", OwnerUserID: owner}
	employees := &fakeEmployeeStore{all: []models.Employee{emp}}
	feedback := &fakeFeedbackStore{}
	users := &fakeUserStore{users: map[bson.ObjectID]*models.User{owner: {ID: owner, Email: "owner@x.com"}}}
	notifier := &fakeNotifier{notices: make(chan string, 1)}

	h := NewFeedbackHandler(employees, feedback, users, notifier)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/employees/"+emp.ID.Hex()+"/feedback", submitBody(t, "great work", 5))
	feedbackRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, feedback.created, 1)
	assert.Equal(t, emp.ID, feedback.created[0].EmployeeID)
	assert.Equal(t, "great work", feedback.created[0].Text)
	assert.Equal(t, 5, feedback.created[0].Rating)
	assert.False(t, feedback.created[0].CreatedAt.IsZero())

	select {
	case email := <-notifier.notices:
		assert.Equal(t, "owner@x.com", email)
	case <-time.After(time.Second):
		t.Fatal("owner was never notified")
	}
}

func TestSubmitFeedback_Rejected(t *testing.T) {
	emp := models.Employee{ID: bson.NewObjectID(), OwnerUserID: bson.NewObjectID()}

	tests := []struct {
		name   string
		text   string
		rating int
	}{
		{"empty text", "", 4},
		{"whitespace text", "   ", 4},
		{"zero rating", "solid", 0},
		{"rating above range", "solid", 6},
		{"negative rating", "solid", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feedback := &fakeFeedbackStore{}
			h := NewFeedbackHandler(
				&fakeEmployeeStore{all: []models.Employee{emp}},
				feedback,
				&fakeUserStore{},
				&fakeNotifier{notices: make(chan string, 1)},
			)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/employees/"+emp.ID.Hex()+"/feedback", submitBody(t, tt.text, tt.rating))
			feedbackRouter(h).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, feedback.created)
		})
	}
}

func TestSubmitFeedback_UnknownEmployee(t *testing.T) {
	feedback := &fakeFeedbackStore{}
	h := NewFeedbackHandler(&fakeEmployeeStore{}, feedback, &fakeUserStore{}, &fakeNotifier{notices: make(chan string, 1)})

	for _, id := range []string{bson.NewObjectID().Hex(), "not-a-hex-id"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees/"+id+"/feedback", submitBody(t, "hello", 3))
		feedbackRouter(h).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
	assert.Empty(t, feedback.created)
}

func TestListFeedback_Aggregates(t *testing.T) {
	emp := models.Employee{ID: bson.NewObjectID(), OwnerUserID: bson.NewObjectID()}
	feedback := &fakeFeedbackStore{byEmployee: map[bson.ObjectID][]models.Feedback{
		emp.ID: {{Rating: 5}, {Rating: 4}, {Rating: 3}},
	}}
	h := NewFeedbackHandler(&fakeEmployeeStore{all: []models.Employee{emp}}, feedback, &fakeUserStore{}, &fakeNotifier{notices: make(chan string, 1)})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/employees/"+emp.ID.Hex()+"/feedback", nil)
	feedbackRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AverageRating string `json:"averageRating"`
		FeedbackCount int    `json:"feedbackCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "4.0", resp.AverageRating)
	assert.Equal(t, 3, resp.FeedbackCount)
}
