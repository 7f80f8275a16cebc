package handlers

import (
	"net/http"

	"staffly-backend/internal/apperrors"
	"staffly-backend/internal/middleware"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type UserHandler struct {
	users UserStore
}

func NewUserHandler(users UserStore) *UserHandler {
	return &UserHandler{
		users: users,
	}
}

// --- GET /user/status ---

func (h *UserHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := bson.ObjectIDFromHex(middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, apperrors.AuthenticationRequired())
		return
	}

	user, err := h.users.FindByID(r.Context(), userID)
	if err != nil {
		writeError(w, apperrors.Persistence(err))
		return
	}
	if user == nil {
		writeError(w, apperrors.NotFound("user"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": user,
	})
}
