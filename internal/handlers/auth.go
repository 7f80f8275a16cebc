package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"staffly-backend/internal/models"
	"staffly-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
)

type AuthHandler struct {
	tokenRepo     *repository.AuthTokenRepo
	userRepo      *repository.UserRepo
	jwtSecret     string
	publicBaseURL string
}

func NewAuthHandler(tokenRepo *repository.AuthTokenRepo, userRepo *repository.UserRepo, jwtSecret, publicBaseURL string) *AuthHandler {
	return &AuthHandler{
		tokenRepo:     tokenRepo,
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		publicBaseURL: publicBaseURL,
	}
}

// --- Request / Response types ---

type RequestLoginRequest struct {
	Email string `json:"email"`
}

type VerifyResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// --- POST /auth/request ---

func (h *AuthHandler) RequestLogin(w http.ResponseWriter, r *http.Request) {
	var req RequestLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email is required"})
		return
	}

	// Rate limiting: max 5 requests per email in 10 minutes
	count, err := h.tokenRepo.CountRecentByEmail(r.Context(), req.Email, 10*time.Minute)
	if err != nil {
		log.Printf("Error checking rate limit: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if count >= 5 {
		writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "too many login requests, please try again later"})
		return
	}

	// Generate unique single-use token with 15-minute expiry
	authToken := &models.AuthToken{
		Email:     req.Email,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(15 * time.Minute),
		IsUsed:    false,
	}
	if err := h.tokenRepo.Create(r.Context(), authToken); err != nil {
		log.Printf("Error creating auth token: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create login token"})
		return
	}

	loginLink := fmt.Sprintf("%s/login?token=%s", h.publicBaseURL, authToken.Token)

	if err := sendLoginEmail(req.Email, loginLink); err != nil {
		log.Printf("Error sending email: %v", err)
		// Don't fail the request — token is created, email sending is best-effort
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "login link generated (email delivery may be delayed)",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "login link sent to your email",
	})
}

// --- GET /auth/verify ---

func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	tokenValue := r.URL.Query().Get("token")
	if tokenValue == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "token is required"})
		return
	}

	authToken, err := h.tokenRepo.FindByToken(r.Context(), tokenValue)
	if err != nil {
		log.Printf("Error finding token: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if authToken == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
		return
	}

	if authToken.IsExpired() {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "token has expired"})
		return
	}

	// Single-use: a token can only ever be exchanged once
	if authToken.IsUsed {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "token has already been used"})
		return
	}

	if err := h.tokenRepo.MarkUsed(r.Context(), tokenValue); err != nil {
		log.Printf("Error marking token as used: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	user, err := h.userRepo.FindOrCreate(r.Context(), authToken.Email)
	if err != nil {
		log.Printf("Error finding/creating user: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	// Session JWT with 30-day expiry
	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID.Hex(),
		"email":   user.Email,
		"exp":     time.Now().Add(30 * 24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := jwtToken.SignedString([]byte(h.jwtSecret))
	if err != nil {
		log.Printf("Error signing JWT: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, VerifyResponse{
		Token: tokenString,
		User:  user,
	})
}

// --- Helpers ---

func sendLoginEmail(to, link string) error {
	apiKey := os.Getenv("RESEND_API_KEY")
	fromEmail := os.Getenv("FROM_EMAIL")

	if apiKey == "" {
		log.Println("⚠️  RESEND_API_KEY not set, skipping email send")
		log.Printf("📧 [Dev Mode] Login link for %s: %s", to, link)
		return nil
	}

	client := resend.NewClient(apiKey)

	params := &resend.SendEmailRequest{
		From:    fromEmail,
		To:      []string{to},
		Subject: "Your Staffly Login Link",
		Html: fmt.Sprintf(`
			<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
				<h2 style="color: #333;">Sign in to Staffly</h2>
				<p>Click the button below to open the employee directory:</p>
				<a href="%s" style="display: inline-block; background: #6366f1; color: white; padding: 12px 24px; border-radius: 8px; text-decoration: none; font-weight: 600;">
					Sign In
				</a>
				<p style="color: #888; font-size: 14px; margin-top: 16px;">
					This link expires in 15 minutes and can only be used once.
				</p>
				<p style="color: #aaa; font-size: 12px;">
					If you didn't request this, you can safely ignore this email.
				</p>
			</div>
		`, link),
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	log.Printf("📧 Login email sent (ID: %s)", sent.Id)
	return nil
}
