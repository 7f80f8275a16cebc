package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"staffly-backend/internal/database"
	"staffly-backend/internal/employee"
	"staffly-backend/internal/handlers"
	customMiddleware "staffly-backend/internal/middleware"
	"staffly-backend/internal/notify"
	"staffly-backend/internal/repository"
	"staffly-backend/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env (ignore error in production — env vars set directly)
	_ = godotenv.Load()

	// Required env vars
	mongoURI := getEnv("MONGODB_URI", "")
	dbName := getEnv("DB_NAME", "staffly")
	jwtSecret := getEnv("JWT_SECRET", "")
	port := getEnv("PORT", "8080")
	publicBaseURL := getEnv("PUBLIC_BASE_URL", "http://localhost:3000")
	s3Bucket := getEnv("S3_BUCKET", "")

	if mongoURI == "" {
		log.Fatal("❌ MONGODB_URI is required")
	}
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET is required")
	}
	if s3Bucket == "" {
		log.Fatal("❌ S3_BUCKET is required")
	}

	// Connect to MongoDB
	if err := database.Connect(mongoURI, dbName); err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	// Connect to blob storage
	blobStore, err := storage.NewS3Store(context.Background(), storage.Config{
		Bucket:        s3Bucket,
		Region:        getEnv("S3_REGION", "us-east-1"),
		Endpoint:      getEnv("S3_ENDPOINT", ""),
		AccessKey:     getEnv("S3_ACCESS_KEY", ""),
		SecretKey:     getEnv("S3_SECRET_KEY", ""),
		PublicBaseURL: getEnv("S3_PUBLIC_URL", ""),
	})
	if err != nil {
		log.Fatalf("❌ Failed to set up blob storage: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepo()
	tokenRepo := repository.NewAuthTokenRepo()
	employeeRepo := repository.NewEmployeeRepo()
	feedbackRepo := repository.NewFeedbackRepo()

	// Ensure indexes
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create user indexes: %v", err)
	}
	if err := tokenRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create token indexes: %v", err)
	}
	if err := employeeRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create employee indexes: %v", err)
	}
	if err := feedbackRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create feedback indexes: %v", err)
	}

	// Feedback notifications: real email when Resend is configured
	var notifier notify.Notifier = notify.NewLogNotifier()
	if apiKey := getEnv("RESEND_API_KEY", ""); apiKey != "" {
		notifier = notify.NewEmailNotifier(apiKey, getEnv("FROM_EMAIL", ""))
	}

	// Initialize handlers
	composer := employee.NewComposer(employeeRepo, blobStore)
	authHandler := handlers.NewAuthHandler(tokenRepo, userRepo, jwtSecret, publicBaseURL)
	employeeHandler := handlers.NewEmployeeHandler(composer, employeeRepo, feedbackRepo, publicBaseURL)
	feedbackHandler := handlers.NewFeedbackHandler(employeeRepo, feedbackRepo, userRepo, notifier)
	userHandler := handlers.NewUserHandler(userRepo)

	// Setup chi router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"staffly-backend"}`))
	})

	// Public routes (no auth required)
	r.Post("/auth/request", authHandler.RequestLogin)
	r.Get("/auth/verify", authHandler.VerifyToken)

	// Public feedback flow, reached from a scanned QR code
	r.Get("/employees/{id}", employeeHandler.Detail)
	r.Get("/employees/{id}/qr", employeeHandler.QRCode)
	r.Get("/employees/{id}/feedback", feedbackHandler.ListForEmployee)
	r.Post("/employees/{id}/feedback", feedbackHandler.Submit)

	// Protected routes (JWT required)
	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.JWTAuth(jwtSecret))

		r.Post("/employees", employeeHandler.Create)
		r.Get("/employees", employeeHandler.List)
		r.Get("/employees/schema", employeeHandler.Schema)
		r.Get("/employees/{id}/export", employeeHandler.ExportPDF)
		r.Get("/user/status", userHandler.GetStatus)
	})

	// Start server
	log.Printf("🚀 Staffly backend starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
