package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"staffly-backend/internal/apperrors"
	"staffly-backend/internal/employee"
	"staffly-backend/internal/export"
	"staffly-backend/internal/middleware"
	"staffly-backend/internal/models"
	"staffly-backend/internal/rating"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// maxUploadSize caps the multipart form (photo included) at 10 MB.
const maxUploadSize = 10 << 20

// EmployeeStore is the read side of the employee repository.
type EmployeeStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Employee, error)
	FindAll(ctx context.Context) ([]models.Employee, error)
}

// FeedbackReader reads the feedback set the aggregate derives from.
type FeedbackReader interface {
	FindByEmployeeID(ctx context.Context, employeeID bson.ObjectID) ([]models.Feedback, error)
}

type EmployeeHandler struct {
	composer      *employee.Composer
	employees     EmployeeStore
	feedback      FeedbackReader
	publicBaseURL string
}

func NewEmployeeHandler(composer *employee.Composer, employees EmployeeStore, feedback FeedbackReader, publicBaseURL string) *EmployeeHandler {
	return &EmployeeHandler{
		composer:      composer,
		employees:     employees,
		feedback:      feedback,
		publicBaseURL: publicBaseURL,
	}
}

// directoryEntry is an employee annotated with the derived rating
// fields the directory view renders.
type directoryEntry struct {
	models.Employee
	AverageRating string `json:"averageRating"`
	FeedbackCount int    `json:"feedbackCount"`
}

// --- POST /employees ---

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, err := bson.ObjectIDFromHex(middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, apperrors.AuthenticationRequired())
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, apperrors.Validation("invalid multipart form"))
		return
	}

	fields := make(map[string]string, len(employee.Fields))
	for _, f := range employee.Fields {
		fields[f.Name] = r.FormValue(f.Name)
	}

	var photo *employee.Photo
	file, header, err := r.FormFile("photo")
	if err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, apperrors.Validation("could not read photo upload"))
			return
		}
		photo = &employee.Photo{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		}
	} else if err != http.ErrMissingFile {
		writeError(w, apperrors.Validation("could not read photo upload"))
		return
	}

	emp, err := h.composer.Compose(r.Context(), ownerID, fields, photo)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "employee added successfully",
		"employee": emp,
	})
}

// --- GET /employees ---

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.FindAll(r.Context())
	if err != nil {
		writeError(w, apperrors.Persistence(err))
		return
	}

	entries := make([]directoryEntry, 0, len(employees))
	for _, emp := range employees {
		feedback, err := h.feedback.FindByEmployeeID(r.Context(), emp.ID)
		if err != nil {
			writeError(w, apperrors.Persistence(err))
			return
		}
		summary := rating.Aggregate(feedback)
		entries = append(entries, directoryEntry{
			Employee:      emp,
			AverageRating: summary.DisplayAverage(),
			FeedbackCount: summary.Count,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"employees": entries,
	})
}

// --- GET /employees/{id} ---

func (h *EmployeeHandler) Detail(w http.ResponseWriter, r *http.Request) {
	emp, feedback, err := h.load(r)
	if err != nil {
		writeError(w, err)
		return
	}

	summary := rating.Aggregate(feedback)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"employee":      emp,
		"feedback":      feedback,
		"averageRating": summary.DisplayAverage(),
		"feedbackCount": summary.Count,
	})
}

// --- GET /employees/schema ---

func (h *EmployeeHandler) Schema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"fields": employee.Fields,
	})
}

// --- GET /employees/{id}/export ---

func (h *EmployeeHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	emp, feedback, err := h.load(r)
	if err != nil {
		writeError(w, err)
		return
	}

	pdfBytes, err := export.ProfilePDF(emp, feedback, rating.Aggregate(feedback))
	if err != nil {
		writeError(w, err)
		return
	}

	filename := strings.ToLower(strings.ReplaceAll(emp.FullName(), " ", "-")) + "-profile.pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

// --- GET /employees/{id}/qr ---

func (h *EmployeeHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	emp, err := h.find(r)
	if err != nil {
		writeError(w, err)
		return
	}

	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	png, err := export.FeedbackQR(h.publicBaseURL, emp.ID.Hex(), size)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// find resolves the {id} path parameter to an employee. A malformed id
// is reported the same way as an absent one.
func (h *EmployeeHandler) find(r *http.Request) (*models.Employee, error) {
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

func (h *EmployeeHandler) load(r *http.Request) (*models.Employee, []models.Feedback, error) {
	emp, err := h.find(r)
	if err != nil {
		return nil, nil, err
	}
	feedback, err := h.feedback.FindByEmployeeID(r.Context(), emp.ID)
	if err != nil {
		return nil, nil, apperrors.Persistence(err)
	}
	return emp, feedback, nil
}
