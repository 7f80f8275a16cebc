// Package employee turns raw form input into persisted employee records.
package employee

import (
	"bytes"
	"context"
	"log"
	"path/filepath"
	"strings"

	"staffly-backend/internal/apperrors"
	"staffly-backend/internal/models"
	"staffly-backend/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// FieldSpec describes one form field of the employee record. The same
// list drives both the rendered form (GET /employees/schema) and the
// composer's validation, so the two cannot drift apart.
type FieldSpec struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// Fields enumerates every employee attribute accepted from the form,
// in display order.
var Fields = []FieldSpec{
	{Name: "firstName", Label: "First Name", Required: true},
	{Name: "surname", Label: "Surname", Required: true},
	{Name: "middleName", Label: "Middle Name"},
	{Name: "email", Label: "Email", Required: true},
	{Name: "phoneNumber", Label: "Phone Number", Required: true},
	{Name: "street", Label: "Street"},
	{Name: "town", Label: "Town"},
	{Name: "postcode", Label: "Postcode"},
	{Name: "country", Label: "Country"},
	{Name: "city", Label: "City"},
}

// Photo is an optional uploaded portrait.
type Photo struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Inserter is the slice of the employee repository the composer needs.
type Inserter interface {
	Create(ctx context.Context, employee *models.Employee) error
}

// Composer validates form input, uploads the optional photo and writes
// exactly one employee document per successful call.
type Composer struct {
	employees Inserter
	blobs     storage.Uploader
}

func NewComposer(employees Inserter, blobs storage.Uploader) *Composer {
	return &Composer{
		employees: employees,
		blobs:     blobs,
	}
}

// Compose builds and persists an employee record owned by ownerID.
// Validation or a missing owner aborts before any upload or insert.
// If the insert fails after a successful upload, the uploaded photo is
// orphaned: there is no compensating delete.
func (c *Composer) Compose(ctx context.Context, ownerID bson.ObjectID, fields map[string]string, photo *Photo) (*models.Employee, error) {
	if ownerID.IsZero() {
		return nil, apperrors.AuthenticationRequired()
	}

	for _, f := range Fields {
		if f.Required && strings.TrimSpace(fields[f.Name]) == "" {
			return nil, apperrors.Validation(f.Label + " is required")
		}
	}

	photoURL := ""
	if photo != nil {
		contentType := photo.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		url, err := c.blobs.Upload(ctx, photoKey(photo.Filename), contentType, bytes.NewReader(photo.Data))
		if err != nil {
			return nil, apperrors.Upload(err)
		}
		photoURL = url
	}

	emp := &models.Employee{
		FirstName:   fields["firstName"],
		Surname:     fields["surname"],
		MiddleName:  fields["middleName"],
		Email:       fields["email"],
		PhoneNumber: fields["phoneNumber"],
		Street:      fields["street"],
		Town:        fields["town"],
		Postcode:    fields["postcode"],
		Country:     fields["country"],
		City:        fields["city"],
		PhotoURL:    photoURL,
		OwnerUserID: ownerID,
	}

	if err := c.employees.Create(ctx, emp); err != nil {
		if photoURL != "" {
			log.Printf("⚠️  Employee insert failed after photo upload, orphaned object at %s", photoURL)
		}
		return nil, apperrors.Persistence(err)
	}
	return emp, nil
}

// photoKey derives a collision-resistant object key. Only the extension
// of the uploaded filename survives into the key, so identically named
// uploads can never overwrite each other.
func photoKey(filename string) string {
	return "employee_photos/" + uuid.New().String() + strings.ToLower(filepath.Ext(filename))
}
