package employee

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"staffly-backend/internal/apperrors"
	"staffly-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type fakeInserter struct {
	created []*models.Employee
	err     error
}

func (f *fakeInserter) Create(ctx context.Context, e *models.Employee) error {
	if f.err != nil {
		return f.err
	}
	e.ID = bson.NewObjectID()
	f.created = append(f.created, e)
	return nil
}

type fakeUploader struct {
	keys []string
	err  error
}

func (f *fakeUploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return "https://blobs.test/" + key, nil
}

func validFields() map[string]string {
	return map[string]string{
		"firstName":   "Ada",
		"surname":     "Lovelace",
		"email":       "a@x.com",
		"phoneNumber": "123",
	}
}

func TestCompose_NoPhoto(t *testing.T) {
	inserter := &fakeInserter{}
	uploader := &fakeUploader{}
	composer := NewComposer(inserter, uploader)
	owner := bson.NewObjectID()

	emp, err := composer.Compose(context.Background(), owner, validFields(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Ada", emp.FirstName)
	assert.Equal(t, "Lovelace", emp.Surname)
	assert.Equal(t, "", emp.PhotoURL)
	assert.Equal(t, owner, emp.OwnerUserID)
	assert.Len(t, inserter.created, 1)
	assert.Empty(t, uploader.keys)
}

func TestCompose_MissingRequiredField(t *testing.T) {
	for _, field := range []string{"firstName", "surname", "email", "phoneNumber"} {
		t.Run(field, func(t *testing.T) {
			inserter := &fakeInserter{}
			uploader := &fakeUploader{}
			composer := NewComposer(inserter, uploader)

			fields := validFields()
			fields[field] = "  "

			_, err := composer.Compose(context.Background(), bson.NewObjectID(), fields, &Photo{Filename: "p.jpg"})
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.CodeValidationFailure, appErr.Code)
			assert.Empty(t, inserter.created)
			assert.Empty(t, uploader.keys)
		})
	}
}

func TestCompose_NoAuthenticatedUser(t *testing.T) {
	inserter := &fakeInserter{}
	uploader := &fakeUploader{}
	composer := NewComposer(inserter, uploader)

	_, err := composer.Compose(context.Background(), bson.ObjectID{}, validFields(), &Photo{Filename: "p.jpg"})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeAuthenticationRequired, appErr.Code)
	assert.Empty(t, inserter.created)
	assert.Empty(t, uploader.keys)
}

func TestCompose_WithPhoto(t *testing.T) {
	inserter := &fakeInserter{}
	uploader := &fakeUploader{}
	composer := NewComposer(inserter, uploader)

	photo := &Photo{Filename: "Portrait.JPG", ContentType: "image/jpeg", Data: []byte("fake")}
	emp, err := composer.Compose(context.Background(), bson.NewObjectID(), validFields(), photo)
	require.NoError(t, err)

	require.Len(t, uploader.keys, 1)
	key := uploader.keys[0]
	assert.True(t, strings.HasPrefix(key, "employee_photos/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.NotContains(t, key, "Portrait")
	assert.Equal(t, "https://blobs.test/"+key, emp.PhotoURL)
}

func TestCompose_PhotoKeysNeverCollide(t *testing.T) {
	inserter := &fakeInserter{}
	uploader := &fakeUploader{}
	composer := NewComposer(inserter, uploader)

	photo := &Photo{Filename: "same-name.png", Data: []byte("one")}
	_, err := composer.Compose(context.Background(), bson.NewObjectID(), validFields(), photo)
	require.NoError(t, err)
	_, err = composer.Compose(context.Background(), bson.NewObjectID(), validFields(), photo)
	require.NoError(t, err)

	require.Len(t, uploader.keys, 2)
	assert.NotEqual(t, uploader.keys[0], uploader.keys[1])
}

func TestCompose_UploadFailure(t *testing.T) {
	inserter := &fakeInserter{}
	uploader := &fakeUploader{err: errors.New("bucket unreachable")}
	composer := NewComposer(inserter, uploader)

	_, err := composer.Compose(context.Background(), bson.NewObjectID(), validFields(), &Photo{Filename: "p.jpg"})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeUploadFailure, appErr.Code)
	assert.Empty(t, inserter.created)
}

func TestCompose_InsertFailure(t *testing.T) {
	inserter := &fakeInserter{err: errors.New("write concern failed")}
	uploader := &fakeUploader{}
	composer := NewComposer(inserter, uploader)

	_, err := composer.Compose(context.Background(), bson.NewObjectID(), validFields(), nil)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodePersistenceFailure, appErr.Code)
}
