package apperrors

import "fmt"

const (
	CodeNotFound               = "NOT_FOUND"
	CodeAuthenticationRequired = "AUTHENTICATION_REQUIRED"
	CodeValidationFailure      = "VALIDATION_FAILURE"
	CodeUploadFailure          = "UPLOAD_FAILURE"
	CodePersistenceFailure     = "PERSISTENCE_FAILURE"
)

// AppError carries an error code, a user-facing message and the HTTP
// status it should surface as. Handlers unwrap it with errors.As and
// map everything else to a plain 500.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports that the named resource does not exist.
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    resource + " not found",
		HTTPStatus: 404,
	}
}

// AuthenticationRequired reports a write attempted without a session.
func AuthenticationRequired() *AppError {
	return &AppError{
		Code:       CodeAuthenticationRequired,
		Message:    "authentication required",
		HTTPStatus: 401,
	}
}

// Validation reports rejected input (missing required field, bad rating).
func Validation(message string) *AppError {
	return &AppError{
		Code:       CodeValidationFailure,
		Message:    message,
		HTTPStatus: 400,
	}
}

// Upload wraps a blob store failure.
func Upload(err error) *AppError {
	return &AppError{
		Code:       CodeUploadFailure,
		Message:    "failed to upload file",
		HTTPStatus: 502,
		Err:        err,
	}
}

// Persistence wraps a document store failure.
func Persistence(err error) *AppError {
	return &AppError{
		Code:       CodePersistenceFailure,
		Message:    "failed to save data",
		HTTPStatus: 500,
		Err:        err,
	}
}
