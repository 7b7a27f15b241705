package crud

import (
	"errors"
	"strings"

	"assovol/internal/pkg/validator"
)

var (
	// ErrNotFound is returned when no record exists for the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrFileRequired is returned by Create when the entity requires an
	// uploaded file and the request carried none.
	ErrFileRequired = errors.New("no file uploaded")
)

// ValidationError carries one message per invalid field, in the shape the
// error responses expose under "errors".
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// Validate runs tag validation on an entity and wraps failures into a
// *ValidationError. Entities call this from their gorm BeforeSave hook so an
// invalid record can never reach the database.
func Validate(v any) error {
	if msgs := validator.Validate(v); msgs != nil {
		return &ValidationError{Errors: msgs}
	}
	return nil
}
