package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Category string `validate:"omitempty,oneof=social education health other"`
}

func TestValidateOK(t *testing.T) {
	errs := Validate(&sample{Name: "x", Email: "x@example.com", Category: "health"})
	assert.Nil(t, errs)
}

func TestValidateMessages(t *testing.T) {
	errs := Validate(&sample{Email: "nope", Category: "sports"})
	assert.Contains(t, errs, "Name is required")
	assert.Contains(t, errs, "Email must be a valid email address")
	assert.Contains(t, errs, "Category must be one of: social, education, health, other")
}
