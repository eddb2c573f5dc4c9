package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nonblankSubject struct {
	Value string `validate:"nonblank"`
}

func TestValidateNonBlank(t *testing.T) {
	v := validator.New()
	RegisterResumeValidators(v)

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"normal string", "Ada", true},
		{"empty string", "", false},
		{"spaces only", "   ", false},
		{"tabs and newlines", "\t\n", false},
		{"leading whitespace ok", "  Ada", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(nonblankSubject{Value: tt.value})
			if tt.valid {
				require.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
