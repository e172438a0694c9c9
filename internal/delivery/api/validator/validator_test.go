package validator

import (
	"testing"

	"lifeos/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Label string  `json:"label" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

type sample struct {
	Name  string `json:"name" validate:"required,max=5"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Items []item `json:"items" validate:"dive"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&sample{Name: "ok"}))
	})

	t.Run("reports json field paths", func(t *testing.T) {
		err := v.Validate(&sample{Name: "too long", Email: "nope", Items: []item{{Price: -1}}})
		require.Error(t, err)

		fields, ok := errors.AsType[FieldErrors](err)
		require.True(t, ok)
		assert.Equal(t, "max=5", fields["name"])
		assert.Equal(t, "email", fields["email"])
		assert.Equal(t, "required", fields["items[0].label"])
		assert.Equal(t, "gte=0", fields["items[0].price"])
		assert.Equal(t, ErrorCode, fields.ErrorCode())
	})
}
