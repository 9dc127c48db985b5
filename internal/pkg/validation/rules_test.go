package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEventDate(t *testing.T) {
	assert.True(t, IsEventDate("2025-05-01 09:30:00"))
	assert.True(t, IsEventDate("2024-02-29 23:59:59"))

	assert.False(t, IsEventDate("2025-05-01"))
	assert.False(t, IsEventDate("2025-05-01T09:30:00"))
	assert.False(t, IsEventDate("2023-02-29 10:00:00"))
	assert.False(t, IsEventDate(""))
}

func TestRegisterOn(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterOn(v))

	type payload struct {
		Date string `validate:"required,eventdate"`
	}

	assert.NoError(t, v.Struct(payload{Date: "2025-05-01 09:30:00"}))

	err := v.Struct(payload{Date: "tomorrow"})
	var fieldErrs validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, EventDateTag, fieldErrs[0].Tag())
}

func TestRegisterRules(t *testing.T) {
	assert.NoError(t, RegisterRules())
}
