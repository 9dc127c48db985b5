package validation

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/schoolportal/internal/app/models"
)

// EventDateTag is the validator tag for YYYY-MM-DD HH:MM:SS timestamps
const EventDateTag = "eventdate"

// RegisterRules installs the custom rules on gin's binding validator
func RegisterRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("binding validator is not go-playground/validator")
	}
	return RegisterOn(v)
}

// RegisterOn installs the custom rules on v
func RegisterOn(v *validator.Validate) error {
	return v.RegisterValidation(EventDateTag, validateEventDate)
}

// IsEventDate reports whether value uses the event date layout
func IsEventDate(value string) bool {
	_, err := time.Parse(models.EventDateLayout, value)
	return err == nil
}

func validateEventDate(fl validator.FieldLevel) bool {
	return IsEventDate(fl.Field().String())
}
