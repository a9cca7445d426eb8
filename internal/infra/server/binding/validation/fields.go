package validation

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"
	"gopkg.in/go-playground/validator.v9"
)

func SetUpValidators() {
	log.Info().Msg("Setting up custom validators")
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation(NotBlankValidatorTag, NotBlankValidator)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to set up not-blank validator")
		}
	}
}

var NotBlankValidatorTag = "notBlank"

// NotBlankValidator rejects strings that are empty or only whitespace. Pointers are
// dereferenced by the validator before we get here; a nil pointer needs omitempty.
var NotBlankValidator validator.Func = func(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.String {
		return len(strings.TrimSpace(field.String())) > 0
	}
	return true
}
