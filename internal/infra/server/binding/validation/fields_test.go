package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/go-playground/validator.v9"
)

func TestNotBlankValidator(t *testing.T) {
	validate := validator.New()
	_ = validate.RegisterValidation(NotBlankValidatorTag, NotBlankValidator)

	type required struct {
		Title string `validate:"notBlank"`
	}
	type optional struct {
		Title *string `validate:"omitempty,notBlank"`
	}
	blank := "  "
	filled := "T"

	tests := []struct {
		name    string
		args    interface{}
		wantErr bool
	}{
		{
			name:    "empty",
			args:    required{Title: ""},
			wantErr: true,
		},
		{
			name:    "whitespace",
			args:    required{Title: " \n\t"},
			wantErr: true,
		},
		{
			name:    "should work",
			args:    required{Title: "Groceries"},
			wantErr: false,
		},
		{
			name:    "absent optional",
			args:    optional{},
			wantErr: false,
		},
		{
			name:    "blank optional",
			args:    optional{Title: &blank},
			wantErr: true,
		},
		{
			name:    "filled optional",
			args:    optional{Title: &filled},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
