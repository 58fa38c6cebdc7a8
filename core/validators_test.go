package core

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title *string `json:"title" validate:"omitempty,notblank"`
	Name  string  `json:"name" validate:"required"`
}

func TestInitValidators(t *testing.T) {
	validate := validator.New()
	translator := NewTranslator()
	InitValidators(validate, translator)

	blank := "  "
	ok := "Budgeting"

	tests := []struct {
		name string
		in   sample
		want map[string]string
	}{
		{name: "valid", in: sample{Title: &ok, Name: "n"}},
		{name: "nil pointer passes", in: sample{Name: "n"}},
		{name: "blank", in: sample{Title: &blank, Name: "n"}, want: map[string]string{"title": notBlankText}},
		{name: "required", in: sample{Title: &ok}, want: map[string]string{"name": requiredText}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.in)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			var vErrs validator.ValidationErrors
			require.ErrorAs(t, err, &vErrs)
			got := make(map[string]string, len(vErrs))
			for _, e := range vErrs {
				got[e.Field()] = e.Translate(translator)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
