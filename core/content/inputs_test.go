package content

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/genmo/core"
)

func newValidate() *validator.Validate {
	v := validator.New()
	core.InitValidators(v, core.NewTranslator())
	return v
}

func failedFields(err error) []string {
	var fields []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
	}
	return fields
}

func TestNewSkill_Validate(t *testing.T) {
	validate := newValidate()
	tests := []struct {
		name       string
		input      NewSkill
		wantFields []string
	}{
		{
			name:  "valid",
			input: NewSkill{Title: "  Budgeting ", Difficulty: DifficultyBeginner},
		},
		{
			name:       "blank title",
			input:      NewSkill{Title: "   ", Difficulty: DifficultyBeginner},
			wantFields: []string{"title"},
		},
		{
			name:       "bad enums",
			input:      NewSkill{Title: "Budgeting", Difficulty: "expert", Status: "live"},
			wantFields: []string{"difficulty", "status"},
		},
		{
			name:       "negative duration",
			input:      NewSkill{Title: "Budgeting", Difficulty: DifficultyAdvanced, EstimatedDuration: -5},
			wantFields: []string{"estimated_duration"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.input
			err := in.Validate(validate)
			if tt.wantFields == nil {
				require.NoError(t, err)
				assert.Equal(t, "Budgeting", in.Title)
				assert.Equal(t, StatusDraft, in.Status)
				return
			}
			assert.ElementsMatch(t, tt.wantFields, failedFields(err))
		})
	}
}

func TestNewClient_Validate(t *testing.T) {
	validate := newValidate()

	nc := NewClient{Name: "Acme", Type: ClientBank, ContactEmail: " Admin@Acme.COM "}
	require.NoError(t, nc.Validate(validate))
	assert.Equal(t, "admin@acme.com", nc.ContactEmail)
	assert.Equal(t, ClientSetup, nc.Status)

	nc = NewClient{Name: "Acme", Type: "hedge_fund", ContactEmail: "nope"}
	assert.ElementsMatch(t, []string{"type", "contact_email"}, failedFields(nc.Validate(validate)))

	nc = NewClient{Name: "Acme", Type: ClientBank, ContactEmail: "a@acme.com", Branding: ClientBranding{PrimaryColor: "blue"}}
	assert.ElementsMatch(t, []string{"primary_color"}, failedFields(nc.Validate(validate)))
}

func TestUpdateSkill_Validate(t *testing.T) {
	validate := newValidate()

	blank := "  "
	us := UpdateSkill{Title: &blank}
	assert.ElementsMatch(t, []string{"title"}, failedFields(us.Validate(validate)))

	title := " Saving "
	status := StatusArchived
	us = UpdateSkill{Title: &title, Status: &status}
	require.NoError(t, us.Validate(validate))
	assert.Equal(t, "Saving", *us.Title)

	require.NoError(t, (&UpdateSkill{}).Validate(validate))
}

func TestUpdateModule_apply(t *testing.T) {
	title := "New title"
	m := Module{Title: "Old", Description: "kept", LearningObjectives: []string{"a"}}
	UpdateModule{Title: &title, LearningObjectives: []string{"b", "c"}}.apply(&m)

	assert.Equal(t, "New title", m.Title)
	assert.Equal(t, "kept", m.Description)
	assert.Equal(t, []string{"b", "c"}, m.LearningObjectives)
}
