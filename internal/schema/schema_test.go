package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/echo-report-api/internal/model"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		fields  []FieldDefinition
		wantErr string
	}{
		{
			name:    "empty field name",
			fields:  []FieldDefinition{{Label: "x", Kind: KindText, Section: "S"}},
			wantErr: "has no name",
		},
		{
			name: "duplicate field name",
			fields: []FieldDefinition{
				{Name: "A", Kind: KindText, Section: "S"},
				{Name: "A", Kind: KindText, Section: "S"},
			},
			wantErr: "duplicate field name",
		},
		{
			name:    "select without choices",
			fields:  []FieldDefinition{{Name: "A", Kind: KindSelect, Section: "S"}},
			wantErr: "has no choices",
		},
		{
			name: "visibility references unknown field",
			fields: []FieldDefinition{
				{Name: "A", Kind: KindText, Section: "S", Visibility: When("Missing", "x")},
			},
			wantErr: "unknown field",
		},
		{
			name: "visibility references conditional field",
			fields: []FieldDefinition{
				{Name: "A", Kind: KindText, Section: "S"},
				{Name: "B", Kind: KindText, Section: "S", Visibility: When("A", "x")},
				{Name: "C", Kind: KindText, Section: "S", Visibility: When("B", "y")},
			},
			wantErr: "conditioned on conditional field",
		},
		{
			name: "empty match set",
			fields: []FieldDefinition{
				{Name: "A", Kind: KindText, Section: "S"},
				{Name: "B", Kind: KindText, Section: "S", Visibility: When("A")},
			},
			wantErr: "empty match set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.fields)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIsActive(t *testing.T) {
	unconditional := FieldDefinition{Name: "EF", Kind: KindNumber, Section: "S"}
	conditional := FieldDefinition{
		Name: "Date of Intervention", Kind: KindDate, Section: "S",
		Visibility: When("Indication", InterventionOption),
	}
	multi := FieldDefinition{
		Name: "VC", Kind: KindNumber, Section: "S",
		Visibility: When("Mitral Regurgitation", "2. Trivial", "3. Mild"),
	}

	t.Run("unconditional fields are always active", func(t *testing.T) {
		assert.True(t, IsActive(unconditional, model.Record{}))
		assert.True(t, IsActive(unconditional, nil))
	})

	t.Run("active when controlling value matches", func(t *testing.T) {
		rec := model.Record{"Indication": InterventionOption}
		assert.True(t, IsActive(conditional, rec))
	})

	t.Run("inactive when controlling value differs", func(t *testing.T) {
		rec := model.Record{"Indication": PreOpOption}
		assert.False(t, IsActive(conditional, rec))
	})

	t.Run("inactive when controlling field is unset", func(t *testing.T) {
		assert.False(t, IsActive(conditional, model.Record{}))
		assert.False(t, IsActive(conditional, model.Record{"Indication": nil}))
		assert.False(t, IsActive(conditional, model.Record{"Indication": "   "}))
	})

	t.Run("any member of the match set activates", func(t *testing.T) {
		assert.True(t, IsActive(multi, model.Record{"Mitral Regurgitation": "2. Trivial"}))
		assert.True(t, IsActive(multi, model.Record{"Mitral Regurgitation": "3. Mild"}))
		assert.False(t, IsActive(multi, model.Record{"Mitral Regurgitation": "1. No"}))
	})
}

func TestSections(t *testing.T) {
	s := MustNew([]FieldDefinition{
		{Name: "A", Kind: KindText, Section: "First"},
		{Name: "B", Kind: KindText, Section: "Second"},
		{Name: "C", Kind: KindText, Section: "First"},
	})

	sections := s.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, "First", sections[0].Name)
	assert.Equal(t, []string{"A", "C"}, fieldNames(sections[0].Fields))
	assert.Equal(t, "Second", sections[1].Name)
	assert.Equal(t, []string{"B"}, fieldNames(sections[1].Fields))
}

func TestDefaultCatalog(t *testing.T) {
	require.NotNil(t, Default)
	assert.Greater(t, Default.Len(), 80)

	t.Run("patient info leads the section order", func(t *testing.T) {
		sections := Default.Sections()
		require.NotEmpty(t, sections)
		assert.Equal(t, PatientInfoHeading, sections[0].Name)
		assert.Equal(t, SummaryHeading, sections[len(sections)-1].Name)
	})

	t.Run("conditional fields reference unconditional selects", func(t *testing.T) {
		for _, f := range Default.Fields() {
			if f.Visibility == nil {
				continue
			}
			controller, ok := Default.Field(f.Visibility.Field)
			require.True(t, ok, "field %q references %q", f.Name, f.Visibility.Field)
			assert.Nil(t, controller.Visibility, "controller %q must be unconditional", controller.Name)
			assert.NotEmpty(t, f.Visibility.AnyOf)
		}
	})

	t.Run("match sets are legal choices of their controller", func(t *testing.T) {
		for _, f := range Default.Fields() {
			if f.Visibility == nil {
				continue
			}
			controller, _ := Default.Field(f.Visibility.Field)
			if controller.Kind != KindSelect {
				continue
			}
			for _, allowed := range f.Visibility.AnyOf {
				assert.Contains(t, controller.Choices, allowed,
					"field %q allows %q which controller %q never offers", f.Name, allowed, controller.Name)
			}
		}
	})

	t.Run("narrative fields live in the summary section", func(t *testing.T) {
		var narratives []string
		for _, f := range Default.Fields() {
			if f.Narrative {
				assert.Equal(t, SummaryHeading, f.Section)
				narratives = append(narratives, f.Name)
			}
		}
		assert.Equal(t, []string{
			"LV systolic function summary",
			"LV diastolic function summary",
			"Valves summary",
			"Conclusion",
			"Recommendation",
		}, narratives)
	})

	t.Run("effusion measurements hang off pericardium", func(t *testing.T) {
		f, ok := Default.Field("Effusion Measurement Anterior")
		require.True(t, ok)
		require.NotNil(t, f.Visibility)
		assert.Equal(t, "Pericardium", f.Visibility.Field)
		assert.NotContains(t, f.Visibility.AnyOf, "1. No effusion")
	})
}

func fieldNames(fields []FieldDefinition) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}
