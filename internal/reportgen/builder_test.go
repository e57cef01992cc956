package reportgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/echo-report-api/internal/model"
	"github.com/jwalitptl/echo-report-api/internal/schema"
)

func sampleRecord() model.Record {
	return model.Record{
		"Name":           "Jane Doe",
		"ID":             "C-1042",
		"DOB":            "1961-03-14",
		"Age":            float64(64),
		"Indication":     schema.PreOpOption,
		"Pre-Op Specify": "Elective cholecystectomy",
		"EF":             float64(55),
		"LV EDD":         48.5,
		"Conclusion":     "Normal study",
	}
}

func TestBuildRoutesEntries(t *testing.T) {
	b := NewBuilder(schema.Default)
	m := b.Build(sampleRecord())

	assert.Equal(t, "Echocardiography Report", m.Title)
	assert.NotEmpty(t, m.GeneratedAt)

	t.Run("patient info block", func(t *testing.T) {
		labels := entryLabels(m.PatientInfo)
		assert.Contains(t, labels, "Patient Name")
		assert.Contains(t, labels, "Pre-Op Specify")
		assert.NotContains(t, labels, "Date of Intervention")

		assert.Equal(t, "Jane Doe", entryValue(m.PatientInfo, "Patient Name"))
		assert.Equal(t, "Elective cholecystectomy", entryValue(m.PatientInfo, "Pre-Op Specify"))
		assert.Equal(t, "64", entryValue(m.PatientInfo, "Age"))
	})

	t.Run("measurement sections", func(t *testing.T) {
		require.Len(t, m.Sections, 1)
		lv := m.Sections[0]
		assert.Equal(t, schema.LVDimensionsHeading, lv.Name)
		assert.Equal(t, []string{"LV EDD", "EF"}, entryLabels(lv.Entries))

		ef := lv.Entries[1]
		assert.Equal(t, "55", ef.Value)
		assert.Equal(t, "%", ef.Unit)

		edd := lv.Entries[0]
		assert.Equal(t, "48.5", edd.Value)
		assert.Equal(t, "mm", edd.Unit)
	})

	t.Run("narrative fields go to the summary block", func(t *testing.T) {
		assert.Equal(t, []string{"Conclusion"}, entryLabels(m.Summary))
		assert.Equal(t, "Normal study", entryValue(m.Summary, "Conclusion"))
	})
}

func TestBuildDropsInactiveValues(t *testing.T) {
	b := NewBuilder(schema.Default)

	// VC carries a value but its controller says no regurgitation, so the
	// stale measurement must not leak into the report.
	rec := model.Record{
		"Mitral Regurgitation":          "1. No",
		"VC":                            float64(4),
		"Pericardium":                   "1. No effusion",
		"Effusion Measurement Anterior": float64(12),
	}
	m := b.Build(rec)

	for _, s := range m.Sections {
		labels := entryLabels(s.Entries)
		assert.NotContains(t, labels, "VC")
		assert.NotContains(t, labels, "Effusion Measurement (Anterior)")
	}
}

func TestBuildIncludesActiveConditionals(t *testing.T) {
	b := NewBuilder(schema.Default)

	rec := model.Record{
		"Pericardium":                   "3. Mild pericardial effusion",
		"Effusion Measurement Anterior": float64(12),
	}
	m := b.Build(rec)

	require.Len(t, m.Sections, 1)
	summary := m.Sections[0]
	assert.Equal(t, schema.SummaryHeading, summary.Name)
	assert.Equal(t, []string{"Pericardium", "Effusion Measurement (Anterior)"}, entryLabels(summary.Entries))
	assert.Equal(t, "mm", summary.Entries[1].Unit)
}

func TestBuildEmptyRecord(t *testing.T) {
	b := NewBuilder(schema.Default)
	m := b.Build(model.Record{})

	assert.Empty(t, m.PatientInfo)
	assert.Empty(t, m.Sections)
	assert.Empty(t, m.Summary)
	assert.NotEmpty(t, m.GeneratedAt)
	assert.Equal(t, "Echocardiography Report", m.Title)
}

func TestBuildElidesEmptySections(t *testing.T) {
	b := NewBuilder(schema.Default)
	m := b.Build(model.Record{"EF": float64(60)})

	require.Len(t, m.Sections, 1)
	assert.Equal(t, schema.LVDimensionsHeading, m.Sections[0].Name)
}

func TestBuildPreservesCatalogOrder(t *testing.T) {
	b := NewBuilder(schema.Default)
	rec := model.Record{
		"Pericardium": "1. No effusion",
		"EF":          float64(55),
		"TAPSE":       2.1,
		"E":           float64(80),
	}
	m := b.Build(rec)

	names := make([]string, len(m.Sections))
	for i, s := range m.Sections {
		names[i] = s.Name
	}
	assert.Equal(t, []string{
		schema.LVDimensionsHeading,
		schema.DiastolicHeading,
		schema.ChamberHeading,
		schema.SummaryHeading,
	}, names)
}

func TestBuildIsDeterministic(t *testing.T) {
	b := NewBuilder(schema.Default)
	rec := sampleRecord()

	first := b.Build(rec)
	second := b.Build(rec)

	assert.Equal(t, first.PatientInfo, second.PatientInfo)
	assert.Equal(t, first.Sections, second.Sections)
	assert.Equal(t, first.Summary, second.Summary)
}

func entryLabels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}

func entryValue(entries []Entry, label string) string {
	for _, e := range entries {
		if e.Label == label {
			return e.Value
		}
	}
	return ""
}
