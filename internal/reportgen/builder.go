// Package reportgen turns a submitted record into a render-ready template
// model and prints it to a paginated PDF.
package reportgen

import (
	"time"

	"github.com/jwalitptl/echo-report-api/internal/model"
	"github.com/jwalitptl/echo-report-api/internal/schema"
)

// Entry is one rendered label/value row.
type Entry struct {
	Label string
	Value string
	Unit  string
}

// SectionBlock is a measurement group with at least one entry. Sections
// that end up empty are never part of the model.
type SectionBlock struct {
	Name    string
	Entries []Entry
}

// TemplateModel is the display projection of a record against the field
// catalog. It contains no inactive field and no unset value.
type TemplateModel struct {
	Title       string
	PatientInfo []Entry
	Sections    []SectionBlock
	Summary     []Entry
	GeneratedAt string
}

// Builder projects records onto the catalog. Safe for concurrent use; the
// catalog is the only state and it is immutable.
type Builder struct {
	schema *schema.Schema
}

func NewBuilder(s *schema.Schema) *Builder {
	return &Builder{schema: s}
}

// Build walks the catalog in declaration order, drops inactive and unset
// fields, and routes the rest into the patient-info block, the summary
// block, or their section bucket. The timestamp is captured once, up
// front; everything else is a pure function of the record.
func (b *Builder) Build(rec model.Record) *TemplateModel {
	m := &TemplateModel{
		Title:       "Echocardiography Report",
		GeneratedAt: time.Now().Format("02/01/2006 15:04"),
	}

	var sectionOrder []string
	buckets := make(map[string][]Entry)

	for _, f := range b.schema.Fields() {
		if !schema.IsActive(f, rec) {
			continue
		}
		value := rec.Value(f.Name)
		if value == "" {
			continue
		}

		entry := Entry{Label: f.Label, Value: value, Unit: f.Unit}
		switch {
		case f.Section == schema.PatientInfoHeading:
			m.PatientInfo = append(m.PatientInfo, entry)
		case f.Narrative:
			m.Summary = append(m.Summary, entry)
		default:
			if _, seen := buckets[f.Section]; !seen {
				sectionOrder = append(sectionOrder, f.Section)
			}
			buckets[f.Section] = append(buckets[f.Section], entry)
		}
	}

	for _, name := range sectionOrder {
		m.Sections = append(m.Sections, SectionBlock{Name: name, Entries: buckets[name]})
	}
	return m
}
