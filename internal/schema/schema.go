// Package schema holds the declarative echo-report field catalog: one
// immutable, ordered list of field definitions shared by the form surface,
// the template model builder and request validation.
package schema

import (
	"fmt"

	"github.com/jwalitptl/echo-report-api/internal/model"
)

// Kind is the input kind of a field.
type Kind string

const (
	KindText   Kind = "text"
	KindNumber Kind = "number"
	KindDate   Kind = "date"
	KindSelect Kind = "select"
)

// Visibility activates a field only while the named controlling field's
// current value is a member of AnyOf. A single allowed value is just a
// one-element set; there is no separate equality path.
type Visibility struct {
	Field string   `json:"field"`
	AnyOf []string `json:"any_of"`
}

// When builds a visibility predicate. Both single- and multi-value
// conditions go through the same match set.
func When(field string, anyOf ...string) *Visibility {
	return &Visibility{Field: field, AnyOf: anyOf}
}

// FieldDefinition describes one collectible datum.
type FieldDefinition struct {
	Name        string      `json:"name"`
	Label       string      `json:"label"`
	Kind        Kind        `json:"kind"`
	Section     string      `json:"section"`
	Choices     []string    `json:"choices,omitempty"`
	Unit        string      `json:"unit,omitempty"`
	Placeholder string      `json:"placeholder,omitempty"`
	Tooltip     string      `json:"tooltip,omitempty"`
	ReadOnly    bool        `json:"read_only,omitempty"`
	Narrative   bool        `json:"narrative,omitempty"`
	Visibility  *Visibility `json:"visibility,omitempty"`
}

// Section is a display group of fields, in declaration order.
type Section struct {
	Name   string            `json:"name"`
	Fields []FieldDefinition `json:"fields"`
}

// Schema is the immutable field catalog.
type Schema struct {
	fields []FieldDefinition
	byName map[string]int
}

// New validates the catalog and builds a Schema. Conditional fields must
// reference a field that exists and is itself unconditional.
func New(fields []FieldDefinition) (*Schema, error) {
	byName := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field %d has no name", i)
		}
		if _, dup := byName[f.Name]; dup {
			return nil, fmt.Errorf("duplicate field name %q", f.Name)
		}
		if f.Kind == KindSelect && len(f.Choices) == 0 {
			return nil, fmt.Errorf("select field %q has no choices", f.Name)
		}
		byName[f.Name] = i
	}

	for _, f := range fields {
		if f.Visibility == nil {
			continue
		}
		idx, ok := byName[f.Visibility.Field]
		if !ok {
			return nil, fmt.Errorf("field %q conditioned on unknown field %q", f.Name, f.Visibility.Field)
		}
		if fields[idx].Visibility != nil {
			return nil, fmt.Errorf("field %q conditioned on conditional field %q", f.Name, f.Visibility.Field)
		}
		if len(f.Visibility.AnyOf) == 0 {
			return nil, fmt.Errorf("field %q has an empty match set", f.Name)
		}
	}

	return &Schema{fields: fields, byName: byName}, nil
}

// MustNew panics on an invalid catalog. The compiled-in catalog is not user
// data; a bad definition is a programming error surfaced at startup.
func MustNew(fields []FieldDefinition) *Schema {
	s, err := New(fields)
	if err != nil {
		panic(err)
	}
	return s
}

// Fields returns the catalog in declaration order.
func (s *Schema) Fields() []FieldDefinition {
	out := make([]FieldDefinition, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field looks a definition up by name.
func (s *Schema) Field(name string) (FieldDefinition, bool) {
	idx, ok := s.byName[name]
	if !ok {
		return FieldDefinition{}, false
	}
	return s.fields[idx], true
}

// Len reports the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// Sections partitions the catalog by section, preserving first-occurrence
// order of section names and of fields within each.
func (s *Schema) Sections() []Section {
	var order []string
	buckets := make(map[string][]FieldDefinition)
	for _, f := range s.fields {
		if _, seen := buckets[f.Section]; !seen {
			order = append(order, f.Section)
		}
		buckets[f.Section] = append(buckets[f.Section], f)
	}

	out := make([]Section, 0, len(order))
	for _, name := range order {
		out = append(out, Section{Name: name, Fields: buckets[name]})
	}
	return out
}

// IsActive reports whether a field should be collected and displayed for
// the given record. Fields without a predicate are always active; otherwise
// the controlling field's normalized value (absent reads as empty) must be
// a member of the match set.
func IsActive(f FieldDefinition, rec model.Record) bool {
	if f.Visibility == nil {
		return true
	}
	v := rec.Value(f.Visibility.Field)
	for _, allowed := range f.Visibility.AnyOf {
		if v == allowed {
			return true
		}
	}
	return false
}
