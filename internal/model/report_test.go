package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{"nil", nil, ""},
		{"string", "Jane Doe", "Jane Doe"},
		{"string with whitespace", "  55  ", "55"},
		{"whitespace only", "   ", ""},
		{"integer-valued float", float64(55), "55"},
		{"fractional float", 1.5, "1.5"},
		{"no scientific notation", float64(1234567), "1234567"},
		{"int", 42, "42"},
		{"int64", int64(42), "42"},
		{"json number", json.Number("60.5"), "60.5"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"unsupported type", []string{"x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatValue(tt.value))
		})
	}
}

func TestRecordValue(t *testing.T) {
	rec := Record{
		"Name": "Jane Doe",
		"EF":   float64(55),
		"RWMA": nil,
		"LA":   "   ",
	}

	assert.Equal(t, "Jane Doe", rec.Value("Name"))
	assert.Equal(t, "55", rec.Value("EF"))
	assert.Equal(t, "", rec.Value("RWMA"))
	assert.Equal(t, "", rec.Value("LA"))
	assert.Equal(t, "", rec.Value("Missing"))
}
