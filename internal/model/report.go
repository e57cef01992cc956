package model

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Record is the raw submitted form payload: field name to scalar value.
// Values arrive as JSON scalars (string or number); absence, null and
// whitespace-only strings are all equivalent to "unset".
type Record map[string]interface{}

// Value returns the normalized display value for a field, or "" when unset.
// Numbers keep their minimal decimal form; nothing else is coerced.
func (r Record) Value(name string) string {
	if r == nil {
		return ""
	}
	return FormatValue(r[name])
}

// FormatValue normalizes a raw record scalar to its display string.
func FormatValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// Report is a stored echo report: a few denormalized columns for listing
// plus the full submitted record as JSON. Rows are insert-only; amendments
// create new rows.
type Report struct {
	ID                 int64           `db:"id" json:"id"`
	PatientName        string          `db:"patient_name" json:"patient_name"`
	ClinicID           string          `db:"clinic_id" json:"clinic_id"`
	DateOfBirth        string          `db:"dob" json:"dob"`
	Age                string          `db:"age" json:"age"`
	Indication         string          `db:"indication" json:"indication"`
	DateOfIntervention string          `db:"date_of_intervention" json:"date_of_intervention,omitempty"`
	PreOpSpecify       string          `db:"pre_op_specify" json:"pre_op_specify,omitempty"`
	FormDataJSON       json.RawMessage `db:"form_data" json:"-"`
	FormData           Record          `db:"-" json:"form_data,omitempty"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
}

// ReportSummary is the bounded listing view.
type ReportSummary struct {
	ID          int64     `db:"id" json:"id"`
	PatientName string    `db:"patient_name" json:"patient_name"`
	ClinicID    string    `db:"clinic_id" json:"clinic_id"`
	DateOfBirth string    `db:"dob" json:"dob"`
	Age         string    `db:"age" json:"age"`
	Indication  string    `db:"indication" json:"indication"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CreateReportRequest struct {
	FormData Record `json:"formData" binding:"required"`
}

type RenderRequest struct {
	FormData Record `json:"formData" binding:"required"`
}

// GeneratedDocument points at a rendered PDF retrievable until the
// retention window expires.
type GeneratedDocument struct {
	FileName  string `json:"fileName"`
	FileURL   string `json:"fileUrl"`
	SizeBytes int    `json:"sizeBytes"`
}
