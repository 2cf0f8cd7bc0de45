package redmine

import (
	"encoding/json"
	"time"
)

// IDName is a reference to another object, carrying just its id and
// display name. Redmine nests these everywhere (project, tracker, status,
// priority, author, ...).
type IDName struct {
	ID   uint64 `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// IDRef is a reference carrying only an id.
type IDRef struct {
	ID uint64 `json:"id" yaml:"id"`
}

// CustomField is a custom field value attached to an object. Name is
// present when Redmine returns the field but may be omitted when the
// client sends it. Value is a string for single fields and a list of
// strings for multi-value fields.
type CustomField struct {
	ID       uint64           `json:"id"                 yaml:"id"`
	Name     string           `json:"name,omitempty"     yaml:"name,omitempty"`
	Multiple bool             `json:"multiple,omitempty" yaml:"multiple,omitempty"`
	Value    CustomFieldValue `json:"value"              yaml:"value"`
}

// CustomFieldValue holds a single string or a list of strings, matching
// the two shapes Redmine uses for custom field values.
type CustomFieldValue struct {
	Single   string
	Multiple []string
	IsList   bool
}

// MarshalJSON encodes the value in the shape it was decoded from.
func (v CustomFieldValue) MarshalJSON() ([]byte, error) {
	if v.IsList {
		return json.Marshal(v.Multiple)
	}

	return json.Marshal(v.Single)
}

// UnmarshalJSON accepts either a string or an array of strings.
func (v *CustomFieldValue) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		v.IsList = true

		return json.Unmarshal(data, &v.Multiple)
	}

	v.IsList = false

	return json.Unmarshal(data, &v.Single)
}

// dateFormat is the wire format for dates (start_date, due_date, spent_on).
const dateFormat = "2006-01-02"

// Date is a calendar date serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateFormat))
}

// UnmarshalJSON implements json.Unmarshaler. Parse failures surface as
// TimeParseError.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return &TimeParseError{Value: string(data), Err: err}
	}

	parsed, err := time.Parse(dateFormat, raw)
	if err != nil {
		return &TimeParseError{Value: raw, Err: err}
	}

	d.Time = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.Format(dateFormat), nil
}

// Timestamp is an RFC 3339 timestamp. Redmine also emits a legacy
// "2006/01/02 15:04:05 -0700" format on some old installations; both are
// accepted.
type Timestamp struct {
	time.Time
}

const legacyTimestampFormat = "2006/01/02 15:04:05 -0700"

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339))
}

// UnmarshalJSON implements json.Unmarshaler. Parse failures surface as
// TimeParseError.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return &TimeParseError{Value: string(data), Err: err}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		legacy, legacyErr := time.Parse(legacyTimestampFormat, raw)
		if legacyErr != nil {
			return &TimeParseError{Value: raw, Err: err}
		}

		parsed = legacy
	}

	t.Time = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Timestamp) MarshalYAML() (interface{}, error) {
	return t.Format(time.RFC3339), nil
}
