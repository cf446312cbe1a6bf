package harvest

import "strings"

// Field describes a single schema field. The description is surfaced to the
// extraction model to explain what the field should contain.
type Field struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Schema declares the record shape for a deployment: the ordered field set,
// the subset of fields that must be populated for a candidate to be accepted,
// and the single field used for deduplication.
type Schema struct {
	Fields   []Field  `json:"fields"`
	Required []string `json:"required"`
	Identity string   `json:"identity"`
}

// Validate returns an error if the schema is not usable.
func (s *Schema) Validate() error {
	if len(s.Fields) == 0 {
		return Errorf(EINVALID, "schema requires at least one field")
	}
	if s.Identity == "" {
		return Errorf(EINVALID, "schema identity field required")
	}
	names := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return Errorf(EINVALID, "schema field name required")
		}
		names[f.Name] = struct{}{}
	}
	if _, ok := names[s.Identity]; !ok {
		return Errorf(EINVALID, "identity field %q not declared in schema", s.Identity)
	}
	for _, r := range s.Required {
		if _, ok := names[r]; !ok {
			return Errorf(EINVALID, "required field %q not declared in schema", r)
		}
	}
	return nil
}

// FieldNames returns the field names in declared order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Candidate is an unvalidated record produced by the extraction step for one
// page. Values are text; scalar payload values are coerced to text during
// normalization.
type Candidate map[string]string

// Complete reports whether the candidate carries every required field with a
// value that is non-empty after trimming incidental whitespace. Fields outside
// the required set are ignored. A missing key fails the check; it is not an
// error condition.
func Complete(c Candidate, required []string) bool {
	for _, name := range required {
		v, ok := c[name]
		if !ok || strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// Record is a validated, accepted record. Records are never mutated after
// acceptance.
type Record struct {
	ID    string `json:"id"`
	RunID string `json:"runId"`

	// Page and Position locate the record in the harvest:
	// page order first, then within-page extraction order.
	Page     int `json:"page"`
	Position int `json:"position"`

	ContentHash string            `json:"contentHash"`
	Values      map[string]string `json:"values"`
}

// NewRecord promotes a candidate to a record, copying only the fields the
// schema declares. Extraneous candidate keys are dropped.
func NewRecord(s Schema, c Candidate, page, position int) *Record {
	values := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		if v, ok := c[f.Name]; ok {
			values[f.Name] = v
		}
	}
	return &Record{
		Page:     page,
		Position: position,
		Values:   values,
	}
}

// Get returns the value of the named field, or "" if absent.
func (r *Record) Get(name string) string {
	return r.Values[name]
}

// Identity returns the record's value for the schema's identity field.
func (r *Record) Identity(s Schema) string {
	return r.Values[s.Identity]
}

// Row returns the record's values in the schema's declared field order,
// suitable for tabular output.
func (r *Record) Row(s Schema) []string {
	row := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		row[i] = r.Values[f.Name]
	}
	return row
}
