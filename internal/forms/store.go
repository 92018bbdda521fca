package forms

// Field is one entry in a form schema. Required fields count toward the
// completion percentage; optional fields are validated but never block it.
type Field struct {
	Name     string
	Label    string
	Required bool
	Validate Validator
}

type Schema struct {
	Fields []Field
}

func (s Schema) field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Store holds the transient state of one form: current values, per-field
// touched flags and per-field error messages. Errors are recomputed eagerly on
// every change but only surfaced for touched fields, so a half-filled form
// does not light up red before the user has reached it.
type Store struct {
	schema  Schema
	values  map[string][]string
	touched map[string]bool
	errors  map[string]string
}

func NewStore(schema Schema) *Store {
	s := &Store{schema: schema}
	s.Reset()
	return s
}

// Reset discards all values, touches and errors, returning the store to its
// initial empty state.
func (s *Store) Reset() {
	s.values = make(map[string][]string)
	s.touched = make(map[string]bool)
	s.errors = make(map[string]string)
	for _, f := range s.schema.Fields {
		s.errors[f.Name] = f.Validate(nil)
	}
}

// SetField updates a field's value, marks it touched and revalidates it.
// Unknown field names are ignored.
func (s *Store) SetField(name string, value ...string) {
	f, ok := s.schema.field(name)
	if !ok {
		return
	}
	s.values[name] = value
	s.touched[name] = true
	s.errors[name] = f.Validate(value)
}

// TouchField marks a field as interacted with without changing its value.
func (s *Store) TouchField(name string) {
	if _, ok := s.schema.field(name); ok {
		s.touched[name] = true
	}
}

// TouchAll marks every field touched so that all pending errors surface, as
// happens on a submit attempt.
func (s *Store) TouchAll() {
	for _, f := range s.schema.Fields {
		s.touched[f.Name] = true
	}
}

// FieldNames lists the schema's field names in declaration order.
func (s *Store) FieldNames() []string {
	names := make([]string, 0, len(s.schema.Fields))
	for _, f := range s.schema.Fields {
		names = append(names, f.Name)
	}
	return names
}

func (s *Store) Value(name string) string {
	return first(s.values[name])
}

func (s *Store) Values(name string) []string {
	return s.values[name]
}

// FieldError returns the error to display for a field: "" unless the field
// has been touched.
func (s *Store) FieldError(name string) string {
	if !s.touched[name] {
		return ""
	}
	return s.errors[name]
}

// Errors returns every current error keyed by field name, regardless of
// touched state.
func (s *Store) Errors() map[string]string {
	out := make(map[string]string)
	for name, msg := range s.errors {
		if msg != "" {
			out[name] = msg
		}
	}
	return out
}

// Valid reports whether every field passes its validator.
func (s *Store) Valid() bool {
	for _, msg := range s.errors {
		if msg != "" {
			return false
		}
	}
	return true
}

// Complete reports whether every required field has a value. Completion is a
// presence signal only: a field holding a malformed value still counts, so
// Complete and Valid must both hold before submission.
func (s *Store) Complete() bool {
	return s.CompletionPercent() == 100
}

// CompletionPercent is the share of required fields holding a non-empty
// value, as an integer 0..100. A schema with no required fields is complete.
func (s *Store) CompletionPercent() int {
	var required, filled int
	for _, f := range s.schema.Fields {
		if !f.Required {
			continue
		}
		required++
		if s.filled(f.Name) {
			filled++
		}
	}
	if required == 0 {
		return 100
	}
	return filled * 100 / required
}

func (s *Store) filled(name string) bool {
	for _, v := range s.values[name] {
		if trimNonEmpty(v) {
			return true
		}
	}
	return false
}

func trimNonEmpty(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}
