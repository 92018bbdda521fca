// Package forms is the shared validate-and-submit engine behind the intake
// forms. Each entity form supplies a Schema (field name -> validator) and its
// page layout; the engine owns values, touched flags, error messages,
// completion tracking and the two-step wizard around them.
package forms

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator maps a candidate field value to an error message, or "" when the
// value is acceptable. Values carry the url.Values shape: a single-valued
// field is v[0], a multi-select is the whole slice. Validators are pure; any
// context they need (such as "today") is bound at construction.
type Validator func(v []string) string

var validate = validator.New()

var phonePattern = regexp.MustCompile(`^0\d{9}$`)

func first(v []string) string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// Text requires a non-blank value of at least minLen characters. Whitespace
// does not count toward presence but does count toward length.
func Text(label string, minLen int) Validator {
	return func(v []string) string {
		s := first(v)
		if strings.TrimSpace(s) == "" {
			return fmt.Sprintf("%s is required", label)
		}
		if len([]rune(s)) < minLen {
			return fmt.Sprintf("%s must be at least %d characters", label, minLen)
		}
		return ""
	}
}

func Email(label string) Validator {
	return func(v []string) string {
		s := strings.TrimSpace(first(v))
		if s == "" {
			return fmt.Sprintf("%s is required", label)
		}
		if err := validate.Var(s, "email"); err != nil {
			return fmt.Sprintf("%s must be a valid email address", label)
		}
		return ""
	}
}

// Phone accepts exactly ten digits with a leading zero.
func Phone(label string) Validator {
	return func(v []string) string {
		s := strings.TrimSpace(first(v))
		if s == "" {
			return fmt.Sprintf("%s is required", label)
		}
		if !phonePattern.MatchString(s) {
			return fmt.Sprintf("%s must be 10 digits starting with 0", label)
		}
		return ""
	}
}

// Choice requires a selection to have been made.
func Choice(label string) Validator {
	return func(v []string) string {
		if strings.TrimSpace(first(v)) == "" {
			return fmt.Sprintf("%s is required", label)
		}
		return ""
	}
}

// AtLeastOne requires a non-empty multi-select.
func AtLeastOne(label string) Validator {
	return func(v []string) string {
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				return ""
			}
		}
		return fmt.Sprintf("select at least one %s", label)
	}
}

// Optional always passes. Used for fields that count toward completion only
// when the form marks them required.
func Optional() Validator {
	return func([]string) string { return "" }
}

func PositiveInt(label string) Validator {
	return func(v []string) string {
		s := strings.TrimSpace(first(v))
		if s == "" {
			return fmt.Sprintf("%s is required", label)
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Sprintf("%s must be a number", label)
		}
		if n <= 0 {
			return fmt.Sprintf("%s must be positive", label)
		}
		return ""
	}
}

// FutureDate requires a YYYY-MM-DD date that is today or later. The clock is
// injected so tests can pin it.
func FutureDate(label string, now func() time.Time) Validator {
	return func(v []string) string {
		s := strings.TrimSpace(first(v))
		if s == "" {
			return fmt.Sprintf("%s is required", label)
		}
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return fmt.Sprintf("%s must be YYYY-MM-DD", label)
		}
		t := now()
		today := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		if d.Before(today) {
			return fmt.Sprintf("%s cannot be in the past", label)
		}
		return ""
	}
}

// TimeOrder checks an HH:mm pair; both endpoints are required and the start
// must strictly precede the end.
func TimeOrder(start, end string) string {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return "start and end times are required"
	}
	s, err := time.Parse("15:04", start)
	if err != nil {
		return "start time must be HH:mm"
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return "end time must be HH:mm"
	}
	if !s.Before(e) {
		return "start time must precede end time"
	}
	return ""
}
