package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// ErrNotAnObject is returned when a JSON payload is not an object.
var ErrNotAnObject = errors.New("request body must be a JSON object")

// Fields decodes a JSON object field by field.
//
// Type mismatches are recorded per field instead of aborting the decode,
// so Validate can report every failing field at once. Unknown keys are
// ignored. A JSON null is treated like an absent key.
type Fields struct {
	raw    map[string]json.RawMessage
	errors CustomValidationErrors
}

// DecodeFields parses data as a JSON object.
func DecodeFields(data []byte) (*Fields, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrNotAnObject
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, err
	}

	return &Fields{raw: raw}, nil
}

func (f *Fields) lookup(name string) (json.RawMessage, bool) {
	value, ok := f.raw[name]
	if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		return nil, false
	}
	return value, true
}

// String returns the named string field, nil when absent.
func (f *Fields) String(name string) *string {
	value, ok := f.lookup(name)
	if !ok {
		return nil
	}

	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		f.errors.Add(name, "must be a string")
		return nil
	}
	return &s
}

// Int64 returns the named integer field, nil when absent.
//
// Fractional numbers and numeric strings are rejected.
func (f *Fields) Int64(name string) *int64 {
	value, ok := f.lookup(name)
	if !ok {
		return nil
	}

	var n int64
	if err := json.Unmarshal(value, &n); err != nil {
		f.errors.Add(name, "must be an integer")
		return nil
	}
	return &n
}

// Errors returns the decode errors recorded so far.
func (f *Fields) Errors() CustomValidationErrors {
	return f.errors
}

// Checker runs explicit per-field checks in declaration order.
//
// A field that already failed to decode reports its decode error and
// skips the check, so each field appears at most once.
type Checker struct {
	decoded CustomValidationErrors
	errs    CustomValidationErrors
}

// NewChecker starts a check pass over a payload decoded with Fields.
func NewChecker(decoded CustomValidationErrors) *Checker {
	return &Checker{decoded: decoded}
}

func (c *Checker) decodeFailed(field string) bool {
	for _, e := range c.decoded {
		if e.Field == field {
			c.errs = append(c.errs, e)
			return true
		}
	}
	return false
}

// RequiredString fails when s is missing or blank.
func (c *Checker) RequiredString(field string, s *string) {
	if c.decodeFailed(field) {
		return
	}
	if s == nil || strings.TrimSpace(*s) == "" {
		c.errs.Add(field, "is required")
	}
}

// OptionalString only reports decode errors.
func (c *Checker) OptionalString(field string) {
	c.decodeFailed(field)
}

// PositiveInt fails when n is missing or not greater than zero.
func (c *Checker) PositiveInt(field string, n *int64) {
	if c.decodeFailed(field) {
		return
	}
	switch {
	case n == nil:
		c.errs.Add(field, "is required")
	case *n <= 0:
		c.errs.Add(field, "must be a positive integer")
	}
}

// Err returns the collected errors, nil when every check passed.
func (c *Checker) Err() error {
	return c.errs.Err()
}
