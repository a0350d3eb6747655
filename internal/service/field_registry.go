package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
)

// ChangeSet maps field names to raw JSON values for a partial update.
type ChangeSet map[string]json.RawMessage

// FieldSetter writes one coerced value into target. A JSON null clears the field.
type FieldSetter[T any] func(target *T, raw json.RawMessage) error

// CoercionError reports a raw value that could not be converted to its field type.
type CoercionError struct {
	Field string
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("field '%s': %v", e.Field, e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

// FieldRegistry holds the typed setters of one entity, keyed by JSON field name.
// It is built once at startup and read-only afterwards.
type FieldRegistry[T any] struct {
	clone   func(T) T
	setters map[string]FieldSetter[T]
}

// NewFieldRegistry creates an empty registry. clone must return a value that
// shares no mutable state with its input.
func NewFieldRegistry[T any](clone func(T) T) *FieldRegistry[T] {
	return &FieldRegistry[T]{clone: clone, setters: make(map[string]FieldSetter[T])}
}

// Register adds a setter and returns the registry for chaining.
func (r *FieldRegistry[T]) Register(name string, setter FieldSetter[T]) *FieldRegistry[T] {
	r.setters[name] = setter
	return r
}

// Fields lists the registered field names in sorted order.
func (r *FieldRegistry[T]) Fields() []string {
	names := make([]string, 0, len(r.setters))
	for name := range r.setters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone copies a persisted record into a private snapshot.
func (r *FieldRegistry[T]) Clone(value T) T {
	return r.clone(value)
}

// Apply returns a copy of snapshot with changes applied. Unknown field names
// are skipped. Fields are visited in sorted order so the first reported error
// is deterministic. snapshot is never modified.
func (r *FieldRegistry[T]) Apply(snapshot T, changes ChangeSet) (T, error) {
	candidate := r.clone(snapshot)

	names := make([]string, 0, len(changes))
	for name := range changes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		setter, ok := r.setters[name]
		if !ok {
			continue
		}
		if err := setter(&candidate, changes[name]); err != nil {
			var zero T
			return zero, &CoercionError{Field: name, Err: err}
		}
	}
	return candidate, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// literal returns the text of a raw value: JSON strings are unquoted, any
// other literal is returned as written.
func literal(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", fmt.Errorf("malformed string: %w", err)
		}
		return s, nil
	}
	return string(trimmed), nil
}

// NullableText stores the value verbatim; null clears it.
func NullableText[T any](field func(*T) **string) FieldSetter[T] {
	return func(target *T, raw json.RawMessage) error {
		if isNull(raw) {
			*field(target) = nil
			return nil
		}
		s, err := literal(raw)
		if err != nil {
			return err
		}
		*field(target) = &s
		return nil
	}
}

// Text stores the value verbatim into a non-nullable column; null empties it
// so required-field validation can reject it.
func Text[T any](field func(*T) *string) FieldSetter[T] {
	return func(target *T, raw json.RawMessage) error {
		if isNull(raw) {
			*field(target) = ""
			return nil
		}
		s, err := literal(raw)
		if err != nil {
			return err
		}
		*field(target) = s
		return nil
	}
}

// ParseInteger parses a base-10 integer given as a JSON number or string.
func ParseInteger(raw json.RawMessage) (int64, error) {
	s, err := literal(raw)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("integer value '%s' could not be parsed", s)
	}
	return n, nil
}

// Integer parses a base-10 integer; null clears it.
func Integer[T any](field func(*T) **int64) FieldSetter[T] {
	return func(target *T, raw json.RawMessage) error {
		if isNull(raw) {
			*field(target) = nil
			return nil
		}
		n, err := ParseInteger(raw)
		if err != nil {
			return err
		}
		*field(target) = &n
		return nil
	}
}

// Decimal parses a floating point number; null clears it.
func Decimal[T any](field func(*T) **float64) FieldSetter[T] {
	return func(target *T, raw json.RawMessage) error {
		if isNull(raw) {
			*field(target) = nil
			return nil
		}
		s, err := literal(raw)
		if err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("decimal value '%s' could not be parsed", s)
		}
		*field(target) = &f
		return nil
	}
}

// Timestamp parses the yyyy-MM-ddTHH:mm form; null clears it.
func Timestamp[T any](field func(*T) **models.LocalDateTime) FieldSetter[T] {
	return func(target *T, raw json.RawMessage) error {
		if isNull(raw) {
			*field(target) = nil
			return nil
		}
		s, err := literal(raw)
		if err != nil {
			return err
		}
		ts, err := models.ParseLocalDateTime(s)
		if err != nil {
			return fmt.Errorf("timestamp must match %s: %w", models.LocalDateTimeLayout, err)
		}
		*field(target) = &ts
		return nil
	}
}

// Reference decodes a serialized related object and embeds it. The value may
// be a JSON object or a string holding one; null clears the reference.
func Reference[T, R any](field func(*T) **R) FieldSetter[T] {
	return func(target *T, raw json.RawMessage) error {
		if isNull(raw) {
			*field(target) = nil
			return nil
		}
		payload := bytes.TrimSpace(raw)
		if payload[0] == '"' {
			s, err := literal(payload)
			if err != nil {
				return err
			}
			payload = []byte(s)
		}
		related := new(R)
		if err := json.Unmarshal(payload, related); err != nil {
			return fmt.Errorf("reference could not be decoded: %w", err)
		}
		*field(target) = related
		return nil
	}
}
