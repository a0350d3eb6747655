package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MutationContext is the intent of a write. It selects the validation rules
// and the processing path.
type MutationContext int

const (
	MutationCreate MutationContext = iota + 1
	MutationReplace
	MutationPartialUpdate
	MutationDelete
)

func (m MutationContext) String() string {
	switch m {
	case MutationCreate:
		return "create"
	case MutationReplace:
		return "replace"
	case MutationPartialUpdate:
		return "partial_update"
	case MutationDelete:
		return "delete"
	default:
		return fmt.Sprintf("MutationContext(%d)", int(m))
	}
}

// ValidationOutcome is the verdict of the rules of one context. Message is
// empty when Valid.
type ValidationOutcome struct {
	Valid   bool
	Message string
}

// RuleViolation is returned by a rule whose business check failed.
type RuleViolation struct {
	Message string
}

func (v *RuleViolation) Error() string {
	return v.Message
}

// Violation builds a RuleViolation.
func Violation(format string, args ...interface{}) error {
	return &RuleViolation{Message: fmt.Sprintf(format, args...)}
}

// Rule checks one predicate. It returns nil when satisfied, a *RuleViolation
// when broken, or any other error when the check itself could not run.
type Rule[T any] func(ctx context.Context, entity *T) error

// RuleSet holds the ordered rules of each mutation context.
type RuleSet[T any] struct {
	Create        []Rule[T]
	Replace       []Rule[T]
	PartialUpdate []Rule[T]
	Delete        []Rule[T]
}

func (s RuleSet[T]) rulesFor(mc MutationContext) ([]Rule[T], error) {
	switch mc {
	case MutationCreate:
		return s.Create, nil
	case MutationReplace:
		return s.Replace, nil
	case MutationPartialUpdate:
		return s.PartialUpdate, nil
	case MutationDelete:
		return s.Delete, nil
	default:
		return nil, fmt.Errorf("unknown mutation context %s", mc)
	}
}

// Validate evaluates the rules of mc in order and stops at the first violation.
// The returned error is non-nil only when a rule could not be evaluated.
func (s RuleSet[T]) Validate(ctx context.Context, entity *T, mc MutationContext) (ValidationOutcome, error) {
	rules, err := s.rulesFor(mc)
	if err != nil {
		return ValidationOutcome{}, err
	}
	for _, rule := range rules {
		err := rule(ctx, entity)
		if err == nil {
			continue
		}
		var violation *RuleViolation
		if errors.As(err, &violation) {
			return ValidationOutcome{Valid: false, Message: violation.Message}, nil
		}
		return ValidationOutcome{}, err
	}
	return ValidationOutcome{Valid: true}, nil
}

// NewStructValidator returns a validator that reports fields by JSON name.
func NewStructValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// StructTags checks the validate tags of the entity.
func StructTags[T any](v *validator.Validate) Rule[T] {
	return func(_ context.Context, entity *T) error {
		err := v.Struct(entity)
		if err == nil {
			return nil
		}
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &RuleViolation{Message: describeFieldError(fieldErrs[0])}
		}
		return err
	}
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// IDAbsent rejects entities that already carry an id.
func IDAbsent[T any](entity string, idOf func(*T) int64) Rule[T] {
	return func(_ context.Context, e *T) error {
		if idOf(e) != 0 {
			return Violation("%s ID must not be provided on create", entity)
		}
		return nil
	}
}

// IDPresent rejects entities without an id.
func IDPresent[T any](idOf func(*T) int64) Rule[T] {
	return func(_ context.Context, e *T) error {
		if idOf(e) <= 0 {
			return Violation("ID parameter is required")
		}
		return nil
	}
}

// Exists reports whether a record with id is stored. Lookups return
// sql.ErrNoRows when absent.
type Exists func(ctx context.Context, id int64) (bool, error)

// ExistsVia adapts a FindByID lookup into an Exists check.
func ExistsVia[R any](find func(ctx context.Context, id int64) (*R, error)) Exists {
	return func(ctx context.Context, id int64) (bool, error) {
		_, err := find(ctx, id)
		if err == nil {
			return true, nil
		}
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
}

// RecordExists requires the entity's own id to be stored.
func RecordExists[T any](entity string, idOf func(*T) int64, exists Exists) Rule[T] {
	return func(ctx context.Context, e *T) error {
		id := idOf(e)
		found, err := exists(ctx, id)
		if err != nil {
			return fmt.Errorf("check %s %d: %w", entity, id, err)
		}
		if !found {
			return Violation("%s with ID: '%d' does not exist", entity, id)
		}
		return nil
	}
}

// ReferenceExists requires a referenced entity to be stored. When required is
// false an empty reference passes.
func ReferenceExists[T any](related string, refOf func(*T) int64, exists Exists, required bool) Rule[T] {
	return func(ctx context.Context, e *T) error {
		id := refOf(e)
		if id == 0 {
			if required {
				return Violation("%s is required", related)
			}
			return nil
		}
		found, err := exists(ctx, id)
		if err != nil {
			return fmt.Errorf("check %s %d: %w", related, id, err)
		}
		if !found {
			return Violation("%s with ID: '%d' does not exist", related, id)
		}
		return nil
	}
}

// NoDependents refuses the operation while count reports dependent records.
func NoDependents[T any](entity, dependents string, idOf func(*T) int64, count func(ctx context.Context, id int64) (int, error)) Rule[T] {
	return func(ctx context.Context, e *T) error {
		n, err := count(ctx, idOf(e))
		if err != nil {
			return fmt.Errorf("count %s: %w", dependents, err)
		}
		if n > 0 {
			return Violation("%s has %d %s and cannot be deleted", entity, n, dependents)
		}
		return nil
	}
}
