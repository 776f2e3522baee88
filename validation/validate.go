// Package validation evaluates per-endpoint field constraint declarations.
// Each endpoint declares its own ordered field set; this is deliberately
// not a reusable schema framework.
package validation

import "reflect"

// Validator holds the predicate for a single field. A nil IsValid accepts
// any non-empty value.
type Validator struct {
	IsValid      func(value any) bool
	ErrorMessage string
}

// Field describes one declared request field.
type Field struct {
	Name      string
	Value     any
	Optional  bool
	Validator Validator
}

// Constraints is an ordered field declaration; evaluation order is
// declaration order so error lists are reproducible.
type Constraints []Field

// FieldError is the user-facing shape of a single failed field.
type FieldError struct {
	Field    string `json:"field"`
	ErrorMsg string `json:"error_msg"`
}

// Result is the outcome of evaluating a constraint set. A field never
// appears in both Errors and Values.
type Result struct {
	Errors []FieldError
	Values map[string]any
}

// Validate runs the declared constraints in order. It never panics: any
// failure inside a predicate collapses to a single synthetic error.
func Validate(constraints Constraints) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{
				Errors: []FieldError{{Field: "", ErrorMsg: "error in validation"}},
				Values: map[string]any{},
			}
		}
	}()

	result = Result{Values: map[string]any{}}

	for _, field := range constraints {
		if field.Optional && IsEmpty(field.Value) {
			continue
		}
		if !field.Optional && IsEmpty(field.Value) {
			result.Errors = append(result.Errors, FieldError{
				Field:    field.Name,
				ErrorMsg: field.Validator.ErrorMessage,
			})
			continue
		}
		if field.Validator.IsValid == nil {
			result.Values[field.Name] = field.Value
			continue
		}
		if !field.Validator.IsValid(field.Value) {
			result.Errors = append(result.Errors, FieldError{
				Field:    field.Name,
				ErrorMsg: field.Validator.ErrorMessage,
			})
		} else {
			result.Values[field.Name] = field.Value
		}
	}

	return result
}

// IsEmpty reports whether a value counts as absent: nil, the empty string,
// or a nil slice/map/pointer. Zero numbers are not empty; they are left to
// the field's own predicate.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
