package toolkit

import (
	"fmt"
	"strings"
)

// ValidationError reports one argument that failed schema validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// missingError builds the failure for an absent required field.
func missingError(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("missing required argument %q", field),
	}
}

// mismatchError builds the failure for a value of the wrong kind.
func mismatchError(field string, expected FieldType, got any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("argument %q: expected %s, got %s", field, expected, kindOf(got)),
	}
}

// Validate checks raw arguments against the descriptor schema, walking
// fields in declaration order. Declared fields are checked strictly;
// extra fields in raw are ignored. Absent optional fields with a declared
// default are substituted; absent optional fields without one are omitted
// so handlers apply their own defaults.
func Validate(d Descriptor, raw map[string]any) (Args, error) {
	args := make(Args, len(d.Fields))

	for _, f := range d.Fields {
		v, present := raw[f.Name]
		if !present {
			if f.Required {
				return nil, missingError(f.Name)
			}
			if f.Default != nil {
				args[f.Name] = normalizeDefault(f.Default)
			}
			continue
		}

		switch f.Type {
		case TypeString:
			s, ok := v.(string)
			if !ok {
				return nil, mismatchError(f.Name, f.Type, v)
			}
			args[f.Name] = s
		case TypeNumber:
			n, ok := asNumber(v)
			if !ok {
				return nil, mismatchError(f.Name, f.Type, v)
			}
			args[f.Name] = n
		case TypeBoolean:
			b, ok := v.(bool)
			if !ok {
				return nil, mismatchError(f.Name, f.Type, v)
			}
			args[f.Name] = b
		case TypeEnum:
			s, ok := v.(string)
			if !ok {
				return nil, mismatchError(f.Name, TypeString, v)
			}
			if !contains(f.Enum, s) {
				return nil, &ValidationError{
					Field: f.Name,
					Message: fmt.Sprintf("argument %q: must be one of [%s], got %q",
						f.Name, strings.Join(f.Enum, ", "), s),
				}
			}
			args[f.Name] = s
		default:
			return nil, &ValidationError{
				Field:   f.Name,
				Message: fmt.Sprintf("argument %q: unsupported field type %q", f.Name, f.Type),
			}
		}
	}

	return args, nil
}

// asNumber accepts any numeric runtime representation and normalizes it
// to float64. JSON decoding yields float64; direct callers may pass ints.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// normalizeDefault brings declared defaults to the same runtime types the
// validator produces, so Args accessors see one numeric representation.
func normalizeDefault(v any) any {
	if n, ok := asNumber(v); ok {
		return n
	}
	return v
}

// kindOf names the runtime kind of a raw argument for error messages.
func kindOf(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int32, int64:
		return "number"
	case nil:
		return "null"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func contains(set []string, s string) bool {
	for _, m := range set {
		if m == s {
			return true
		}
	}
	return false
}
