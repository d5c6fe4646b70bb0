package survey

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// RejectionError reports why a submission was refused. The reason string is
// surfaced verbatim to API callers, so its wording is part of the contract.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}

func rejectf(format string, args ...any) *RejectionError {
	return &RejectionError{Reason: fmt.Sprintf(format, args...)}
}

// ErrUnknownFieldType marks a template whose schema uses a type outside the
// FieldType set. This is a configuration error, not a submission rejection.
var ErrUnknownFieldType = errors.New("unknown field type")

// ValidateResponses checks a candidate submission against a template schema.
// It returns nil when the submission is acceptable, a *RejectionError with a
// human-readable reason when it is not, and a plain error when the schema
// itself is misconfigured. It touches no store and has no side effects.
//
// Checks run in a fixed order and the first failure wins: required fields in
// schema order, then unknown keys, then per-field type and constraint checks.
// Candidate keys are visited in sorted order so identical inputs always
// produce the identical result.
func ValidateResponses(schema []FieldSchema, candidate map[string]any) error {
	for _, field := range schema {
		if !field.IsRequired() {
			continue
		}
		if _, ok := candidate[field.FieldID]; !ok {
			return rejectf("Required field '%s' is missing", field.DisplayName())
		}
	}

	byID := make(map[string]FieldSchema, len(schema))
	for _, field := range schema {
		// field_id uniqueness is not enforced at template create; keep
		// the first definition, matching lookup order elsewhere
		if _, ok := byID[field.FieldID]; !ok {
			byID[field.FieldID] = field
		}
	}

	keys := make([]string, 0, len(candidate))
	for key := range candidate {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		field, ok := byID[key]
		if !ok {
			return rejectf("Unknown field '%s' not in template schema", key)
		}
		value := candidate[key]
		if value == nil && !field.IsRequired() {
			continue
		}
		if err := checkField(field, value); err != nil {
			return err
		}
	}
	return nil
}

func checkField(field FieldSchema, value any) error {
	title := field.DisplayName()

	switch field.Type {
	case FieldTypeString, FieldTypeText:
		text, ok := value.(string)
		if !ok {
			return rejectf("Field '%s' must be a string", title)
		}
		if v := field.Validation; v != nil {
			length := utf8.RuneCountInString(text)
			if v.MinLength != nil && length < *v.MinLength {
				return rejectf("Field '%s' must be at least %d characters", title, *v.MinLength)
			}
			if v.MaxLength != nil && length > *v.MaxLength {
				return rejectf("Field '%s' must be at most %d characters", title, *v.MaxLength)
			}
		}

	case FieldTypeNumber:
		number, ok := asNumber(value)
		if !ok {
			return rejectf("Field '%s' must be a number", title)
		}
		if v := field.Validation; v != nil {
			if v.MinValue != nil && number < *v.MinValue {
				return rejectf("Field '%s' must be at least %s", title, formatBound(*v.MinValue))
			}
			if v.MaxValue != nil && number > *v.MaxValue {
				return rejectf("Field '%s' must be at most %s", title, formatBound(*v.MaxValue))
			}
		}

	case FieldTypeBoolean:
		if _, ok := value.(bool); !ok {
			return rejectf("Field '%s' must be a boolean (true/false)", title)
		}

	case FieldTypeDate:
		// YYYY-MM-DD is convention only; the content is not parsed.
		if _, ok := value.(string); !ok {
			return rejectf("Field '%s' must be a date string (YYYY-MM-DD)", title)
		}

	case FieldTypeEmail:
		text, ok := value.(string)
		if !ok {
			return rejectf("Field '%s' must be a string", title)
		}
		if !strings.Contains(text, "@") || !strings.Contains(text, ".") {
			return rejectf("Field '%s' must be a valid email address", title)
		}

	case FieldTypeOption:
		for _, option := range field.Options {
			if value == option {
				return nil
			}
		}
		return rejectf("Field '%s' must be one of: %s", title, strings.Join(field.Options, ", "))

	case FieldTypeFile:
		if _, ok := value.(string); !ok {
			return rejectf("Field '%s' must be a file path string", title)
		}

	default:
		return fmt.Errorf("%w %q for field '%s'", ErrUnknownFieldType, field.Type, field.FieldID)
	}
	return nil
}

// asNumber accepts the numeric types a decoded JSON or BSON payload can
// carry. bool is its own type in Go, so no special casing is needed to keep
// it out.
func asNumber(value any) (float64, bool) {
	switch n := value.(type) {
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
	default:
		return 0, false
	}
}

// formatBound renders a numeric bound without a trailing ".0" so whole-number
// bounds read naturally in rejection messages.
func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
