package schema

import (
	"errors"
	"fmt"
)

// ErrOpenSession marks a charging session that was still running when the
// export was generated. It is not a failure: callers skip the item and move
// on without reporting anything.
var ErrOpenSession = errors.New("charging session still in progress")

// SchemaError reports that the parsed JSON does not have the shape a
// processor expects, e.g. an object where a list is required. It is fatal
// for the input file it occurred in.
type SchemaError struct {
	Want string
	Got  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("unexpected JSON shape: want %s, got %s", e.Want, e.Got)
}

// MissingFieldError reports the absence of a structurally mandatory field.
// Optional fields never produce this; they read as nil instead.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("mandatory field %q is missing", e.Field)
}

// TypeName returns a short human-readable name for the dynamic type of a
// decoded JSON value, for use in SchemaError messages.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "bool"
	case float64, int, int64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
