package schema

// Accessors over a decoded JSON object (map[string]any). Vendor exports
// rename and drop fields between software revisions, so optional reads
// return nil pointers for anything absent or of the wrong type instead of
// silently defaulting to zero. Mandatory reads fail with a
// *MissingFieldError carrying the full key path.

// Float reads an optional numeric field. encoding/json decodes all JSON
// numbers as float64, but int variants are accepted too so that hand-built
// documents behave the same.
func Float(obj map[string]any, key string) *float64 {
	v, ok := obj[key]
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	}
	return nil
}

// String reads an optional string field.
func String(obj map[string]any, key string) *string {
	if s, ok := obj[key].(string); ok {
		return &s
	}
	return nil
}

// Bool reads an optional boolean field.
func Bool(obj map[string]any, key string) *bool {
	if b, ok := obj[key].(bool); ok {
		return &b
	}
	return nil
}

// MustObject reads a mandatory nested object.
func MustObject(obj map[string]any, key string) (map[string]any, error) {
	if m, ok := obj[key].(map[string]any); ok {
		return m, nil
	}
	return nil, &MissingFieldError{Field: key}
}

// MustString reads a mandatory string field. path names the field in error
// messages and may include the parent key, e.g.
// "chargingLocation.formattedAddress".
func MustString(obj map[string]any, key, path string) (string, error) {
	if s, ok := obj[key].(string); ok {
		return s, nil
	}
	return "", &MissingFieldError{Field: path}
}

// MustBool reads a mandatory boolean field.
func MustBool(obj map[string]any, key, path string) (bool, error) {
	if b, ok := obj[key].(bool); ok {
		return b, nil
	}
	return false, &MissingFieldError{Field: path}
}
