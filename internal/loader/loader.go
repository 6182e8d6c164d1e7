package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/evtools/cardata/internal/schema"
)

// Load reads one file containing a single JSON document and returns the
// decoded tree. Decode failures surface as a *schema.SchemaError so the
// caller can treat a broken export the same way as a wrong-shaped one.
func Load(path string) (any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, &schema.SchemaError{Want: "JSON document", Got: err.Error()}
	}
	return doc, nil
}
