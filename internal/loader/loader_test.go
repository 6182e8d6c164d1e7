package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evtools/cardata/internal/schema"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadList(t *testing.T) {
	doc, err := Load(write(t, `[{"startTime": 1}]`))
	require.NoError(t, err)

	list, ok := doc.([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
}

func TestLoadInvalidJSON(t *testing.T) {
	var schemaErr *schema.SchemaError
	_, err := Load(write(t, `{"unterminated": `))
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "JSON document", schemaErr.Want)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
