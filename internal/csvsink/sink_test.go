package csvsink

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDialectForDecimalPointLocale(t *testing.T) {
	d := DialectFor(language.English)
	assert.Equal(t, ',', d.Comma)
	assert.False(t, d.QuoteAll)
	assert.Equal(t, "34.34", d.Float(34.344, 2))
}

func TestDialectForDecimalCommaLocale(t *testing.T) {
	for _, tag := range []language.Tag{language.German, language.French} {
		d := DialectFor(tag)
		assert.Equal(t, ';', d.Comma, tag.String())
		assert.True(t, d.QuoteAll, tag.String())
		assert.Equal(t, "34,34", d.Float(34.344, 2), tag.String())
	}
}

func TestDialectFloatNoGrouping(t *testing.T) {
	// Grouping separators would be ambiguous in CSV cells.
	assert.Equal(t, "12345", DialectFor(language.German).Float(12345, 0))
	assert.Equal(t, "12345.6", DialectFor(language.English).Float(12345.6, 1))
}

func TestEnvTagPrecedence(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_NUMERIC", "de_DE.UTF-8")
	t.Setenv("LANG", "en_US.UTF-8")
	assert.True(t, DetectDialect().DecimalComma)

	t.Setenv("LC_ALL", "en_US.UTF-8")
	assert.False(t, DetectDialect().DecimalComma)

	t.Setenv("LC_ALL", "C")
	t.Setenv("LC_NUMERIC", "")
	t.Setenv("LANG", "")
	assert.False(t, DetectDialect().DecimalComma)
}

func TestSinkHeaderSetOnce(t *testing.T) {
	s := New(DialectFor(language.English))
	s.SetHeader([]string{"a", "b"})
	s.SetHeader([]string{"x", "y"}) // ignored
	s.Append([]string{"1", "2"})

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, s.WriteFile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\r\n1,2\r\n", string(b))
}

func TestSinkQuoteAllDialect(t *testing.T) {
	s := New(DialectFor(language.German))
	s.SetHeader([]string{"Grid/kWh", "Location"})
	s.Append([]string{"11,00", `Rasthof "Süd"`})

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, s.WriteFile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(b), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"Grid/kWh";"Location"`, lines[0])
	assert.Equal(t, `"11,00";"Rasthof ""Süd"""`, lines[1])
}

func TestSinkReset(t *testing.T) {
	s := New(DialectFor(language.English))
	s.SetHeader([]string{"a"})
	s.Append([]string{"1"})
	require.Equal(t, 1, s.Len())

	s.Reset()
	assert.Zero(t, s.Len())

	// A fresh batch after Reset does not carry rows over.
	s.SetHeader([]string{"b"})
	s.Append([]string{"2"})

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, s.WriteFile(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "b\r\n2\r\n", string(b))
}
