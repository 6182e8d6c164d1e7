package csvsink

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Dialect describes how one CSV file is serialized. Spreadsheet tools in
// decimal-comma locales (e.g. German Excel) expect semicolon-delimited,
// fully quoted files with comma decimal separators; everywhere else the
// plain comma-delimited, minimally quoted form is used.
type Dialect struct {
	Comma        rune
	QuoteAll     bool
	DecimalComma bool
}

// DetectDialect derives the dialect from the process locale environment
// (LC_ALL, LC_NUMERIC, LANG, in that order of precedence).
func DetectDialect() Dialect {
	return DialectFor(envTag())
}

// DialectFor builds the dialect for an explicit language tag, probing how
// the locale renders a fractional number. Exposed so tests can force
// decimal-comma and decimal-point behaviour regardless of the host locale.
func DialectFor(tag language.Tag) Dialect {
	probe := message.NewPrinter(tag).Sprintf("%.1f", 1.5)
	if strings.Contains(probe, ",") {
		return Dialect{Comma: ';', QuoteAll: true, DecimalComma: true}
	}
	return Dialect{Comma: ','}
}

// Float renders a number with a fixed number of fraction digits and the
// dialect's decimal separator. No grouping separators: spreadsheet imports
// must see an unambiguous number.
func (d Dialect) Float(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if d.DecimalComma {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}

func envTag() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		v := os.Getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		// Strip encoding and modifier suffixes: "de_DE.UTF-8@euro" -> "de_DE".
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if tag, err := language.Parse(strings.ReplaceAll(v, "_", "-")); err == nil {
			return tag
		}
	}
	return language.English
}
