package dump

import (
	"fmt"
	"io"
	"sort"
)

// Printer renders an arbitrary parsed JSON tree as an indented outline,
// for exports whose shape is not recognized. Limit > 0 stops descending
// below that nesting level.
type Printer struct {
	W     io.Writer
	Limit int
}

// Print walks the whole tree starting at the root marker.
func (p *Printer) Print(v any) {
	p.printValue(v, ">", 1)
}

func (p *Printer) printValue(v any, indent string, level int) {
	if p.Limit > 0 && level > p.Limit {
		return
	}
	switch t := v.(type) {
	case map[string]any:
		fmt.Fprintf(p.W, "%s {...}\n", indent)
		p.printKeys(t, indent+"  ", level+1)
	case []any:
		fmt.Fprintf(p.W, "%s [...]\n", indent)
		p.printList(t, indent+" .", level+1)
	default:
		fmt.Fprintf(p.W, "%s UNKNOWN %T\n", indent, v)
	}
}

func (p *Printer) printKeys(obj map[string]any, indent string, level int) {
	// Decoded objects lose document order; sort for stable output.
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := obj[k]
		switch t := v.(type) {
		case string:
			fmt.Fprintf(p.W, "%s %s = %q\n", indent, k, t)
		case float64, bool:
			fmt.Fprintf(p.W, "%s %s = %v\n", indent, k, t)
		default:
			fmt.Fprintf(p.W, "%s %s = ...\n", indent, k)
			p.printValue(v, indent+"  ", level+1)
		}
	}
}

func (p *Printer) printList(list []any, indent string, level int) {
	for _, v := range list {
		switch t := v.(type) {
		case string:
			fmt.Fprintf(p.W, "%s %q\n", indent, t)
		case float64, bool:
			fmt.Fprintf(p.W, "%s %v\n", indent, t)
		default:
			p.printValue(v, indent, level)
		}
	}
}
