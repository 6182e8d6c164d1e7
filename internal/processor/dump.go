package processor

import (
	"io"

	"github.com/evtools/cardata/internal/dump"
	"github.com/evtools/cardata/internal/loader"
)

// DumpProcessor prints an indented outline of any JSON export whose shape
// is not otherwise recognized.
type DumpProcessor struct {
	printer dump.Printer
	doc     any
}

// NewDumpProcessor returns a processor writing to out, descending at most
// limit levels (0 = unlimited).
func NewDumpProcessor(out io.Writer, limit int) *DumpProcessor {
	return &DumpProcessor{printer: dump.Printer{W: out, Limit: limit}}
}

// Load parses the next input file.
func (p *DumpProcessor) Load(path string) error {
	doc, err := loader.Load(path)
	if err != nil {
		return err
	}
	p.doc = doc
	return nil
}

// Process prints the loaded tree.
func (p *DumpProcessor) Process() error {
	p.printer.Print(p.doc)
	return nil
}
