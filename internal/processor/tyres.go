package processor

import (
	"io"

	"github.com/evtools/cardata/internal/loader"
	"github.com/evtools/cardata/internal/tyres"
)

// TyreProcessor renders tyre-diagnostics exports.
type TyreProcessor struct {
	out io.Writer
	doc any
}

// NewTyreProcessor returns a processor writing to out.
func NewTyreProcessor(out io.Writer) *TyreProcessor {
	return &TyreProcessor{out: out}
}

// Load parses the next input file.
func (p *TyreProcessor) Load(path string) error {
	doc, err := loader.Load(path)
	if err != nil {
		return err
	}
	p.doc = doc
	return nil
}

// Process extracts and reports the loaded diagnostics.
func (p *TyreProcessor) Process() error {
	diag, err := tyres.Extract(p.doc)
	if err != nil {
		return err
	}
	return diag.Report(p.out)
}
