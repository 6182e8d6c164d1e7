package processor

import (
	"github.com/evtools/cardata/internal/charging"
	"github.com/evtools/cardata/internal/loader"
)

// ChargingProcessor runs the charging-history batch driver over each input
// file and, in csv mode, triggers the single end-of-run CSV write.
type ChargingProcessor struct {
	driver  *charging.Driver
	csvMode bool
	doc     any
}

// NewChargingProcessor wraps a configured driver.
func NewChargingProcessor(driver *charging.Driver, csvMode bool) *ChargingProcessor {
	return &ChargingProcessor{driver: driver, csvMode: csvMode}
}

// Load parses the next input file.
func (p *ChargingProcessor) Load(path string) error {
	doc, err := loader.Load(path)
	if err != nil {
		return err
	}
	p.doc = doc
	return nil
}

// Process runs the batch driver over the loaded document.
func (p *ChargingProcessor) Process() error {
	return p.driver.Run(p.doc)
}

// Finalize flushes accumulated CSV rows. In text mode everything was
// already written per session, so only the driver state advances.
func (p *ChargingProcessor) Finalize() error {
	return p.driver.Finalize()
}
