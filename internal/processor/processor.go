package processor

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/evtools/cardata/internal/charging"
	"github.com/evtools/cardata/internal/config"
	"github.com/evtools/cardata/internal/csvsink"
	"github.com/evtools/cardata/internal/vehicle"
)

// Processor handles one input file at a time: Load parses it, Process
// renders it. Implementations keep no per-file state beyond the loaded
// document, so the same processor serves every file of a run.
type Processor interface {
	Load(path string) error
	Process() error
}

// Finalizer is implemented by processors with end-of-run output (the CSV
// write). The CLI calls it once, after the last file.
type Finalizer interface {
	Finalize() error
}

// Select picks the processor for the configured report mode. This is the
// single dispatch point; there is no per-file type detection.
func Select(cfg *config.Config, out io.Writer, log *logrus.Logger) Processor {
	switch cfg.Report {
	case config.ReportTyres:
		return NewTyreProcessor(out)
	case config.ReportDump:
		return NewDumpProcessor(out, cfg.RecursionLimit)
	default:
		var renderer charging.Renderer
		if cfg.CSVMode {
			sink := csvsink.New(csvsink.DetectDialect())
			renderer = charging.NewRowBuilder(sink, cfg.Output)
		} else {
			renderer = charging.NewReportRenderer(out)
		}
		return NewChargingProcessor(charging.NewDriver(vehicle.Default(), log, renderer), cfg.CSVMode)
	}
}
