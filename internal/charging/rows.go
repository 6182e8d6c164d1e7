package charging

import (
	"strconv"
	"strings"

	"github.com/evtools/cardata/internal/csvsink"
)

// csvHeader is the fixed column order expected by downstream tooling.
var csvHeader = []string{
	"Start date", "End date", "Duration/s", "Location", "Public",
	"Mileage/km", "SoC1/%", "SoC2/%", "Delta/kWh", "Grid/kWh",
	"Battery/kWh", "Loss/%", "Power/kW",
}

// RowBuilder renders sessions as CSV rows into a sink (csv output mode).
// Numeric cells use the sink dialect's decimal separator so the file
// imports cleanly in the same locale that chose the delimiter.
type RowBuilder struct {
	sink *csvsink.Sink
	path string
}

// NewRowBuilder returns a builder accumulating into sink, to be flushed to
// path at the end of the run.
func NewRowBuilder(sink *csvsink.Sink, path string) *RowBuilder {
	return &RowBuilder{sink: sink, path: path}
}

// Render appends one row for an accepted session.
func (b *RowBuilder) Render(s *Session, m *Metrics) error {
	b.sink.SetHeader(csvHeader)

	d := b.sink.Dialect()
	mileage := ""
	if s.Mileage != nil {
		mileage = d.Float(*s.Mileage, 0)
	}
	unit := strings.ToLower(s.MileageUnit)
	if unit != "" && unit != "km" {
		mileage += " " + unit
	}

	b.sink.Append([]string{
		m.StartLocal,
		m.EndLocal,
		strconv.FormatInt(s.TotalDurationSec, 10),
		s.LocationAddress,
		strconv.FormatBool(s.IsPublic),
		mileage,
		d.Float(deref(s.StartSoc), 0),
		d.Float(deref(s.EndSoc), 0),
		d.Float(m.BatteryDeltaKwh, 2),
		d.Float(m.GridKwh, 2),
		d.Float(m.BatteryKwh, 2),
		d.Float(m.LossPercent, 1),
		d.Float(m.MeanPowerKw, 1),
	})
	return nil
}

// Flush writes everything accumulated so far to the configured path.
func (b *RowBuilder) Flush() error {
	return b.sink.WriteFile(b.path)
}
