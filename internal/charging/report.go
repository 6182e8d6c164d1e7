package charging

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Renderer consumes one record with its metrics. Each accepted session is
// rendered exactly once, in document order.
type Renderer interface {
	Render(s *Session, m *Metrics) error
}

// ReportRenderer writes the human-readable per-session block (default
// output mode).
type ReportRenderer struct {
	w io.Writer
}

// NewReportRenderer returns a renderer writing to w.
func NewReportRenderer(w io.Writer) *ReportRenderer {
	return &ReportRenderer{w: w}
}

// Render writes one session block followed by a blank line.
//
// The "-> X kWh to battery" clause is omitted entirely when the export did
// not carry the battery energy field; when the value was substituted from
// the SoC delta it is shown prefixed with "~" to mark it as an estimate.
func (r *ReportRenderer) Render(s *Session, m *Metrics) error {
	var b strings.Builder

	fmt.Fprintf(&b, "[%02d] Charging session: %s / %d min\n", s.Index, m.StartLocal, m.DurationMin)

	location := s.LocationAddress
	if s.IsPublic {
		location += " (public)"
	}
	fmt.Fprintf(&b, "     Location: %s\n", location)

	fmt.Fprintf(&b, "     Mileage: %s %s\n", plain(deref(s.Mileage)), strings.ToLower(s.MileageUnit))

	fmt.Fprintf(&b, "     Battery: %s%% -> %s%% (~%.2f kWh)\n",
		plain(deref(s.StartSoc)), plain(deref(s.EndSoc)), m.BatteryDeltaKwh)

	battery := ""
	if m.BatteryReported {
		if m.BatteryEstimated {
			battery = fmt.Sprintf(" -> ~%.2f kWh to battery", m.BatteryKwh)
		} else {
			battery = fmt.Sprintf(" -> %.2f kWh to battery", m.BatteryKwh)
		}
	}
	fmt.Fprintf(&b, "     Energy: %.2f kWh from grid%s, loss %.1f%%, %.1f kW (mean)\n\n",
		m.GridKwh, battery, m.LossPercent, m.MeanPowerKw)

	_, err := io.WriteString(r.w, b.String())
	return err
}

// plain renders a number the way the export carried it: integers without a
// fraction, everything else with the shortest exact representation.
func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
