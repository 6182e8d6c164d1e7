package charging

import (
	"fmt"
	"math"
	"time"

	"github.com/evtools/cardata/internal/vehicle"
)

// timeLayout renders session timestamps in the session's own zone.
const timeLayout = "2006-01-02 15:04:05"

// Metrics holds the quantities derived from one session record.
type Metrics struct {
	StartLocal string
	EndLocal   string

	DurationMin int

	// BatteryDeltaKwh is the SoC-delta estimate based on the vehicle's
	// net pack capacity.
	BatteryDeltaKwh float64

	// BatteryKwh is the effective battery energy: the vendor-reported
	// value when it is present and non-zero, otherwise BatteryDeltaKwh.
	BatteryKwh float64

	// BatteryReported is true when the export carried the field at all.
	BatteryReported bool

	// BatteryEstimated is true when BatteryKwh was substituted from the
	// SoC delta. Renderers mark such values as estimates.
	BatteryEstimated bool

	GridKwh     float64
	LossPercent float64
	MeanPowerKw float64
}

// Derive computes Metrics from a normalized session. Pure apart from the
// time zone database lookup.
//
// Loss and mean power fall back to 0 whenever their denominator is not
// positive, and a negative loss (battery gained more than the grid
// supplied) is clamped to 0 rather than reported. Clamping also masks
// battery-exceeds-grid data-quality issues; that matches the vendor
// tooling's behaviour.
func Derive(s *Session, profile vehicle.Profile) (*Metrics, error) {
	loc := time.UTC
	if s.TimeZone != "" {
		var err error
		if loc, err = time.LoadLocation(s.TimeZone); err != nil {
			return nil, fmt.Errorf("load time zone %q: %w", s.TimeZone, err)
		}
	}

	soc1 := deref(s.StartSoc)
	soc2 := deref(s.EndSoc)
	grid := deref(s.GridEnergyKwh)

	m := &Metrics{
		StartLocal:      time.Unix(s.StartTime, 0).In(loc).Format(timeLayout),
		EndLocal:        time.Unix(s.EndTime, 0).In(loc).Format(timeLayout),
		DurationMin:     roundHalfUp(float64(s.TotalDurationSec) / 60),
		BatteryDeltaKwh: profile.NetCapacityKwh * (soc2 - soc1) / 100,
		BatteryReported: s.BatteryEnergyKwh != nil,
		GridKwh:         grid,
	}

	m.BatteryKwh = m.BatteryDeltaKwh
	m.BatteryEstimated = true
	if s.BatteryEnergyKwh != nil && *s.BatteryEnergyKwh != 0 {
		m.BatteryKwh = *s.BatteryEnergyKwh
		m.BatteryEstimated = false
	}

	if grid > 0 {
		m.LossPercent = (grid - m.BatteryKwh) / grid * 100
		if m.LossPercent < 0 {
			m.LossPercent = 0
		}
	}
	if s.TotalDurationSec > 0 {
		m.MeanPowerKw = grid / float64(s.TotalDurationSec) * 3600
	}
	return m, nil
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
