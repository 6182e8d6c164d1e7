package charging_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evtools/cardata/internal/charging"
	"github.com/evtools/cardata/internal/vehicle"
)

func renderBlock(t *testing.T, s *charging.Session) string {
	t.Helper()
	m, err := charging.Derive(s, vehicle.IX1)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, charging.NewReportRenderer(&buf).Render(s, m))
	return buf.String()
}

func TestReportBlock(t *testing.T) {
	s := referenceSession()
	s.Index = 3
	s.Mileage = f(12345)
	s.MileageUnit = "KM"
	s.LocationAddress = "Musterstraße 1, 10115 Berlin"

	got := renderBlock(t, s)
	want := "" +
		"[03] Charging session: 2023-11-14 22:13:20 / 60 min\n" +
		"     Location: Musterstraße 1, 10115 Berlin\n" +
		"     Mileage: 12345 km\n" +
		"     Battery: 42% -> 95% (~34.34 kWh)\n" +
		"     Energy: 11.00 kWh from grid -> 9.80 kWh to battery, loss 10.9%, 11.0 kW (mean)\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestReportPublicMarker(t *testing.T) {
	s := referenceSession()
	s.LocationAddress = "Autohof A9"
	s.IsPublic = true

	got := renderBlock(t, s)
	assert.Contains(t, got, "     Location: Autohof A9 (public)\n")
}

func TestReportIndexZeroPadded(t *testing.T) {
	s := referenceSession()
	got := renderBlock(t, s)
	assert.True(t, strings.HasPrefix(got, "[00] "), "got %q", got)
}

func TestReportBatteryClauseOmittedWhenAbsent(t *testing.T) {
	s := referenceSession()
	s.BatteryEnergyKwh = nil

	got := renderBlock(t, s)
	assert.NotContains(t, got, "to battery")
	assert.Contains(t, got, "Energy: 11.00 kWh from grid, loss")
}

func TestReportBatteryEstimateMarkedWhenZero(t *testing.T) {
	s := referenceSession()
	s.BatteryEnergyKwh = f(0)

	got := renderBlock(t, s)
	assert.Contains(t, got, "-> ~34.34 kWh to battery")
}

func TestReportEndsWithBlankLine(t *testing.T) {
	got := renderBlock(t, referenceSession())
	assert.True(t, strings.HasSuffix(got, "\n\n"), "got %q", got)
}
