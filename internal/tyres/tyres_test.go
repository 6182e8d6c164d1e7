package tyres_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evtools/cardata/internal/schema"
	"github.com/evtools/cardata/internal/tyres"
)

func wheel(pressure, target float64) map[string]any {
	return map[string]any{
		"currentPressure": pressure,
		"targetPressure":  target,
	}
}

func rawDiagnostics() map[string]any {
	return map[string]any{
		"mileage":      15321.0,
		"mileageUnits": "KM",
		"tires": map[string]any{
			"frontLeft":  wheel(2.4, 2.5),
			"frontRight": wheel(2.45, 2.5),
			"rearLeft":   wheel(2.7, 2.7),
			"rearRight":  wheel(2.68, 2.7),
		},
	}
}

func TestExtract(t *testing.T) {
	diag, err := tyres.Extract(rawDiagnostics())
	require.NoError(t, err)

	require.Len(t, diag.Wheels, 4)
	assert.Equal(t, "front left", diag.Wheels[0].Label)
	assert.Equal(t, 2.4, diag.Wheels[0].PressureBar)
	assert.Equal(t, 2.5, diag.Wheels[0].TargetBar)
	assert.Equal(t, "rear right", diag.Wheels[3].Label)
	require.NotNil(t, diag.Mileage)
	assert.Equal(t, 15321.0, *diag.Mileage)
}

func TestExtractNotAnObject(t *testing.T) {
	var schemaErr *schema.SchemaError
	_, err := tyres.Extract([]any{})
	require.ErrorAs(t, err, &schemaErr)
}

func TestExtractMissingWheelFailsLoudly(t *testing.T) {
	doc := rawDiagnostics()
	delete(doc["tires"].(map[string]any), "rearLeft")

	var missing *schema.MissingFieldError
	_, err := tyres.Extract(doc)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "tires.rearLeft", missing.Field)
}

func TestExtractMissingPressureFailsLoudly(t *testing.T) {
	doc := rawDiagnostics()
	delete(doc["tires"].(map[string]any)["frontRight"].(map[string]any), "targetPressure")

	var missing *schema.MissingFieldError
	_, err := tyres.Extract(doc)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "tires.frontRight.targetPressure", missing.Field)
}

func TestReport(t *testing.T) {
	diag, err := tyres.Extract(rawDiagnostics())
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, diag.Report(&buf))
	got := buf.String()

	assert.Contains(t, got, "Tyre diagnostics: mileage 15321 km\n")
	assert.Contains(t, got, "2.40 bar (target 2.50 bar)")
	assert.True(t, strings.HasSuffix(got, "\n\n"))
}
