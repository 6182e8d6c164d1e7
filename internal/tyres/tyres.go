package tyres

import (
	"fmt"
	"io"
	"strings"

	"github.com/evtools/cardata/internal/schema"
)

// The tyre-diagnostics export has a fixed shape: a single object with one
// entry per wheel. Unlike the charging history there is no schema drift to
// tolerate, so every field is mandatory and absence fails loudly.

const (
	keyTires       = "tires"
	keyPressure    = "currentPressure"
	keyTarget      = "targetPressure"
	keyMileage     = "mileage"
	keyMileageUnit = "mileageUnits"
)

var wheelKeys = []struct {
	key   string
	label string
}{
	{"frontLeft", "front left"},
	{"frontRight", "front right"},
	{"rearLeft", "rear left"},
	{"rearRight", "rear right"},
}

// Wheel holds the measured and recommended pressure for one position, in bar.
type Wheel struct {
	Label       string
	PressureBar float64
	TargetBar   float64
}

// Diagnostics is the normalized tyre report for one vehicle.
type Diagnostics struct {
	Mileage     *float64
	MileageUnit string
	Wheels      []Wheel
}

// Extract normalizes a parsed tyre-diagnostics document.
func Extract(doc any) (*Diagnostics, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, &schema.SchemaError{Want: "tyre-diagnostics object", Got: schema.TypeName(doc)}
	}

	tires, err := schema.MustObject(obj, keyTires)
	if err != nil {
		return nil, err
	}

	diag := &Diagnostics{
		Mileage: schema.Float(obj, keyMileage),
	}
	if unit := schema.String(obj, keyMileageUnit); unit != nil {
		diag.MileageUnit = *unit
	}

	for _, w := range wheelKeys {
		wheel, err := schema.MustObject(tires, w.key)
		if err != nil {
			return nil, &schema.MissingFieldError{Field: keyTires + "." + w.key}
		}
		pressure := schema.Float(wheel, keyPressure)
		if pressure == nil {
			return nil, &schema.MissingFieldError{Field: keyTires + "." + w.key + "." + keyPressure}
		}
		target := schema.Float(wheel, keyTarget)
		if target == nil {
			return nil, &schema.MissingFieldError{Field: keyTires + "." + w.key + "." + keyTarget}
		}
		diag.Wheels = append(diag.Wheels, Wheel{
			Label:       w.label,
			PressureBar: *pressure,
			TargetBar:   *target,
		})
	}
	return diag, nil
}

// Report writes the human-readable tyre block.
func (d *Diagnostics) Report(w io.Writer) error {
	var b strings.Builder

	mileage := ""
	if d.Mileage != nil {
		mileage = fmt.Sprintf(": mileage %.0f %s", *d.Mileage, strings.ToLower(d.MileageUnit))
	}
	fmt.Fprintf(&b, "Tyre diagnostics%s\n", mileage)

	for _, wheel := range d.Wheels {
		fmt.Fprintf(&b, "     %-11s %.2f bar (target %.2f bar)\n",
			wheel.Label+":", wheel.PressureBar, wheel.TargetBar)
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
