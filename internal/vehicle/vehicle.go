package vehicle

// Profile holds the fixed battery characteristics of one vehicle model.
// The charging exports never carry the pack capacity, so the SoC-delta
// energy estimate depends on this constant.
type Profile struct {
	Name             string
	NetCapacityKwh   float64
	GrossCapacityKwh float64
}

// IX1 is the BMW iX1 xDrive30 battery profile.
var IX1 = Profile{
	Name:             "iX1",
	NetCapacityKwh:   64.8,
	GrossCapacityKwh: 66.5,
}

// Default returns the profile used when none is configured.
func Default() Profile { return IX1 }
