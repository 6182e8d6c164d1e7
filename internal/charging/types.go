package charging

// Session is the normalized record for one completed charging event.
// We use pointers for the numeric and boolean fields that vendor software
// revisions rename or drop, so a missing value (nil) stays distinguishable
// from a value of 0 until the fallback policies in derived.go run.
type Session struct {
	// Index is the 0-based position within the input document, assigned
	// by the batch driver rather than read from the export.
	Index int

	StartTime int64  // epoch seconds
	EndTime   int64  // epoch seconds
	TimeZone  string // IANA zone name, may differ per session

	StartSoc *float64 // percent
	EndSoc   *float64 // percent

	GridEnergyKwh    *float64 // drawn from the grid
	BatteryEnergyKwh *float64 // stored in the HV battery; absent in newer exports

	Mileage     *float64
	MileageUnit string

	LocationAddress string
	IsPublic        bool

	Preconditioned *bool // read from the export but not rendered

	TotalDurationSec int64
}
