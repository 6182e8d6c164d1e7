package charging

import (
	"github.com/evtools/cardata/internal/schema"
)

// Vendor field names as they appear in the CARDATA charging-history export.
const (
	keyStartTime      = "startTime"
	keyEndTime        = "endTime"
	keyTimeZone       = "timeZone"
	keyStartSoc       = "displayedStartSoc"
	keyEndSoc         = "displayedSoc"
	keyGridEnergy     = "energyConsumedFromPowerGridKwh"
	keyBatteryEnergy  = "energyIncreaseHvbKwh"
	keyMileage        = "mileage"
	keyMileageUnit    = "mileageUnits"
	keyPreconditioned = "isPreconditioningActivated"
	keyLocation       = "chargingLocation"
	keyAddress        = "formattedAddress"
	keyPublic         = "publicChargingPoint"
	keyDuration       = "totalChargingDurationSec"
)

// ExtractSession normalizes one raw item of the charging-history list.
//
// A session without both timestamps was still running when the export was
// generated; it returns schema.ErrOpenSession and must be skipped silently.
// The location block and the public flag are structurally mandatory and
// fail loudly when absent. Everything else reads as nil when missing so the
// fallback policies in Derive see the absence.
func ExtractSession(item any) (*Session, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		return nil, &schema.SchemaError{Want: "session object", Got: schema.TypeName(item)}
	}

	start := schema.Float(obj, keyStartTime)
	end := schema.Float(obj, keyEndTime)
	if start == nil || *start == 0 || end == nil || *end == 0 {
		return nil, schema.ErrOpenSession
	}

	loc, err := schema.MustObject(obj, keyLocation)
	if err != nil {
		return nil, err
	}
	address, err := schema.MustString(loc, keyAddress, keyLocation+"."+keyAddress)
	if err != nil {
		return nil, err
	}
	public, err := schema.MustBool(obj, keyPublic, keyPublic)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		StartTime:        int64(*start),
		EndTime:          int64(*end),
		StartSoc:         schema.Float(obj, keyStartSoc),
		EndSoc:           schema.Float(obj, keyEndSoc),
		GridEnergyKwh:    schema.Float(obj, keyGridEnergy),
		BatteryEnergyKwh: schema.Float(obj, keyBatteryEnergy),
		Mileage:          schema.Float(obj, keyMileage),
		Preconditioned:   schema.Bool(obj, keyPreconditioned),
		LocationAddress:  address,
		IsPublic:         public,
	}
	if tz := schema.String(obj, keyTimeZone); tz != nil {
		sess.TimeZone = *tz
	}
	if unit := schema.String(obj, keyMileageUnit); unit != nil {
		sess.MileageUnit = *unit
	}
	if dur := schema.Float(obj, keyDuration); dur != nil {
		sess.TotalDurationSec = int64(*dur)
	}
	return sess, nil
}
