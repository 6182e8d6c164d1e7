package config

// Central place for application-wide defaults. Changing a value here
// immediately affects all components that import
// github.com/evtools/cardata/internal/config.

const (
	// DefaultCSVName is the output file written in csv mode when no
	// -output flag is given. The vendor calls the charging-history
	// export "Ladehistorie"; keeping the name makes the file easy to
	// associate with its source.
	DefaultCSVName = "Ladehistorie.csv"

	// EnvPrefix namespaces the environment fallbacks of all CLI flags.
	EnvPrefix = "CARDATA_"
)

// Report modes selectable at startup.
const (
	ReportCharging = "charging"
	ReportTyres    = "tyres"
	ReportDump     = "dump"
)
