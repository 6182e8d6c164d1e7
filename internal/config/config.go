package config

import (
	"fmt"
)

// Config holds all configuration options for the cardata CLI.
type Config struct {
	// Output selection
	Report  string `json:"report"`      // which processor handles the input files
	CSVMode bool   `json:"csv_mode"`    // write a CSV file instead of the text report
	Output  string `json:"output_path"` // CSV target path (csv mode only)

	// Generic dump
	RecursionLimit int `json:"recursion_limit"` // 0 = unlimited depth

	// Application
	Verbose bool `json:"verbose"` // enable verbose logging
}

// GetDefaultConfig returns a configuration with sensible defaults.
func GetDefaultConfig() *Config {
	return &Config{
		Report:         ReportCharging,
		Output:         DefaultCSVName,
		RecursionLimit: 0,
		Verbose:        false,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Report {
	case ReportCharging, ReportTyres, ReportDump:
	default:
		return fmt.Errorf("unknown report mode %q (want %s, %s or %s)",
			c.Report, ReportCharging, ReportTyres, ReportDump)
	}

	if c.CSVMode {
		if c.Report != ReportCharging {
			return fmt.Errorf("csv output is only available for the %s report", ReportCharging)
		}
		if c.Output == "" {
			return fmt.Errorf("csv mode requires an output path")
		}
	}

	if c.RecursionLimit < 0 {
		c.RecursionLimit = 0 // treat negative as unlimited
	}
	return nil
}
