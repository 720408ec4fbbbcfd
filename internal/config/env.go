// Package config provides environment configuration helpers for waymark
// commands.
package config

import "os"

// Defaults for the demo commands.
const (
	DefaultMonitorPort = "7717"
	DefaultLogLevel    = "info"
)

// LogLevel returns the log level from WAYMARK_LOG, or the default.
func LogLevel() string {
	if lvl := os.Getenv("WAYMARK_LOG"); lvl != "" {
		return lvl
	}
	return DefaultLogLevel
}

// MonitorPort returns the dashboard port from WAYMARK_MONITOR_PORT,
// or the default.
func MonitorPort() string {
	if port := os.Getenv("WAYMARK_MONITOR_PORT"); port != "" {
		return port
	}
	return DefaultMonitorPort
}

// TuningPath returns the optional YAML tuning override path from
// WAYMARK_TUNING. Empty means built-in tuning only.
func TuningPath() string {
	return os.Getenv("WAYMARK_TUNING")
}
