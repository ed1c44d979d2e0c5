// Package config loads runtime configuration for the popx client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   session database DSN
//	-w int      submit delay (milliseconds)
//	-l string   log level (debug|info|warn|error)
//
// # JSON schema
//
//	{
//	  "session_dsn": "file:popx_session?mode=memory&cache=shared",
//	  "submit_delay": "1s",
//	  "log_level": "info"
//	}
//
// This package does not read environment variables.
package config
