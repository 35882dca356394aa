// Package constants holds application-wide fixed values.
package constants

const (
	AppName = "wellnest"

	ConfigName   = "config"
	ConfigFormat = "yaml"

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. WELLNEST_DATABASE_HOST overrides database.host.
	EnvPrefix = "WELLNEST"
)
