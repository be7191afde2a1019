package config

import "os"

const (
	EnvTuning   = "CANNON_TUNING"
	EnvLayout   = "CANNON_LAYOUT"
	EnvLogLevel = "CANNON_LOG_LEVEL"
	EnvGravity  = "CANNON_GRAVITY"
	EnvAir      = "CANNON_AIR"
	EnvPprof    = "CANNON_PPROF"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
