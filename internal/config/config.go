// Package config reads deployment configuration from the environment.
package config

import "os"

// Env returns the value of the environment variable or the fallback when
// it is unset or empty.
func Env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
