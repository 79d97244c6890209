// Package config provides env-backed configuration defaults. Values come
// from the process environment, optionally seeded from a .env file in the
// working directory.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads a .env file into the environment. With no paths, ".env" in the
// current directory is used. A missing file is reported as an error, but
// callers normally ignore it and fall back to the system environment.
func Load(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	return godotenv.Load(paths...)
}

// GetEnv returns the environment variable named by key, or fallback when the
// variable is unset or empty.
func GetEnv(key, fallback string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by
// key, or fallback when unset, empty, or not an integer.
func GetEnvInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return fallback
}

// GetEnvBool returns the boolean value of the environment variable named by
// key, or fallback when unset, empty, or not parseable as a bool.
func GetEnvBool(key string, fallback bool) bool {
	if s := os.Getenv(key); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
	}
	return fallback
}
