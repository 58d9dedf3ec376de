// Package utils provides utility functions for the application
//
//nolint:revive // Package name 'utils' is intentional and commonly used in Go projects
package utils

import (
	"github.com/google/uuid"
)

// GenerateRandomID creates a random identifier string UUID-like
func GenerateRandomID() string {
	return uuid.New().String()
}

// ErrMeta builds log metadata carrying an error and optional extra pairs.
func ErrMeta(err error, kv ...string) map[string]string {
	meta := make(map[string]string, len(kv)/2+1)
	if err != nil {
		meta["error"] = err.Error()
	}
	for i := 0; i+1 < len(kv); i += 2 {
		meta[kv[i]] = kv[i+1]
	}
	return meta
}
