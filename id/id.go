// Package id generates the opaque identity strings used for supervisors
// and child records.
package id

import "github.com/google/uuid"

// New returns a fresh, randomly generated identity string.
func New() string {
	return uuid.New().String()
}
