package utils

import "github.com/google/uuid"

// NewID returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if the system clock source fails.
//
// Time-ordered IDs keep queue/conflict rows roughly insertion-ordered in
// their B-tree indexes.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
