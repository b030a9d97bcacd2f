package domain

import "github.com/google/uuid"

// NewSessionID creates a unique identifier for one run of a session.
func NewSessionID() string {
	return uuid.New().String()
}
