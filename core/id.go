package core

import "github.com/google/uuid"

// NewID generates a unique identifier used to correlate requests and batch
// runs in logs and results.
func NewID() string { return uuid.NewString() }
