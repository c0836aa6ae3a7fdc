package types

import "github.com/google/uuid"

// NewID generates an opaque identifier for certificates and line items.
// Random UUIDs make collisions astronomically unlikely without a global
// registry check.
func NewID() string {
	return uuid.NewString()
}
