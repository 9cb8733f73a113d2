package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for messages, rotation notices and sync
// frames. UUIDv7 keeps them sortable by creation time, which makes relay
// logs and message ordering easier to follow.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 if the
// monotonic clock source is unavailable.
func (g *UUIDGenerator) Generate() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}
