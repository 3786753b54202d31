package utils

import "github.com/google/uuid"

// UUIDGenerator issues request trace identifiers. It prefers version 7 UUIDs
// because their leading timestamp keeps log lines of concurrent requests
// sortable by arrival.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new identifier, falling back to a random version 4 UUID
// when the system clock refuses to produce a version 7 one.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
