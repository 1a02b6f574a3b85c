// Package uuid wraps ID generation so battles get mockable identifiers
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator is an interface for generating IDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with random v4 UUIDs,
// optionally namespaced by a prefix such as "battle"
type GoogleUUIDGenerator struct {
	prefix string
}

// New generates a new ID string
func (g *GoogleUUIDGenerator) New() string {
	id := uuid.New().String()
	if g.prefix == "" {
		return id
	}
	return g.prefix + "_" + id
}

// NewGoogleUUIDGenerator creates a generator of bare UUIDs
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// NewPrefixedGenerator creates a generator of "<prefix>_<uuid>" IDs
func NewPrefixedGenerator(prefix string) *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{prefix: prefix}
}
