// Package id creates and checks opaque request identifiers.
package id

import (
	crerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

const maxLength = 64

// Generator creates opaque IDs for correlating requests across logs.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

// NewID returns a random (version 4) UUID.
func (g *RandomGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", crerr.Wrap(err, "generate request id")
	}

	return v.String(), nil
}

// Valid reports whether an inbound id is safe to propagate: non-empty, at
// most 64 bytes, and limited to [A-Za-z0-9._-].
func Valid(v string) bool {
	if v == "" || len(v) > maxLength {
		return false
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
