// Package service provides card number generation and expiry computation.
package service

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/allisson/cardledger/internal/card/domain"
)

// NumberGenerator produces plaintext card numbers.
type NumberGenerator interface {
	Generate() string
}

// randomNumberGenerator draws each digit independently and uniformly from [0,9].
// The numbers are demo identifiers, not real PANs, so the source needs no
// cryptographic strength.
type randomNumberGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewNumberGenerator returns a generator backed by src. rand.Rand is not safe for
// concurrent use, so access is serialized.
func NewNumberGenerator(src rand.Source) NumberGenerator {
	return &randomNumberGenerator{rnd: rand.New(src)}
}

// NewDefaultNumberGenerator returns a generator seeded from crypto/rand.
func NewDefaultNumberGenerator() NumberGenerator {
	var seed [32]byte
	// crypto/rand.Read never returns an error.
	crand.Read(seed[:])
	return NewNumberGenerator(rand.NewChaCha8(seed))
}

// NewSeededNumberGenerator returns a deterministic generator, useful in tests.
func NewSeededNumberGenerator(seed uint64) NumberGenerator {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], seed)
	return NewNumberGenerator(rand.NewChaCha8(s))
}

// Generate returns a domain.NumberLength digit string.
func (g *randomNumberGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	b.Grow(domain.NumberLength)
	for range domain.NumberLength {
		b.WriteByte(byte('0' + g.rnd.IntN(10)))
	}
	return b.String()
}
