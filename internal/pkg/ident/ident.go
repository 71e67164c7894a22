// Package ident generates entity identifiers and human-facing reference
// numbers. References keep the familiar PREFIX-timestamp-suffix shape but
// draw the suffix from a ULID instead of wall-clock randomness, so the
// generator can be injected and made deterministic in tests.
package ident

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Generator produces identifiers and reference numbers.
type Generator interface {
	NewID() uuid.UUID
	Reference(prefix string) string
	ProviderMessageID(prefix string) string
}

// ULIDGenerator is the default Generator. Entropy access is serialized;
// ulid monotonic readers are not safe for concurrent use.
type ULIDGenerator struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy io.Reader
}

// New returns a generator backed by monotonic ULID entropy.
func New() *ULIDGenerator {
	now := time.Now
	return &ULIDGenerator{
		now:     now,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(now().UnixNano())), 0),
	}
}

// NewDeterministic returns a generator with a fixed clock and seeded
// entropy, for tests.
func NewDeterministic(now time.Time, seed int64) *ULIDGenerator {
	return &ULIDGenerator{
		now:     func() time.Time { return now },
		entropy: ulid.Monotonic(rand.New(rand.NewSource(seed)), 0),
	}
}

func (g *ULIDGenerator) NewID() uuid.UUID {
	return uuid.New()
}

// Reference builds a reference like CASE-20240131120000-4H7K9Q: the
// given prefix, a UTC timestamp, and the trailing six entropy characters
// of a fresh ULID.
func (g *ULIDGenerator) Reference(prefix string) string {
	now := g.now().UTC()
	id := g.next(now)
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102150405"), id[len(id)-6:])
}

// ProviderMessageID builds an external-provider style identifier such as
// wamid.01HZX3... using a full lowercased ULID.
func (g *ULIDGenerator) ProviderMessageID(prefix string) string {
	id := g.next(g.now().UTC())
	return fmt.Sprintf("%s.%s", prefix, strings.ToLower(id))
}

func (g *ULIDGenerator) next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), g.entropy).String()
}
