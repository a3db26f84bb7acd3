package rut

import (
	"math/rand/v2"
	"strconv"
	"sync"
	"time"
)

// Default bounds for generated correlatives, roughly the range issued to
// living persons.
const (
	DefaultMinCorrelative = 1_000_000
	DefaultMaxCorrelative = 25_000_000
)

// VerifierFor returns the verifier a correlative must carry.
func VerifierFor(correlative int) byte {
	return Checksum(correlative)
}

// FromCorrelative builds a checksum-valid RUT from a bare correlative.
func FromCorrelative(correlative int) (RUT, error) {
	if correlative < 1 {
		return RUT{}, &ParseError{Input: strconv.Itoa(correlative), Reason: ReasonZeroCorrelative}
	}
	return RUT{correlative: correlative, verifier: Checksum(correlative)}, nil
}

// Generator produces random checksum-valid RUTs from an injected source.
// It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	min int
	max int
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRange limits generated correlatives to [min, max). Invalid ranges are ignored.
func WithRange(min, max int) GeneratorOption {
	return func(g *Generator) {
		if min < 1 || max <= min {
			return
		}
		g.min, g.max = min, max
	}
}

// NewGenerator creates a Generator reading from src. A nil src falls back to
// a time-seeded PCG source; pass a fixed source for reproducible output.
func NewGenerator(src rand.Source, opts ...GeneratorOption) *Generator {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.NewPCG(now, now>>1|1)
	}
	g := &Generator{
		rnd: rand.New(src),
		min: DefaultMinCorrelative,
		max: DefaultMaxCorrelative,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a random RUT whose verifier matches its correlative.
func (g *Generator) Generate() RUT {
	g.mu.Lock()
	correlative := g.min + g.rnd.IntN(g.max-g.min)
	g.mu.Unlock()
	return RUT{correlative: correlative, verifier: Checksum(correlative)}
}

var defaultGenerator = NewGenerator(nil)

// Generate returns a random checksum-valid RUT from the package generator.
func Generate() RUT {
	return defaultGenerator.Generate()
}
