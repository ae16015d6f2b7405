package engine

import (
	"errors"
	"fmt"
	"math/rand"
)

// Generator produces the infinite sequence of upcoming shapes.
type Generator interface {
	Next() Shape
}

// GeneratorSource builds a fresh generator. Sessions call it on every start
// and restart.
type GeneratorSource func() Generator

// Policy names a piece generation strategy.
type Policy string

const (
	// PolicyBag deals the seven shapes in shuffled rounds.
	PolicyBag Policy = "bag"
	// PolicyUniform picks every shape independently and uniformly.
	PolicyUniform Policy = "uniform"
)

// ErrUnknownPolicy is returned for generator policies other than bag and uniform.
var ErrUnknownPolicy = errors.New("engine: unknown generator policy")

// ParsePolicy validates a policy name. An empty name selects PolicyBag.
func ParsePolicy(name string) (Policy, error) {
	switch Policy(name) {
	case "", PolicyBag:
		return PolicyBag, nil
	case PolicyUniform:
		return PolicyUniform, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// NewGenerator creates a seeded generator for the given policy.
func NewGenerator(policy Policy, seed int64) (Generator, error) {
	switch policy {
	case PolicyBag:
		return NewBagGenerator(seed), nil
	case PolicyUniform:
		return NewUniformGenerator(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}
}

// SeededSource returns a source whose n-th generator is seeded with seed+n,
// so consecutive games differ while a whole run stays reproducible.
func SeededSource(policy Policy, seed int64) (GeneratorSource, error) {
	if _, err := NewGenerator(policy, seed); err != nil {
		return nil, err
	}
	var n int64
	return func() Generator {
		g, _ := NewGenerator(policy, seed+n)
		n++
		return g
	}, nil
}

// FixedSource returns a source of generators that cycle the given shapes.
func FixedSource(shapes ...Shape) GeneratorSource {
	return func() Generator {
		return NewSequenceGenerator(shapes...)
	}
}

// BagGenerator shuffles all seven shapes into a bag and deals them out,
// refilling when empty. Every aligned window of seven draws holds each
// shape exactly once.
type BagGenerator struct {
	rng *rand.Rand
	bag []Shape
}

// NewBagGenerator creates a bag generator seeded for reproducibility.
func NewBagGenerator(seed int64) *BagGenerator {
	return &BagGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Next deals the next shape from the bag.
func (g *BagGenerator) Next() Shape {
	if len(g.bag) == 0 {
		g.refill()
	}
	s := g.bag[0]
	g.bag = g.bag[1:]
	return s
}

func (g *BagGenerator) refill() {
	bag := Shapes
	g.rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	g.bag = bag[:]
}

// UniformGenerator picks each shape independently with equal probability.
type UniformGenerator struct {
	rng *rand.Rand
}

// NewUniformGenerator creates a uniform generator seeded for reproducibility.
func NewUniformGenerator(seed int64) *UniformGenerator {
	return &UniformGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Next picks a random shape.
func (g *UniformGenerator) Next() Shape {
	return Shapes[g.rng.Intn(len(Shapes))]
}

// SequenceGenerator cycles a fixed list of shapes. Tests use it to script
// exact piece orders.
type SequenceGenerator struct {
	shapes []Shape
	pos    int
}

// NewSequenceGenerator panics if shapes is empty or holds a shape that is not
// playable.
func NewSequenceGenerator(shapes ...Shape) *SequenceGenerator {
	if len(shapes) == 0 {
		panic("engine: sequence generator needs at least one shape")
	}
	for _, s := range shapes {
		if !s.Valid() {
			panic(fmt.Sprintf("engine: sequence generator given unplayable shape %d", s))
		}
	}
	return &SequenceGenerator{shapes: append([]Shape(nil), shapes...)}
}

// Next returns the next shape in the cycle.
func (g *SequenceGenerator) Next() Shape {
	s := g.shapes[g.pos]
	g.pos = (g.pos + 1) % len(g.shapes)
	return s
}
