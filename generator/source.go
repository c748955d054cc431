package generator

import (
	"fmt"

	"goqc/value"
)

// MaxDepth bounds recursive generation of composite values. The built-in
// sequence and record profiles produce empty composites at the cap;
// profiles for custom recursive kinds should consult Depth the same way.
const MaxDepth = 4

// A Source holds the generation state for one verification run: the shared
// random stream, the profile registry, and the per-site catalog cursors.
//
// Draws happen in a strict order, one parameter at a time, so that the
// entire run is a pure function of the seed. A Source is not safe for
// concurrent use and is not meant to outlive the run it was created for.
type Source struct {
	reg     *Registry
	rng     Rand
	cursors map[string]int
	site    string
	depth   int
}

// NewSource creates the generation state for a run.
func NewSource(reg *Registry, rng Rand) *Source {
	return &Source{
		reg:     reg,
		rng:     rng,
		cursors: make(map[string]int),
	}
}

// Rand exposes the run's random stream to bias profiles.
func (g *Source) Rand() Rand { return g.rng }

// Depth reports the current composite nesting level.
func (g *Source) Depth() int { return g.depth }

// Generate draws the next value of the tag's family for a named generation
// site, within the size bound.
//
// Each (site, kind) pair walks the kind's edge-case catalog to exhaustion
// first and samples uniformly afterwards, so the catalog actually gets
// exercised within a bounded pool instead of being drowned out by uniform
// noise.
func (g *Source) Generate(site string, tag value.Tag, size int) (any, error) {
	g.site = site
	g.depth = 0
	return g.draw(tag, size)
}

// Component draws a constituent of a composite value, with a halved size
// budget. Bias profiles for composite kinds generate their elements and
// fields through it.
func (g *Source) Component(tag value.Tag, size int) (any, error) {
	g.depth++
	defer func() { g.depth-- }()
	return g.draw(tag, size/2)
}

func (g *Source) draw(tag value.Tag, size int) (any, error) {
	if size < 0 {
		size = 0
	}
	p, ok := g.reg.Profile(tag.Kind())
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, tag.Kind())
	}
	if p.Catalog != nil {
		key := g.site + "|" + string(tag.Kind())
		i := g.cursors[key]
		v, ok, err := p.Catalog(g, tag, size, i)
		if err != nil {
			return nil, err
		}
		if ok {
			g.cursors[key] = i + 1
			return v, nil
		}
	}
	if p.Uniform == nil {
		return nil, fmt.Errorf("generator: Kind %q has an empty bias profile", tag.Kind())
	}
	return p.Uniform(g, tag, size)
}
