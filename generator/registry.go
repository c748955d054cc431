package generator

import (
	"errors"

	"goqc/value"
)

var ErrUnknownKind = errors.New("generator: No bias profile registered for kind")

// A BiasProfile describes how values of one kind are produced: a finite
// catalog of deliberately interesting values, and an organic uniform sampler
// bounded by a size budget.
//
// The catalog is a positional enumeration. The source walks it from zero
// until it reports ok = false, so every entry is exercised exactly once per
// generation site before uniform sampling takes over; entries are never
// re-rolled at random. Either function may be nil: a nil catalog skips
// straight to uniform sampling.
type BiasProfile struct {
	Catalog func(g *Source, tag value.Tag, size, i int) (v any, ok bool, err error)
	Uniform func(g *Source, tag value.Tag, size int) (any, error)
}

// The Registry maps kinds to bias profiles.
//
// It is open: registering a profile for a new kind extends generation to
// values of that kind, and re-registering a built-in kind overrides it.
type Registry struct {
	profiles map[value.Kind]BiasProfile
}

// NewRegistry returns a registry holding the built-in profiles for the
// number, integer, text, boolean, null, sequence and record kinds.
func NewRegistry() *Registry {
	r := &Registry{profiles: make(map[value.Kind]BiasProfile)}
	r.Register(value.Number, numberProfile())
	r.Register(value.Integer, integerProfile())
	r.Register(value.Text, textProfile())
	r.Register(value.Boolean, booleanProfile())
	r.Register(value.Null, nullProfile())
	r.Register(value.SequenceKind, sequenceProfile())
	r.Register(value.RecordKind, recordProfile())
	return r
}

// Register binds a bias profile to a kind, replacing any existing one.
func (r *Registry) Register(kind value.Kind, p BiasProfile) {
	r.profiles[kind] = p
}

// Profile looks up the bias profile for a kind.
func (r *Registry) Profile(kind value.Kind) (BiasProfile, bool) {
	p, ok := r.profiles[kind]
	return p, ok
}
