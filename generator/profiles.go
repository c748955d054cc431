package generator

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"goqc/value"
)

// Built-in bias profiles. Each catalog over-represents the values that
// break real code: zeros, ones, sign flips, extreme magnitudes, empty and
// single-element composites, awkward text.

// Runes drawn by the uniform text sampler. The multi-byte entries keep
// rune-length and byte-length from agreeing by accident.
const textAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 _-+./:é世"

func numberProfile() BiasProfile {
	catalog := []float64{
		0, 1, -1,
		math.MaxFloat64, -math.MaxFloat64,
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
	}
	return BiasProfile{
		Catalog: func(_ *Source, _ value.Tag, _, i int) (any, bool, error) {
			if i >= len(catalog) {
				return nil, false, nil
			}
			return catalog[i], true, nil
		},
		Uniform: func(g *Source, _ value.Tag, size int) (any, error) {
			return (g.Rand().Float64()*2 - 1) * float64(size), nil
		},
	}
}

func integerProfile() BiasProfile {
	catalog := []int64{0, 1, -1, math.MaxInt64, math.MinInt64}
	return BiasProfile{
		Catalog: func(_ *Source, _ value.Tag, _, i int) (any, bool, error) {
			if i >= len(catalog) {
				return nil, false, nil
			}
			return catalog[i], true, nil
		},
		Uniform: func(g *Source, _ value.Tag, size int) (any, error) {
			s := int64(size)
			return g.Rand().Int63n(2*s+1) - s, nil
		},
	}
}

func textProfile() BiasProfile {
	catalog := []string{"", " ", "\n", `"'`, "héllo, 世界"}
	alphabet := []rune(textAlphabet)
	return BiasProfile{
		Catalog: func(_ *Source, _ value.Tag, _, i int) (any, bool, error) {
			if i >= len(catalog) {
				return nil, false, nil
			}
			return catalog[i], true, nil
		},
		Uniform: func(g *Source, _ value.Tag, size int) (any, error) {
			n := g.Rand().Intn(size + 1)
			var sb strings.Builder
			for j := 0; j < n; j++ {
				sb.WriteRune(alphabet[g.Rand().Intn(len(alphabet))])
			}
			return sb.String(), nil
		},
	}
}

func booleanProfile() BiasProfile {
	catalog := []bool{true, false}
	return BiasProfile{
		Catalog: func(_ *Source, _ value.Tag, _, i int) (any, bool, error) {
			if i >= len(catalog) {
				return nil, false, nil
			}
			return catalog[i], true, nil
		},
		Uniform: func(g *Source, _ value.Tag, _ int) (any, error) {
			return g.Rand().Intn(2) == 0, nil
		},
	}
}

func nullProfile() BiasProfile {
	return BiasProfile{
		Uniform: func(*Source, value.Tag, int) (any, error) {
			return nil, nil
		},
	}
}

func sequenceProfile() BiasProfile {
	return BiasProfile{
		Catalog: func(g *Source, tag value.Tag, size, i int) (any, bool, error) {
			switch i {
			case 0:
				return []any{}, true, nil
			case 1:
				if g.Depth() >= MaxDepth {
					return []any{}, true, nil
				}
				e, err := g.Component(sequenceElem(g, tag), size)
				if err != nil {
					return nil, false, err
				}
				return []any{e}, true, nil
			}
			return nil, false, nil
		},
		Uniform: func(g *Source, tag value.Tag, size int) (any, error) {
			if g.Depth() >= MaxDepth {
				return []any{}, nil
			}
			n := g.Rand().Intn(boundedLength(size) + 1)
			out := make([]any, n)
			for j := 0; j < n; j++ {
				e, err := g.Component(sequenceElem(g, tag), size)
				if err != nil {
					return nil, err
				}
				out[j] = e
			}
			return out, nil
		},
	}
}

func recordProfile() BiasProfile {
	return BiasProfile{
		Catalog: func(g *Source, tag value.Tag, size, i int) (any, bool, error) {
			if fields := recordFields(tag); fields != nil {
				// A record with declared fields has exactly one shape; the
				// bias comes from the per-field component draws.
				return nil, false, nil
			}
			switch i {
			case 0:
				return map[string]any{}, true, nil
			case 1:
				if g.Depth() >= MaxDepth {
					return map[string]any{}, true, nil
				}
				v, err := g.Component(pickScalar(g), size)
				if err != nil {
					return nil, false, err
				}
				return map[string]any{"a": v}, true, nil
			}
			return nil, false, nil
		},
		Uniform: func(g *Source, tag value.Tag, size int) (any, error) {
			fields := recordFields(tag)
			if fields != nil {
				out := make(map[string]any, len(fields))
				keys := maps.Keys(fields)
				slices.Sort(keys)
				for _, k := range keys {
					v, err := g.Component(fields[k], size)
					if err != nil {
						return nil, err
					}
					out[k] = v
				}
				return out, nil
			}
			if g.Depth() >= MaxDepth {
				return map[string]any{}, nil
			}
			bound := boundedLength(size)
			if bound > 6 {
				bound = 6
			}
			n := g.Rand().Intn(bound + 1)
			out := make(map[string]any, n)
			for j := 0; j < n; j++ {
				v, err := g.Component(pickScalar(g), size)
				if err != nil {
					return nil, err
				}
				out[freshKey(g, out, j)] = v
			}
			return out, nil
		},
	}
}

// The element tag of a sequence, or a freshly picked scalar tag for free
// sequences. Tags of the sequence kind that do not expose an element tag
// generate free-form.
func sequenceElem(g *Source, tag value.Tag) value.Tag {
	if st, ok := tag.(value.SequenceTag); ok {
		if elem := st.Elem(); elem != nil {
			return elem
		}
	}
	return pickScalar(g)
}

func recordFields(tag value.Tag) map[string]value.Tag {
	rt, ok := tag.(value.RecordTag)
	if !ok {
		return nil
	}
	return rt.Fields()
}

func pickScalar(g *Source) value.Tag {
	scalars := []value.Tag{
		value.NumberTag(),
		value.IntegerTag(),
		value.TextTag(),
		value.BooleanTag(),
		value.NullTag(),
	}
	return scalars[g.Rand().Intn(len(scalars))]
}

// Composite lengths grow slower than the raw size bound so that large
// bounds widen scalar magnitudes without exploding composite values.
func boundedLength(size int) int {
	m := 8 + size/4
	if m > size {
		m = size
	}
	return m
}

func freshKey(g *Source, rec map[string]any, j int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	for try := 0; try < 10; try++ {
		n := 1 + g.Rand().Intn(3)
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteByte(letters[g.Rand().Intn(len(letters))])
		}
		if _, taken := rec[sb.String()]; !taken {
			return sb.String()
		}
	}
	return fmt.Sprintf("k%v", j)
}
