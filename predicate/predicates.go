package predicate

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"goqc/binding"
	"goqc/value"
)

// The standard predicate family. Each predicate names the binding it reads,
// renders a fixed description of itself, and composes with And/Or/Not.

// A Membership predicate checks that a binding belongs to a tag family.
//
// The verification runner also inspects Membership preconditions to derive a
// parameter's generator when no explicit generation hint is declared.
type Membership struct {
	Param string
	Tag   value.Tag
}

// Is checks that param is a value of the given tag, e.g. "x is number".
func Is(param string, tag value.Tag) *Membership {
	return &Membership{Param: param, Tag: tag}
}

func (p *Membership) Eval(b binding.Bindings) bool {
	v, ok := b.Get(p.Param)
	return ok && p.Tag.Member(v)
}

func (p *Membership) Describe(binding.Bindings) string {
	return fmt.Sprintf("%v is %v", p.Param, p.Tag)
}

func (p *Membership) Refs() []string { return []string{p.Param} }

// An ElementMembership predicate checks every element of a sequence binding
// against a tag. The runner infers a sequence generator from it.
type ElementMembership struct {
	Param string
	Elem  value.Tag
}

// EachIs checks that every element of the sequence bound to param belongs to
// the elem tag. A non-sequence value fails the predicate.
func EachIs(param string, elem value.Tag) *ElementMembership {
	return &ElementMembership{Param: param, Elem: elem}
}

func (p *ElementMembership) Eval(b binding.Bindings) bool {
	v, ok := b.Get(p.Param)
	if !ok {
		return false
	}
	elems, ok := value.Elements(v)
	if !ok {
		return false
	}
	for _, e := range elems {
		if !p.Elem.Member(e) {
			return false
		}
	}
	return true
}

func (p *ElementMembership) Describe(binding.Bindings) string {
	return fmt.Sprintf("every element of %v is %v", p.Param, p.Elem)
}

func (p *ElementMembership) Refs() []string { return []string{p.Param} }

type check struct {
	refs []string
	eval func(binding.Bindings) bool
	desc string
}

func (p *check) Eval(b binding.Bindings) bool { return p.eval(b) }

func (p *check) Describe(binding.Bindings) string { return p.desc }

func (p *check) Refs() []string { return p.refs }

// Each checks that every element of the sequence bound to param satisfies
// cond. desc describes the condition on one element.
func Each(param string, cond func(v any) bool, desc string) Predicate {
	return &check{
		refs: []string{param},
		eval: func(b binding.Bindings) bool {
			v, ok := b.Get(param)
			if !ok {
				return false
			}
			elems, ok := value.Elements(v)
			if !ok {
				return false
			}
			for _, e := range elems {
				if !cond(e) {
					return false
				}
			}
			return true
		},
		desc: fmt.Sprintf("every element of %v satisfies %v", param, desc),
	}
}

func compare(param string, bound float64, desc string, holds func(n float64) bool) Predicate {
	return &check{
		refs: []string{param},
		eval: func(b binding.Bindings) bool {
			v, ok := b.Get(param)
			if !ok {
				return false
			}
			n, ok := value.Numeric(v)
			return ok && holds(n)
		},
		desc: desc,
	}
}

// GreaterThan checks that param is numeric and strictly above bound.
func GreaterThan(param string, bound float64) Predicate {
	return compare(param, bound, fmt.Sprintf("%v > %v", param, bound), func(n float64) bool { return n > bound })
}

// AtLeast checks that param is numeric and not below bound.
func AtLeast(param string, bound float64) Predicate {
	return compare(param, bound, fmt.Sprintf("%v >= %v", param, bound), func(n float64) bool { return n >= bound })
}

// LessThan checks that param is numeric and strictly below bound.
func LessThan(param string, bound float64) Predicate {
	return compare(param, bound, fmt.Sprintf("%v < %v", param, bound), func(n float64) bool { return n < bound })
}

// AtMost checks that param is numeric and not above bound.
func AtMost(param string, bound float64) Predicate {
	return compare(param, bound, fmt.Sprintf("%v <= %v", param, bound), func(n float64) bool { return n <= bound })
}

func length(param string, desc string, holds func(l int) bool) Predicate {
	return &check{
		refs: []string{param},
		eval: func(b binding.Bindings) bool {
			v, ok := b.Get(param)
			if !ok {
				return false
			}
			l, ok := value.Length(v)
			return ok && holds(l)
		},
		desc: desc,
	}
}

// LengthIs checks that param has exactly length n. Works on text, sequences
// and records.
func LengthIs(param string, n int) Predicate {
	return length(param, fmt.Sprintf("length(%v) == %v", param, n), func(l int) bool { return l == n })
}

// LengthAtMost checks that param has length n or shorter.
func LengthAtMost(param string, n int) Predicate {
	return length(param, fmt.Sprintf("length(%v) <= %v", param, n), func(l int) bool { return l <= n })
}

// NotEmpty checks that param has a length of at least one.
func NotEmpty(param string) Predicate {
	return length(param, fmt.Sprintf("%v is not empty", param), func(l int) bool { return l > 0 })
}

// LengthMatches checks that the length of one binding equals the integral
// value of another, e.g. LengthMatches("result", "n") for
// "length(result) == n".
func LengthMatches(param, count string) Predicate {
	return &check{
		refs: []string{param, count},
		eval: func(b binding.Bindings) bool {
			v, ok := b.Get(param)
			if !ok {
				return false
			}
			l, ok := value.Length(v)
			if !ok {
				return false
			}
			cv, ok := b.Get(count)
			if !ok {
				return false
			}
			n, ok := value.Integral(cv)
			return ok && int64(l) == n
		},
		desc: fmt.Sprintf("length(%v) == %v", param, count),
	}
}

// Equals checks a binding against a fixed expected value by deep structural
// equality. The comparison is representation-sensitive: an int64 does not
// equal an int of the same value.
func Equals(param string, want any) Predicate {
	return &check{
		refs: []string{param},
		eval: func(b binding.Bindings) bool {
			v, ok := b.Get(param)
			return ok && cmp.Equal(v, want)
		},
		desc: fmt.Sprintf("%v == %v", param, want),
	}
}

// SameAs checks two bindings for deep structural equality, e.g.
// SameAs("result", "xs") for a function expected to return its input.
func SameAs(a, b string) Predicate {
	return &check{
		refs: []string{a, b},
		eval: func(env binding.Bindings) bool {
			va, ok := env.Get(a)
			if !ok {
				return false
			}
			vb, ok := env.Get(b)
			return ok && cmp.Equal(va, vb)
		},
		desc: fmt.Sprintf("%v equals %v", a, b),
	}
}
