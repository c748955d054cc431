package predicate

import (
	"fmt"
	"strings"

	"goqc/binding"
)

// A Predicate is a named boolean check over a binding environment.
//
// It pairs an evaluator with enough structure to render a textual
// description of itself, so a failing check can be reported by what it says
// rather than as an opaque function value.
type Predicate interface {
	// Eval reports whether the predicate holds for the bindings.
	//
	// Evaluation must be pure: no mutation of the bindings and no observable
	// side effects. Contracts rely on this to evaluate every predicate in a
	// list, not just up to the first failure.
	Eval(b binding.Bindings) bool

	// Describe renders the human-readable form of the check. The rendered
	// text is used verbatim in diagnostics and never for control flow.
	Describe(b binding.Bindings) string
}

// A Referrer is a predicate that can name the bindings it reads.
//
// Contracts use it to validate referenced names against the declared
// parameters at definition time. Predicates built from opaque closures do not
// implement it and are exempt from that validation.
type Referrer interface {
	Refs() []string
}

type fixed struct {
	eval func(binding.Bindings) bool
	desc string
}

// New builds a predicate from an evaluator and a fixed description.
func New(eval func(binding.Bindings) bool, desc string) Predicate {
	return fixed{eval: eval, desc: desc}
}

func (p fixed) Eval(b binding.Bindings) bool { return p.eval(b) }

func (p fixed) Describe(binding.Bindings) string { return p.desc }

type described struct {
	eval func(binding.Bindings) bool
	desc func(binding.Bindings) string
}

// NewDescribed builds a predicate whose description interpolates the
// bindings it is rendered against.
func NewDescribed(eval func(binding.Bindings) bool, desc func(binding.Bindings) string) Predicate {
	return described{eval: eval, desc: desc}
}

func (p described) Eval(b binding.Bindings) bool { return p.eval(b) }

func (p described) Describe(b binding.Bindings) string { return p.desc(b) }

// A Conjunction holds when all of its operands hold.
type Conjunction struct {
	operands []Predicate
}

// And combines predicates with the "and" connective.
//
// Every operand is evaluated eagerly. Whether a failing check short circuits
// anything is the contract's decision, not the predicate's, and eager
// evaluation keeps aggregate failure reporting possible.
func And(operands ...Predicate) Predicate {
	if len(operands) == 1 {
		return operands[0]
	}
	return &Conjunction{operands: operands}
}

// The combined predicates, in declaration order.
func (p *Conjunction) Operands() []Predicate { return p.operands }

func (p *Conjunction) Eval(b binding.Bindings) bool {
	holds := true
	for _, op := range p.operands {
		if !op.Eval(b) {
			holds = false
		}
	}
	return holds
}

func (p *Conjunction) Describe(b binding.Bindings) string {
	return describeJoined(p.operands, "and", b)
}

func (p *Conjunction) Refs() []string { return refsUnion(p.operands) }

// A Disjunction holds when at least one of its operands holds.
type Disjunction struct {
	operands []Predicate
}

// Or combines predicates with the "or" connective. Like And it evaluates
// every operand eagerly, which purity makes safe.
func Or(operands ...Predicate) Predicate {
	if len(operands) == 1 {
		return operands[0]
	}
	return &Disjunction{operands: operands}
}

func (p *Disjunction) Operands() []Predicate { return p.operands }

func (p *Disjunction) Eval(b binding.Bindings) bool {
	holds := false
	for _, op := range p.operands {
		if op.Eval(b) {
			holds = true
		}
	}
	return holds
}

func (p *Disjunction) Describe(b binding.Bindings) string {
	return describeJoined(p.operands, "or", b)
}

func (p *Disjunction) Refs() []string { return refsUnion(p.operands) }

// A Negation holds when its operand does not.
type Negation struct {
	operand Predicate
}

// Not negates a predicate.
func Not(operand Predicate) Predicate {
	return &Negation{operand: operand}
}

func (p *Negation) Operand() Predicate { return p.operand }

func (p *Negation) Eval(b binding.Bindings) bool { return !p.operand.Eval(b) }

func (p *Negation) Describe(b binding.Bindings) string {
	return fmt.Sprintf("not (%v)", p.operand.Describe(b))
}

func (p *Negation) Refs() []string { return refsUnion([]Predicate{p.operand}) }

func describeJoined(operands []Predicate, connective string, b binding.Bindings) string {
	parts := make([]string, 0, len(operands))
	for _, op := range operands {
		parts = append(parts, op.Describe(b))
	}
	return "(" + strings.Join(parts, " "+connective+" ") + ")"
}

func refsUnion(operands []Predicate) []string {
	seen := map[string]bool{}
	refs := []string{}
	for _, op := range operands {
		r, ok := op.(Referrer)
		if !ok {
			continue
		}
		for _, name := range r.Refs() {
			if !seen[name] {
				seen[name] = true
				refs = append(refs, name)
			}
		}
	}
	return refs
}
