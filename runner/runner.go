package runner

import (
	"fmt"

	"goqc/binding"
	"goqc/contract"
	"goqc/generator"
	"goqc/predicate"
	"goqc/value"
)

// The Runner verifies a contract against a pool of biased random candidates.
//
// For each verification it generates a fresh pool of candidate argument
// bindings, discards the candidates that do not satisfy the preconditions,
// invokes the function on every survivor and checks the postconditions on
// each result. The first counterexample stops the run.
//
// A Runner is single-threaded and deterministic: the same contract, seed,
// pool size and size bound reproduce the same pool, the same survivors and
// the same report.
type Runner struct {
	reg       *generator.Registry
	poolSize  int
	sizeBound int
	rng       generator.Rand
	seed      int64
}

// Create a new Runner.
//
// poolSize is the number of candidates generated per verification. sizeBound
// bounds the magnitude of generated values. seed seeds the random source; a
// seed of 0 draws a seed from the current time. The effective seed is
// recorded on the reports. Every verification restarts the stream from the
// seed, so a reused Runner reproduces the same pool each time and its
// reports stay replayable.
func New(reg *generator.Registry, poolSize, sizeBound int, seed int64) *Runner {
	if seed == 0 {
		seed = generator.TimeSeed()
	}
	return &Runner{
		reg:       reg,
		poolSize:  poolSize,
		sizeBound: sizeBound,
		seed:      seed,
	}
}

// Create a new Runner drawing randomness from the provided source.
//
// Runs are reproducible only as far as the source is. The reports record a
// seed of 0.
func NewFromRand(reg *generator.Registry, poolSize, sizeBound int, rng generator.Rand) *Runner {
	return &Runner{
		reg:       reg,
		poolSize:  poolSize,
		sizeBound: sizeBound,
		rng:       rng,
	}
}

// Verify quickchecks the contract.
//
// The pool is generated first, parameter by parameter in declared order, so
// that a candidate's position in the pool depends only on the seed and the
// contract. Preconditions filter the pool; a pool with no survivors produces
// an *Exhausted report. Each survivor is then invoked directly, without
// re-checking the preconditions, and all postconditions are evaluated on the
// result. The first candidate that breaks a postcondition produces a *Failed
// report carrying every failing description.
//
// An error return means the verification itself could not run: a parameter
// without a derivable generator, a failing generator, or a function error on
// a surviving candidate. The function's own error is returned untouched.
func (r *Runner) Verify(c *contract.Contract) (Report, error) {
	tags, err := deriveTags(c)
	if err != nil {
		return nil, err
	}
	rng := r.rng
	if rng == nil {
		rng = generator.NewRand(r.seed)
	}
	pool, err := generatePool(c, tags, r.reg, rng, r.poolSize, r.sizeBound)
	if err != nil {
		return nil, err
	}
	survivors := filter(c, pool)
	if len(survivors) == 0 {
		return &Exhausted{
			Name:     c.Name(),
			Attempts: len(pool),
			PoolSize: r.poolSize,
			RandSeed: r.seed,
		}, nil
	}
	for _, cand := range survivors {
		res, err := c.Invoke(cand.Values)
		if err != nil {
			return nil, err
		}
		if ok, failures := c.CheckPost(cand.Values, res); !ok {
			return &Failed{
				Name:      c.Name(),
				Candidate: cand,
				Failures:  failures,
				Err:       &contract.PostconditionError{Name: c.Name(), Failures: failures},
				RandSeed:  r.seed,
			}, nil
		}
	}
	return &Passed{
		Name:      c.Name(),
		Survivors: len(survivors),
		RandSeed:  r.seed,
	}, nil
}

// Resolve the generation tag of every parameter. An explicit hint on the
// contract wins. Otherwise the preconditions are searched for a membership
// predicate naming the parameter. Conjunctions are searched through their
// operands; disjunctions and negations are not, since membership under an
// "or" or a "not" is no guarantee about the parameter.
func deriveTags(c *contract.Contract) (map[string]value.Tag, error) {
	tags := map[string]value.Tag{}
	for _, param := range c.Params() {
		if tag, ok := c.Hint(param); ok {
			tags[param] = tag
			continue
		}
		tag, ok := inferTag(param, c.Preconditions())
		if !ok {
			return nil, fmt.Errorf("runner: %v: Cannot derive a generator for parameter %q. Declare a generation hint or add a membership precondition.", c.Name(), param)
		}
		tags[param] = tag
	}
	return tags, nil
}

func inferTag(param string, preds []predicate.Predicate) (value.Tag, bool) {
	for _, p := range preds {
		switch t := p.(type) {
		case *predicate.Membership:
			if t.Param == param {
				return t.Tag, true
			}
		case *predicate.ElementMembership:
			if t.Param == param {
				return value.Sequence(t.Elem), true
			}
		case *predicate.Conjunction:
			if tag, ok := inferTag(param, t.Operands()); ok {
				return tag, true
			}
		}
	}
	return nil, false
}

// Generate the candidate pool. Candidates are numbered from 1 and parameters
// are generated in declared order, which fixes the pool for a given seed.
func generatePool(c *contract.Contract, tags map[string]value.Tag, reg *generator.Registry, rng generator.Rand, poolSize, sizeBound int) ([]binding.Candidate, error) {
	src := generator.NewSource(reg, rng)
	pool := make([]binding.Candidate, 0, poolSize)
	for i := 1; i <= poolSize; i++ {
		b := binding.Bindings{}
		for _, param := range c.Params() {
			v, err := src.Generate(param, tags[param], sizeBound)
			if err != nil {
				return nil, fmt.Errorf("runner: %v: %w", c.Name(), err)
			}
			b[param] = v
		}
		pool = append(pool, binding.Candidate{Index: i, Values: b})
	}
	return pool, nil
}

// Discard the candidates that do not satisfy the preconditions. The
// survivors keep their index into the original pool.
func filter(c *contract.Contract, pool []binding.Candidate) []binding.Candidate {
	survivors := []binding.Candidate{}
	for _, cand := range pool {
		if ok, _ := c.CheckPre(cand.Values); ok {
			survivors = append(survivors, cand)
		}
	}
	return survivors
}
