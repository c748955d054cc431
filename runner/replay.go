package runner

import (
	"fmt"
	"strings"

	"goqc/contract"
	"goqc/generator"
)

// Replay regenerates the candidate at the given pool position and verifies
// the contract on it alone.
//
// A *Failed report names the position of the counterexample and the seed of
// the run that produced it. Replay rebuilds that exact candidate by
// replaying the generation sequence up to the position, so the
// counterexample never has to be stored. The contract and size bound must
// match the original run for the positions to line up.
func Replay(c *contract.Contract, reg *generator.Registry, seed int64, sizeBound, index int) (Report, error) {
	if index < 1 {
		return nil, fmt.Errorf("runner: %v: Candidate positions start at 1. Got %v.", c.Name(), index)
	}
	tags, err := deriveTags(c)
	if err != nil {
		return nil, err
	}
	pool, err := generatePool(c, tags, reg, generator.NewRand(seed), index, sizeBound)
	if err != nil {
		return nil, err
	}
	cand := pool[index-1]
	if ok, failures := c.CheckPre(cand.Values); !ok {
		return nil, fmt.Errorf("runner: %v: Replayed %v does not satisfy the preconditions: %v. The contract, seed or size bound does not match the original run.", c.Name(), cand, strings.Join(failures, "; "))
	}
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
			RandSeed:  seed,
		}, nil
	}
	return &Passed{
		Name:      c.Name(),
		Survivors: 1,
		RandSeed:  seed,
	}, nil
}
