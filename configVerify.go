package goqc

import (
	"goqc/contract"
	"goqc/generator"
	"goqc/runner"
)

// Quickcheck verifies the contract on a pool of biased random candidates.
//
// Candidates that do not satisfy the preconditions are discarded; the
// function runs on every survivor and the postconditions are checked on each
// result. The report is a *runner.Passed, *runner.Failed or
// *runner.Exhausted value. An error return means the verification could not
// run at all.
func Quickcheck(c *contract.Contract, opts ...RunOption) (runner.Report, error) {
	var (
		cfg  = DefaultConfig()
		seed int64
		rng  generator.Rand
		reg  *generator.Registry
	)

	for _, opt := range opts {
		switch t := opt.(type) {
		case poolSizeOption:
			cfg.PoolSize = t.n
		case sizeBoundOption:
			cfg.SizeBound = t.n
		case seedOption:
			seed = t.seed
		case randOption:
			rng = t.rng
		case registryOption:
			reg = t.reg
		}
	}

	if reg == nil {
		reg = generator.NewRegistry()
	}
	if rng != nil {
		return runner.NewFromRand(reg, cfg.PoolSize, cfg.SizeBound, rng).Verify(c)
	}
	return runner.New(reg, cfg.PoolSize, cfg.SizeBound, seed).Verify(c)
}

// Replay re-verifies the contract on the candidate at the given pool
// position, as exported by a failed report. The size bound and registry must
// match the original run.
func Replay(c *contract.Contract, seed int64, index int, opts ...RunOption) (runner.Report, error) {
	var (
		cfg = DefaultConfig()
		reg *generator.Registry
	)

	for _, opt := range opts {
		switch t := opt.(type) {
		case sizeBoundOption:
			cfg.SizeBound = t.n
		case registryOption:
			reg = t.reg
		}
	}

	if reg == nil {
		reg = generator.NewRegistry()
	}
	return runner.Replay(c, reg, seed, cfg.SizeBound, index)
}

type RunOption interface{}

type poolSizeOption struct{ n int }

// Configure the number of candidates generated per verification.
//
// Default value is 100.
func WithPoolSize(n int) RunOption {
	return poolSizeOption{n: n}
}

type sizeBoundOption struct{ n int }

// Configure the bound on the magnitude of generated values.
//
// Default value is 100.
func WithSizeBound(n int) RunOption {
	return sizeBoundOption{n: n}
}

type seedOption struct{ seed int64 }

// Seed the random source, making the verification reproducible.
//
// A seed of 0 draws a seed from the current time. The effective seed is
// recorded on the report.
func WithSeed(seed int64) RunOption {
	return seedOption{seed: seed}
}

type randOption struct{ rng generator.Rand }

// Draw randomness from the provided source instead of a seeded one.
//
// Used to configure the verification to use a different implementation of
// the random source. Reproducibility is then the source's concern.
func WithRand(rng generator.Rand) RunOption {
	return randOption{rng: rng}
}

type registryOption struct{ reg *generator.Registry }

// Use the provided generator registry instead of the built-in one.
//
// Used to generate values of user-defined kinds, or to rebias the built-in
// generators.
func WithRegistry(reg *generator.Registry) RunOption {
	return registryOption{reg: reg}
}
