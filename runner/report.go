package runner

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"goqc/binding"
)

// A Report is the outcome of one verification run.
//
// The concrete report types are exported so that callers can branch on the
// outcome. An outcome is a value: a found counterexample is a *Failed report,
// not an error return.
type Report interface {
	// Generate a formatted string providing a detailed description of the
	// outcome.
	Summary() string
}

// Passed reports that every surviving candidate satisfied the
// postconditions.
type Passed struct {
	Name      string // Name of the verified contract
	Survivors int    // Number of candidates that survived the preconditions and were verified
	RandSeed  int64  // Seed used when generating the candidate pool. 0 if an external random source was used
}

func (r *Passed) Summary() string {
	return fmt.Sprintf("Quickcheck for %v passed on %v random examples!", r.Name, r.Survivors)
}

// Failed reports the first counterexample: the candidate bindings together
// with the description of every postcondition they broke.
type Failed struct {
	Name      string            // Name of the verified contract
	Candidate binding.Candidate // The counterexample, with its index into the original pool
	Failures  []string          // Descriptions of all postconditions the candidate broke
	Err       error             // The corresponding *contract.PostconditionError
	RandSeed  int64             // Seed used when generating the candidate pool. 0 if an external random source was used
}

func (r *Failed) Summary() string {
	var buffer bytes.Buffer
	wrt := tabwriter.NewWriter(&buffer, 4, 4, 0, ' ', 0)
	out := fmt.Sprintf("Quickcheck for %v failed on %v. Postcondition broken: \n", r.Name, r.Candidate)
	for _, failure := range r.Failures {
		fmt.Fprintf(wrt, "-> %v \n", failure)
	}
	wrt.Flush()
	out += buffer.String()
	return out
}

// Export the position of the counterexample so that it can be regenerated by
// Replay.
func (r *Failed) Export() (seed int64, index int) {
	return r.RandSeed, r.Candidate.Index
}

// Exhausted reports that no generated candidate survived the preconditions.
// Nothing was verified: an exhausted run is not a passing run.
type Exhausted struct {
	Name     string // Name of the contract
	Attempts int    // Number of candidates that were generated and rejected
	PoolSize int    // Configured size of the candidate pool
	RandSeed int64  // Seed used when generating the candidate pool. 0 if an external random source was used
}

func (r *Exhausted) Summary() string {
	return fmt.Sprintf("Quickcheck for %v gave up. 0 of %v generated candidates survived the preconditions.", r.Name, r.Attempts)
}
