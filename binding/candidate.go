package binding

import "fmt"

// A Candidate is one fully generated parameter binding, produced during
// verification.
//
// Index is the candidate's 1-based position in the original generation
// sequence, before precondition filtering. A counterexample is reproduced by
// re-seeding the random source and regenerating up to this index, so the
// index always refers to the pool, never to the surviving subset.
type Candidate struct {
	Index  int
	Values Bindings
}

func (c Candidate) String() string {
	return fmt.Sprintf("item #%v: %v", c.Index, c.Values)
}
