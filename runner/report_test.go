package runner

import (
	"testing"

	"goqc/binding"
)

func TestSummaries(t *testing.T) {
	for i, test := range summaryTest {
		out := test.rep.Summary()
		if out != test.expected {
			t.Errorf("Received unexpected summary on test %v. Got %q", i, out)
		}
	}
}

var summaryTest = []struct {
	rep      Report
	expected string
}{
	{
		&Passed{Name: "reverse", Survivors: 100, RandSeed: 1},
		"Quickcheck for reverse passed on 100 random examples!",
	},
	{
		&Failed{
			Name:      "fixedLength",
			Candidate: binding.Candidate{Index: 2, Values: binding.Bindings{"n": 1}},
			Failures:  []string{"result > 10", "result is text"},
		},
		"Quickcheck for fixedLength failed on item #2: {n: 1}. Postcondition broken: \n-> result > 10 \n-> result is text \n",
	},
	{
		&Exhausted{Name: "impossible", Attempts: 25, PoolSize: 25, RandSeed: 1},
		"Quickcheck for impossible gave up. 0 of 25 generated candidates survived the preconditions.",
	},
}
