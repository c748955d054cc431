package binding

import (
	"errors"
	"testing"
)

func TestBind(t *testing.T) {
	for i, test := range bindTest {
		b, err := Bind(test.params, test.args)
		if test.arityErr {
			if !errors.Is(err, ErrArity) {
				t.Errorf("Expected an arity error on test %v. Got %v", i, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Received unexpected error from Bind on test %v. Got %v", i, err)
			continue
		}
		if len(b) != len(test.params) {
			t.Errorf("Received unexpected number of bindings on test %v. Got %v", i, len(b))
		}
		for j, p := range test.params {
			v, ok := b.Get(p)
			if !ok || v != test.args[j] {
				t.Errorf("Received unexpected binding for %q on test %v. Got %v", p, i, v)
			}
		}
	}
}

func TestArityErrorString(t *testing.T) {
	_, err := Bind([]string{"x"}, []any{})
	expected := "binding: Number of arguments does not match the declared parameters: want 1, got 0"
	if err == nil || err.Error() != expected {
		t.Errorf("Received unexpected arity error string. Got %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := Bindings{"x": 1}
	c := b.Clone()
	c["x"] = 2
	c[Result] = 3

	if v, _ := b.Get("x"); v != 1 {
		t.Errorf("Mutating the clone changed the original binding. Got %v", v)
	}
	if _, ok := b.Get(Result); ok {
		t.Errorf("Adding to the clone changed the original environment")
	}
}

func TestString(t *testing.T) {
	for i, test := range stringTest {
		out := test.b.String()
		if out != test.expected {
			t.Errorf("Received unexpected string from bindings on test %v. Got %v", i, out)
		}
	}
}

func TestCandidateString(t *testing.T) {
	cand := Candidate{Index: 3, Values: Bindings{"n": 5}}
	expected := "item #3: {n: 5}"
	if out := cand.String(); out != expected {
		t.Errorf("Received unexpected string from candidate. Got %v", out)
	}
}

var bindTest = []struct {
	params   []string
	args     []any
	arityErr bool
}{
	{[]string{"x", "y"}, []any{1, "a"}, false},
	{[]string{}, []any{}, false},
	{[]string{"x"}, []any{}, true},
	{[]string{}, []any{1}, true},
	{[]string{"x"}, []any{1, 2}, true},
}

var stringTest = []struct {
	b        Bindings
	expected string
}{
	{Bindings{}, "{}"},
	{Bindings{"b": 1, "a": "x"}, `{a: "x", b: 1}`},
	{Bindings{"n": nil}, "{n: null}"},
	{Bindings{"xs": []any{1, "a", nil}}, `{xs: [1, "a", null]}`},
	{Bindings{"r": map[string]any{"z": 1, "y": 2.5}}, "{r: {y: 2.5, z: 1}}"},
}
