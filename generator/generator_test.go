package generator

import (
	"errors"
	"math"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"goqc/value"
)

func TestIntegerCatalogPrefix(t *testing.T) {
	src := NewSource(NewRegistry(), NewRand(1))
	expected := []int64{0, 1, -1, math.MaxInt64, math.MinInt64}
	for i, want := range expected {
		v, err := src.Generate("n", value.IntegerTag(), 100)
		if err != nil {
			t.Fatalf("Received unexpected error from Generate. Got %v", err)
		}
		if v != want {
			t.Errorf("Received unexpected catalog value on draw %v. Got %v", i, v)
		}
	}
}

func TestNumberCatalogPrefix(t *testing.T) {
	src := NewSource(NewRegistry(), NewRand(1))
	expected := []float64{
		0, 1, -1,
		math.MaxFloat64, -math.MaxFloat64,
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
	}
	for i, want := range expected {
		v, err := src.Generate("x", value.NumberTag(), 100)
		if err != nil {
			t.Fatalf("Received unexpected error from Generate. Got %v", err)
		}
		if v != want {
			t.Errorf("Received unexpected catalog value on draw %v. Got %v", i, v)
		}
	}
}

func TestTextCatalogPrefix(t *testing.T) {
	src := NewSource(NewRegistry(), NewRand(1))
	expected := []string{"", " ", "\n", `"'`, "héllo, 世界"}
	for i, want := range expected {
		v, err := src.Generate("s", value.TextTag(), 100)
		if err != nil {
			t.Fatalf("Received unexpected error from Generate. Got %v", err)
		}
		if v != want {
			t.Errorf("Received unexpected catalog value on draw %v. Got %q", i, v)
		}
	}
}

// Each generation site walks its own catalog, so two parameters of the same
// kind both see the edge cases from the start.
func TestCatalogIsPerSite(t *testing.T) {
	src := NewSource(NewRegistry(), NewRand(1))
	a, err := src.Generate("x", value.IntegerTag(), 100)
	if err != nil {
		t.Fatalf("Received unexpected error from Generate. Got %v", err)
	}
	b, err := src.Generate("y", value.IntegerTag(), 100)
	if err != nil {
		t.Fatalf("Received unexpected error from Generate. Got %v", err)
	}
	if a != int64(0) || b != int64(0) {
		t.Errorf("Expected both sites to start at the head of the catalog. Got %v and %v", a, b)
	}
}

func TestUniformIntegerBounds(t *testing.T) {
	src := NewSource(NewRegistry(), NewRand(7))
	// Walk past the catalog first.
	for i := 0; i < 5; i++ {
		if _, err := src.Generate("n", value.IntegerTag(), 50); err != nil {
			t.Fatalf("Received unexpected error from Generate. Got %v", err)
		}
	}
	for i := 0; i < 200; i++ {
		v, err := src.Generate("n", value.IntegerTag(), 50)
		if err != nil {
			t.Fatalf("Received unexpected error from Generate. Got %v", err)
		}
		n, ok := v.(int64)
		if !ok {
			t.Fatalf("Received a non integer draw. Got %T", v)
		}
		if n < -50 || n > 50 {
			t.Errorf("Received an out of bounds draw on draw %v. Got %v", i, n)
		}
	}
}

func TestUniformTextBounds(t *testing.T) {
	src := NewSource(NewRegistry(), NewRand(7))
	for i := 0; i < 5; i++ {
		if _, err := src.Generate("s", value.TextTag(), 10); err != nil {
			t.Fatalf("Received unexpected error from Generate. Got %v", err)
		}
	}
	for i := 0; i < 100; i++ {
		v, err := src.Generate("s", value.TextTag(), 10)
		if err != nil {
			t.Fatalf("Received unexpected error from Generate. Got %v", err)
		}
		s, ok := v.(string)
		if !ok {
			t.Fatalf("Received a non text draw. Got %T", v)
		}
		if utf8.RuneCountInString(s) > 10 {
			t.Errorf("Received an overlong draw on draw %v. Got %q", i, s)
		}
	}
}

func TestSameSeedSameDraws(t *testing.T) {
	a := NewSource(NewRegistry(), NewRand(42))
	b := NewSource(NewRegistry(), NewRand(42))
	tags := []value.Tag{
		value.IntegerTag(),
		value.NumberTag(),
		value.TextTag(),
		value.BooleanTag(),
		value.Sequence(value.IntegerTag()),
		value.FreeSequence(),
		value.Record(map[string]value.Tag{"n": value.IntegerTag(), "s": value.TextTag()}),
		value.FreeRecord(),
	}
	for i := 0; i < 100; i++ {
		tag := tags[i%len(tags)]
		va, errA := a.Generate("p", tag, 40)
		vb, errB := b.Generate("p", tag, 40)
		if errA != nil || errB != nil {
			t.Fatalf("Received unexpected error from Generate. Got %v and %v", errA, errB)
		}
		if !cmp.Equal(va, vb) {
			t.Errorf("Received diverging draws on draw %v. Got %v and %v", i, va, vb)
		}
	}
}

// Every generated value belongs to the tag family it was generated for.
func TestGeneratedValuesSatisfyMembership(t *testing.T) {
	tags := []value.Tag{
		value.NumberTag(),
		value.IntegerTag(),
		value.TextTag(),
		value.BooleanTag(),
		value.NullTag(),
		value.Sequence(value.IntegerTag()),
		value.Sequence(value.TextTag()),
		value.FreeSequence(),
		value.Record(map[string]value.Tag{"n": value.IntegerTag(), "xs": value.Sequence(value.NumberTag())}),
		value.FreeRecord(),
	}
	src := NewSource(NewRegistry(), NewRand(11))
	for _, tag := range tags {
		for i := 0; i < 50; i++ {
			v, err := src.Generate(tag.String(), tag, 60)
			if err != nil {
				t.Fatalf("Received unexpected error from Generate for %v. Got %v", tag, err)
			}
			if !tag.Member(v) {
				t.Errorf("Received a draw outside its own family for %v on draw %v. Got %v", tag, i, v)
			}
		}
	}
}

func TestDepthIsBounded(t *testing.T) {
	deep := value.Sequence(value.Sequence(value.Sequence(value.Sequence(value.Sequence(value.Sequence(value.IntegerTag()))))))
	src := NewSource(NewRegistry(), NewRand(3))
	for i := 0; i < 40; i++ {
		v, err := src.Generate("d", deep, 100)
		if err != nil {
			t.Fatalf("Received unexpected error from Generate. Got %v", err)
		}
		if d := nestingOf(v); d > MaxDepth+1 {
			t.Errorf("Received a value nested past the cap on draw %v. Got depth %v", i, d)
		}
	}
}

func TestUnknownKind(t *testing.T) {
	src := NewSource(NewRegistry(), NewRand(1))
	_, err := src.Generate("q", questionTag{}, 10)
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected an unknown kind error. Got %v", err)
	}
	expected := "generator: No bias profile registered for kind"
	if ErrUnknownKind.Error() != expected {
		t.Errorf("Received unexpected unknown kind error string. Got %v", ErrUnknownKind.Error())
	}
}

func TestRegisterCustomKind(t *testing.T) {
	reg := NewRegistry()
	reg.Register("even", BiasProfile{
		Catalog: func(_ *Source, _ value.Tag, _, i int) (any, bool, error) {
			if i > 0 {
				return nil, false, nil
			}
			return int64(0), true, nil
		},
		Uniform: func(g *Source, _ value.Tag, size int) (any, error) {
			return 2 * g.Rand().Int63n(int64(size)+1), nil
		},
	})

	src := NewSource(reg, NewRand(9))
	for i := 0; i < 50; i++ {
		v, err := src.Generate("k", evenTag{}, 30)
		if err != nil {
			t.Fatalf("Received unexpected error from Generate. Got %v", err)
		}
		if !(evenTag{}).Member(v) {
			t.Errorf("Received a draw outside the registered kind on draw %v. Got %v", i, v)
		}
	}
}

func TestOverrideBuiltinProfile(t *testing.T) {
	reg := NewRegistry()
	reg.Register(value.Integer, BiasProfile{
		Uniform: func(*Source, value.Tag, int) (any, error) {
			return int64(42), nil
		},
	})

	src := NewSource(reg, NewRand(1))
	for i := 0; i < 10; i++ {
		v, err := src.Generate("n", value.IntegerTag(), 100)
		if err != nil {
			t.Fatalf("Received unexpected error from Generate. Got %v", err)
		}
		if v != int64(42) {
			t.Errorf("Expected the override to produce the draws. Got %v", v)
		}
	}
}

func TestEmptyProfile(t *testing.T) {
	reg := NewRegistry()
	reg.Register("question", BiasProfile{})

	src := NewSource(reg, NewRand(1))
	if _, err := src.Generate("q", questionTag{}, 10); err == nil {
		t.Errorf("Expected an error from a profile with no sampler")
	}
}

func nestingOf(v any) int {
	elems, ok := v.([]any)
	if !ok {
		return 0
	}
	deepest := 0
	for _, e := range elems {
		if d := nestingOf(e); d > deepest {
			deepest = d
		}
	}
	return 1 + deepest
}

type questionTag struct{}

func (questionTag) Kind() value.Kind  { return "question" }
func (questionTag) Member(v any) bool { return false }
func (questionTag) String() string    { return "question" }

type evenTag struct{}

func (evenTag) Kind() value.Kind { return "even" }
func (evenTag) Member(v any) bool {
	n, ok := value.Integral(v)
	return ok && n%2 == 0
}
func (evenTag) String() string { return "even" }
