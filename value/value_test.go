package value

import (
	"math"
	"testing"
)

func TestScalarMembership(t *testing.T) {
	for i, test := range scalarMembershipTest {
		out := test.tag.Member(test.v)
		if out != test.expected {
			t.Errorf("Received unexpected bool from membership on test %v. Got %v", i, out)
		}
	}
}

func TestCompositeMembership(t *testing.T) {
	for i, test := range compositeMembershipTest {
		out := test.tag.Member(test.v)
		if out != test.expected {
			t.Errorf("Received unexpected bool from membership on test %v. Got %v", i, out)
		}
	}
}

func TestTagOf(t *testing.T) {
	for i, test := range tagOfTest {
		tag, ok := TagOf(test.v)
		if ok != test.ok {
			t.Errorf("Received unexpected bool from TagOf on test %v. Got %v", i, ok)
			continue
		}
		if ok && tag.Kind() != test.kind {
			t.Errorf("Received unexpected kind from TagOf on test %v. Got %v", i, tag.Kind())
		}
	}
}

func TestNumeric(t *testing.T) {
	for i, test := range numericTest {
		n, ok := Numeric(test.v)
		if ok != test.ok {
			t.Errorf("Received unexpected bool from Numeric on test %v. Got %v", i, ok)
			continue
		}
		if n != test.expected {
			t.Errorf("Received unexpected value from Numeric on test %v. Got %v", i, n)
		}
	}
}

func TestIntegral(t *testing.T) {
	for i, test := range integralTest {
		n, ok := Integral(test.v)
		if ok != test.ok {
			t.Errorf("Received unexpected bool from Integral on test %v. Got %v", i, ok)
			continue
		}
		if n != test.expected {
			t.Errorf("Received unexpected value from Integral on test %v. Got %v", i, n)
		}
	}
}

func TestLength(t *testing.T) {
	for i, test := range lengthTest {
		l, ok := Length(test.v)
		if ok != test.ok {
			t.Errorf("Received unexpected bool from Length on test %v. Got %v", i, ok)
			continue
		}
		if l != test.expected {
			t.Errorf("Received unexpected length on test %v. Got %v", i, l)
		}
	}
}

func TestTagString(t *testing.T) {
	for i, test := range tagStringTest {
		out := test.tag.String()
		if out != test.expected {
			t.Errorf("Received unexpected string from tag on test %v. Got %v", i, out)
		}
	}
}

var scalarMembershipTest = []struct {
	tag      Tag
	v        any
	expected bool
}{
	{NumberTag(), 1.5, true},
	{NumberTag(), int64(3), true},
	{NumberTag(), 3, true},
	{NumberTag(), "3", false},
	{NumberTag(), nil, false},
	{IntegerTag(), int64(3), true},
	{IntegerTag(), 3, true},
	{IntegerTag(), 1.5, false},
	{IntegerTag(), float64(3), false},
	{IntegerTag(), uint64(math.MaxUint64), false},
	{TextTag(), "", true},
	{TextTag(), "abc", true},
	{TextTag(), 'a', false},
	{BooleanTag(), false, true},
	{BooleanTag(), 0, false},
	{NullTag(), nil, true},
	{NullTag(), 0, false},
}

var compositeMembershipTest = []struct {
	tag      Tag
	v        any
	expected bool
}{
	{Sequence(NumberTag()), []any{1.0, int64(2)}, true},
	{Sequence(NumberTag()), []any{1.0, "2"}, false},
	{Sequence(NumberTag()), []any{}, true},
	{Sequence(IntegerTag()), []int{1, 2}, true},
	{Sequence(IntegerTag()), []float64{1}, false},
	{FreeSequence(), []string{"a"}, true},
	{FreeSequence(), "abc", false},
	{Record(map[string]Tag{"a": IntegerTag()}), map[string]any{"a": 1}, true},
	{Record(map[string]Tag{"a": IntegerTag()}), map[string]any{"a": 1, "b": 2}, false},
	{Record(map[string]Tag{"a": IntegerTag()}), map[string]any{}, false},
	{Record(map[string]Tag{"a": IntegerTag()}), map[string]any{"a": "x"}, false},
	{FreeRecord(), map[string]any{"x": 1}, true},
	{FreeRecord(), []any{}, false},
}

var tagOfTest = []struct {
	v    any
	kind Kind
	ok   bool
}{
	{nil, Null, true},
	{true, Boolean, true},
	{"s", Text, true},
	{3, Integer, true},
	{int64(3), Integer, true},
	{2.5, Number, true},
	{[]any{1}, SequenceKind, true},
	{[]int{1}, SequenceKind, true},
	{map[string]any{}, RecordKind, true},
	{struct{}{}, "", false},
}

var numericTest = []struct {
	v        any
	expected float64
	ok       bool
}{
	{1.5, 1.5, true},
	{3, 3, true},
	{int64(-2), -2, true},
	{uint8(255), 255, true},
	{float32(0.5), 0.5, true},
	{"1", 0, false},
	{true, 0, false},
	{nil, 0, false},
}

var integralTest = []struct {
	v        any
	expected int64
	ok       bool
}{
	{3, 3, true},
	{int64(-5), -5, true},
	{int32(7), 7, true},
	{uint64(7), 7, true},
	{uint64(math.MaxUint64), 0, false},
	{2.0, 0, false},
	{true, 0, false},
}

var lengthTest = []struct {
	v        any
	expected int
	ok       bool
}{
	{"", 0, true},
	{"héllo", 5, true},
	{"世界", 2, true},
	{[]any{1, 2, 3}, 3, true},
	{[]int{1}, 1, true},
	{map[string]any{"a": 1, "b": 2}, 2, true},
	{42, 0, false},
}

var tagStringTest = []struct {
	tag      Tag
	expected string
}{
	{NumberTag(), "number"},
	{IntegerTag(), "integer"},
	{Sequence(NumberTag()), "sequence of number"},
	{FreeSequence(), "sequence"},
	{Record(map[string]Tag{"b": TextTag(), "a": IntegerTag()}), "record{a: integer, b: text}"},
	{FreeRecord(), "record"},
}
