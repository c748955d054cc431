package value

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A Kind identifies a family of values that share a membership test and a
// generator. The set of kinds is open: callers may introduce new kinds by
// registering a bias profile for them.
type Kind string

const (
	Number       Kind = "number"
	Integer      Kind = "integer"
	Text         Kind = "text"
	Boolean      Kind = "boolean"
	Null         Kind = "null"
	SequenceKind Kind = "sequence"
	RecordKind   Kind = "record"
)

// A Tag selects a family of values, possibly parameterized, such as
// "sequence of number".
//
// Tags drive both sides of the pipeline: type-membership predicates test
// values against a tag, and the generator registry produces values for one.
type Tag interface {
	// The kind used to look up a generator for this tag.
	Kind() Kind
	// Reports whether v belongs to the family described by this tag.
	// Must be pure.
	Member(v any) bool

	String() string
}

type scalarTag struct {
	kind Kind
}

// NumberTag describes any numeric value. Integral values are numeric.
func NumberTag() Tag { return scalarTag{Number} }

// IntegerTag describes values of the Go integer kinds.
func IntegerTag() Tag { return scalarTag{Integer} }

// TextTag describes strings.
func TextTag() Tag { return scalarTag{Text} }

// BooleanTag describes booleans.
func BooleanTag() Tag { return scalarTag{Boolean} }

// NullTag describes the nil value.
func NullTag() Tag { return scalarTag{Null} }

func (t scalarTag) Kind() Kind { return t.kind }

func (t scalarTag) Member(v any) bool {
	switch t.kind {
	case Number:
		_, ok := Numeric(v)
		return ok
	case Integer:
		_, ok := Integral(v)
		return ok
	case Text:
		_, ok := v.(string)
		return ok
	case Boolean:
		_, ok := v.(bool)
		return ok
	case Null:
		return v == nil
	}
	return false
}

func (t scalarTag) String() string { return string(t.kind) }

// A SequenceTag describes sequences, optionally with a fixed element tag.
type SequenceTag struct {
	elem Tag
}

// Sequence describes sequences whose every element belongs to elem.
func Sequence(elem Tag) SequenceTag { return SequenceTag{elem: elem} }

// FreeSequence describes sequences with no constraint on the elements.
func FreeSequence() SequenceTag { return SequenceTag{} }

// The element tag, or nil for a free sequence.
func (t SequenceTag) Elem() Tag { return t.elem }

func (t SequenceTag) Kind() Kind { return SequenceKind }

func (t SequenceTag) Member(v any) bool {
	elems, ok := Elements(v)
	if !ok {
		return false
	}
	if t.elem == nil {
		return true
	}
	for _, e := range elems {
		if !t.elem.Member(e) {
			return false
		}
	}
	return true
}

func (t SequenceTag) String() string {
	if t.elem == nil {
		return string(SequenceKind)
	}
	return fmt.Sprintf("%v of %v", SequenceKind, t.elem)
}

// A RecordTag describes string-keyed records, optionally with a fixed set of
// field tags.
type RecordTag struct {
	fields map[string]Tag
}

// Record describes records carrying exactly the given fields, each belonging
// to its tag.
func Record(fields map[string]Tag) RecordTag {
	copied := make(map[string]Tag, len(fields))
	for k, t := range fields {
		copied[k] = t
	}
	return RecordTag{fields: copied}
}

// FreeRecord describes records with no constraint on the fields.
func FreeRecord() RecordTag { return RecordTag{} }

// The field tags in a copied map, or nil for a free record.
func (t RecordTag) Fields() map[string]Tag {
	if t.fields == nil {
		return nil
	}
	copied := make(map[string]Tag, len(t.fields))
	for k, f := range t.fields {
		copied[k] = f
	}
	return copied
}

func (t RecordTag) Kind() Kind { return RecordKind }

func (t RecordTag) Member(v any) bool {
	rec, ok := v.(map[string]any)
	if !ok {
		return false
	}
	if t.fields == nil {
		return true
	}
	if len(rec) != len(t.fields) {
		return false
	}
	for k, ft := range t.fields {
		fv, present := rec[k]
		if !present || !ft.Member(fv) {
			return false
		}
	}
	return true
}

func (t RecordTag) String() string {
	if t.fields == nil {
		return string(RecordKind)
	}
	keys := maps.Keys(t.fields)
	slices.Sort(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%v: %v", k, t.fields[k]))
	}
	return fmt.Sprintf("%v{%v}", RecordKind, strings.Join(parts, ", "))
}

// TagOf classifies a value into the tag family it belongs to.
//
// Used for diagnostics only. Sequences and records classify as their free
// form. Returns false for values outside the closed representation.
func TagOf(v any) (Tag, bool) {
	if v == nil {
		return NullTag(), true
	}
	switch v.(type) {
	case bool:
		return BooleanTag(), true
	case string:
		return TextTag(), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return IntegerTag(), true
	case float32, float64:
		return NumberTag(), true
	case map[string]any:
		return FreeRecord(), true
	}
	if _, ok := Elements(v); ok {
		return FreeSequence(), true
	}
	return nil, false
}
