package binding

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Result is the binding name under which a wrapped function's return value
// becomes visible to postconditions. It is undefined before the function has
// executed and is never a legal parameter name.
const Result = "result"

var ErrArity = errors.New("binding: Number of arguments does not match the declared parameters")

// Bindings is the environment a predicate is evaluated against: parameter
// names mapped to values, plus the result binding after invocation.
//
// A Bindings is created per call and discarded after evaluation. Predicates
// must treat it as read-only.
type Bindings map[string]any

// Bind pairs argument values with the declared parameter names, in order.
//
// The values themselves are not copied.
func Bind(params []string, args []any) (Bindings, error) {
	if len(params) != len(args) {
		return nil, fmt.Errorf("%w: want %v, got %v", ErrArity, len(params), len(args))
	}
	b := make(Bindings, len(params))
	for i, p := range params {
		b[p] = args[i]
	}
	return b, nil
}

// Get looks up a binding by name.
func (b Bindings) Get(name string) (any, bool) {
	v, ok := b[name]
	return v, ok
}

// Clone returns a shallow copy. Binding the result for postcondition
// evaluation happens on a clone so the original environment stays intact.
func (b Bindings) Clone() Bindings {
	return Bindings(maps.Clone(map[string]any(b)))
}

// Render the environment with the names in sorted order, so that the same
// bindings always render the same way.
func (b Bindings) String() string {
	keys := maps.Keys(b)
	slices.Sort(keys)
	var sb strings.Builder
	sb.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", k, formatValue(b[k]))
	}
	sb.WriteString("}")
	return sb.String()
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return fmt.Sprintf("%q", t)
	case map[string]any:
		keys := maps.Keys(t)
		slices.Sort(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%v: %v", k, formatValue(t[k])))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, formatValue(e))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", t)
	}
}
