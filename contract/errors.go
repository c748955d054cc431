package contract

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDefinition marks a contract that could not be assembled: an unnamed
// contract, a nil function, bad parameter names, or a predicate referencing
// a name the function does not declare.
var ErrDefinition = errors.New("contract: Invalid contract definition")

// A ValidationError reports a call whose arguments broke one or more
// preconditions. It carries the description of every failing check, not just
// the first, and the wrapped function was not invoked.
type ValidationError struct {
	Name     string
	Failures []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("contract: %v: Precondition broken: %v", e.Name, strings.Join(e.Failures, "; "))
}

// A PostconditionError reports an invocation whose result broke one or more
// postconditions. The wrapped function has already executed and any side
// effects stand.
type PostconditionError struct {
	Name     string
	Failures []string
}

func (e *PostconditionError) Error() string {
	return fmt.Sprintf("contract: %v: Postcondition broken: %v", e.Name, strings.Join(e.Failures, "; "))
}
