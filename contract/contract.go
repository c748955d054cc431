package contract

import (
	"fmt"

	"golang.org/x/exp/slices"

	"goqc/binding"
	"goqc/predicate"
	"goqc/value"
)

// A Func is a function under contract. Arguments arrive in declared
// parameter order. An error return is the function's own failure and is
// never interpreted as a contract violation.
type Func func(args ...any) (any, error)

// Pure adapts a function that cannot fail.
func Pure(f func(args ...any) any) Func {
	return func(args ...any) (any, error) {
		return f(args...), nil
	}
}

// Docs is the optional documentation metadata attached to a contract.
// The core works without it and ignores it when absent.
type Docs struct {
	Contract string
	Params   map[string]string
}

// A Contract bundles a function with the preconditions on its arguments and
// the postconditions on its result.
//
// Contracts are constructed once, at function-definition time, and are
// immutable afterwards. Each call builds a transient binding environment
// that is discarded after evaluation.
type Contract struct {
	name   string
	params []string
	fn     Func
	pre    []predicate.Predicate
	post   []predicate.Predicate
	hints  map[string]value.Tag
	docs   Docs
}

// New assembles a contract.
//
// A contract declares at least one parameter. The parameter names must be
// non-empty and unique, and must not include the reserved result name. Every
// standard predicate must reference declared names only: preconditions may
// read the parameters, postconditions may additionally read the result.
// Generation hints must name declared parameters. Violations are reported as
// ErrDefinition errors.
func New(name string, params []string, fn Func, pre, post []predicate.Predicate, hints map[string]value.Tag, docs Docs) (*Contract, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: a contract must be named", ErrDefinition)
	}
	if fn == nil {
		return nil, fmt.Errorf("%w: %v: the wrapped function must not be nil", ErrDefinition, name)
	}
	if len(params) == 0 {
		return nil, fmt.Errorf("%w: %v: a contract must declare at least one parameter", ErrDefinition, name)
	}
	for i, p := range params {
		if p == "" {
			return nil, fmt.Errorf("%w: %v: parameter %v has an empty name", ErrDefinition, name, i+1)
		}
		if p == binding.Result {
			return nil, fmt.Errorf("%w: %v: %q is reserved for the result binding", ErrDefinition, name, binding.Result)
		}
		if slices.Contains(params[:i], p) {
			return nil, fmt.Errorf("%w: %v: duplicate parameter %q", ErrDefinition, name, p)
		}
	}
	if err := checkRefs(name, "precondition", pre, params, false); err != nil {
		return nil, err
	}
	if err := checkRefs(name, "postcondition", post, params, true); err != nil {
		return nil, err
	}
	for param := range hints {
		if !slices.Contains(params, param) {
			return nil, fmt.Errorf("%w: %v: generation hint for unknown parameter %q", ErrDefinition, name, param)
		}
	}
	c := &Contract{
		name:   name,
		params: slices.Clone(params),
		fn:     fn,
		pre:    slices.Clone(pre),
		post:   slices.Clone(post),
		hints:  make(map[string]value.Tag, len(hints)),
		docs:   docs,
	}
	for param, tag := range hints {
		c.hints[param] = tag
	}
	return c, nil
}

// Validate that the names read by the standard predicates exist. Opaque
// predicates carry no reference information and cannot be checked.
func checkRefs(name, role string, preds []predicate.Predicate, params []string, allowResult bool) error {
	for _, p := range preds {
		r, ok := p.(predicate.Referrer)
		if !ok {
			continue
		}
		for _, ref := range r.Refs() {
			if ref == binding.Result {
				if allowResult {
					continue
				}
				return fmt.Errorf("%w: %v: a %v cannot reference %q: the result does not exist before the function runs", ErrDefinition, name, role, binding.Result)
			}
			if !slices.Contains(params, ref) {
				return fmt.Errorf("%w: %v: %v %q references unknown parameter %q", ErrDefinition, name, role, p.Describe(nil), ref)
			}
		}
	}
	return nil
}

func (c *Contract) Name() string { return c.name }

// The declared parameter names, in order.
func (c *Contract) Params() []string { return slices.Clone(c.params) }

func (c *Contract) Preconditions() []predicate.Predicate { return slices.Clone(c.pre) }

func (c *Contract) Postconditions() []predicate.Predicate { return slices.Clone(c.post) }

// Hint returns the declared generation tag for a parameter, if any.
func (c *Contract) Hint(param string) (value.Tag, bool) {
	t, ok := c.hints[param]
	return t, ok
}

// Doc returns the contract description, empty when none was attached.
func (c *Contract) Doc() string { return c.docs.Contract }

// ParamDoc returns the description attached to a parameter, if any.
func (c *Contract) ParamDoc(param string) (string, bool) {
	d, ok := c.docs.Params[param]
	return d, ok
}

// Call enforces the contract around one invocation.
//
// Every precondition is evaluated, never just the first failing one. If any
// fail, a *ValidationError listing all of them is returned and the function
// is not invoked. Otherwise the function runs; its own error, if any,
// propagates unmodified. The result is then bound and every postcondition is
// evaluated; failures return a *PostconditionError listing all of them. The
// function's side effects have happened by then: a broken postcondition is
// reported, not rolled back.
func (c *Contract) Call(args ...any) (any, error) {
	b, err := binding.Bind(c.params, args)
	if err != nil {
		return nil, fmt.Errorf("contract: %v: %w", c.name, err)
	}
	if ok, failures := c.CheckPre(b); !ok {
		return nil, &ValidationError{Name: c.name, Failures: failures}
	}
	res, err := c.fn(args...)
	if err != nil {
		return nil, err
	}
	if ok, failures := c.CheckPost(b, res); !ok {
		return nil, &PostconditionError{Name: c.name, Failures: failures}
	}
	return res, nil
}

// CheckPre evaluates the full precondition set against the bindings and
// collects the descriptions of all checks that do not hold.
func (c *Contract) CheckPre(b binding.Bindings) (bool, []string) {
	failures := failing(c.pre, b)
	return len(failures) == 0, failures
}

// CheckPost binds the result and evaluates the full postcondition set,
// collecting the descriptions of all checks that do not hold. The result is
// bound on a clone: the caller's environment never gains a result binding.
func (c *Contract) CheckPost(b binding.Bindings, result any) (bool, []string) {
	env := b.Clone()
	env[binding.Result] = result
	failures := failing(c.post, env)
	return len(failures) == 0, failures
}

// Invoke runs the wrapped function on an environment without checking
// anything. The verification runner uses it on candidates whose
// preconditions are already known to hold.
func (c *Contract) Invoke(b binding.Bindings) (any, error) {
	args := make([]any, len(c.params))
	for i, p := range c.params {
		args[i] = b[p]
	}
	return c.fn(args...)
}

func failing(preds []predicate.Predicate, b binding.Bindings) []string {
	var failures []string
	for _, p := range preds {
		if !p.Eval(b) {
			failures = append(failures, p.Describe(b))
		}
	}
	return failures
}
