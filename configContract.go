package goqc

import (
	"log"

	"goqc/contract"
	"goqc/predicate"
	"goqc/value"
)

// Ensure wraps fn in a contract with the declared parameter names.
//
// The preconditions, postconditions, generation hints and documentation are
// provided as options. An invalid definition is a programming error and
// panics: a contract is assembled once, at definition time, and must not be
// silently wrong for the lifetime of the program.
func Ensure(name string, params []string, fn contract.Func, opts ...ContractOption) *contract.Contract {
	var (
		pre   = []predicate.Predicate{}
		post  = []predicate.Predicate{}
		hints = map[string]value.Tag{}
		docs  = contract.Docs{Params: map[string]string{}}
	)

	for _, opt := range opts {
		switch t := opt.(type) {
		case requiresOption:
			pre = append(pre, t.preds...)
		case ensuresOption:
			post = append(post, t.preds...)
		case genHintOption:
			hints[t.param] = t.tag
		case docOption:
			docs.Contract = t.doc
		case paramDocOption:
			docs.Params[t.param] = t.doc
		}
	}

	c, err := contract.New(name, params, fn, pre, post, hints, docs)
	if err != nil {
		log.Panicf("Received an error while defining the contract: %v", err)
	}
	return c
}

// EnsurePure wraps a function that cannot fail.
func EnsurePure(name string, params []string, f func(args ...any) any, opts ...ContractOption) *contract.Contract {
	return Ensure(name, params, contract.Pure(f), opts...)
}

type ContractOption interface{}

type requiresOption struct{ preds []predicate.Predicate }

// Specify preconditions: predicates over the arguments that must hold for a
// call to be valid. All of them are checked on every call.
func Requires(preds ...predicate.Predicate) ContractOption {
	return requiresOption{preds: preds}
}

type ensuresOption struct{ preds []predicate.Predicate }

// Specify postconditions: predicates over the arguments and the result that
// must hold after a valid call. All of them are checked on every call.
func Ensures(preds ...predicate.Predicate) ContractOption {
	return ensuresOption{preds: preds}
}

type genHintOption struct {
	param string
	tag   value.Tag
}

// Declare the tag used when generating candidates for a parameter. Without
// a hint the runner infers the tag from the membership preconditions.
func GenHint(param string, tag value.Tag) ContractOption {
	return genHintOption{param: param, tag: tag}
}

type docOption struct{ doc string }

// Attach a human-readable description to the contract.
func WithDoc(doc string) ContractOption {
	return docOption{doc: doc}
}

type paramDocOption struct{ param, doc string }

// Attach a human-readable description to a parameter.
func WithParamDoc(param, doc string) ContractOption {
	return paramDocOption{param: param, doc: doc}
}
