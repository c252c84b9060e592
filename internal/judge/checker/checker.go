// Package checker compares expected and actual program output under a named policy and
// renders colorized, line-numbered diff text for display.
package checker

import (
	"slither/internal/judge/model"
	appErr "slither/pkg/errors"
)

// Kind names a comparison policy as written in a testset's checker spec.
type Kind string

const (
	KindLines  Kind = "lines"
	KindAbsRel Kind = "abs-rel"
)

// DefaultAmount is the abs-rel exponent used when a spec leaves it out.
const DefaultAmount = 6

// Options parameterize a check.
type Options struct {
	// Amount is the tolerance exponent for abs-rel: error = 10^-Amount.
	Amount int
	// DebugDelimiter marks actual lines that are skipped for comparison.
	DebugDelimiter string
}

// Verdict is the result of one check.
type Verdict struct {
	OK              bool
	DisplayExpected string
	DisplayActual   string
}

// Checker is one comparison policy. Implementations are pure.
type Checker interface {
	Check(opts Options, expected, actual string) Verdict
}

var registry = map[Kind]Checker{
	KindLines:  linesChecker{},
	KindAbsRel: absRelChecker{},
}

// Get returns the checker registered under kind.
func Get(kind Kind) (Checker, error) {
	c, ok := registry[kind]
	if !ok {
		return nil, appErr.Newf(appErr.CheckerNotFound, "unknown checker type %q", string(kind))
	}
	return c, nil
}

// Policy is a checker bound to its options.
type Policy struct {
	Kind    Kind
	Checker Checker
	Options Options
}

// Check runs the bound checker.
func (p Policy) Check(expected, actual string) Verdict {
	return p.Checker.Check(p.Options, expected, actual)
}

// Resolve validates a testset's checker spec and binds it to the testset's debug delimiter.
// An empty type selects the exact line checker.
func Resolve(spec model.CheckerSpec, debugDelimiter string) (Policy, error) {
	kind := Kind(spec.Type)
	if kind == "" {
		kind = KindLines
	}
	c, err := Get(kind)
	if err != nil {
		return Policy{}, err
	}
	opts := Options{Amount: spec.Options.Amount, DebugDelimiter: debugDelimiter}
	if opts.DebugDelimiter == "" {
		opts.DebugDelimiter = model.DefaultDebugDelimiter
	}
	if kind == KindAbsRel {
		if opts.Amount < 0 {
			return Policy{}, appErr.ValidationError("checker.options.amount", "must be a positive integer")
		}
		if opts.Amount == 0 {
			opts.Amount = DefaultAmount
		}
	}
	return Policy{Kind: kind, Checker: c, Options: opts}, nil
}
