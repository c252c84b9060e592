package model

import (
	"time"

	appErr "slither/pkg/errors"
)

// State is the lifecycle state of one test result.
type State int

const (
	StateWaiting State = iota
	StateRunning
	StateOK
	StateWrongAnswer
	StateTimeLimitExceeded
	StateMemoryLimitExceeded
	StateRuntimeError
)

var stateNames = map[State]string{
	StateWaiting:             "WAITING",
	StateRunning:             "RUNNING",
	StateOK:                  "OK",
	StateWrongAnswer:         "WRONG_ANSWER",
	StateTimeLimitExceeded:   "TIME_LIMIT_EXCEEDED",
	StateMemoryLimitExceeded: "MEMORY_LIMIT_EXCEEDED",
	StateRuntimeError:        "RUNTIME_ERROR",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Terminal reports whether no further transition can happen from s.
func (s State) Terminal() bool {
	return s >= StateOK && s <= StateRuntimeError
}

// Usage is the resource consumption sampled for one run.
type Usage struct {
	Time     time.Duration
	MemoryKB int64
}

// MemoryMB returns the peak resident memory in megabytes.
func (u Usage) MemoryMB() float64 {
	return float64(u.MemoryKB) / 1024
}

// Outcome is the data attached to a terminal result. The concrete type is fixed by the state:
// Complete for OK and WRONG_ANSWER, Stopped for TIME_LIMIT_EXCEEDED and MEMORY_LIMIT_EXCEEDED,
// Crashed for RUNTIME_ERROR.
type Outcome interface {
	Resources() Usage
	Raw() (expected, actual string)
	accepts(State) bool
}

// Stopped is a run cut short by a limit; its output was never aligned.
type Stopped struct {
	Usage    Usage
	Expected string
	Actual   string
}

func (o Stopped) Resources() Usage { return o.Usage }
func (o Stopped) Raw() (expected, actual string) { return o.Expected, o.Actual }
func (o Stopped) accepts(s State) bool {
	return s == StateTimeLimitExceeded || s == StateMemoryLimitExceeded
}

// Crashed is a run that exited with a nonzero status.
type Crashed struct {
	Usage    Usage
	Expected string
	Actual   string
	Stderr   string
}

func (o Crashed) Resources() Usage { return o.Usage }
func (o Crashed) Raw() (expected, actual string) { return o.Expected, o.Actual }
func (o Crashed) accepts(s State) bool { return s == StateRuntimeError }

// Complete is a run that exited normally and went through the checker.
type Complete struct {
	Usage           Usage
	Expected        string
	Actual          string
	DisplayExpected string
	DisplayActual   string
}

func (o Complete) Resources() Usage { return o.Usage }
func (o Complete) Raw() (expected, actual string) { return o.Expected, o.Actual }
func (o Complete) accepts(s State) bool {
	return s == StateOK || s == StateWrongAnswer
}

// Result is the verdict of one test index.
type Result struct {
	Index   int
	State   State
	Outcome Outcome
	// Err is set when the test could not be judged at all (missing files).
	// The state then stays at the last non-terminal value.
	Err error
}

// Start moves a waiting result to RUNNING.
func (r *Result) Start() error {
	if r.State != StateWaiting {
		return appErr.Newf(appErr.InvalidTransition, "test %d: cannot start from %s", r.Index, r.State)
	}
	r.State = StateRunning
	return nil
}

// Finish moves a running result to a terminal state with its matching outcome.
func (r *Result) Finish(state State, outcome Outcome) error {
	if r.State != StateRunning {
		return appErr.Newf(appErr.InvalidTransition, "test %d: cannot finish from %s", r.Index, r.State)
	}
	if !state.Terminal() {
		return appErr.Newf(appErr.InvalidTransition, "test %d: %s is not terminal", r.Index, state)
	}
	if outcome == nil || !outcome.accepts(state) {
		return appErr.Newf(appErr.InvalidTransition, "test %d: outcome does not match %s", r.Index, state)
	}
	r.State = state
	r.Outcome = outcome
	return nil
}

// Skip records an infrastructure error; the result is never judged.
func (r *Result) Skip(err error) {
	if r.State.Terminal() {
		return
	}
	r.Err = err
}

// Resolved reports whether the result reached a terminal state or was skipped.
func (r *Result) Resolved() bool {
	return r.State.Terminal() || r.Err != nil
}

// Results is the ordered collection of results, one per requested index, in request order.
type Results struct {
	Items []*Result
}

// NewResults creates WAITING results for the given indices.
func NewResults(indices []int) *Results {
	items := make([]*Result, 0, len(indices))
	for _, idx := range indices {
		items = append(items, &Result{Index: idx, State: StateWaiting})
	}
	return &Results{Items: items}
}

// Len returns the number of results.
func (r *Results) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Items)
}

// Passed counts OK results.
func (r *Results) Passed() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, item := range r.Items {
		if item.State == StateOK {
			n++
		}
	}
	return n
}

// AllPassed reports whether every requested test ended OK.
func (r *Results) AllPassed() bool {
	return r.Passed() == r.Len()
}
