//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o solverfakes/fake_oracle.go . Oracle

package solver

import (
	"errors"
	"time"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Result is the outcome of a single bounded query.
type Result int

const (
	Unsat   Result = -1
	Unknown Result = 0
	Sat     Result = 1
)

func (r Result) String() string {
	switch r {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	default:
		return "unknown"
	}
}

// ErrScopeUnderflow is returned by Pop when no scope is open.
var ErrScopeUnderflow = errors.New("pop called without a matching push")

// Model values report the truth value of literals in a satisfying
// assignment.
type Model interface {
	Value(m z.Lit) bool
}

// Oracle is an incremental satisfiability session. Formulas are built
// as literals of the shared Circuit and asserted either permanently
// (at depth 0) or within a scope opened by Push.
//
// Scopes follow strict stack discipline: Pop discards every assertion
// made since the matching Push.
type Oracle interface {
	// Circuit returns the circuit in which all asserted literals
	// are defined.
	Circuit() *logic.C
	// Assert adds each literal as a constraint of the innermost
	// open scope.
	Assert(ms ...z.Lit)
	// Push opens a new scope.
	Push()
	// Pop closes the innermost scope.
	Pop() error
	// Depth returns the number of open scopes.
	Depth() int
	// Check solves the current assertions. A non-positive timeout
	// waits for a definite answer.
	Check(timeout time.Duration) Result
	// Model returns the assignment found by the last Check that
	// returned Sat, or nil if there has been none.
	Model() Model
}
