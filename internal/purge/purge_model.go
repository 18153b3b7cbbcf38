package purge

import "context"

// Tally counts the outcome of one bulk action. It is printed once and
// discarded.
type Tally struct {
	Succeeded int
	Failed    int
}

func (t Tally) Add(other Tally) Tally {
	return Tally{
		Succeeded: t.Succeeded + other.Succeeded,
		Failed:    t.Failed + other.Failed,
	}
}

// Summary describes the impact of an action before it runs, so the user
// confirms against a concrete number.
type Summary struct {
	Description string
	Affected    int
}

// Action is one guarded bulk operation: its impact is computed up front,
// shown to the user, and only executed after confirmation.
type Action interface {
	Name() string
	Summary(ctx context.Context) (Summary, error)
	Execute(ctx context.Context) (Tally, error)
}

// ConfirmFunc gates execution. Returning false must leave every target
// untouched.
type ConfirmFunc func(Summary) bool
