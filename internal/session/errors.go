package session

import "fmt"

// ErrPrecondition is returned when an operation is invoked in a state
// that does not support it, for example submitting an answer with no
// question showing. The state is left untouched.
type ErrPrecondition struct {
	Op     string
	Reason string
}

func (e *ErrPrecondition) Error() string {
	return fmt.Sprintf("cannot %s: %s", e.Op, e.Reason)
}
