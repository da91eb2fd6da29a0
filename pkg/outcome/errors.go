package outcome

import "fmt"

// UnwrapError signals a wrong-variant Unwrap or UnwrapErr. It is raised via
// panic because it marks a programming mistake, not a domain failure.
type UnwrapError struct {
	msg string
}

func NewUnwrapError(msg string) *UnwrapError {
	return &UnwrapError{msg: msg}
}

func newUnwrapError(what string, payload any) *UnwrapError {
	return &UnwrapError{msg: fmt.Sprintf("%s: %v", what, payload)}
}

func (e *UnwrapError) Error() string {
	return "outcome: " + e.msg
}

// FailureError adapts a failure payload that does not implement error, so
// it can travel through a promise rejection.
type FailureError[E any] struct {
	Failure E
}

func (e *FailureError[E]) Error() string {
	return fmt.Sprintf("%v", e.Failure)
}

// ErrorOf converts a failure payload to an error: the payload itself when it
// already implements error, otherwise a *FailureError wrapping it.
func ErrorOf[E any](failure E) error {
	if err, ok := any(failure).(error); ok && err != nil {
		return err
	}
	return &FailureError[E]{Failure: failure}
}
