package errors

type Code string

const (
	// ErrNotFound is used when a referenced entity id does not exist.
	ErrNotFound Code = "not-found"
	// ErrIllegalPhase is used when a structural or gameplay mutation is
	// attempted outside its permitted lifecycle phase.
	ErrIllegalPhase Code = "illegal-phase"
	// ErrInvalidTransition is used when a lifecycle transition is attempted
	// from a phase that does not permit it.
	ErrInvalidTransition Code = "invalid-transition"
	// ErrAlreadyAnswered is used for duplicate resolution attempts on a
	// question.
	ErrAlreadyAnswered Code = "already-answered"
	// ErrBadRequest is used for malformed or rejected input.
	ErrBadRequest Code = "bad-request"
	// ErrInternal is used for unexpected failures, including store errors.
	ErrInternal Code = "internal"
)

func (c Code) String() string {
	return string(c)
}
