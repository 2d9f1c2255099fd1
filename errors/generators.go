package errors

import "fmt"

// NewNotFoundError returns a new ErrNotFound error for the given entity kind
// and id.
func NewNotFoundError(operation, entity string, id uint) error {
	return Error{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", entity),
		Details: Details{
			"operation": operation,
			"entity":    entity,
			"id":        id,
		},
	}
}

// NewIllegalPhaseError returns a new ErrIllegalPhase error for a mutation
// attempted while the owning game is in the given phase.
func NewIllegalPhaseError(operation string, gameID uint, status, want string) error {
	return Error{
		Code:    ErrIllegalPhase,
		Message: fmt.Sprintf("game is %s, operation requires %s", status, want),
		Details: Details{
			"operation": operation,
			"gameId":    gameID,
			"status":    status,
			"required":  want,
		},
	}
}

// NewInvalidTransitionError returns a new ErrInvalidTransition error for a
// lifecycle transition attempted from the given phase.
func NewInvalidTransitionError(operation string, gameID uint, status string) error {
	return Error{
		Code:    ErrInvalidTransition,
		Message: fmt.Sprintf("cannot %s a game that is %s", operation, status),
		Details: Details{
			"operation": operation,
			"gameId":    gameID,
			"status":    status,
		},
	}
}

// NewAlreadyAnsweredError returns a new ErrAlreadyAnswered error for the
// given question.
func NewAlreadyAnsweredError(operation string, questionID uint) error {
	return Error{
		Code:    ErrAlreadyAnswered,
		Message: "question already answered",
		Details: Details{
			"operation":  operation,
			"questionId": questionID,
		},
	}
}

// NewBadRequestError returns a new ErrBadRequest error with the given
// message.
func NewBadRequestError(operation, message string, details Details) error {
	if details == nil {
		details = make(Details)
	}
	details["operation"] = operation
	return Error{
		Code:    ErrBadRequest,
		Message: message,
		Details: details,
	}
}

// NewInternalError wraps a store or infrastructure failure.
func NewInternalError(operation string, err error) error {
	return Error{
		Code:    ErrInternal,
		Err:     err,
		Message: fmt.Sprintf("%s failed", operation),
		Details: Details{
			"operation": operation,
		},
	}
}
