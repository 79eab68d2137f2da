package game

// The three error kinds below are the complete failure contract of the
// service. Callers classify with errors.As and relay the message as-is.

// NotFoundError means a looked-up room or player does not exist.
type NotFoundError struct{ msg string }

func (e *NotFoundError) Error() string { return e.msg }

// ValidationError means a supplied display name was rejected.
type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

// InvalidStateError means the operation is not valid for the room's
// current draw/card state.
type InvalidStateError struct{ msg string }

func (e *InvalidStateError) Error() string { return e.msg }

var (
	ErrRoomNotFound    = &NotFoundError{"Room not found"}
	ErrPlayerNotFound  = &NotFoundError{"Player not found"}
	ErrNumberNotDrawn  = &InvalidStateError{"Number not drawn yet"}
	ErrNumberNotOnCard = &InvalidStateError{"Number not on card"}
	ErrAllNumbersDrawn = &InvalidStateError{"All numbers drawn"}
)
