package mockforge

import "errors"

var (
	// ErrNoSetup is returned when a strict-mode mock dispatches a member
	// with no matching setup.
	ErrNoSetup = errors.New("no matching setup")

	// ErrVerification is returned when a recorded call count does not
	// satisfy a Times expectation.
	ErrVerification = errors.New("verification failed")

	// ErrInvalidSlot is returned when a configured out value does not
	// reference a writable pointer argument.
	ErrInvalidSlot = errors.New("out value slot is invalid")
)
