package screen

import "errors"

// Domain errors for the screen package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, screen.ErrScreenNotFound) {
//	    // handle unknown screen ID
//	}
var (
	// ErrScreenNotFound is returned when a screen ID is not registered.
	ErrScreenNotFound = errors.New("screen: not found")

	// ErrDuplicateScreen is returned when registering an ID that already exists.
	ErrDuplicateScreen = errors.New("screen: already registered")

	// ErrInvalidScreen is returned when a descriptor fails validation
	// (empty ID, missing Init or Destroy).
	ErrInvalidScreen = errors.New("screen: invalid descriptor")

	// ErrScreenContract is returned when a screen's Init fails to produce a
	// root visual object. This is a fatal integrity error, not a normal
	// runtime failure: the manager refuses further switches and the caller
	// should escalate to the process fault policy rather than continue
	// with an invalid active screen.
	ErrScreenContract = errors.New("screen: init contract violation")

	// ErrManagerHalted is returned from SwitchTo after a contract violation
	// has poisoned the manager.
	ErrManagerHalted = errors.New("screen: manager halted")
)
