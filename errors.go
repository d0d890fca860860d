package cube

import "errors"

// Sentinel errors for the cube package.
var (
	// ErrInvalidMove is returned by Apply/ApplyAll for a Move outside the
	// 18-token alphabet (any Face/Turn combination not produced by the
	// package's own constructors or ParseMove).
	ErrInvalidMove = errors.New("cube: invalid move")

	// ErrInvalidNotation is returned by ParseMove/ParseMoves for a token
	// that isn't a face letter optionally followed by ' or 2.
	ErrInvalidNotation = errors.New("cube: invalid move notation")

	// ErrInvalidStateLength is returned by Deserialize when the input
	// isn't exactly 54 characters (6 faces x 9 stickers).
	ErrInvalidStateLength = errors.New("cube: state must be 54 characters")

	// ErrInvalidStateColor is returned by Deserialize when a character
	// doesn't map to one of the six known color letters.
	ErrInvalidStateColor = errors.New("cube: unrecognized color in state")
)
