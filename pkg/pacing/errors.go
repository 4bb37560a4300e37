package pacing

import (
	"errors"
)

var (
	// ErrNegativeDepth is returned when the pacer is constructed with a
	// reorder depth below zero.
	ErrNegativeDepth = errors.New("pacing: reorder depth must not be negative")

	// ErrNonMonotonicStart is returned when a frame's start timestamp
	// does not strictly increase over the previous submission.
	ErrNonMonotonicStart = errors.New("pacing: frame start must strictly increase")

	// ErrMalformedFrame is returned for a frame whose stop does not
	// exceed its start.
	ErrMalformedFrame = errors.New("pacing: frame stop must exceed start")

	// ErrStaleToken is returned when the encoder echoes a token outside
	// the live registry window. That is an integration fault: the
	// encoder lagged more than InfoWindow frames behind submission.
	ErrStaleToken = errors.New("pacing: packet token outside live frame window")
)
