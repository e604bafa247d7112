package types

import "errors"

// ErrInvalidInput is the single error kind for inputs that would make the
// ModBerg computation mathematically undefined or physically meaningless.
// All validation failures wrap it, so callers can check with errors.Is.
var ErrInvalidInput = errors.New("invalid input")
