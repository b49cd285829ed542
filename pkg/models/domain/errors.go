package domain

import "errors"

// ErrInvalidInput marks malformed caller input: negative amounts, zero
// timestamps, non-positive analysis windows. Wrap it with context via
// fmt.Errorf and detect it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")
