package terminal

import "errors"

// ErrNotTerminal is returned when raw mode is requested on a descriptor
// that is not an interactive terminal.
var ErrNotTerminal = errors.New("not a terminal")
