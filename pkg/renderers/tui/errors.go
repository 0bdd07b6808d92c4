package tui

import "errors"

// ErrAborted signals the user interrupted the session (ctrl-c).
var ErrAborted = errors.New("tui: session aborted")
