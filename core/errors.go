package core

import (
	"fmt"
)

// DisplayError reports that no usable terminal could be set up. It is always
// fatal: it happens before any game state exists.
type DisplayError struct {
	Op  string
	Err error
}

func (e *DisplayError) Error() string {
	return fmt.Sprintf("display %s: %v", e.Op, e.Err)
}

func (e *DisplayError) Unwrap() error {
	return e.Err
}
