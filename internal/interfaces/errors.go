package interfaces

import "errors"

// ErrNotFound is returned by repositories when the addressed row does not exist.
var ErrNotFound = errors.New("not found")
