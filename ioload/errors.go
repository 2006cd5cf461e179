package ioload

import "errors"

// ErrParse wraps a malformed line in either input file.
var ErrParse = errors.New("ioload: malformed input")
