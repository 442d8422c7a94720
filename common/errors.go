package common

import "errors"

var (
	// ErrorInvalidArgument is returned for caller input outside the documented domain:
	// non-positive grid size or trial count, or coordinates outside [1, n].
	ErrorInvalidArgument = errors.New("invalid argument")
	ErrorInvalidValue    = errors.New("invalid value")
)
