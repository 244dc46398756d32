package model

import "github.com/pkg/errors"

// Error kinds returned by grid, transition and seeding operations. Returned
// errors wrap one of these; match with errors.Is or errors.Cause.
var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
	ErrInvalidArgument  = errors.New("invalid argument")
)
