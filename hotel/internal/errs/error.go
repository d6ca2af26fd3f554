package errs

import (
	"errors"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidDateRange = errors.New("departure date must be after arrival date")
	ErrNoRoomsSelected  = errors.New("at least one room must be selected")
)
