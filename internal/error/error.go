package error

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyID            = errors.New("empty job ID")
	ErrDuplicateJobID     = errors.New("job ID not unique")
	ErrInvalidJobField    = errors.New("invalid job field")
	ErrInvalidConstraints = errors.New("invalid plate constraints")
)

func New(err error, str string) error {
	return fmt.Errorf("%w: %s", err, str)
}
