package plateplan

import errs "github.com/printwise/plateplan/internal/error"

// Validation sentinels returned (wrapped) by Plan. Match with errors.Is.
var (
	ErrEmptyID            = errs.ErrEmptyID
	ErrDuplicateJobID     = errs.ErrDuplicateJobID
	ErrInvalidJobField    = errs.ErrInvalidJobField
	ErrInvalidConstraints = errs.ErrInvalidConstraints
)
