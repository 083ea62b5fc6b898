package domain

import "errors"

// ErrAccessDenied indicates that a user variant is not allowed into the system.
var ErrAccessDenied = errors.New("access denied")

// ErrUnknownUserKind indicates that a user kind has no registered variant.
var ErrUnknownUserKind = errors.New("unknown user kind")

// ErrInvalidRequest indicates that a payroll request contains invalid data.
var ErrInvalidRequest = errors.New("invalid payroll request")

// ErrInvalidShape indicates that a shape has negative or non-finite dimensions.
var ErrInvalidShape = errors.New("invalid shape dimensions")
