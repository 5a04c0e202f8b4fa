package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPermissionDenied indicates that the caller's role lacks rights for the requested mutation or transition.
var ErrPermissionDenied = errors.New("permission denied")

// ErrInvalidState indicates a stage transition that would leave the 0..4 stage range.
var ErrInvalidState = errors.New("invalid state")

// ErrConflict indicates that a precondition supplied by the caller (e.g. expected stage) no longer holds.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")
