package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrPlanRequired    = errors.New("upgrade required")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrStorageFailure  = errors.New("storage failure")
	ErrDuplicateDesign = errors.New("duplicate design")
)
