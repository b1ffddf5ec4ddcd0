package services

import "errors"

var (
	ErrNotFound      = errors.New("resource not found")
	ErrMissingFields = errors.New("all fields required")
	ErrEmailTaken    = errors.New("email already in use")
	ErrBadCreds      = errors.New("invalid credentials")
	ErrUnknownEmail  = errors.New("user not found")
	ErrBlocked       = errors.New("account blocked")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidRating = errors.New("invalid rating")
	ErrInvalidStock  = errors.New("invalid stock value")
	ErrNotOwner      = errors.New("not authorized to delete this product")
)
