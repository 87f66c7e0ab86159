package domain

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidToken    = errors.New("invalid token")
	ErrForbidden       = errors.New("forbidden")
	ErrMissingParam    = errors.New("required parameter missing")
	ErrInvalidID       = errors.New("invalid identifier")
	ErrInvalidPayload  = errors.New("invalid payload")
)
