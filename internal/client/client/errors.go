package client

import "errors"

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrSessionExpired    = errors.New("session expired: log in again")
	ErrAlreadyRegistered = errors.New("identity already registered")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrRateLimited       = errors.New("too many attempts, try again later")
	ErrNotLoggedIn       = errors.New("not logged in")
)
