// Package client is the gRPC client of the gophauth session service.
//
// GRPCClient keeps the current token pair, attaches the access token to
// protected calls, and when such a call is rejected as unauthenticated it
// rotates the refresh token once and retries. Callers persist the pair
// returned by Tokens after each call.
//
// Status codes are mapped to sentinel errors (ErrUnauthorized,
// ErrSessionExpired, ErrAlreadyRegistered, ErrInvalidArgument,
// ErrRateLimited, ErrUnavailable) that callers match with errors.Is.
package client
