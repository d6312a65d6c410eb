// Package client contains the client-side building blocks of the messagely
// CLI: a gRPC implementation of the Client contract that injects the access
// token into every call and maps gRPC status codes to sentinel errors, and
// the bootstrap of the local SQLite store that keeps the session between
// runs.
//
// Callers match failures with errors.Is against ErrUnavailable,
// ErrUnauthorized, ErrForbidden, ErrNotFound, ErrAlreadyExists and
// ErrInvalidInput. The server's message is kept in the error text.
package client
