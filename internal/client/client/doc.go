// Package client talks to the MoodLog server over gRPC.
//
// The Client interface is the contract the CLI depends on; GRPCClient is
// its implementation. Requests and responses travel as
// google.protobuf.Struct documents (see internal/rpc) shaped like the HTTP
// API, and every reply is the {data, error} result document.
//
// # Error Handling
//
// gRPC status codes are mapped to sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound and
// ErrRejected. The server's message is kept in the wrapped error text.
package client
