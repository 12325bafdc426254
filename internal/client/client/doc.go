// Package client talks to the TemplateHub backend on behalf of the CLI.
//
// GRPCClient manages one connection, attaches the access token to every call
// through a unary interceptor and, when the server reports an expired access
// token, refreshes the token pair once and retries the call. Rotated tokens
// are handed to the OnTokensRefreshed callback so the caller can persist them.
//
// gRPC status codes are mapped to the sentinel errors in errors.go, which
// callers match with errors.Is.
package client
