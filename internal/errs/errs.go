// Package errs defines the error types surfaced to API clients.
//
// Every failure that reaches the HTTP boundary is normalized into an
// HTTPError so the response body always has the shape
// {"message": <string>}. Status and machine code stay server-side for
// logging and are never serialized.
package errs
