// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, hashing, HTTP response writing,
// JWT token generation and validation, and trace identifiers.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the session middleware stores the
// resolved [models.Principal].
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// GetPrincipalFromContext retrieves the principal stored by WithPrincipal.
// A context without a principal yields the anonymous principal.
func GetPrincipalFromContext(ctx context.Context) models.Principal {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	if !ok {
		return models.Anonymous()
	}
	return p
}
