// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the client and
// the remote store: typed context keys, JSON response writing, the HTTP
// client and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

var (
	// ScopeCtxKey is the key of the user scope taken from the request path.
	ScopeCtxKey = contextKey("userScope")

	// TraceIDCtxKey is the key of the request trace id.
	TraceIDCtxKey = contextKey("traceID")
)

// WithScope returns a copy of ctx carrying scope.
func WithScope(ctx context.Context, scope string) context.Context {
	return context.WithValue(ctx, ScopeCtxKey, scope)
}

// GetScopeFromContext retrieves the user scope stored by [WithScope].
// ok is false when the value is missing or empty.
func GetScopeFromContext(ctx context.Context) (string, bool) {
	scope, ok := ctx.Value(ScopeCtxKey).(string)
	return scope, ok && scope != ""
}

// GetTraceIDFromContext retrieves the request trace id.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(TraceIDCtxKey).(string)
	return id, ok
}
