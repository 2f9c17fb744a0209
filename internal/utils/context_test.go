// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetScopeFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{
			name:   "stored",
			ctx:    WithScope(context.Background(), "user@example.com"),
			want:   "user@example.com",
			wantOK: true,
		},
		{
			name: "missing",
			ctx:  context.Background(),
		},
		{
			name: "empty",
			ctx:  WithScope(context.Background(), ""),
		},
		{
			name: "wrong type",
			ctx:  context.WithValue(context.Background(), ScopeCtxKey, 42),
		},
		{
			name: "different key",
			ctx:  context.WithValue(context.Background(), contextKey("other"), "user@example.com"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetScopeFromContext(tt.ctx)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestGetTraceIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "trace-1")

	id, ok := GetTraceIDFromContext(ctx)

	if !ok || id != "trace-1" {
		t.Fatalf("expected trace-1, got %q (ok=%v)", id, ok)
	}
	if _, ok := GetTraceIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}
