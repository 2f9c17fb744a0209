// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/qr-facil/internal/dispatcher"
	tea "github.com/charmbracelet/bubbletea"
)

// Bridge connects goroutines outside the bubbletea event loop to the running
// program. It implements [dispatcher.Prompter] and [dispatcher.Alerter], so
// the dispatcher can be built before the program exists.
type Bridge struct {
	mu   sync.RWMutex
	send func(tea.Msg)

	done      chan struct{}
	closeOnce sync.Once
}

// NewBridge returns a bridge with no program attached.
func NewBridge() *Bridge {
	return &Bridge{done: make(chan struct{})}
}

var (
	_ dispatcher.Prompter = (*Bridge)(nil)
	_ dispatcher.Alerter  = (*Bridge)(nil)
)

func (b *Bridge) attach(send func(tea.Msg)) {
	b.mu.Lock()
	b.send = send
	b.mu.Unlock()
}

func (b *Bridge) detach() {
	b.mu.Lock()
	b.send = nil
	b.mu.Unlock()
	b.closeOnce.Do(func() { close(b.done) })
}

// Send delivers msg to the program. It reports false when no program is
// attached.
func (b *Bridge) Send(msg tea.Msg) bool {
	b.mu.RLock()
	send := b.send
	b.mu.RUnlock()
	if send == nil {
		return false
	}
	send(msg)
	return true
}

// Scanned forwards a raw code from an external scanner source.
func (b *Bridge) Scanned(_ context.Context, raw string) {
	b.Send(ScannedMsg{Raw: raw})
}

// Choose shows the action modal and waits for the user's pick.
func (b *Bridge) Choose(ctx context.Context, title, message string, options []dispatcher.Option) (dispatcher.ActionID, error) {
	reply := make(chan dispatcher.ActionID, 1)
	if !b.Send(promptMsg{title: title, message: message, options: options, reply: reply}) {
		return dispatcher.ActionCancel, ErrUINotRunning
	}

	select {
	case id := <-reply:
		return id, nil
	case <-ctx.Done():
		return dispatcher.ActionCancel, ctx.Err()
	case <-b.done:
		return dispatcher.ActionCancel, ErrUINotRunning
	}
}

// Alert queues an informational overlay. It does not wait for dismissal.
func (b *Bridge) Alert(_ context.Context, title, message string) {
	b.Send(alertMsg{title: title, message: message})
}
