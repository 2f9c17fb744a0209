// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package scanner feeds raw codes from an external scanner into the client.
//
// A scanner reports the same code on every frame while it is in view, so
// each accepted detection closes a [Gate] for a cool-down window. Detections
// that arrive while the gate is closed are dropped.
package scanner

import (
	"sync"
	"time"
)

// Gate admits one detection and then stays closed until its cool-down
// timer re-arms it.
type Gate struct {
	cooldown time.Duration

	mu    sync.Mutex
	armed bool
	timer *time.Timer
}

// NewGate returns an armed gate. A non-positive cooldown re-arms
// immediately.
func NewGate(cooldown time.Duration) *Gate {
	return &Gate{cooldown: cooldown, armed: true}
}

// Accept reports whether a detection may pass. A successful call closes
// the gate and schedules re-arming after the cool-down.
func (g *Gate) Accept() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.armed {
		return false
	}
	if g.cooldown <= 0 {
		return true
	}

	g.armed = false
	g.timer = time.AfterFunc(g.cooldown, g.rearm)
	return true
}

// Armed reports whether the next detection would be accepted.
func (g *Gate) Armed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.armed
}

// Stop cancels a pending re-arm and opens the gate.
func (g *Gate) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.armed = true
}

func (g *Gate) rearm() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.armed = true
	g.timer = nil
}
