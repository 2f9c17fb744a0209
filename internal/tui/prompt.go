// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/qr-facil/internal/dispatcher"
)

// promptState is the action modal currently on screen.
type promptState struct {
	title   string
	message string
	options []dispatcher.Option
	idx     int
	reply   chan<- dispatcher.ActionID
}

func newPromptState(msg promptMsg) *promptState {
	return &promptState{
		title:   msg.title,
		message: msg.message,
		options: msg.options,
		reply:   msg.reply,
	}
}

func (p *promptState) move(delta int) {
	if len(p.options) == 0 {
		return
	}
	p.idx = (p.idx + delta + len(p.options)) % len(p.options)
}

// answer delivers id to the waiting dispatcher. The reply channel is
// buffered, so this never blocks the event loop.
func (p *promptState) answer(id dispatcher.ActionID) {
	select {
	case p.reply <- id:
	default:
	}
}

func (p *promptState) selected() dispatcher.ActionID {
	if p.idx < 0 || p.idx >= len(p.options) {
		return dispatcher.ActionCancel
	}
	return p.options[p.idx].ID
}

func (p *promptState) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.title))
	b.WriteString("\n\n")
	if strings.TrimSpace(p.message) != "" {
		b.WriteString(p.message)
		b.WriteString("\n\n")
	}
	for i, opt := range p.options {
		line := fmt.Sprintf("%d. %s", i+1, opt.Label)
		if i == p.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ choose  1-9 pick  enter confirm  esc cancel"))
	return overlayBoxStyle.Render(b.String())
}
