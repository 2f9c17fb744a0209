// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/qr-facil/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI owns the bubbletea program.
type TUI struct {
	deps   Deps
	bridge *Bridge
	logger *logger.Logger
}

func New(deps Deps, bridge *Bridge, log *logger.Logger) *TUI {
	if bridge == nil {
		bridge = NewBridge()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{deps: deps, bridge: bridge, logger: log}
}

// Run blocks until the user quits or ctx is cancelled. Pending prompts are
// released with an error once the program stops.
func (t *TUI) Run(ctx context.Context) error {
	p := tea.NewProgram(NewModel(ctx, t.deps), tea.WithAltScreen(), tea.WithContext(ctx))
	t.bridge.attach(p.Send)
	defer t.bridge.detach()

	t.logger.Info().Str("func", "TUI.Run").Msg("terminal ui started")
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal ui stopped with error")
		return err
	}
	t.logger.Info().Str("func", "TUI.Run").Msg("terminal ui stopped")
	return nil
}
