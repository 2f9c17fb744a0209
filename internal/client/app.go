// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/MKhiriev/qr-facil/internal/adapter"
	"github.com/MKhiriev/qr-facil/internal/config"
	"github.com/MKhiriev/qr-facil/internal/dispatcher"
	"github.com/MKhiriev/qr-facil/internal/i18n"
	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/platform"
	"github.com/MKhiriev/qr-facil/internal/processor"
	"github.com/MKhiriev/qr-facil/internal/scanner"
	"github.com/MKhiriev/qr-facil/internal/service"
	"github.com/MKhiriev/qr-facil/internal/store"
	"github.com/MKhiriev/qr-facil/internal/tui"
	"github.com/MKhiriev/qr-facil/internal/workers"
	"github.com/MKhiriev/qr-facil/models"
)

// App is the terminal client process.
type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
	bridge   *tui.Bridge
	ui       *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp opens the local storages and wires the services, the dispatcher and
// the terminal UI.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote, err := adapter.NewRemoteStore(cfg.Adapter, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create remote store adapter: %w", err)
	}

	services := service.NewClientServices(storages, remote, platform.NewEncoder(), *cfg, log)
	translator := i18n.New(cfg.App.Locale)
	bridge := tui.NewBridge()

	disp := dispatcher.New(dispatcher.Deps{
		Prompter:   bridge,
		Alerter:    bridge,
		Clipboard:  platform.NewClipboard(),
		Launcher:   platform.NewLauncher(log),
		Contacts:   platform.NewContacts(cfg.Storage.ContactsDir, bridge, translator, log),
		History:    services.HistoryStore,
		Translator: translator,
	}, log)

	ui := tui.New(tui.Deps{
		Processor:  processor.New(log),
		Executor:   disp,
		History:    services.HistoryStore,
		Sync:       services.SyncService,
		QRCodes:    services.QRCodeService,
		Profile:    services.ProfileService,
		Translator: translator,
		UserScope:  cfg.App.UserScope,
		BuildInfo:  buildInfo,
	}, bridge, log)

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		bridge:   bridge,
		ui:       ui,
		workers:  workers.NewWorkers(services.SyncWorker),
		logger:   log,
	}, nil
}

// Run starts the background workers and the optional scanner feed, then
// blocks in the terminal UI. Everything is stopped once the UI exits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.workers.Run(ctx)

	var wg sync.WaitGroup
	if src := a.cfg.Scanner.Source; src != "" {
		f, err := os.Open(src)
		if err != nil {
			a.logger.Err(err).Str("func", "App.Run").Str("source", src).Msg("scanner source unavailable")
		} else {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer f.Close()
				a.feedScanner(ctx, f, a.bridge.Scanned)
			}()
		}
	}

	uiErr := a.ui.Run(ctx)

	cancel()
	a.workers.Stop()
	wg.Wait()

	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("error closing local storage")
	}

	return uiErr
}

// feedScanner forwards lines from r to handle through the cool-down gate.
func (a *App) feedScanner(ctx context.Context, r io.Reader, handle scanner.Handler) {
	gate := scanner.NewGate(a.cfg.Scanner.Cooldown)
	defer gate.Stop()

	err := scanner.NewLoop(gate, a.logger).Run(ctx, r, handle)
	if err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Err(err).Str("func", "App.feedScanner").Msg("scanner source stopped")
		return
	}
	a.logger.Info().Str("func", "App.feedScanner").Msg("scanner source closed")
}
