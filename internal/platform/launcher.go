// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/MKhiriev/qr-facil/internal/logger"
)

type commandRunner func(ctx context.Context, name string, args ...string) error

// Launcher hands URIs to the operating system opener: xdg-open on Linux and
// the BSDs, open on macOS and the URL protocol handler on Windows.
type Launcher struct {
	goos string
	run  commandRunner

	logger *logger.Logger
}

func NewLauncher(logger *logger.Logger) *Launcher {
	return &Launcher{
		goos:   runtime.GOOS,
		run:    runCommand,
		logger: logger,
	}
}

// Open starts the handler registered for uri and returns once the opener
// has exited.
func (l *Launcher) Open(ctx context.Context, uri string) error {
	if uri == "" {
		return ErrEmptyURI
	}

	name, args, err := openerCommand(l.goos, uri)
	if err != nil {
		return err
	}

	l.logger.Debug().Str("func", "Launcher.Open").Str("opener", name).Str("uri", uri).Msg("opening uri")
	if err = l.run(ctx, name, args...); err != nil {
		return fmt.Errorf("%s %s: %w", name, uri, err)
	}
	return nil
}

func openerCommand(goos, uri string) (string, []string, error) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return "xdg-open", []string{uri}, nil
	case "darwin":
		return "open", []string{uri}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", uri}, nil
	}
	return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}
