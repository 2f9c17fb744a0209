// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scanner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/qr-facil/internal/logger"
)

// maxRecordSize bounds one framed record. vCards with embedded photos are
// the largest payloads a scanner produces.
const maxRecordSize = 1 << 20

// Handler receives every detection that passes the gate.
type Handler func(ctx context.Context, raw string)

// Loop reads framed codes (see [splitRecords]) and hands them to a Handler
// through a [Gate].
type Loop struct {
	gate   *Gate
	logger *logger.Logger
}

// NewLoop returns a loop over gate.
func NewLoop(gate *Gate, log *logger.Logger) *Loop {
	return &Loop{gate: gate, logger: log}
}

// Run reads records from r until EOF, a read error or ctx cancellation.
// Records are single lines, NUL-terminated payloads or multi-line
// BEGIN:/END: envelopes. Blank records are skipped. The handler runs on the
// caller's goroutine, one detection at a time.
//
// Run returns nil at EOF, ctx.Err() on cancellation, and the read error
// otherwise.
func (l *Loop) Run(ctx context.Context, r io.Reader, handle Handler) error {
	records := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(records)
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxRecordSize)
		sc.Split(splitRecords)
		for sc.Scan() {
			select {
			case records <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case record, ok := <-records:
			if !ok {
				return l.finish(readErr)
			}
			raw := strings.TrimRight(strings.ReplaceAll(record, "\r\n", "\n"), "\r\n")
			if strings.TrimSpace(raw) == "" {
				continue
			}
			if !l.gate.Accept() {
				l.logger.Debug().Str("func", "Loop.Run").Msg("detection dropped during cool-down")
				continue
			}
			handle(ctx, raw)
		}
	}
}

func (l *Loop) finish(readErr <-chan error) error {
	select {
	case err := <-readErr:
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read scanner source: %w", err)
		}
	default:
	}
	return nil
}
