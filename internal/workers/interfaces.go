// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; the work happens in
// goroutines owned by the worker and bound to ctx. Stop ends them and blocks
// until they have exited. Stop must be safe to call on a worker that is not
// running.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc; wg sync.WaitGroup }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    // start background processing
//	}
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
