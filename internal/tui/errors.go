// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrUINotRunning is returned by prompts issued while no program is attached
// to the bridge.
var ErrUINotRunning = errors.New("terminal ui is not running")
