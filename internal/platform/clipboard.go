// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard writes to the system clipboard.
type Clipboard struct {
	write func(string) error
}

func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll}
}

// SetText replaces the clipboard content with text.
func (c *Clipboard) SetText(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
	}
	return nil
}
