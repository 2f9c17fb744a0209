// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	newline   key.Binding
	esc       key.Binding
	tab       key.Binding
	quit      key.Binding
	forceQuit key.Binding
	sync      key.Binding
	scanSync  key.Binding
	delete    key.Binding
	deleteAll key.Binding
	info      key.Binding
	generate  key.Binding
	premium   key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k", "left", "h")),
	down:      key.NewBinding(key.WithKeys("down", "j", "right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	newline:   key.NewBinding(key.WithKeys("ctrl+j")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	sync:      key.NewBinding(key.WithKeys("s")),
	scanSync:  key.NewBinding(key.WithKeys("ctrl+s")),
	delete:    key.NewBinding(key.WithKeys("d")),
	deleteAll: key.NewBinding(key.WithKeys("D")),
	info:      key.NewBinding(key.WithKeys("v")),
	generate:  key.NewBinding(key.WithKeys("ctrl+g")),
	premium:   key.NewBinding(key.WithKeys("p")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
