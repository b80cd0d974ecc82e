// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	sync    key.Binding
	refresh key.Binding
	copy    key.Binding
	logout  key.Binding
	quit    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	sync:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync")),
	refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy loginid")),
	logout:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "logout")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.sync, k.copy, k.refresh, k.logout, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down},
		{k.sync, k.refresh, k.copy},
		{k.logout, k.quit},
	}
}
