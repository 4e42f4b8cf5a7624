package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	status    key.Binding
	statusKey key.Binding
	version   key.Binding
	save      key.Binding
	logout    key.Binding
	delete    key.Binding
	copy      key.Binding
	retry     key.Binding
	discard   key.Binding
	reauth    key.Binding
	yes       key.Binding
	no        key.Binding
	forceQuit key.Binding
}

// Editor bindings use ctrl chords since plain keys go into the text area.
var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	status:    key.NewBinding(key.WithKeys("ctrl+t")),
	statusKey: key.NewBinding(key.WithKeys("t")),
	version:   key.NewBinding(key.WithKeys("v")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	logout:    key.NewBinding(key.WithKeys("ctrl+o")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	retry:     key.NewBinding(key.WithKeys("r")),
	discard:   key.NewBinding(key.WithKeys("d")),
	reauth:    key.NewBinding(key.WithKeys("a")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}
