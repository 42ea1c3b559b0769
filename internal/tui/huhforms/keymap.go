package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// CreateKeyMap returns huh's default keymap with enter submitting the form
// from any field and ctrl+s as an extra submit key
func CreateKeyMap() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Input.Next = key.NewBinding(
		key.WithKeys("enter", "tab"),
		key.WithHelp("enter/tab", "next"),
	)
	keymap.Input.Submit = key.NewBinding(
		key.WithKeys("enter", "ctrl+s"),
		key.WithHelp("enter", "submit"),
	)

	return keymap
}
