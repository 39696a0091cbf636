// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 yelobat

package cmd

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/yelobat/m8term/pkg/m8"
)

// KeyMap binds terminal key names (bubbletea key strings, e.g. "z",
// "up", "enter") to M8 hardware keys.
type KeyMap struct {
	Edit   string
	Option string
	Right  string
	Left   string
	Up     string
	Down   string
	Select string
	Start  string
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit:   "z",
		Option: "x",
		Right:  "right",
		Left:   "left",
		Up:     "up",
		Down:   "down",
		Select: "a",
		Start:  "s",
	}
}

type keymapFile struct {
	Edit   string `toml:"edit"`
	Option string `toml:"option"`
	Right  string `toml:"right"`
	Left   string `toml:"left"`
	Up     string `toml:"up"`
	Down   string `toml:"down"`
	Select string `toml:"select"`
	Start  string `toml:"start"`
}

// LoadKeyMap reads bindings from a TOML file, starting from the defaults.
// Only keys present in the file are overridden.
func LoadKeyMap(path string) (KeyMap, error) {
	km := DefaultKeyMap()

	var raw keymapFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return KeyMap{}, fmt.Errorf("load keymap: %w", err)
	}

	set := func(key string, dst *string, value string) error {
		if !meta.IsDefined(key) {
			return nil
		}
		v := strings.TrimSpace(value)
		if v == "" {
			return fmt.Errorf("keymap: empty binding for %q", key)
		}
		*dst = v
		return nil
	}

	for _, bind := range []struct {
		name  string
		dst   *string
		value string
	}{
		{"edit", &km.Edit, raw.Edit},
		{"option", &km.Option, raw.Option},
		{"right", &km.Right, raw.Right},
		{"left", &km.Left, raw.Left},
		{"up", &km.Up, raw.Up},
		{"down", &km.Down, raw.Down},
		{"select", &km.Select, raw.Select},
		{"start", &km.Start, raw.Start},
	} {
		if err := set(bind.name, bind.dst, bind.value); err != nil {
			return KeyMap{}, err
		}
	}

	return km, nil
}

// Mask returns the M8 key bit for a terminal key name, or 0 if unbound.
func (k KeyMap) Mask(key string) m8.KeyMask {
	switch key {
	case k.Edit:
		return m8.KeyEdit
	case k.Option:
		return m8.KeyOption
	case k.Right:
		return m8.KeyRight
	case k.Left:
		return m8.KeyLeft
	case k.Up:
		return m8.KeyUp
	case k.Down:
		return m8.KeyDown
	case k.Select:
		return m8.KeySelect
	case k.Start:
		return m8.KeyStart
	}
	return 0
}
