// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 yelobat

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yelobat/m8term/pkg/m8"
)

// ============================================================
// KeyMap Tests
// ============================================================

func writeKeymap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keymap.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write keymap: %v", err)
	}
	return path
}

func TestLoadKeyMap_PartialOverride(t *testing.T) {
	path := writeKeymap(t, `
edit = "enter"
select = "tab"
`)

	km, err := LoadKeyMap(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if km.Edit != "enter" {
		t.Errorf("edit binding: %q", km.Edit)
	}
	if km.Select != "tab" {
		t.Errorf("select binding: %q", km.Select)
	}
	if km.Up != "up" {
		t.Errorf("up should keep its default, got %q", km.Up)
	}
}

func TestLoadKeyMap_FullFile(t *testing.T) {
	path := writeKeymap(t, `
edit = "j"
option = "k"
right = "l"
left = "h"
up = "w"
down = "s"
select = "q"
start = "e"
`)

	km, err := LoadKeyMap(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := KeyMap{
		Edit: "j", Option: "k", Right: "l", Left: "h",
		Up: "w", Down: "s", Select: "q", Start: "e",
	}
	if km != want {
		t.Errorf("keymap mismatch: got %+v, want %+v", km, want)
	}
}

func TestLoadKeyMap_EmptyBinding(t *testing.T) {
	path := writeKeymap(t, `edit = ""`)
	if _, err := LoadKeyMap(path); err == nil {
		t.Error("empty binding should be rejected")
	}
}

func TestLoadKeyMap_MissingFile(t *testing.T) {
	if _, err := LoadKeyMap(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing file should error")
	}
}

func TestKeyMap_Mask(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key  string
		want m8.KeyMask
	}{
		{"z", m8.KeyEdit},
		{"x", m8.KeyOption},
		{"right", m8.KeyRight},
		{"left", m8.KeyLeft},
		{"up", m8.KeyUp},
		{"down", m8.KeyDown},
		{"a", m8.KeySelect},
		{"s", m8.KeyStart},
		{"unbound", 0},
	}

	for _, tt := range tests {
		if got := km.Mask(tt.key); got != tt.want {
			t.Errorf("Mask(%q) = 0x%02X, want 0x%02X", tt.key, uint8(got), uint8(tt.want))
		}
	}
}
