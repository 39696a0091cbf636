// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 yelobat

package m8

import "strings"

// Host → device control messages. These are sent raw, without SLIP
// framing; only the device → host display stream is framed.

// EnableMessage asks the device to start streaming display commands.
func EnableMessage() []byte {
	return []byte{msgEnable}
}

// ResetMessage asks the device to resend the full screen state.
func ResetMessage() []byte {
	return []byte{msgReset}
}

// DisconnectMessage tells the device the host is going away, returning it
// to its own display.
func DisconnectMessage() []byte {
	return []byte{msgDisconnect}
}

// ControllerMessage encodes the current hardware key state. The device
// reacts to changes, so senders should transmit the full mask on every
// press and release.
func ControllerMessage(keys KeyMask) []byte {
	return []byte{msgController, byte(keys)}
}

// KeyjazzMessage encodes a keyjazz note-on with velocity. Note 0xFF is
// note-off.
func KeyjazzMessage(note, velocity uint8) []byte {
	return []byte{msgKeyjazz, note, velocity}
}

// KeyjazzNoteOff is the note value that releases the active keyjazz note.
const KeyjazzNoteOff = 0xFF

var keyNames = []struct {
	mask KeyMask
	name string
}{
	{KeyEdit, "EDIT"},
	{KeyOption, "OPTION"},
	{KeyRight, "RIGHT"},
	{KeyStart, "START"},
	{KeySelect, "SELECT"},
	{KeyDown, "DOWN"},
	{KeyUp, "UP"},
	{KeyLeft, "LEFT"},
}

// String lists the set keys, e.g. "EDIT|UP". An empty mask is "NONE".
func (k KeyMask) String() string {
	if k == 0 {
		return "NONE"
	}
	parts := make([]string, 0, 8)
	for _, kn := range keyNames {
		if k&kn.mask != 0 {
			parts = append(parts, kn.name)
		}
	}
	return strings.Join(parts, "|")
}
