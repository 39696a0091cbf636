// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 yelobat

// Package m8 provides a Go implementation of the Dirtywave M8 headless
// display protocol.
//
// The M8 streams SLIP-framed draw commands over USB serial. This package
// provides the SLIP de-framer, the command parser with its session colour
// context, the cycle-level decoder that ties the two together, and the
// host-to-device control message encoding.
package m8

// SLIP framing bytes
const (
	SlipEnd    = 0xC0
	SlipEsc    = 0xDB
	SlipEscEnd = 0xDC
	SlipEscEsc = 0xDD
)

// SlipBufferCapacity is the maximum number of payload bytes a single frame
// may carry before the framer drops it and resynchronizes.
const SlipBufferCapacity = 1024

// Command tag bytes (device → host)
const (
	CmdKeyPressState = 0xFB
	CmdDrawWaveform  = 0xFC
	CmdDrawCharacter = 0xFD
	CmdDrawRectangle = 0xFE
	CmdSystemInfo    = 0xFF
)

// Display geometry
const (
	DisplayWidth  = 320
	DisplayHeight = 240
)

// Waveform limits: a waveform packet carries 1 tag byte, 3 colour bytes and
// 0 to MaxWaveformSamples sample bytes. An empty sample list clears the
// trace.
const (
	MaxWaveformSamples = 480
	MinWaveformLength  = 4
	MaxWaveformLength  = MinWaveformLength + MaxWaveformSamples
)

// CharacterLength is the exact packet length of a character draw command.
const CharacterLength = 12

// MinSystemInfoLength is the minimum packet length of a system info command.
const MinSystemInfoLength = 6

// Accepted rectangle packet lengths. The same tag byte selects four
// encodings of the same logical command, disambiguated by total length.
const (
	RectLengthPos           = 5  // pos only, 1x1, colour from context
	RectLengthPosColour     = 8  // pos + colour, 1x1, updates context
	RectLengthPosSize       = 9  // pos + size, colour from context
	RectLengthPosSizeColour = 12 // pos + size + colour, updates context
)

// Hardware types reported by SystemInfo
const (
	HardwareHeadless   = 0x00
	HardwareBetaM8     = 0x01
	HardwareProduction = 0x02
	HardwareModel02    = 0x03
)

// USB identification for the M8
const (
	USBVendorID  = 0x16C0
	USBProductID = 0x048A
)

// DefaultBaudRate is the baud rate of the M8's CDC serial interface.
const DefaultBaudRate = 115200

// Host → device message bytes
const (
	msgEnable     = 'E'
	msgReset      = 'R'
	msgDisconnect = 'D'
	msgController = 'C'
	msgKeyjazz    = 'K'
)

// KeyMask is a bitmask of M8 hardware keys sent in a controller message.
type KeyMask uint8

// Key bits of the controller state byte
const (
	KeyEdit   KeyMask = 1 << 0
	KeyOption KeyMask = 1 << 1
	KeyRight  KeyMask = 1 << 2
	KeyStart  KeyMask = 1 << 3
	KeySelect KeyMask = 1 << 4
	KeyDown   KeyMask = 1 << 5
	KeyUp     KeyMask = 1 << 6
	KeyLeft   KeyMask = 1 << 7
)
