// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 yelobat

package m8

// Position is a pixel coordinate on the M8 display.
type Position struct {
	X uint16
	Y uint16
}

// Size is the extent of a drawn region in pixels.
type Size struct {
	Width  uint16
	Height uint16
}

// Colour is a 24-bit RGB colour. Equality is exact byte equality.
type Colour struct {
	R uint8
	G uint8
	B uint8
}

// Common colours
var (
	ColourBlack = Colour{0x00, 0x00, 0x00}
	ColourWhite = Colour{0xFF, 0xFF, 0xFF}
)

// Command is one decoded M8 draw or status instruction. The set of
// implementations is closed: DrawRectangle, DrawCharacter,
// DrawOscilloscopeWaveform and SystemInfo.
type Command interface {
	isCommand()
}

// DrawRectangle fills a rectangle of pixels with a single colour.
type DrawRectangle struct {
	Pos    Position
	Size   Size
	Colour Colour
}

// DrawCharacter draws one font glyph at a pixel position.
type DrawCharacter struct {
	Code       uint8
	Pos        Position
	Foreground Colour
	Background Colour
}

// DrawOscilloscopeWaveform draws the oscilloscope trace across the top of
// the display. Each sample is the y coordinate of one column; an empty
// sample list clears the trace.
type DrawOscilloscopeWaveform struct {
	Colour  Colour
	Samples []byte
}

// SystemInfo reports the device hardware type, firmware version and the
// active font mode. Informational only; it draws nothing.
type SystemInfo struct {
	HardwareType uint8
	Major        uint8
	Minor        uint8
	Patch        uint8
	FontMode     uint8
}

func (DrawRectangle) isCommand()            {}
func (DrawCharacter) isCommand()            {}
func (DrawOscilloscopeWaveform) isCommand() {}
func (SystemInfo) isCommand()               {}
