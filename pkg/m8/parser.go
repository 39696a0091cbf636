// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 yelobat

package m8

import "encoding/binary"

// Parser turns one delimited packet at a time into a typed Command. It
// carries a single piece of cross-packet state: the current fill colour,
// which the short rectangle encodings reuse and the colour-carrying ones
// update.
//
// A Parser must not be shared across decoding sessions; independent
// sessions get independent colour contexts.
type Parser struct {
	currentColour Colour
	defaultColour Colour
}

// NewParser creates a parser whose colour context starts at defaultColour.
// The M8 firmware assumes white on a freshly enabled display.
func NewParser(defaultColour Colour) *Parser {
	return &Parser{
		currentColour: defaultColour,
		defaultColour: defaultColour,
	}
}

// Reset restores the colour context to its initial value. Called on
// transport reconnect.
func (p *Parser) Reset() {
	p.currentColour = p.defaultColour
}

// CurrentColour returns the colour the next context-reusing rectangle
// would be drawn with.
func (p *Parser) CurrentColour() Colour {
	return p.currentColour
}

// Parse classifies a packet by its tag byte, validates its exact length
// and returns the typed command. A nil command with a nil error means the
// packet is deliberately ignored (key press state). The colour context is
// only modified by rectangle encodings that embed a colour; a malformed
// packet never touches it.
func (p *Parser) Parse(packet []byte) (Command, error) {
	if len(packet) == 0 {
		return nil, ErrEmptyPacket
	}

	switch packet[0] {
	case CmdDrawRectangle:
		return p.parseRectangle(packet)
	case CmdDrawCharacter:
		return parseCharacter(packet)
	case CmdDrawWaveform:
		return parseWaveform(packet)
	case CmdSystemInfo:
		return parseSystemInfo(packet)
	case CmdKeyPressState:
		// Key state echoes are not draw commands.
		return nil, nil
	default:
		return nil, &UnrecognizedCommandError{Tag: packet[0]}
	}
}

// parseRectangle handles the four length-selected encodings of the
// rectangle command. When a colour is present it occupies the last three
// bytes, after the optional size.
func (p *Parser) parseRectangle(packet []byte) (Command, error) {
	size := Size{Width: 1, Height: 1}

	switch len(packet) {
	case RectLengthPos:
		// colour from context, 1x1
	case RectLengthPosColour:
		p.currentColour = colourAt(packet, 5)
	case RectLengthPosSize:
		size = sizeAt(packet, 5)
	case RectLengthPosSizeColour:
		size = sizeAt(packet, 5)
		p.currentColour = colourAt(packet, 9)
	default:
		return nil, ErrRectangleFormat
	}

	return DrawRectangle{
		Pos:    positionAt(packet, 1),
		Size:   size,
		Colour: p.currentColour,
	}, nil
}

func parseCharacter(packet []byte) (Command, error) {
	if len(packet) != CharacterLength {
		return nil, ErrCharacterFormat
	}
	return DrawCharacter{
		Code:       packet[1],
		Pos:        positionAt(packet, 2),
		Foreground: colourAt(packet, 6),
		Background: colourAt(packet, 9),
	}, nil
}

func parseWaveform(packet []byte) (Command, error) {
	if len(packet) < MinWaveformLength || len(packet) > MaxWaveformLength {
		return nil, ErrWaveformFormat
	}
	samples := make([]byte, len(packet)-MinWaveformLength)
	copy(samples, packet[MinWaveformLength:])
	return DrawOscilloscopeWaveform{
		Colour:  colourAt(packet, 1),
		Samples: samples,
	}, nil
}

func parseSystemInfo(packet []byte) (Command, error) {
	if len(packet) < MinSystemInfoLength {
		return nil, ErrSystemInfoFormat
	}
	return SystemInfo{
		HardwareType: packet[1],
		Major:        packet[2],
		Minor:        packet[3],
		Patch:        packet[4],
		FontMode:     packet[5],
	}, nil
}

func positionAt(packet []byte, offset int) Position {
	return Position{
		X: binary.LittleEndian.Uint16(packet[offset:]),
		Y: binary.LittleEndian.Uint16(packet[offset+2:]),
	}
}

func sizeAt(packet []byte, offset int) Size {
	return Size{
		Width:  binary.LittleEndian.Uint16(packet[offset:]),
		Height: binary.LittleEndian.Uint16(packet[offset+2:]),
	}
}

func colourAt(packet []byte, offset int) Colour {
	return Colour{
		R: packet[offset],
		G: packet[offset+1],
		B: packet[offset+2],
	}
}
