// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 yelobat

package m8

import (
	"errors"
	"fmt"
)

// Every decode error is recoverable at per-packet granularity: the framer
// or parser drops the offending frame, resynchronizes and keeps going.
// None of these ends the session.
var (
	// ErrBufferOverflow is returned when a frame exceeds the framer's
	// buffer capacity. The partial frame is discarded.
	ErrBufferOverflow = errors.New("m8: frame exceeds buffer capacity")

	// ErrEmptyPacket is returned for a zero-length packet handed to the
	// parser.
	ErrEmptyPacket = errors.New("m8: empty packet")

	// ErrRectangleFormat is returned for a rectangle packet whose length
	// is not one of the four accepted encodings.
	ErrRectangleFormat = errors.New("m8: invalid rectangle command format")

	// ErrCharacterFormat is returned for a character packet whose length
	// is not exactly CharacterLength.
	ErrCharacterFormat = errors.New("m8: invalid character command format")

	// ErrWaveformFormat is returned for a waveform packet whose length is
	// outside [MinWaveformLength, MaxWaveformLength].
	ErrWaveformFormat = errors.New("m8: invalid waveform command format")

	// ErrSystemInfoFormat is returned for a system info packet shorter
	// than MinSystemInfoLength.
	ErrSystemInfoFormat = errors.New("m8: invalid system info command format")
)

// UnknownEscapedByteError reports a byte after a SLIP escape marker that is
// neither SlipEscEnd nor SlipEscEsc. The in-progress frame is discarded.
type UnknownEscapedByteError struct {
	Byte byte
}

func (e *UnknownEscapedByteError) Error() string {
	return fmt.Sprintf("m8: unknown escaped byte 0x%02X", e.Byte)
}

// UnrecognizedCommandError reports a packet whose tag byte matches no known
// command.
type UnrecognizedCommandError struct {
	Tag byte
}

func (e *UnrecognizedCommandError) Error() string {
	return fmt.Sprintf("m8: unrecognized command 0x%02X", e.Tag)
}
