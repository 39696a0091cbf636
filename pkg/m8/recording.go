// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 yelobat

package m8

import (
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Recordings are a flat CBOR stream of records, one per decoded command,
// so a session can be replayed or inspected offline without the device.

// Record kinds stored in the stream
const (
	recordRectangle = 1
	recordCharacter = 2
	recordWaveform  = 3
	recordInfo      = 4
)

// record is the CBOR envelope for one command. Only the field matching
// Kind is populated.
type record struct {
	Kind     uint8                     `cbor:"0,keyasint"`
	UnixMs   int64                     `cbor:"1,keyasint"`
	Rect     *DrawRectangle            `cbor:"2,keyasint,omitempty"`
	Char     *DrawCharacter            `cbor:"3,keyasint,omitempty"`
	Waveform *DrawOscilloscopeWaveform `cbor:"4,keyasint,omitempty"`
	Info     *SystemInfo               `cbor:"5,keyasint,omitempty"`
}

// RecordingWriter appends timestamped commands to a CBOR stream.
type RecordingWriter struct {
	enc *cbor.Encoder
}

// NewRecordingWriter creates a writer over w. The caller owns closing w.
func NewRecordingWriter(w io.Writer) *RecordingWriter {
	return &RecordingWriter{enc: cbor.NewEncoder(w)}
}

// Append writes one command with its decode timestamp.
func (r *RecordingWriter) Append(cmd Command, at time.Time) error {
	rec := record{UnixMs: at.UnixMilli()}

	switch c := cmd.(type) {
	case DrawRectangle:
		rec.Kind = recordRectangle
		rec.Rect = &c
	case DrawCharacter:
		rec.Kind = recordCharacter
		rec.Char = &c
	case DrawOscilloscopeWaveform:
		rec.Kind = recordWaveform
		rec.Waveform = &c
	case SystemInfo:
		rec.Kind = recordInfo
		rec.Info = &c
	default:
		return fmt.Errorf("m8: cannot record command of type %T", cmd)
	}

	if err := r.enc.Encode(rec); err != nil {
		return fmt.Errorf("m8: encode record: %w", err)
	}
	return nil
}

// RecordingReader reads a CBOR command stream written by RecordingWriter.
type RecordingReader struct {
	dec *cbor.Decoder
}

// NewRecordingReader creates a reader over r.
func NewRecordingReader(r io.Reader) *RecordingReader {
	return &RecordingReader{dec: cbor.NewDecoder(r)}
}

// Next returns the next command and its original decode time. It returns
// io.EOF at the end of the stream.
func (r *RecordingReader) Next() (Command, time.Time, error) {
	var rec record
	if err := r.dec.Decode(&rec); err != nil {
		if err == io.EOF {
			return nil, time.Time{}, io.EOF
		}
		return nil, time.Time{}, fmt.Errorf("m8: decode record: %w", err)
	}

	at := time.UnixMilli(rec.UnixMs)

	switch rec.Kind {
	case recordRectangle:
		if rec.Rect == nil {
			return nil, time.Time{}, fmt.Errorf("m8: rectangle record missing body")
		}
		return *rec.Rect, at, nil
	case recordCharacter:
		if rec.Char == nil {
			return nil, time.Time{}, fmt.Errorf("m8: character record missing body")
		}
		return *rec.Char, at, nil
	case recordWaveform:
		if rec.Waveform == nil {
			return nil, time.Time{}, fmt.Errorf("m8: waveform record missing body")
		}
		return *rec.Waveform, at, nil
	case recordInfo:
		if rec.Info == nil {
			return nil, time.Time{}, fmt.Errorf("m8: info record missing body")
		}
		return *rec.Info, at, nil
	default:
		return nil, time.Time{}, fmt.Errorf("m8: unknown record kind %d", rec.Kind)
	}
}
