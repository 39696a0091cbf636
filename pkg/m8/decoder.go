// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 yelobat

package m8

// ErrorFunc receives per-packet decode errors. Every reported error is
// recoverable; the decoder has already resynchronized when it is called.
type ErrorFunc func(error)

// Decoder orchestrates the Framer and Parser over one read cycle of raw
// serial bytes. The framer buffer and colour context are session state and
// survive across cycles; the command list is rebuilt each cycle.
//
// A Decoder is not safe for concurrent use. The intended pattern is a
// single reader goroutine handing byte chunks to a single decoding
// consumer.
type Decoder struct {
	framer   *Framer
	parser   *Parser
	commands []Command
	onError  ErrorFunc
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithBufferCapacity overrides the framer buffer capacity.
func WithBufferCapacity(capacity int) DecoderOption {
	return func(d *Decoder) {
		d.framer = NewFramer(capacity)
	}
}

// WithDefaultColour overrides the initial colour context.
func WithDefaultColour(c Colour) DecoderOption {
	return func(d *Decoder) {
		d.parser = NewParser(c)
	}
}

// WithErrorFunc installs a diagnostics sink for per-packet errors. Without
// one, errors are silently dropped along with their packets.
func WithErrorFunc(fn ErrorFunc) DecoderOption {
	return func(d *Decoder) {
		d.onError = fn
	}
}

// NewDecoder creates a decoder with a white colour context and the default
// buffer capacity.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{
		framer: NewFramer(SlipBufferCapacity),
		parser: NewParser(ColourWhite),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Reset clears all session state: the framer buffer, the colour context
// and the current command list. Call it when the transport reconnects.
func (d *Decoder) Reset() {
	d.framer.Reset()
	d.parser.Reset()
	d.commands = d.commands[:0]
}

// DecodeCycle processes one read cycle of raw bytes and returns the
// commands decoded from it, in arrival order. A malformed frame is
// reported to the error sink and skipped; decoding of the remaining bytes
// continues. The returned slice is valid until the next call.
func (d *Decoder) DecodeCycle(raw []byte) []Command {
	d.commands = d.commands[:0]

	for _, b := range raw {
		packet, err := d.framer.Feed(b)
		if err != nil {
			d.report(err)
			continue
		}
		if packet == nil {
			continue
		}

		cmd, err := d.parser.Parse(packet)
		if err != nil {
			d.report(err)
			continue
		}
		if cmd != nil {
			d.commands = append(d.commands, cmd)
		}
	}

	return d.commands
}

// CurrentColour exposes the parser's colour context, mainly for tests and
// diagnostics.
func (d *Decoder) CurrentColour() Colour {
	return d.parser.CurrentColour()
}

func (d *Decoder) report(err error) {
	if d.onError != nil {
		d.onError(err)
	}
}
