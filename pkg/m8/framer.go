// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 yelobat

package m8

// Framer state machine states
const (
	stateNormal = iota
	stateEscaped
)

// Framer implements the SLIP de-framing state machine. It consumes raw
// bytes one at a time, resolves escape sequences and emits complete
// packets. It knows nothing about command semantics.
type Framer struct {
	state    int
	buffer   []byte
	capacity int
}

// NewFramer creates a framer with the given buffer capacity. A capacity of
// zero or less uses SlipBufferCapacity.
func NewFramer(capacity int) *Framer {
	if capacity <= 0 {
		capacity = SlipBufferCapacity
	}
	return &Framer{
		buffer:   make([]byte, 0, capacity),
		capacity: capacity,
	}
}

// Reset clears the accumulation buffer and returns the framer to its
// normal state.
func (f *Framer) Reset() {
	f.buffer = f.buffer[:0]
	f.state = stateNormal
}

// Feed processes a single byte. It returns a completed packet when the
// byte terminates a non-empty frame, or nil while a frame is still in
// progress. On a protocol violation the in-progress frame is discarded,
// the framer resynchronizes and the error is returned; no partial packet
// is ever emitted.
func (f *Framer) Feed(b byte) ([]byte, error) {
	switch f.state {
	case stateNormal:
		switch b {
		case SlipEnd:
			if len(f.buffer) == 0 {
				// Bare delimiter between frames, not an error.
				return nil, nil
			}
			packet := make([]byte, len(f.buffer))
			copy(packet, f.buffer)
			f.buffer = f.buffer[:0]
			return packet, nil
		case SlipEsc:
			f.state = stateEscaped
			return nil, nil
		default:
			return nil, f.put(b)
		}

	case stateEscaped:
		f.state = stateNormal
		switch b {
		case SlipEscEnd:
			return nil, f.put(SlipEnd)
		case SlipEscEsc:
			return nil, f.put(SlipEsc)
		default:
			f.Reset()
			return nil, &UnknownEscapedByteError{Byte: b}
		}

	default:
		f.Reset()
		return nil, nil
	}
}

// put appends a payload byte, respecting the buffer capacity. Hitting the
// capacity drops the frame and resynchronizes.
func (f *Framer) put(b byte) error {
	if len(f.buffer) >= f.capacity {
		f.Reset()
		return ErrBufferOverflow
	}
	f.buffer = append(f.buffer, b)
	return nil
}

// Pending returns the number of bytes accumulated for the in-progress
// frame.
func (f *Framer) Pending() int {
	return len(f.buffer)
}
