// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 yelobat

package m8

// EncodePacket wraps a payload in SLIP framing: special bytes are escaped
// and a frame-end marker is appended. It is the inverse of feeding the
// result through a Framer.
func EncodePacket(payload []byte) []byte {
	// Worst case every byte escapes.
	result := make([]byte, 0, len(payload)*2+1)

	for _, b := range payload {
		switch b {
		case SlipEnd:
			result = append(result, SlipEsc, SlipEscEnd)
		case SlipEsc:
			result = append(result, SlipEsc, SlipEscEsc)
		default:
			result = append(result, b)
		}
	}

	return append(result, SlipEnd)
}
