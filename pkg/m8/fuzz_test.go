// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 yelobat

package m8

import (
	"math/rand"
	"os"
	"strconv"
	"testing"
	"time"
)

// getFuzzRounds returns the number of fuzz rounds from FUZZ_ROUNDS env var, default 1000
func getFuzzRounds() int {
	if envRounds := os.Getenv("FUZZ_ROUNDS"); envRounds != "" {
		if rounds, err := strconv.Atoi(envRounds); err == nil && rounds > 0 {
			return rounds
		}
	}
	return 1000
}

// getFuzzSeed returns the seed from FUZZ_SEED env var, or generates one from current time
func getFuzzSeed() int64 {
	if envSeed := os.Getenv("FUZZ_SEED"); envSeed != "" {
		if seed, err := strconv.ParseInt(envSeed, 10, 64); err == nil {
			return seed
		}
	}
	return time.Now().UnixNano()
}

// newFuzzRng creates a new random number generator and logs the seed for reproducibility
func newFuzzRng(t *testing.T) *rand.Rand {
	seed := getFuzzSeed()
	t.Logf("Seed: %d (reproduce with FUZZ_SEED=%d)", seed, seed)
	return rand.New(rand.NewSource(seed))
}

// buildRandomPayload creates a random but well-formed command payload
func buildRandomPayload(rng *rand.Rand) []byte {
	switch rng.Intn(4) {
	case 0: // rectangle, one of the four accepted lengths
		lengths := []int{RectLengthPos, RectLengthPosColour, RectLengthPosSize, RectLengthPosSizeColour}
		payload := make([]byte, lengths[rng.Intn(len(lengths))])
		payload[0] = CmdDrawRectangle
		rng.Read(payload[1:])
		return payload
	case 1: // character
		payload := make([]byte, CharacterLength)
		payload[0] = CmdDrawCharacter
		rng.Read(payload[1:])
		return payload
	case 2: // waveform with random sample count
		payload := make([]byte, MinWaveformLength+rng.Intn(MaxWaveformSamples+1))
		payload[0] = CmdDrawWaveform
		rng.Read(payload[1:])
		return payload
	default: // system info
		payload := make([]byte, MinSystemInfoLength)
		payload[0] = CmdSystemInfo
		rng.Read(payload[1:])
		return payload
	}
}

// ============================================================
// Decoder Fuzz Tests
// ============================================================

// TestFuzzDecoder_RandomBytes feeds random bytes to the decoder
// and verifies it doesn't crash or panic
func TestFuzzDecoder_RandomBytes(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	for i := 0; i < rounds; i++ {
		d := NewDecoder()

		// Generate random byte sequence of random length (1-2048 bytes)
		length := rng.Intn(2048) + 1
		data := make([]byte, length)
		rng.Read(data)

		// Feed all bytes in one cycle - should not panic
		d.DecodeCycle(data)
	}
}

// TestFuzzDecoder_RandomValidPackets generates well-formed packets and
// verifies every one of them decodes to exactly one command
func TestFuzzDecoder_RandomValidPackets(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	d := NewDecoder(WithErrorFunc(func(err error) {
		t.Errorf("unexpected decode error: %v", err)
	}))

	for i := 0; i < rounds; i++ {
		payload := buildRandomPayload(rng)
		commands := d.DecodeCycle(EncodePacket(payload))
		if len(commands) != 1 {
			t.Errorf("Round %d: expected 1 command from payload %v, got %d", i, payload, len(commands))
		}
	}
}

// TestFuzzDecoder_CorruptedPackets generates valid packets, corrupts a
// random payload byte and verifies decoding never panics
func TestFuzzDecoder_CorruptedPackets(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	for i := 0; i < rounds; i++ {
		d := NewDecoder()

		stream := EncodePacket(buildRandomPayload(rng))

		// Corrupt a random byte (possibly the END delimiter itself)
		idx := rng.Intn(len(stream))
		stream[idx] ^= byte(rng.Intn(255) + 1)

		// Should not panic
		d.DecodeCycle(stream)
	}
}

// TestFuzzDecoder_TruncatedPackets verifies a truncated frame never leaks
// into the following valid frame
func TestFuzzDecoder_TruncatedPackets(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	for i := 0; i < rounds; i++ {
		d := NewDecoder()

		// A frame cut off before its END, then a bare END to flush it,
		// then a known-good rectangle.
		truncated := EncodePacket(buildRandomPayload(rng))
		cut := rng.Intn(len(truncated)-1) + 1

		var stream []byte
		stream = append(stream, truncated[:cut]...)
		stream = append(stream, SlipEnd)
		stream = append(stream, CmdDrawRectangle, 1, 0, 1, 0, SlipEnd)

		commands := d.DecodeCycle(stream)
		if len(commands) == 0 {
			t.Errorf("Round %d: rectangle after truncated frame was lost", i)
			continue
		}
		last := commands[len(commands)-1]
		rect, ok := last.(DrawRectangle)
		if !ok {
			t.Errorf("Round %d: expected trailing DrawRectangle, got %T", i, last)
			continue
		}
		if rect.Pos != (Position{X: 1, Y: 1}) {
			t.Errorf("Round %d: trailing rectangle corrupted: %+v", i, rect)
		}
	}
}

// TestFuzzDecoder_RepeatedDelimiters tests handling of runs of END bytes
// between valid frames
func TestFuzzDecoder_RepeatedDelimiters(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	for i := 0; i < rounds; i++ {
		d := NewDecoder()

		var stream []byte
		for j := 0; j < rng.Intn(100)+1; j++ {
			stream = append(stream, SlipEnd)
		}
		stream = append(stream, EncodePacket(buildRandomPayload(rng))...)

		commands := d.DecodeCycle(stream)
		if len(commands) != 1 {
			t.Errorf("Round %d: expected 1 command after delimiter run, got %d", i, len(commands))
		}
	}
}

// ============================================================
// Encoder Fuzz Tests
// ============================================================

// TestFuzzEncoder_RoundTrip verifies EncodePacket and Framer are inverses
// for arbitrary payloads
func TestFuzzEncoder_RoundTrip(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	for i := 0; i < rounds; i++ {
		payload := make([]byte, rng.Intn(SlipBufferCapacity)+1)
		rng.Read(payload)

		f := NewFramer(0)
		var got []byte
		for _, b := range EncodePacket(payload) {
			packet, err := f.Feed(b)
			if err != nil {
				t.Fatalf("Round %d: unexpected framing error: %v", i, err)
			}
			if packet != nil {
				got = packet
			}
		}

		if got == nil {
			t.Errorf("Round %d: no packet emitted", i)
			continue
		}
		if len(got) != len(payload) {
			t.Errorf("Round %d: length mismatch: expected %d, got %d", i, len(payload), len(got))
			continue
		}
		for j := range got {
			if got[j] != payload[j] {
				t.Errorf("Round %d: byte %d mismatch: expected 0x%02X, got 0x%02X", i, j, payload[j], got[j])
				break
			}
		}
	}
}

// ============================================================
// Validation Fuzz Tests
// ============================================================

// TestFuzzValidation_RandomCommands tests validation with random command
// contents
func TestFuzzValidation_RandomCommands(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	for i := 0; i < rounds; i++ {
		p := NewParser(ColourWhite)
		cmd, err := p.Parse(buildRandomPayload(rng))
		if err != nil {
			t.Errorf("Round %d: unexpected parse error: %v", i, err)
			continue
		}

		// Validate - should not panic
		errors := ValidateCommand(cmd)
		if errors == nil {
			t.Errorf("Round %d: ValidateCommand returned nil slice", i)
		}
	}
}

// ============================================================
// Formatter Fuzz Tests
// ============================================================

// TestFuzzFormatter_RandomCommands tests formatting with random commands
func TestFuzzFormatter_RandomCommands(t *testing.T) {
	rounds := getFuzzRounds()
	rng := newFuzzRng(t)
	t.Logf("Running %d fuzz rounds", rounds)

	for i := 0; i < rounds; i++ {
		p := NewParser(ColourWhite)
		cmd, err := p.Parse(buildRandomPayload(rng))
		if err != nil {
			t.Errorf("Round %d: unexpected parse error: %v", i, err)
			continue
		}

		// Format - should not panic
		result := FormatCommand(cmd)
		if result == "" {
			t.Errorf("Round %d: FormatCommand returned empty string", i)
		}
		if CommandName(cmd) == "UNKNOWN" {
			t.Errorf("Round %d: CommandName did not recognize %T", i, cmd)
		}
	}
}
