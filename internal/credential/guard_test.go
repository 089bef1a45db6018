package credential

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// patternSource fills buffers with a fixed repeating pattern so tests can
// assert the XOR transform exactly, and counts how many fills happened.
type patternSource struct {
	pattern []byte
	fills   int
}

func (s *patternSource) Fill(b []byte) {
	s.fills++
	for i := range b {
		b[i] = s.pattern[i%len(s.pattern)]
	}
}

func TestGuardRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "typical password", plaintext: "hunter2"},
		{name: "single byte", plaintext: "x"},
		{name: "long passphrase", plaintext: "correct horse battery staple correct horse battery staple"},
		{name: "binary-ish bytes", plaintext: "\x00\xff\x10 tab\there"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGuard(nil)
			defer g.Dispose()

			// NewBufferFromBytes wipes the source slice, so hand the
			// guard a copy and keep the original for comparison.
			g.SetSecret([]byte(tt.plaintext))
			require.False(t, g.Empty())
			require.Equal(t, len(tt.plaintext), g.Len())

			g.Protect()
			assert.True(t, g.Obfuscated())

			g.Reveal()
			assert.False(t, g.Obfuscated())
			assert.Equal(t, []byte(tt.plaintext), g.Bytes())
		})
	}
}

func TestGuardEmptySecretIsNoOp(t *testing.T) {
	g := NewGuard(nil)

	// All lifecycle calls on an empty guard are defined as safe no-ops.
	g.Protect()
	g.Reveal()
	g.Dispose()

	assert.True(t, g.Empty())
	assert.False(t, g.Obfuscated())
	assert.Nil(t, g.Bytes())
	assert.Zero(t, g.Len())

	// Zero-length plaintext leaves the guard empty too.
	g.SetSecret([]byte{})
	assert.True(t, g.Empty())
}

func TestGuardProtectChangesBytes(t *testing.T) {
	src := &patternSource{pattern: []byte{0xa5}}
	g := NewGuard(src)
	defer g.Dispose()

	plaintext := []byte("sekrit")
	g.SetSecret(append([]byte(nil), plaintext...))
	g.Protect()

	want := make([]byte, len(plaintext))
	for i := range plaintext {
		want[i] = plaintext[i] ^ 0xa5
	}
	assert.Equal(t, want, g.Bytes(), "buffer should hold plaintext XOR pad")
	assert.False(t, bytes.Equal(plaintext, g.Bytes()))
}

func TestGuardProtectIsIdempotent(t *testing.T) {
	src := &patternSource{pattern: []byte{0x5a, 0xc3}}
	g := NewGuard(src)
	defer g.Dispose()

	g.SetSecret([]byte("password"))
	g.Protect()
	ciphertext := append([]byte(nil), g.Bytes()...)

	// A second Protect must not XOR again (toggle, not a stack).
	g.Protect()
	assert.Equal(t, ciphertext, g.Bytes())
	assert.Equal(t, 1, src.fills, "pad must be generated exactly once")

	// Reveal twice is likewise a single inversion.
	g.Reveal()
	first := append([]byte(nil), g.Bytes()...)
	g.Reveal()
	assert.Equal(t, first, g.Bytes())
	assert.Equal(t, []byte("password"), g.Bytes())
}

func TestGuardRepeatedToggle(t *testing.T) {
	g := NewGuard(nil)
	defer g.Dispose()

	g.SetSecret([]byte("toggle-me"))
	for i := 0; i < 5; i++ {
		g.Protect()
		g.Reveal()
	}
	assert.Equal(t, []byte("toggle-me"), g.Bytes())
}

func TestGuardPadNotReusedAcrossSecrets(t *testing.T) {
	src := &patternSource{pattern: []byte{0x11, 0x22, 0x33}}
	g := NewGuard(src)
	defer g.Dispose()

	g.SetSecret([]byte("first-password"))
	g.Protect()
	require.Equal(t, 1, src.fills)

	// Installing a new secret discards the old pad; the next Protect
	// must generate a fresh, length-matched pad.
	g.SetSecret([]byte("second"))
	require.False(t, g.Obfuscated())
	g.Protect()

	// fills: pad #1, scramble of old secret + old pad on SetSecret, pad #2.
	assert.Equal(t, 4, src.fills)
	assert.Equal(t, 6, g.Len())

	g.Reveal()
	assert.Equal(t, []byte("second"), g.Bytes())
}

func TestGuardDisposeScramblesAndResets(t *testing.T) {
	src := &patternSource{pattern: []byte{0x7e}}
	g := NewGuard(src)

	g.SetSecret([]byte("doomed"))
	g.Protect()
	fillsBefore := src.fills

	g.Dispose()

	// Both the secret buffer and the pad are overwritten before release.
	assert.Equal(t, fillsBefore+2, src.fills)
	assert.True(t, g.Empty())
	assert.False(t, g.Obfuscated())
	assert.Nil(t, g.Bytes())

	// Dispose is idempotent and the guard accepts a new secret after.
	g.Dispose()
	g.SetSecret([]byte("reborn"))
	g.Protect()
	g.Reveal()
	assert.Equal(t, []byte("reborn"), g.Bytes())
	g.Dispose()
}

func TestGuardSetSecretWipesCallerSlice(t *testing.T) {
	g := NewGuard(nil)
	defer g.Dispose()

	caller := []byte("leaky-copy")
	g.SetSecret(caller)
	assert.Equal(t, make([]byte, len("leaky-copy")), caller,
		"caller's slice should be wiped when moved into protected memory")
}
