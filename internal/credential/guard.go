package credential

import (
	"sync"

	"github.com/awnumar/memguard"
)

// Guard owns the lifecycle of an obfuscated in-memory secret and its pad.
//
// The secret buffer holds either the plaintext or the pad-XORed form,
// never both. The pad is allocated lazily on the first Protect call,
// always matches the secret's length, and is discarded whenever the
// secret changes so it can never be reused against a different plaintext.
//
// Protect, Reveal and Dispose are defined as safe no-ops on invalid or
// absent state rather than returning errors: the component is a
// best-effort deterrent, not a security boundary, and there is nothing
// useful a caller could do with a failure.
type Guard struct {
	mu         sync.Mutex
	secret     *memguard.LockedBuffer
	pad        *memguard.LockedBuffer
	obfuscated bool
	source     Source
}

// NewGuard creates an empty guard. A nil source selects CryptoSource.
func NewGuard(source Source) *Guard {
	if source == nil {
		source = CryptoSource{}
	}
	return &Guard{source: source}
}

// SetSecret installs a new plaintext secret, disposing of any previous
// secret and pad first. The caller's slice is wiped as a side effect of
// moving it into protected memory. An empty plaintext leaves the guard
// empty.
func (g *Guard) SetSecret(plaintext []byte) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.disposeLocked()
	if len(plaintext) == 0 {
		return
	}
	g.secret = memguard.NewBufferFromBytes(plaintext)
}

// Protect XORs the secret buffer in place against the pad, generating the
// pad first if this is the first protection of the current secret. No-op
// if the guard is empty or the secret is already obfuscated.
//
// After return the buffer contents are indistinguishable from random to a
// reader without the pad; length is preserved.
func (g *Guard) Protect() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.secret == nil || g.obfuscated {
		return
	}
	if g.pad == nil {
		g.pad = memguard.NewBuffer(g.secret.Size())
		g.source.Fill(g.pad.Bytes())
	}
	xorInPlace(g.secret.Bytes(), g.pad.Bytes())
	g.obfuscated = true
}

// Reveal inverts Protect, restoring the plaintext bit-for-bit. No-op if
// the secret is absent, not obfuscated, or has no pad.
func (g *Guard) Reveal() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.secret == nil || g.pad == nil || !g.obfuscated {
		return
	}
	xorInPlace(g.secret.Bytes(), g.pad.Bytes())
	g.obfuscated = false
}

// Dispose overwrites both the secret buffer and the pad with fresh random
// bytes, releases them, and returns the guard to its initial empty state.
// Random overwrite rather than zeroing avoids leaving a fixed,
// scan-detectable footprint; memguard additionally wipes the pages on
// destroy. Idempotent.
func (g *Guard) Dispose() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.disposeLocked()
}

func (g *Guard) disposeLocked() {
	if g.secret != nil {
		g.source.Fill(g.secret.Bytes())
		g.secret.Destroy()
		g.secret = nil
	}
	if g.pad != nil {
		g.source.Fill(g.pad.Bytes())
		g.pad.Destroy()
		g.pad = nil
	}
	g.obfuscated = false
}

// Bytes exposes the live secret buffer: plaintext when revealed,
// ciphertext when protected, nil when empty. The slice aliases protected
// memory and is only valid until the next lifecycle call; callers must
// not retain it.
func (g *Guard) Bytes() []byte {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.secret == nil {
		return nil
	}
	return g.secret.Bytes()
}

// Obfuscated reports whether the buffer currently holds the XORed form.
func (g *Guard) Obfuscated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.obfuscated
}

// Empty reports whether the guard holds no secret.
func (g *Guard) Empty() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.secret == nil
}

// Len returns the secret length in bytes, 0 when empty.
func (g *Guard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.secret == nil {
		return 0
	}
	return g.secret.Size()
}

// xorInPlace requires len(buf) == len(pad); the pad is allocated to match
// the secret and both only change together under the guard's lock.
func xorInPlace(buf, pad []byte) {
	for i := range buf {
		buf[i] ^= pad[i]
	}
}
