package credential

import (
	"math/rand/v2"
	"os"
	"time"

	"github.com/awnumar/memguard"
)

// Source fills byte slices with pseudo-random data. Guards use it for pad
// generation and for scrambling buffers on disposal. Implementations are
// called under the guard's lock and need not be safe for concurrent use.
type Source interface {
	Fill(b []byte)
}

// CryptoSource draws from the operating system CSPRNG. This is the
// default and the right choice for everything outside compatibility
// tests.
type CryptoSource struct{}

// Fill overwrites b with cryptographically secure random bytes. Draws
// through memguard so a failing entropy source fails fast instead of
// silently producing a weak pad.
func (CryptoSource) Fill(b []byte) {
	memguard.ScrambleBytes(b)
}

// InsecureSource is the historical generator: a plain PRNG seeded once,
// explicitly at construction, from process identity and the clock. It is
// not cryptographically secure and exists for parity with the original
// pid*time seeding; the seed is taken eagerly here rather than on first
// use, so there is no hidden first-call-wins state.
type InsecureSource struct {
	rng *rand.Rand
}

// NewInsecureSource seeds the generator from the pid and current time.
func NewInsecureSource() *InsecureSource {
	return &InsecureSource{
		rng: rand.New(rand.NewPCG(uint64(os.Getpid()), uint64(time.Now().UnixNano()))),
	}
}

// Fill overwrites b with bytes from the seeded generator.
func (s *InsecureSource) Fill(b []byte) {
	for i := range b {
		b[i] = byte(s.rng.Uint32())
	}
}
