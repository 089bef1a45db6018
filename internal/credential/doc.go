// Package credential keeps the user's eBay password out of easily-scanned
// memory for as long as possible.
//
// The password lives in a memguard locked buffer and is XOR-obfuscated
// against a same-length one-time random pad whenever it is not actively
// needed. The pad never leaves this package.
//
//	guard := credential.NewGuard(nil)
//	guard.SetSecret([]byte(password))
//	guard.Protect()
//	// ... later, when the password is needed on the wire:
//	guard.Reveal()
//	use(guard.Bytes())
//	guard.Protect()
//	// ... at shutdown:
//	guard.Dispose()
//
// # What this protects against
//
// The XOR pad is a deterrent against casual memory inspection (core dumps,
// naive string scans), not a security boundary: an attacker who can read
// both the buffer and the pad recovers the plaintext trivially. The
// memguard backing adds mlock (no swap), guard pages, and wipe-on-destroy,
// but the same caveat applies to anyone with full access to the process.
//
// # Randomness
//
// Pad bytes and disposal overwrites come from an injected Source. The
// default CryptoSource draws from the operating system CSPRNG. The
// InsecureSource reproduces the historical pid-and-clock seeded generator
// and exists only for compatibility testing; it is documented as
// low-assurance and should not be chosen for new code.
package credential
