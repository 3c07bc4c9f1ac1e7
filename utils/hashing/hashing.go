// Package hashing provides the fixed-output hash and XOF derivations of
// FIPS 203 over the SHA-3 family.
package hashing

import (
	"golang.org/x/crypto/sha3"
)

// G hashes a || b with SHA3-512 and returns the two 32-byte halves of the
// digest.
func G(a, b []byte) (lo, hi [32]byte) {
	h := sha3.New512()
	h.Write(a)
	h.Write(b)
	digest := h.Sum(nil)
	copy(lo[:], digest[:32])
	copy(hi[:], digest[32:])
	return
}

// GSeed derives (rho, sigma) from a 32-byte seed and the module rank k, i.e.
// G(seed || byte(k)).
func GSeed(seed []byte, k uint8) (rho, sigma [32]byte) {
	return G(seed, []byte{k})
}

// H hashes x with SHA3-256.
func H(x []byte) [32]byte {
	return sha3.Sum256(x)
}

// J reads 32 bytes of SHAKE-256(s || c).
func J(s, c []byte) (out [32]byte) {
	xof := sha3.NewShake256()
	xof.Write(s)
	xof.Write(c)
	xof.Read(out[:])
	return
}

// PRF reads 64*eta bytes of SHAKE-256(s || byte(b)), for eta in {2, 3}.
func PRF(eta int, s []byte, b uint8) []byte {
	xof := sha3.NewShake256()
	xof.Write(s)
	xof.Write([]byte{b})
	out := make([]byte, 64*eta)
	xof.Read(out)
	return out
}
