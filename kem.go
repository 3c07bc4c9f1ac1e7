package mlkem

import (
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/tuneinsight/mlkem/utils/hashing"
	"github.com/tuneinsight/mlkem/utils/sampling"
)

// KEM binds a parameter set to the three ML-KEM operations. A KEM is
// stateless and may be shared by concurrent goroutines.
type KEM struct {
	params Parameters
}

// NewKEM returns the KEM for the given parameter set.
func NewKEM(set ParameterSet) (*KEM, error) {
	params, err := NewParameters(set)
	if err != nil {
		return nil, fmt.Errorf("cannot NewKEM: %w", err)
	}
	return &KEM{params: params}, nil
}

// Parameters returns the KEM parameters.
func (kem *KEM) Parameters() Parameters { return kem.params }

// KeyGen draws the two 32-byte seeds d and z from rng and derives a fresh key
// pair. The only failure mode is the rng failing to deliver bytes; the error
// is then returned unchanged.
func (kem *KEM) KeyGen(rng sampling.PRNG) (*EncapsulationKey, *DecapsulationKey, error) {
	var d, z [SeedSize]byte
	defer zeroize(d[:])
	defer zeroize(z[:])

	if _, err := io.ReadFull(rng, d[:]); err != nil {
		return nil, nil, err
	}
	if _, err := io.ReadFull(rng, z[:]); err != nil {
		return nil, nil, err
	}

	ek, dk := kem.keyGenInternal(d[:], z[:])
	return ek, dk, nil
}

// Encaps draws the 32-byte message seed m from rng and encapsulates a fresh
// shared secret under ek. The only failure mode is the rng failing to deliver
// bytes; the error is then returned unchanged.
func (kem *KEM) Encaps(rng sampling.PRNG, ek *EncapsulationKey) (*SharedSecret, *Ciphertext, error) {
	var m [SeedSize]byte
	defer zeroize(m[:])

	if _, err := io.ReadFull(rng, m[:]); err != nil {
		return nil, nil, err
	}

	ss, c := kem.encapsInternal(ek, m[:])
	return ss, c, nil
}

// Decaps recovers the shared secret encapsulated in c. It is a pure function
// of (dk, c) and never fails: an invalid ciphertext (tampered, or of the
// wrong length for the parameter set) yields the implicit-rejection secret
// J(z || c) instead of an error. Both the re-encryption comparison and the
// secret selection are constant-time over the full ciphertext, so the result
// does not reveal which path was taken.
func (kem *KEM) Decaps(dk *DecapsulationKey, c *Ciphertext) *SharedSecret {
	k := kem.params.K()
	dkPKE := dk.data[:384*k]
	ekPKE := dk.data[384*k : 768*k+32]
	h := dk.data[768*k+32 : 768*k+64]
	z := dk.data[768*k+64 : 768*k+96]

	// A wrong-length ciphertext is decrypted through a fixed-size view
	// (truncated or zero-padded); the raw bytes still feed J and the
	// re-encryption comparison, which then cannot match.
	cPKE := make([]byte, kem.params.CiphertextSize())
	copy(cPKE, c.data)

	mPrime := kem.params.pke.Decrypt(dkPKE, cPKE)
	defer zeroize(mPrime)

	kPrime, rPrime := hashing.G(mPrime, h)
	defer zeroize(kPrime[:])
	defer zeroize(rPrime[:])

	kBar := hashing.J(z, c.data)
	defer zeroize(kBar[:])

	cPrime := kem.params.pke.Encrypt(ekPKE, mPrime, rPrime[:])

	ss := new(SharedSecret)
	copy(ss.data[:], kBar[:])
	subtle.ConstantTimeCopy(ctEqual(c.data, cPrime), ss.data[:], kPrime[:])
	return ss
}

// keyGenInternal derives the key pair from the seeds d and z, per the
// derandomized FIPS 203 internal key generation. The decapsulation key is
// dk_PKE || ek_PKE || H(ek_PKE) || z.
func (kem *KEM) keyGenInternal(d, z []byte) (*EncapsulationKey, *DecapsulationKey) {
	ekPKE, dkPKE := kem.params.pke.KeyGen(d)
	defer zeroize(dkPKE)

	hek := hashing.H(ekPKE)

	dk := &DecapsulationKey{params: kem.params, data: make([]byte, 0, kem.params.DecapsulationKeySize())}
	dk.data = append(dk.data, dkPKE...)
	dk.data = append(dk.data, ekPKE...)
	dk.data = append(dk.data, hek[:]...)
	dk.data = append(dk.data, z...)

	ek := &EncapsulationKey{params: kem.params, data: ekPKE}
	return ek, dk
}

// encapsInternal encapsulates the message seed m under ek, per the
// derandomized FIPS 203 internal encapsulation: (K, r) = G(m || H(ek)), c =
// K-PKE.Encrypt(ek, m, r).
func (kem *KEM) encapsInternal(ek *EncapsulationKey, m []byte) (*SharedSecret, *Ciphertext) {
	hek := hashing.H(ek.data)

	key, r := hashing.G(m, hek[:])
	defer zeroize(key[:])
	defer zeroize(r[:])

	c := &Ciphertext{data: kem.params.pke.Encrypt(ek.data, m, r[:])}

	ss := new(SharedSecret)
	copy(ss.data[:], key[:])
	return ss, c
}

// ctEqual returns 1 if a and b are identical byte strings and 0 otherwise,
// scanning all of both inputs when their lengths match. Lengths are public.
func ctEqual(a, b []byte) int {
	if len(a) != len(b) {
		return 0
	}
	return subtle.ConstantTimeCompare(a, b)
}
