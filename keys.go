package mlkem

import (
	"fmt"
)

// EncapsulationKey is the public key of an ML-KEM key pair. Its byte layout
// is ByteEncode_12(t) || rho, of size 384*k + 32.
type EncapsulationKey struct {
	params Parameters
	data   []byte
}

// NewEncapsulationKeyFromBytes wraps the byte encoding of an encapsulation
// key. It returns a non-nil error if data is not EncapsulationKeySize()
// bytes for the given parameters.
func NewEncapsulationKeyFromBytes(params Parameters, data []byte) (*EncapsulationKey, error) {
	if len(data) != params.EncapsulationKeySize() {
		return nil, fmt.Errorf("cannot NewEncapsulationKeyFromBytes: invalid size %d for %s (expected %d)",
			len(data), params.Set(), params.EncapsulationKeySize())
	}
	ek := &EncapsulationKey{params: params, data: make([]byte, len(data))}
	copy(ek.data, data)
	return ek, nil
}

// Parameters returns the parameters the key was generated for.
func (ek *EncapsulationKey) Parameters() Parameters { return ek.params }

// Bytes returns a copy of the byte encoding of the key.
func (ek *EncapsulationKey) Bytes() []byte {
	data := make([]byte, len(ek.data))
	copy(data, ek.data)
	return data
}

// Equal returns whether the two keys are identical. The comparison is not
// constant-time: encapsulation keys are public.
func (ek *EncapsulationKey) Equal(other *EncapsulationKey) bool {
	return ek.params.Equal(other.params) && string(ek.data) == string(other.data)
}

// DecapsulationKey is the secret key of an ML-KEM key pair. Its byte layout
// is dk_PKE || ek_PKE || H(ek_PKE) || z, of size 768*k + 96. It holds secret
// material; call Zeroize once the key is no longer needed.
type DecapsulationKey struct {
	params Parameters
	data   []byte
}

// NewDecapsulationKeyFromBytes wraps the byte encoding of a decapsulation
// key. It returns a non-nil error if data is not DecapsulationKeySize()
// bytes for the given parameters.
func NewDecapsulationKeyFromBytes(params Parameters, data []byte) (*DecapsulationKey, error) {
	if len(data) != params.DecapsulationKeySize() {
		return nil, fmt.Errorf("cannot NewDecapsulationKeyFromBytes: invalid size %d for %s (expected %d)",
			len(data), params.Set(), params.DecapsulationKeySize())
	}
	dk := &DecapsulationKey{params: params, data: make([]byte, len(data))}
	copy(dk.data, data)
	return dk, nil
}

// Parameters returns the parameters the key was generated for.
func (dk *DecapsulationKey) Parameters() Parameters { return dk.params }

// Bytes returns a copy of the byte encoding of the key. The caller owns the
// copy and should wipe it once done.
func (dk *DecapsulationKey) Bytes() []byte {
	data := make([]byte, len(dk.data))
	copy(data, dk.data)
	return data
}

// EncapsulationKey returns the public key paired with the decapsulation key.
func (dk *DecapsulationKey) EncapsulationKey() *EncapsulationKey {
	k := dk.params.K()
	ek := &EncapsulationKey{params: dk.params, data: make([]byte, dk.params.EncapsulationKeySize())}
	copy(ek.data, dk.data[384*k:768*k+32])
	return ek
}

// Zeroize wipes the key material.
func (dk *DecapsulationKey) Zeroize() {
	zeroize(dk.data)
}

// Ciphertext wraps the byte encoding of an ML-KEM ciphertext,
// ByteEncode_du(Compress_du(u)) || ByteEncode_dv(Compress_dv(v)), of size
// 32*(du*k + dv).
//
// A Ciphertext of any length may be passed to Decaps: a wrong-length or
// tampered ciphertext is absorbed by implicit rejection and yields a
// deterministic pseudorandom shared secret, never an error.
type Ciphertext struct {
	data []byte
}

// NewCiphertextFromBytes wraps the byte encoding of a ciphertext.
func NewCiphertextFromBytes(data []byte) *Ciphertext {
	c := &Ciphertext{data: make([]byte, len(data))}
	copy(c.data, data)
	return c
}

// Bytes returns a copy of the byte encoding of the ciphertext.
func (c *Ciphertext) Bytes() []byte {
	data := make([]byte, len(c.data))
	copy(data, c.data)
	return data
}

// Equal returns whether the two ciphertexts are identical. The comparison is
// not constant-time: ciphertexts are public.
func (c *Ciphertext) Equal(other *Ciphertext) bool {
	return string(c.data) == string(other.data)
}

// SharedSecret is the 32-byte secret both parties derive. Call Zeroize once
// the secret has been handed to the application's KDF.
type SharedSecret struct {
	data [SharedSecretSize]byte
}

// Bytes returns a copy of the shared secret.
func (ss *SharedSecret) Bytes() []byte {
	data := make([]byte, SharedSecretSize)
	copy(data, ss.data[:])
	return data
}

// Zeroize wipes the secret.
func (ss *SharedSecret) Zeroize() {
	zeroize(ss.data[:])
}

func zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
