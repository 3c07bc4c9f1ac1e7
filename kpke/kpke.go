// Package kpke implements K-PKE, the IND-CPA public-key encryption scheme
// over MLWE that ML-KEM wraps. All three operations are deterministic
// functions of their inputs; the randomness (the key seed d and the
// encryption coins r) is supplied by the caller.
package kpke

import (
	"fmt"

	"github.com/tuneinsight/mlkem/ring"
	"github.com/tuneinsight/mlkem/utils/hashing"
)

// SeedSize is the byte size of the key-generation seed d and of the
// encryption coins r.
const SeedSize = 32

// MessageSize is the byte size of a plaintext message.
const MessageSize = 32

// Parameters holds a K-PKE parameter set. Its fields are private and
// immutable; instances are created with NewParameters.
type Parameters struct {
	k    int
	eta1 int
	eta2 int
	du   int
	dv   int
}

// NewParameters returns the K-PKE parameters for the given module rank k,
// noise parameters eta1 and eta2, and ciphertext compression widths du and
// dv. It returns the zero Parameters and a non-nil error if any value is
// outside the ranges FIPS 203 assigns.
func NewParameters(k, eta1, eta2, du, dv int) (Parameters, error) {
	switch {
	case k < 2 || k > 4:
		return Parameters{}, fmt.Errorf("cannot NewParameters: k must be in [2, 4] but is %d", k)
	case eta1 != 2 && eta1 != 3:
		return Parameters{}, fmt.Errorf("cannot NewParameters: eta1 must be 2 or 3 but is %d", eta1)
	case eta2 != 2:
		return Parameters{}, fmt.Errorf("cannot NewParameters: eta2 must be 2 but is %d", eta2)
	case du != 10 && du != 11:
		return Parameters{}, fmt.Errorf("cannot NewParameters: du must be 10 or 11 but is %d", du)
	case dv != 4 && dv != 5:
		return Parameters{}, fmt.Errorf("cannot NewParameters: dv must be 4 or 5 but is %d", dv)
	}
	return Parameters{k: k, eta1: eta1, eta2: eta2, du: du, dv: dv}, nil
}

// K returns the module rank.
func (p Parameters) K() int { return p.k }

// Eta1 returns the noise parameter of the secret and error vectors.
func (p Parameters) Eta1() int { return p.eta1 }

// Eta2 returns the noise parameter of the encryption errors.
func (p Parameters) Eta2() int { return p.eta2 }

// Du returns the compression width of the ciphertext vector u.
func (p Parameters) Du() int { return p.du }

// Dv returns the compression width of the ciphertext polynomial v.
func (p Parameters) Dv() int { return p.dv }

// EncryptionKeySize returns the byte size of an encryption key, 384*k + 32.
func (p Parameters) EncryptionKeySize() int { return 384*p.k + 32 }

// DecryptionKeySize returns the byte size of a decryption key, 384*k.
func (p Parameters) DecryptionKeySize() int { return 384 * p.k }

// CiphertextSize returns the byte size of a ciphertext, 32*(du*k + dv).
func (p Parameters) CiphertextSize() int { return 32 * (p.du*p.k + p.dv) }

// KeyGen derives an encryption/decryption key pair from the 32-byte seed d.
// The encryption key is ByteEncode_12(t) || rho and the decryption key
// ByteEncode_12(s), both vectors in the NTT domain. The intermediate secrets
// (sigma, the noise vectors and the secret vector) are wiped before
// returning.
func (p Parameters) KeyGen(d []byte) (ek, dk []byte) {
	rho, sigma := hashing.GSeed(d, uint8(p.k))
	defer zeroize(sigma[:])

	a := p.sampleMatrix(rho[:])

	s := ring.NewPolyVector(p.k)
	e := ring.NewPolyVector(p.k)
	defer s.Zero()
	defer e.Zero()

	var n uint8
	n = p.sampleNoiseVector(s, sigma[:], p.eta1, n)
	p.sampleNoiseVector(e, sigma[:], p.eta1, n)

	s.NTT(s)
	e.NTT(e)

	t := ring.NewPolyVector(p.k)
	a.MulVecNTT(s, t)
	t.Add(e, t)

	ek = make([]byte, p.EncryptionKeySize())
	encodeVector(t, 12, ek)
	copy(ek[384*p.k:], rho[:])

	dk = make([]byte, p.DecryptionKeySize())
	encodeVector(s, 12, dk)

	return ek, dk
}

// Encrypt encrypts the 32-byte message m under the encryption key ek with the
// 32-byte coins r. ek must be EncryptionKeySize() bytes. The noise vectors
// and the message polynomial are wiped before returning.
func (p Parameters) Encrypt(ek, m, r []byte) (c []byte) {
	t := ring.NewPolyVector(p.k)
	decodeVector(ek, 12, t)
	rho := ek[384*p.k : 384*p.k+32]

	a := p.sampleMatrix(rho)

	y := ring.NewPolyVector(p.k)
	e1 := ring.NewPolyVector(p.k)
	var e2, mu ring.Poly
	defer y.Zero()
	defer e1.Zero()
	defer e2.Zero()
	defer mu.Zero()

	var n uint8
	n = p.sampleNoiseVector(y, r, p.eta1, n)
	n = p.sampleNoiseVector(e1, r, p.eta2, n)
	sampleNoise(&e2, r, p.eta2, n)

	y.NTT(y)

	// u = InvNTT(A^T * y) + e1
	u := ring.NewPolyVector(p.k)
	defer u.Zero()
	a.MulVecTransposeNTT(y, u)
	u.InvNTT(u)
	u.Add(e1, u)

	// v = InvNTT(t * y) + e2 + Decompress_1(ByteDecode_1(m))
	var v ring.Poly
	defer v.Zero()
	t.DotProductNTT(y, &v)
	ring.InvNTT(&v, &v)
	ring.Add(&v, &e2, &v)
	ring.ByteDecode(m, 1, &mu)
	ring.Decompress(&mu, 1, &mu)
	ring.Add(&v, &mu, &v)

	c = make([]byte, p.CiphertextSize())
	for i := range u {
		ring.Compress(&u[i], p.du, &u[i])
		ring.ByteEncode(&u[i], p.du, c[32*p.du*i:])
	}
	ring.Compress(&v, p.dv, &v)
	ring.ByteEncode(&v, p.dv, c[32*p.du*p.k:])

	return c
}

// Decrypt decrypts the ciphertext c under the decryption key dk and returns
// the 32-byte message. dk must be DecryptionKeySize() bytes and c
// CiphertextSize() bytes. The secret vector and the noisy message polynomial
// are wiped before returning.
func (p Parameters) Decrypt(dk, c []byte) (m []byte) {
	u := ring.NewPolyVector(p.k)
	for i := range u {
		ring.ByteDecode(c[32*p.du*i:], p.du, &u[i])
		ring.Decompress(&u[i], p.du, &u[i])
	}

	var v ring.Poly
	ring.ByteDecode(c[32*p.du*p.k:], p.dv, &v)
	ring.Decompress(&v, p.dv, &v)

	s := ring.NewPolyVector(p.k)
	defer s.Zero()
	decodeVector(dk, 12, s)

	// w = v - InvNTT(s * NTT(u))
	var w ring.Poly
	defer w.Zero()
	u.NTT(u)
	s.DotProductNTT(u, &w)
	ring.InvNTT(&w, &w)
	ring.Sub(&v, &w, &w)

	m = make([]byte, MessageSize)
	ring.Compress(&w, 1, &w)
	ring.ByteEncode(&w, 1, m)

	return m
}

// sampleMatrix expands the 32-byte public seed rho into the k x k matrix A in
// the NTT domain, entry A[i][j] from the XOF stream seeded with
// rho || byte(j) || byte(i).
func (p Parameters) sampleMatrix(rho []byte) ring.PolyMatrix {
	a := ring.NewPolyMatrix(p.k, p.k)
	for i := range a {
		for j := range a[i] {
			ring.NewUniformSampler(rho, uint8(i), uint8(j)).Read(&a[i][j])
		}
	}
	return a
}

// sampleNoiseVector fills v with CBD polynomials derived from
// PRF(eta, seed, n), PRF(eta, seed, n+1), ... and returns the advanced
// counter.
func (p Parameters) sampleNoiseVector(v ring.PolyVector, seed []byte, eta int, n uint8) uint8 {
	for i := range v {
		sampleNoise(&v[i], seed, eta, n)
		n++
	}
	return n
}

func sampleNoise(pol *ring.Poly, seed []byte, eta int, n uint8) {
	stream := hashing.PRF(eta, seed, n)
	ring.SamplePolyCBD(stream, eta, pol)
	zeroize(stream)
}

// encodeVector packs the polynomials of v back to back as d-bit values.
func encodeVector(v ring.PolyVector, d int, buf []byte) {
	for i := range v {
		ring.ByteEncode(&v[i], d, buf[32*d*i:])
	}
}

// decodeVector is the inverse of encodeVector.
func decodeVector(buf []byte, d int, v ring.PolyVector) {
	for i := range v {
		ring.ByteDecode(buf[32*d*i:], d, &v[i])
	}
}

func zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
