package ring

import (
	"golang.org/x/crypto/sha3"
)

// uniformBufferSize is a multiple of both the SHAKE-128 rate and the 3-byte
// stride of the rejection loop.
const uniformBufferSize = 504

// UniformSampler samples polynomials with uniform coefficients in [0, Q)
// directly in the NTT domain, by rejection sampling on a SHAKE-128 stream.
// The stream is seeded with rho || col || row, the FIPS 203 derivation of the
// public matrix entry A[row][col], so the rejection loop only ever branches
// on public data.
type UniformSampler struct {
	xof sha3.ShakeHash
	buf [uniformBufferSize]byte
}

// NewUniformSampler returns a sampler for the matrix entry A[row][col]
// derived from the 32-byte public seed rho.
func NewUniformSampler(rho []byte, row, col uint8) *UniformSampler {
	s := new(UniformSampler)
	s.xof = sha3.NewShake128()
	s.xof.Write(rho)
	s.xof.Write([]byte{col, row})
	return s
}

// Read samples a uniform polynomial on p. Every 3 stream bytes carry two
// 12-bit candidates; candidates >= Q are rejected.
func (s *UniformSampler) Read(p *Poly) {
	ptr := uniformBufferSize
	i := 0
	for i < N {
		if ptr == uniformBufferSize {
			s.xof.Read(s.buf[:])
			ptr = 0
		}

		d1 := uint16(s.buf[ptr]) | uint16(s.buf[ptr+1]&0x0F)<<8
		d2 := uint16(s.buf[ptr+1])>>4 | uint16(s.buf[ptr+2])<<4
		ptr += 3

		if d1 < Q {
			p.Coeffs[i] = d1
			i++
		}
		if d2 < Q && i < N {
			p.Coeffs[i] = d2
			i++
		}
	}
}
