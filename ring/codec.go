package ring

// ByteEncode packs the coefficients of p, each of which must be in [0, 2^d),
// into buf as 256 consecutive d-bit little-endian values, for 1 <= d <= 12.
// It writes exactly 32*d bytes.
func ByteEncode(p *Poly, d int, buf []byte) {
	_ = buf[32*d-1]

	var acc uint32
	var accBits, ptr int
	mask := uint16(1<<d) - 1

	for i := range p.Coeffs {
		acc |= uint32(p.Coeffs[i]&mask) << accBits
		accBits += d
		for accBits >= 8 {
			buf[ptr] = byte(acc)
			ptr++
			acc >>= 8
			accBits -= 8
		}
	}
}

// ByteDecode unpacks 256 consecutive d-bit little-endian values from buf,
// which must hold at least 32*d bytes, and writes them on p. For d = 12 the
// decoded values are reduced mod Q, so the coefficients of p are canonical
// for any input bytes; for d < 12 they already are.
func ByteDecode(buf []byte, d int, p *Poly) {
	_ = buf[32*d-1]

	var acc uint32
	var accBits, ptr int
	mask := uint32(1<<d) - 1

	for i := range p.Coeffs {
		for accBits < d {
			acc |= uint32(buf[ptr]) << accBits
			ptr++
			accBits += 8
		}
		v := uint16(acc & mask)
		acc >>= d
		accBits -= d
		if d == 12 {
			v %= Q
		}
		p.Coeffs[i] = v
	}
}

// Compress maps every coefficient x of p1 to round(x * 2^d / Q) mod 2^d and
// writes the result on p2, which may alias p1. Lossy for d < 12; for d = 12 it
// is not the identity (1000 maps to 1230) but it is injective on [0, Q), and
// Decompress with d = 12 recovers the input.
func Compress(p1 *Poly, d int, p2 *Poly) {
	for i := range p1.Coeffs {
		scaled := (uint32(p1.Coeffs[i])<<d + Q/2) / Q
		p2.Coeffs[i] = uint16(scaled) & (1<<d - 1)
	}
}

// Decompress maps every coefficient y of p1, which must be in [0, 2^d), to
// round(y * Q / 2^d) and writes the result on p2, which may alias p1.
func Decompress(p1 *Poly, d int, p2 *Poly) {
	for i := range p1.Coeffs {
		p2.Coeffs[i] = uint16((uint32(p1.Coeffs[i])*Q + 1<<(d-1)) >> d)
	}
}
