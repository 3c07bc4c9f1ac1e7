package ring

// SamplePolyCBD samples a polynomial in the coefficient domain from the
// centered binomial distribution of parameter eta, consuming the 64*eta input
// bytes produced by the PRF. Coefficient i is x - y mod Q where x and y are
// the Hamming weights of two consecutive eta-bit groups, read little-endian
// within each byte. The bit extraction is data-independent: the stream is
// secret PRF output.
func SamplePolyCBD(stream []byte, eta int, p *Poly) {
	_ = stream[64*eta-1]

	for i := range p.Coeffs {
		var x, y uint16
		base := 2 * eta * i
		for j := 0; j < eta; j++ {
			bit := base + j
			x += uint16(stream[bit>>3]>>(bit&7)) & 1
			bit += eta
			y += uint16(stream[bit>>3]>>(bit&7)) & 1
		}
		p.Coeffs[i] = SubModQ(x, y)
	}
}
