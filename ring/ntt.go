package ring

// nttZetas[i] = zeta^BitRev7(i) mod Q, with zeta = 17 a primitive 256-th root
// of unity mod Q and BitRev7 the reversal of the low 7 bits. The butterfly
// loops below walk the table in the order the layers consume it.
//
//	q = 3329; zeta = 17
//	def brv(x): return int(''.join(reversed(bin(x)[2:].zfill(7))), 2)
//	print([pow(zeta, brv(i), q) for i in range(128)])
var nttZetas = [128]uint16{
	1, 1729, 2580, 3289, 2642, 630, 1897, 848,
	1062, 1919, 193, 797, 2786, 3260, 569, 1746,
	296, 2447, 1339, 1476, 3046, 56, 2240, 1333,
	1426, 2094, 535, 2882, 2393, 2879, 1974, 821,
	289, 331, 3253, 1756, 1197, 2304, 2277, 2055,
	650, 1977, 2513, 632, 2865, 33, 1320, 1915,
	2319, 1435, 807, 452, 1438, 2868, 1534, 2402,
	2647, 2617, 1481, 648, 2474, 3110, 1227, 910,
	17, 2761, 583, 2649, 1637, 723, 2288, 1100,
	1409, 2662, 3281, 233, 756, 2156, 3015, 3050,
	1703, 1651, 2789, 1789, 1847, 952, 1461, 2687,
	939, 2308, 2437, 2388, 733, 2337, 268, 641,
	1584, 2298, 2037, 3220, 375, 2549, 2090, 1645,
	1063, 319, 2773, 757, 2099, 561, 2466, 2594,
	2804, 1092, 403, 1026, 1143, 2150, 2775, 886,
	1722, 1212, 1874, 1029, 2110, 2935, 885, 2154,
}

// NTT computes the forward NTT of p1 and writes the result on p2, which may
// alias p1. The input is in the coefficient domain, the output in the NTT
// domain. In-place Cooley-Tukey over 7 layers; within each length-2*l block
// the butterfly maps (a, b) to (a + zeta*b, a - zeta*b).
func NTT(p1, p2 *Poly) {
	if p1 != p2 {
		p2.Coeffs = p1.Coeffs
	}
	coeffs := &p2.Coeffs

	k := 1
	for l := N / 2; l >= 2; l >>= 1 {
		for start := 0; start < N; start += 2 * l {
			zeta := nttZetas[k]
			k++
			for j := start; j < start+l; j++ {
				t := MulModQ(zeta, coeffs[j+l])
				coeffs[j+l] = SubModQ(coeffs[j], t)
				coeffs[j] = AddModQ(coeffs[j], t)
			}
		}
	}
}

// InvNTT computes the inverse NTT of p1 and writes the result on p2, which
// may alias p1. The input is in the NTT domain, the output in the coefficient
// domain. Gentleman-Sande dual of NTT, followed by the scaling by 128^-1.
func InvNTT(p1, p2 *Poly) {
	if p1 != p2 {
		p2.Coeffs = p1.Coeffs
	}
	coeffs := &p2.Coeffs

	k := 127
	for l := 2; l <= N/2; l <<= 1 {
		for start := 0; start < N; start += 2 * l {
			zeta := nttZetas[k]
			k--
			for j := start; j < start+l; j++ {
				t := coeffs[j]
				coeffs[j] = AddModQ(t, coeffs[j+l])
				coeffs[j+l] = MulModQ(zeta, SubModQ(coeffs[j+l], t))
			}
		}
	}

	for j := range coeffs {
		coeffs[j] = MulModQ(coeffs[j], NInv)
	}
}

// MulCoeffsNTT multiplies p1 by p2 in the NTT domain and writes the result on
// p3. The NTT domain factors R_q into 128 rings Z_q[X]/(X^2 - gamma_i) with
// gamma_i = zeta^(2*BitRev7(i)+1), so the product is 128 independent
// degree-one multiplications:
//
//	c0 = a0*b0 + a1*b1*gamma
//	c1 = a0*b1 + a1*b0
//
// Consecutive pairs 2i and 2i+1 share the root up to sign, gamma_(2i+1) =
// -gamma_(2i) = Q - nttZetas[64+i].
func MulCoeffsNTT(p1, p2, p3 *Poly) {
	for i := 0; i < N/2; i += 2 {
		gamma := nttZetas[64+i/2]
		basemul(p1.Coeffs[2*i:], p2.Coeffs[2*i:], p3.Coeffs[2*i:], gamma)
		basemul(p1.Coeffs[2*i+2:], p2.Coeffs[2*i+2:], p3.Coeffs[2*i+2:], Q-gamma)
	}
}

// MulCoeffsNTTThenAdd multiplies p1 by p2 in the NTT domain and adds the
// result on p3.
func MulCoeffsNTTThenAdd(p1, p2, p3 *Poly) {
	var c0, c1 uint16
	for i := 0; i < N/2; i += 2 {
		gamma := nttZetas[64+i/2]
		c0, c1 = basemulCoeffs(p1.Coeffs[2*i:], p2.Coeffs[2*i:], gamma)
		p3.Coeffs[2*i] = AddModQ(p3.Coeffs[2*i], c0)
		p3.Coeffs[2*i+1] = AddModQ(p3.Coeffs[2*i+1], c1)
		c0, c1 = basemulCoeffs(p1.Coeffs[2*i+2:], p2.Coeffs[2*i+2:], Q-gamma)
		p3.Coeffs[2*i+2] = AddModQ(p3.Coeffs[2*i+2], c0)
		p3.Coeffs[2*i+3] = AddModQ(p3.Coeffs[2*i+3], c1)
	}
}

// basemul multiplies the degree-one polynomials a[0]+a[1]X and b[0]+b[1]X
// modulo X^2 - gamma and writes the two result coefficients on c.
func basemul(a, b, c []uint16, gamma uint16) {
	c[0], c[1] = basemulCoeffs(a, b, gamma)
}

func basemulCoeffs(a, b []uint16, gamma uint16) (c0, c1 uint16) {
	c0 = AddModQ(MulModQ(a[0], b[0]), MulModQ(MulModQ(a[1], b[1]), gamma))
	c1 = AddModQ(MulModQ(a[0], b[1]), MulModQ(a[1], b[0]))
	return
}
