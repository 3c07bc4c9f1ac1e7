package ring

// Add adds p1 to p2 coefficient-wise and writes the result on p3. All three
// polynomials must be in the same domain.
func Add(p1, p2, p3 *Poly) {
	for i := range p3.Coeffs {
		p3.Coeffs[i] = AddModQ(p1.Coeffs[i], p2.Coeffs[i])
	}
}

// Sub subtracts p2 from p1 coefficient-wise and writes the result on p3. All
// three polynomials must be in the same domain.
func Sub(p1, p2, p3 *Poly) {
	for i := range p3.Coeffs {
		p3.Coeffs[i] = SubModQ(p1.Coeffs[i], p2.Coeffs[i])
	}
}

// Add adds v to w polynomial-wise and writes the result on vOut.
func (v PolyVector) Add(w, vOut PolyVector) {
	for i := range v {
		Add(&v[i], &w[i], &vOut[i])
	}
}

// NTT computes the forward NTT of every polynomial of v and writes the
// results on vOut.
func (v PolyVector) NTT(vOut PolyVector) {
	for i := range v {
		NTT(&v[i], &vOut[i])
	}
}

// InvNTT computes the inverse NTT of every polynomial of v and writes the
// results on vOut.
func (v PolyVector) InvNTT(vOut PolyVector) {
	for i := range v {
		InvNTT(&v[i], &vOut[i])
	}
}

// DotProductNTT computes the dot product of v and w in the NTT domain and
// writes the result on pOut.
func (v PolyVector) DotProductNTT(w PolyVector, pOut *Poly) {
	pOut.Zero()
	for i := range v {
		MulCoeffsNTTThenAdd(&v[i], &w[i], pOut)
	}
}

// MulVecNTT computes m * v in the NTT domain and writes the result on vOut:
// vOut[i] = sum_j m[i][j] * v[j].
func (m PolyMatrix) MulVecNTT(v, vOut PolyVector) {
	for i := range m {
		m[i].DotProductNTT(v, &vOut[i])
	}
}

// MulVecTransposeNTT computes m^T * v in the NTT domain and writes the result
// on vOut: vOut[i] = sum_j m[j][i] * v[j].
func (m PolyMatrix) MulVecTransposeNTT(v, vOut PolyVector) {
	for i := range vOut {
		vOut[i].Zero()
		for j := range m {
			MulCoeffsNTTThenAdd(&m[j][i], &v[j], &vOut[i])
		}
	}
}
