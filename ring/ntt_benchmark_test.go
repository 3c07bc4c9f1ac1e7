package ring

import (
	"fmt"
	"testing"
)

func BenchmarkNTT(b *testing.B) {

	var p Poly
	for i := range p.Coeffs {
		p.Coeffs[i] = uint16(i*31) % Q
	}

	b.Run("NTT", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			NTT(&p, &p)
		}
	})

	b.Run("InvNTT", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			InvNTT(&p, &p)
		}
	})

	b.Run("MulCoeffsNTT", func(b *testing.B) {
		var q Poly
		for i := 0; i < b.N; i++ {
			MulCoeffsNTT(&p, &p, &q)
		}
	})
}

func BenchmarkSamplers(b *testing.B) {

	rho := make([]byte, 32)

	b.Run("Uniform", func(b *testing.B) {
		var p Poly
		for i := 0; i < b.N; i++ {
			NewUniformSampler(rho, 0, 0).Read(&p)
		}
	})

	for _, eta := range []int{2, 3} {
		b.Run(fmt.Sprintf("CBD/eta=%d", eta), func(b *testing.B) {
			stream := make([]byte, 64*eta)
			var p Poly
			for i := 0; i < b.N; i++ {
				SamplePolyCBD(stream, eta, &p)
			}
		})
	}
}
