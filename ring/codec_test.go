package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteEncode(t *testing.T) {

	prng := testPRNG(t)

	for d := 1; d <= 12; d++ {
		t.Run(name("RoundTrip", d), func(t *testing.T) {
			p := randomPoly(t, prng)
			if d < 12 {
				for i := range p.Coeffs {
					p.Coeffs[i] &= 1<<d - 1
				}
			}

			buf := make([]byte, 32*d)
			ByteEncode(&p, d, buf)

			var q Poly
			ByteDecode(buf, d, &q)
			require.True(t, p.Equal(&q))
		})
	}

	t.Run(name("Decode12ReducesModQ"), func(t *testing.T) {
		// values in [Q, 4096) must come back reduced
		var p Poly
		for i := range p.Coeffs {
			p.Coeffs[i] = uint16(Q + i%(4096-Q))
		}

		buf := make([]byte, 32*12)
		ByteEncode(&p, 12, buf)

		var q Poly
		ByteDecode(buf, 12, &q)
		for i := range q.Coeffs {
			require.Equal(t, p.Coeffs[i]%Q, q.Coeffs[i])
		}
	})

	t.Run(name("KnownPacking", 4), func(t *testing.T) {
		// two 4-bit values per byte, first value in the low nibble
		var p Poly
		p.Coeffs[0] = 0x3
		p.Coeffs[1] = 0xA

		buf := make([]byte, 32*4)
		ByteEncode(&p, 4, buf)
		require.Equal(t, byte(0xA3), buf[0])
	})
}

func TestCompress(t *testing.T) {

	for d := 1; d <= 11; d++ {
		t.Run(name("DecompressThenCompressIsIdentity", d), func(t *testing.T) {
			var p, q Poly
			for lo := 0; lo < 1<<d; lo += N {
				n := 1<<d - lo
				if n > N {
					n = N
				}
				for i := 0; i < n; i++ {
					p.Coeffs[i] = uint16(lo + i)
				}
				Decompress(&p, d, &q)
				Compress(&q, d, &q)
				for i := 0; i < n; i++ {
					require.Equal(t, p.Coeffs[i], q.Coeffs[i])
				}
			}
		})
	}

	t.Run(name("CompressThenDecompressIsIdentity", 12), func(t *testing.T) {
		var p, q Poly
		for lo := 0; lo < Q; lo += N {
			n := Q - lo
			if n > N {
				n = N
			}
			for i := 0; i < n; i++ {
				p.Coeffs[i] = uint16(lo + i)
			}
			Compress(&p, 12, &q)
			Decompress(&q, 12, &q)
			for i := 0; i < n; i++ {
				require.Equal(t, p.Coeffs[i], q.Coeffs[i])
			}
		}
	})

	for d := 1; d <= 12; d++ {
		t.Run(name("RoundingError", d), func(t *testing.T) {
			bound := (Q + (1 << (d + 1)) - 1) >> (d + 1) // ceil(Q / 2^(d+1))
			var p, q Poly
			for lo := 0; lo < Q; lo += N {
				n := Q - lo
				if n > N {
					n = N
				}
				for i := 0; i < n; i++ {
					p.Coeffs[i] = uint16(lo + i)
				}
				Compress(&p, d, &q)
				Decompress(&q, d, &q)
				for i := 0; i < n; i++ {
					diff := int(SubModQ(p.Coeffs[i], q.Coeffs[i]))
					if diff > Q/2 {
						diff = Q - diff
					}
					require.LessOrEqual(t, diff, bound, "d=%d x=%d", d, p.Coeffs[i])
				}
			}
		})
	}
}
