package mlkem

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/tuneinsight/mlkem/kpke"
)

// ParameterSet designates one of the three standardised ML-KEM parameter
// sets.
type ParameterSet int

const (
	// MLKEM512 is ML-KEM-512: k=2, eta1=3, eta2=2, du=10, dv=4.
	MLKEM512 ParameterSet = 512
	// MLKEM768 is ML-KEM-768: k=3, eta1=2, eta2=2, du=10, dv=4.
	MLKEM768 ParameterSet = 768
	// MLKEM1024 is ML-KEM-1024: k=4, eta1=2, eta2=2, du=11, dv=5.
	MLKEM1024 ParameterSet = 1024
)

func (s ParameterSet) String() string {
	switch s {
	case MLKEM512, MLKEM768, MLKEM1024:
		return fmt.Sprintf("ML-KEM-%d", int(s))
	}
	return "Unknown"
}

// SharedSecretSize is the byte size of the shared secret, for every parameter
// set.
const SharedSecretSize = 32

// SeedSize is the byte size of each of the seeds d, z and m.
const SeedSize = 32

// Parameters represents an ML-KEM parameter set. Its fields are private and
// immutable; instances are created with NewParameters.
type Parameters struct {
	set ParameterSet
	pke kpke.Parameters
}

// NewParameters returns the checked parameters of the given set. It returns
// the zero Parameters and a non-nil error if the set is not one of MLKEM512,
// MLKEM768 or MLKEM1024.
func NewParameters(set ParameterSet) (Parameters, error) {
	var pke kpke.Parameters
	var err error
	switch set {
	case MLKEM512:
		pke, err = kpke.NewParameters(2, 3, 2, 10, 4)
	case MLKEM768:
		pke, err = kpke.NewParameters(3, 2, 2, 10, 4)
	case MLKEM1024:
		pke, err = kpke.NewParameters(4, 2, 2, 11, 5)
	default:
		return Parameters{}, fmt.Errorf("cannot NewParameters: invalid parameter set %d", set)
	}
	if err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParameters: %w", err)
	}
	return Parameters{set: set, pke: pke}, nil
}

// Set returns the parameter-set designation.
func (p Parameters) Set() ParameterSet { return p.set }

// K returns the module rank.
func (p Parameters) K() int { return p.pke.K() }

// PKE returns the parameters of the underlying K-PKE scheme.
func (p Parameters) PKE() kpke.Parameters { return p.pke }

// EncapsulationKeySize returns the byte size of an encapsulation key,
// 384*k + 32.
func (p Parameters) EncapsulationKeySize() int { return p.pke.EncryptionKeySize() }

// DecapsulationKeySize returns the byte size of a decapsulation key,
// 768*k + 96.
func (p Parameters) DecapsulationKeySize() int { return 768*p.pke.K() + 96 }

// CiphertextSize returns the byte size of a ciphertext, 32*(du*k + dv).
func (p Parameters) CiphertextSize() int { return p.pke.CiphertextSize() }

// Equal returns whether the two parameter sets are identical.
func (p Parameters) Equal(other Parameters) bool {
	return cmp.Equal(p.set, other.set) && cmp.Equal(p.pke, other.pke, cmp.AllowUnexported(kpke.Parameters{}))
}
