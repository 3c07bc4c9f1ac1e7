/*
Package mlkem implements the Module-Lattice-based Key Encapsulation Mechanism
standardised by NIST FIPS 203. The library features:

  - A pure Go implementation enabling code-simplicity and easy builds.
  - The three standardised parameter sets ML-KEM-512, ML-KEM-768 and
    ML-KEM-1024.
  - Constant-time decapsulation with implicit rejection, and zeroization of
    all secret intermediates.

The public entry point is NewKEM, which binds a parameter set to the KeyGen,
Encaps and Decaps operations. The underlying polynomial arithmetic lives in
the ring package and the IND-CPA encryption core in the kpke package.
*/
package mlkem
