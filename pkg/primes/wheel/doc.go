// Package wheel builds factorization wheels: a basis of the first few primes
// and the spokes, the residues within one circumference coprime to every basis
// prime. Only spokes can hold primes beyond the basis, so sieving over spokes
// skips the multiples of the basis without any division.
//
// Build grows the wheel one prime at a time starting from {basis: [2], spokes: [1]}.
package wheel
