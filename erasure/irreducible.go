// irreducible.go implements an irreducibility sieve for binary
// polynomials. The field modulus in gf232.go was originally found by
// exactly this search; the sieve is kept both as a diagnostic (the
// irrfind command) and so tests can verify the frozen modulus really is
// irreducible.
//
// Two cheap filters discard most candidates before trial division: a zero
// constant term means x divides the candidate, and an even number of
// non-zero coefficients means x+1 does (the polynomial evaluates to 0 at
// x=1). Trial division then only needs irreducible divisors up to half
// the candidate's degree.
package erasure

import "math/bits"

// Irreducibles returns every irreducible binary polynomial of degree 1 up
// to maxDegree, in increasing bit-pattern order. The sieve trial-divides
// each candidate by the irreducibles already found, stopping once divisor
// degrees pass half the candidate's.
func Irreducibles(maxDegree int) []BinaryPolynomial {
	if maxDegree < 1 {
		return nil
	}
	irreducibles := []BinaryPolynomial{0b10, 0b11}
	if maxDegree == 1 {
		return irreducibles
	}
candidates:
	for c := BinaryPolynomial(0b100); c.Degree() <= maxDegree; c++ {
		if c&1 == 0 {
			continue // divisible by x
		}
		if bits.OnesCount64(uint64(c))%2 == 0 {
			continue // divisible by x+1
		}
		for _, d := range irreducibles {
			if d.Degree() > (c.Degree()+1)/2 {
				break
			}
			if c.Mod(d) == 0 {
				continue candidates
			}
		}
		irreducibles = append(irreducibles, c)
	}
	return irreducibles
}

// IsIrreducible reports whether p has no non-trivial factors over GF(2).
// Constants (degree < 1) are not irreducible.
func IsIrreducible(p BinaryPolynomial) bool {
	deg := p.Degree()
	if deg < 1 {
		return false
	}
	if deg == 1 {
		return true
	}
	if p&1 == 0 {
		return false
	}
	if bits.OnesCount64(uint64(p))%2 == 0 {
		return false
	}
	for _, d := range Irreducibles(deg / 2) {
		if p.Mod(d) == 0 {
			return false
		}
	}
	return true
}

// FindIrreducible returns the irreducible binary polynomial of exactly the
// given degree with the smallest bit pattern, or 0 if degree < 1.
func FindIrreducible(degree int) BinaryPolynomial {
	if degree < 1 {
		return 0
	}
	if degree == 1 {
		return 0b10
	}
	divisors := Irreducibles(degree / 2)
candidates:
	for c := BinaryPolynomial(1) << uint(degree); c.Degree() == degree; c++ {
		if c&1 == 0 {
			continue
		}
		if bits.OnesCount64(uint64(c))%2 == 0 {
			continue
		}
		for _, d := range divisors {
			if c.Mod(d) == 0 {
				continue candidates
			}
		}
		return c
	}
	return 0
}
