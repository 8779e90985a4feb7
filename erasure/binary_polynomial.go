// binary_polynomial.go implements arithmetic on polynomials over GF(2),
// bit-packed into a 64-bit word: bit i is the coefficient of x^i. These
// polynomials are the substrate for the GF(2^32) field in gf232.go, where
// field multiplication is a polynomial multiply followed by reduction
// modulo the field modulus.
//
// Addition and subtraction coincide (coefficients live in GF(2), where
// 1 + 1 = 0), so both are a single XOR. Multiplication is shift-and-XOR;
// division and remainder are long division driven by degree comparison.
//
// Callers are responsible for keeping results within the 64-bit backing.
// Multiplying two operands of degree <= 31, as the field layer does, is
// always safe.
package erasure

import (
	"math/bits"
	"strconv"
	"strings"
)

// BinaryPolynomial is a polynomial over GF(2), bit-packed into a uint64.
// Bit i holds the coefficient of x^i. The zero value is the zero
// polynomial.
type BinaryPolynomial uint64

// Degree returns the degree of p: the index of the highest set bit, or -1
// for the zero polynomial.
func (p BinaryPolynomial) Degree() int {
	return bits.Len64(uint64(p)) - 1
}

// Add returns p + q. Addition in characteristic 2 is XOR.
func (p BinaryPolynomial) Add(q BinaryPolynomial) BinaryPolynomial {
	return p ^ q
}

// Sub returns p - q, which equals p + q in characteristic 2.
func (p BinaryPolynomial) Sub(q BinaryPolynomial) BinaryPolynomial {
	return p ^ q
}

// Mul returns p * q by shift-and-XOR: for every set bit i of q, p shifted
// up by i is XORed into the accumulator. The result must fit in 64 bits;
// two operands of degree <= 31 always do.
func (p BinaryPolynomial) Mul(q BinaryPolynomial) BinaryPolynomial {
	var acc BinaryPolynomial
	x, y := q, p
	for x > 0 && y > 0 {
		if x&1 == 1 {
			acc ^= y
		}
		y <<= 1
		x >>= 1
	}
	return acc
}

// Div returns the quotient of p / d by long division: while the running
// remainder has degree >= deg(d), the aligned multiple of d is subtracted
// and the corresponding power of x added to the quotient. Panics if d is
// the zero polynomial.
func (p BinaryPolynomial) Div(d BinaryPolynomial) BinaryPolynomial {
	if d == 0 {
		panic("erasure/binpoly: division by zero polynomial")
	}
	var quot BinaryPolynomial
	r := p
	for r.Degree() >= d.Degree() {
		shift := uint(r.Degree() - d.Degree())
		quot ^= 1 << shift
		r ^= d << shift
	}
	return quot
}

// Mod returns the remainder of p / d. Same loop as Div, keeping only the
// residue. Panics if d is the zero polynomial.
func (p BinaryPolynomial) Mod(d BinaryPolynomial) BinaryPolynomial {
	if d == 0 {
		panic("erasure/binpoly: division by zero polynomial")
	}
	r := p
	for r.Degree() >= d.Degree() {
		r ^= d << uint(r.Degree()-d.Degree())
	}
	return r
}

// String renders p as a sum of powers of x, highest degree first, e.g.
// "x^3 + x + 1". The zero polynomial renders as "0".
func (p BinaryPolynomial) String() string {
	if p == 0 {
		return "0"
	}
	var terms []string
	for deg := p.Degree(); deg >= 0; deg-- {
		if p&(1<<uint(deg)) == 0 {
			continue
		}
		switch deg {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, "x^"+strconv.Itoa(deg))
		}
	}
	return strings.Join(terms, " + ")
}
