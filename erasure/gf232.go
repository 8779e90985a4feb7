// gf232.go implements the field GF(2^32) as binary polynomials of degree
// below 32 reduced modulo the fixed irreducible polynomial
//
//	F(x) = x^32 + x^7 + x^3 + x^2 + 1    (bit pattern 0x1_0000_008D)
//
// The modulus is frozen: it is part of the shard wire format, and shards
// produced under any other modulus are incompatible.
//
// Unlike a GF(2^8) field there is no room for log/exp or multiplication
// tables (they would need 2^32 entries), so multiplication reduces a
// 64-bit polynomial product directly and the inverse runs the extended
// Euclidean algorithm on binary polynomials.
package erasure

// gf232Modulus is the irreducible polynomial defining the field.
const gf232Modulus BinaryPolynomial = 0x1_0000_008D

// GF232 is an element of GF(2^32): a binary polynomial of degree < 32,
// stored by its 32-bit coefficient pattern.
type GF232 uint32

// Add returns a + b in GF(2^32). Addition in characteristic 2 is XOR.
func (a GF232) Add(b GF232) GF232 {
	return a ^ b
}

// Sub returns a - b in GF(2^32). Subtraction equals addition in
// characteristic 2.
func (a GF232) Sub(b GF232) GF232 {
	return a ^ b
}

// Mul returns a * b in GF(2^32): the binary-polynomial product of the two
// operands (at most degree 62, so a 64-bit accumulator suffices) reduced
// modulo F(x).
func (a GF232) Mul(b GF232) GF232 {
	prod := BinaryPolynomial(a).Mul(BinaryPolynomial(b))
	return GF232(prod.Mod(gf232Modulus))
}

// Inverse returns the multiplicative inverse of a, computed with the
// extended Euclidean algorithm over binary polynomials: it tracks the
// Bezout coefficient of a against F(x), and since gcd(F, a) = 1 for every
// non-zero a, the final coefficient is a^-1 mod F. Panics if a is zero.
func (a GF232) Inverse() GF232 {
	if a == 0 {
		panic("erasure/gf232: inverse of zero")
	}
	c, d := gf232Modulus, BinaryPolynomial(a)
	nPrev, n := BinaryPolynomial(0), BinaryPolynomial(1)
	for {
		q := c.Div(d)
		r := c.Mod(d)
		if r == 0 {
			break
		}
		c, d = d, r
		nPrev, n = n, nPrev.Sub(q.Mul(n))
	}
	return GF232(n)
}

// Div returns a / b in GF(2^32) as a * b^-1. Panics if b is zero.
func (a GF232) Div(b GF232) GF232 {
	return a.Mul(b.Inverse())
}
