// Package decaf25519 implements Mike Hamburg's [Decaf] point compression
// scheme for edwards25519, encoding each element of the prime-order quotient
// group "curve points modulo 8-torsion" to a unique 32-byte string.
//
// edwards25519 has cofactor 8, so its point set is not of prime order and
// protocols built directly on it are exposed to a well-known class of
// torsion attacks: two points that differ by a small-order component behave
// identically under the prime-order subgroup but serialize differently.
// Decaf removes the distinction at the encoding level. [Compress] produces
// the same bytes for all points of the same quotient-group class (any
// projective representative, any even-torsion offset), and [Decompress]
// accepts exactly one encoding per class, so higher-level protocols get a
// prime-order group without an isogeny to a prime-order curve.
//
// Both operations are deterministic and safe for concurrent use. All sign
// and coset-representative choices are made with constant-time selection on
// field elements rather than data-dependent branches, so the functions are
// suitable for secret key material. The only data-dependent branch is the
// final accept/reject decision of [Decompress].
//
// Field arithmetic and curve-group arithmetic come from
// [filippo.io/edwards25519]; this package only provides the bijection
// between quotient-group elements and byte strings.
//
// [Decaf]: https://www.shiftleft.org/papers/decaf/decaf.pdf
package decaf25519

import (
	"errors"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
)

// ErrInvalidEncoding is returned by [Decompress] when the input bytes do not
// encode a quotient-group element.
var ErrInvalidEncoding = errors.New("decaf25519: invalid point encoding")

// invSqrt sets v = 1/sqrt(x) and returns 1 if x is a non-zero square,
// sets v = 0 and returns 1 if x is zero, and
// sets v = 0 and returns 0 if x is a non-zero non-square.
//
// The root is the non-negative one; callers canonicalize the sign with a
// conditional negate.
func invSqrt(v, x *field.Element) int {
	isZero := x.Equal(_0)
	_, wasSquare := v.SqrtRatio(_1, x)
	return wasSquare | isZero
}

// Decompress decodes a 32-byte Decaf encoding and returns an extended
// projective representative of the encoded quotient-group element.
//
// It returns [ErrInvalidEncoding] if b is a 32-byte string that does not
// encode a group element, or the field deserialization error if b is not
// 32 bytes long. The all-zero encoding decodes to the identity.
func Decompress(b []byte) (*edwards25519.Point, error) {
	s, err := new(field.Element).SetBytes(b)
	if err != nil {
		return nil, err
	}

	var ss, X, Z, u, t field.Element
	ss.Square(s)
	X.Add(s, s)         // X = 2s
	Z.Subtract(_1, &ss) // Z = 1 + a*s^2 with a = -1
	t.Multiply(_d4, &ss)
	u.Square(&Z)
	u.Subtract(&u, &t) // u = Z^2 - 4d*s^2

	// v = 1/sqrt(u*s^2) if u*s^2 is a non-zero square, 0 if it is zero.
	// A non-zero non-square proves the bytes are not an encoding.
	var v, uss field.Element
	uss.Multiply(&u, &ss)
	if invSqrt(&v, &uss) == 0 {
		return nil, ErrInvalidEncoding
	}

	// Canonicalize the root: pick the v that makes v*u non-negative.
	var uv, vNeg field.Element
	uv.Multiply(&v, &u)
	vNeg.Negate(&v)
	v.Select(&vNeg, &v, uv.IsNegative())

	// w = v*s*(2-Z), forced to 1 when s = 0 so that the all-zero encoding
	// yields the identity (0, 1).
	var w field.Element
	t.Subtract(_2, &Z)
	w.Multiply(&v, s)
	w.Multiply(&w, &t)
	w.Select(_1, &w, s.Equal(_0))

	var Y, T field.Element
	Y.Multiply(&w, &Z)
	T.Multiply(&w, &X)

	p, err := new(edwards25519.Point).SetExtendedCoordinates(&X, &Y, &Z, &T)
	if err != nil {
		// The formulas above only produce points on the curve.
		panic(err)
	}
	return p, nil
}

// Compress encodes the quotient-group class of p to its canonical 32-byte
// Decaf encoding.
//
// The encoding depends only on the class: projectively-equivalent
// representatives and points differing by even torsion compress to
// identical bytes. Compress is total for points on the curve; it panics if
// p violates the curve-point contract.
func Compress(p *edwards25519.Point) []byte {
	X, Y, Z, T := p.ExtendedCoordinates()

	// Pre-rotation: if y is zero or x*y is negative, add the order-4 point
	// (i, 0), i.e. (X:Y:Z:T) -> (iY:iX:Z:-T). This selects the coset
	// representative for which the sign computation below is canonical.
	var xy, iX, iY, minusT field.Element
	xy.Invert(Z)
	xy.Multiply(&xy, T) // x*y = T/Z
	rotate := Y.Equal(_0) | xy.IsNegative()
	iX.Multiply(X, _sqrtM1)
	iY.Multiply(Y, _sqrtM1)
	minusT.Negate(T)
	X.Select(&iY, X, rotate)
	Y.Select(&iX, Y, rotate)
	T.Select(&minusT, T, rotate)

	// r = 1/sqrt((a-d)*(Z+Y)*(Z-Y))
	var t, zy, r field.Element
	t.Add(Z, Y)
	zy.Subtract(Z, Y)
	t.Multiply(&t, &zy)
	t.Multiply(_aMinusD, &t)
	if invSqrt(&r, &t) == 0 {
		// (a-d)*(Z+Y)*(Z-Y) is a square for every point on the curve, so
		// this is unreachable for a p that satisfies the curve equation.
		panic("decaf25519: invalid point")
	}

	// u = (a-d)*r, with r negated if -2*u*Z is negative.
	var u, m2uZ, rNeg field.Element
	u.Multiply(_aMinusD, &r)
	m2uZ.Multiply(&u, Z)
	m2uZ.Add(&m2uZ, &m2uZ)
	m2uZ.Negate(&m2uZ)
	rNeg.Negate(&r)
	r.Select(&rNeg, &r, m2uZ.IsNegative())

	// s = |u*(r*(a*Z*X - d*Y*T) + Y)/a| with a = -1.
	var s, dYT field.Element
	s.Multiply(Z, X)
	s.Negate(&s) // a*Z*X
	dYT.Multiply(Y, T)
	dYT.Multiply(_d, &dYT)
	s.Subtract(&s, &dYT)
	s.Multiply(&s, &r)
	s.Add(&s, Y)
	s.Multiply(&s, &u)
	s.Negate(&s) // divide by a
	return s.Absolute(&s).Bytes()
}
