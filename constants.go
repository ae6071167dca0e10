package decaf25519

import (
	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
)

// Constants 0, 1 and 2
var (
	_0 = new(field.Element)
	_1 = new(field.Element).One()
	_2 = new(field.Element).Add(_1, _1)
)

// Twisted Edwards "edwards25519" a*x^2 + y^2 = 1 + d*x^2*y^2 parameters
// with a = -1.
//
// https://www.rfc-editor.org/rfc/rfc8032.html#section-5.1
var (
	// Constant d = -121665/121666
	_d = fieldElementFromString("37095705934669439343138083508754565189542113879843219016388785533085940283555")
	// Constant 4*d
	_d4 = new(field.Element).Mult32(_d, 4)
	// Constant a - d
	_aMinusD = new(field.Element).Negate(new(field.Element).Add(_1, _d))
)

// Constant |sqrt(-1)| - the x-coordinate of the order-4 point (i, 0) added
// by the compression pre-rotation.
var _sqrtM1 = func() *field.Element {
	t := new(field.Element).Negate(_1)
	t.SqrtRatio(t, _1)
	return t
}()

// eightTorsion[i] = i*T8, where T8 is the order-8 point with the canonical
// Edwards encoding below. The even-indexed entries form the 4-torsion
// subgroup; Decaf encodings are invariant under adding any of them.
var eightTorsion = func() [8]*edwards25519.Point {
	t8 := pointFromHex("c7176a703d4dd84fba3c0b760d10670f2a2053fa2c39ccc64ec7fd7792ac037a")
	var ts [8]*edwards25519.Point
	ts[0] = edwards25519.NewIdentityPoint()
	for i := 1; i < 8; i++ {
		ts[i] = new(edwards25519.Point).Add(ts[i-1], t8)
	}
	return ts
}()
