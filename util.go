package decaf25519

import (
	"encoding/hex"
	"math/big"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
)

func fieldElementFromString(s string) *field.Element {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid fieldElement string")
	}
	return fieldElementFromBigInt(n)
}

func fieldElementFromBigInt(n *big.Int) *field.Element {
	return fieldElementFromBytes(bigIntBytes(n))
}

func fieldElementFromBytes(x []byte) *field.Element {
	var buf [32]byte
	copy(buf[:], x)
	fe, err := new(field.Element).SetBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return fe
}

func bigIntBytes(n *big.Int) []byte {
	if n == nil || n.Sign() < 0 {
		panic("n must be non-negative")
	}
	if n.BitLen() > 255 {
		panic("n must be less than 2^255")
	}
	var buf [32]byte
	return reverse(n.FillBytes(buf[:]))
}

func reverse(b []byte) []byte {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

// pointFromHex decodes a point from its canonical compressed Edwards
// encoding in hex.
func pointFromHex(s string) *edwards25519.Point {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		panic(err)
	}
	return p
}
