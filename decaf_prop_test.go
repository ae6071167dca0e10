package decaf25519

import (
	"bytes"
	"testing"

	"filippo.io/edwards25519"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genPoint generates uniformly random multiples of the basepoint.
func genPoint() gopter.Gen {
	return gen.SliceOfN(64, gen.UInt8()).Map(func(b []byte) *edwards25519.Point {
		s, err := edwards25519.NewScalar().SetUniformBytes(b)
		if err != nil {
			panic(err)
		}
		return new(edwards25519.Point).ScalarBaseMult(s)
	})
}

func TestDecafProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Compress(Decompress(e)) == e", prop.ForAll(
		func(p *edwards25519.Point) bool {
			e := Compress(p)
			q, err := Decompress(e)
			if err != nil {
				return false
			}
			return bytes.Equal(e, Compress(q))
		},
		genPoint(),
	))

	properties.Property("Decompress(Compress(p)) is in the class of p", prop.ForAll(
		func(p *edwards25519.Point) bool {
			q, err := Decompress(Compress(p))
			if err != nil {
				return false
			}
			diff := new(edwards25519.Point).Subtract(p, q)
			diff4 := new(edwards25519.Point).Double(new(edwards25519.Point).Double(diff))
			return diff4.Equal(edwards25519.NewIdentityPoint()) == 1
		},
		genPoint(),
	))

	properties.Property("even torsion does not change the encoding", prop.ForAll(
		func(p *edwards25519.Point) bool {
			e := Compress(p)
			for i := 0; i < 8; i += 2 {
				q := new(edwards25519.Point).Add(p, eightTorsion[i])
				if !bytes.Equal(e, Compress(q)) {
					return false
				}
			}
			return true
		},
		genPoint(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
