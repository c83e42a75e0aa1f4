package multiply

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/fftmul/internal/spectral"
)

func digitString() gopter.Gen {
	return gen.SliceOf(gen.NumChar()).
		SuchThat(func(cs []rune) bool { return len(cs) > 0 }).
		Map(func(cs []rune) string { return string(cs) })
}

// TestMultiplyProperties checks algebraic properties of the product on
// random operands, using math/big as the reference.
func TestMultiplyProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("product equals math/big", prop.ForAll(
		func(a, b string) bool {
			got, err := Multiply(a, b)
			return err == nil && got == bigProduct(a, b)
		},
		digitString(), digitString(),
	))

	properties.Property("product is commutative", prop.ForAll(
		func(a, b string) bool {
			ab, err1 := Multiply(a, b)
			ba, err2 := Multiply(b, a)
			return err1 == nil && err2 == nil && ab == ba
		},
		digitString(), digitString(),
	))

	properties.Property("one is the identity", prop.ForAll(
		func(a string) bool {
			got, err := Multiply(a, "1")
			return err == nil && got == bigProduct(a, "1")
		},
		digitString(),
	))

	properties.Property("padding beyond the minimum does not change the product", prop.ForAll(
		func(a, b string, extra int) bool {
			want, err := Multiply(a, b)
			if err != nil {
				return false
			}
			n := spectral.NextPowerOfTwo(len(a)+len(b)) << uint(extra)
			got, err := MultiplyPadded(a, b, n)
			return err == nil && got == want
		},
		digitString(), digitString(), gen.IntRange(0, 3),
	))

	properties.TestingRun(t)
}
