package multiply

import (
	"context"
	"testing"
)

func onlyDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FuzzMultiply compares the transform product with math/big on arbitrary
// input; non-digit input must be rejected rather than multiplied.
func FuzzMultiply(f *testing.F) {
	f.Add("123", "456")
	f.Add("0", "999")
	f.Add("9999999999", "9999999999")
	f.Add("1", "1")
	f.Add("12x", "3")

	f.Fuzz(func(t *testing.T, a, b string) {
		if len(a)+len(b) > 4096 {
			t.Skip()
		}
		got, err := Multiply(a, b)
		if !onlyDigits(a) || !onlyDigits(b) {
			if err == nil {
				t.Fatalf("Multiply(%q, %q) accepted invalid input", a, b)
			}
			return
		}
		if err != nil {
			t.Fatalf("Multiply(%q, %q) error = %v", a, b, err)
		}
		if want := bigProduct(a, b); got != want {
			t.Fatalf("Multiply(%q, %q) = %q, want %q", a, b, got, want)
		}

		school, err := NewMultiplier(SchoolbookMultiplier{}).Multiply(context.Background(), a, b, Options{})
		if err != nil || school != got {
			t.Fatalf("schoolbook disagrees: %q, %v", school, err)
		}
	})
}
