// Command generate-golden writes the YAML multiplication vectors used by the
// multiply package tests. Products are computed with math/big.
//
// Usage:
//
//	go run ./cmd/generate-golden -out internal/multiply/testdata/golden
package main

import (
	"flag"
	"fmt"
	"math/big"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

// vector mirrors the layout decoded by the golden tests.
type vector struct {
	Input struct {
		A string `yaml:"a"`
		B string `yaml:"b"`
	} `yaml:"input"`
	Output *string `yaml:"output"`
}

// goldenCase is a named pair of operands.
type goldenCase struct {
	name string
	a, b string
}

const squareOperand = "9542555034910654912103503446637956309454633826060586516750199204"

func fixedCases() []goldenCase {
	return []goldenCase{
		{"small", "123", "456"},
		{"unit", "1", "1"},
		{"zero_left", "0", "999"},
		{"square_64", squareOperand, squareOperand},
		{"leading_zeros", "000042", "0000100"},
		{"nines_ten", "9999999999", "9999999999"},
		{"nines_1000", strings.Repeat("9", 1000), strings.Repeat("9", 1000)},
		{"invalid_empty", "", "5"},
		{"invalid_letter", "12a4", "7"},
		{"invalid_sign", "-7", "5"},
	}
}

func randomCases(rng *rand.Rand) []goldenCase {
	sizes := [][2]int{{100, 37}, {512, 512}, {2000, 1999}}
	cases := make([]goldenCase, len(sizes))
	for i, s := range sizes {
		cases[i] = goldenCase{
			name: fmt.Sprintf("random_%dx%d", s[0], s[1]),
			a:    randomDigits(rng, s[0]),
			b:    randomDigits(rng, s[1]),
		}
	}
	return cases
}

// randomDigits returns an n-digit decimal string without a leading zero.
func randomDigits(rng *rand.Rand, n int) string {
	if n <= 0 {
		return "0"
	}
	buf := make([]byte, n)
	buf[0] = byte('1' + rng.IntN(9))
	for i := 1; i < n; i++ {
		buf[i] = byte('0' + rng.IntN(10))
	}
	return string(buf)
}

// product multiplies two unsigned decimal strings. It reports false when an
// operand is not a non-empty run of ASCII digits.
func product(a, b string) (string, bool) {
	if !isDigits(a) || !isDigits(b) {
		return "", false
	}
	x, _ := new(big.Int).SetString(a, 10)
	y, _ := new(big.Int).SetString(b, 10)
	return new(big.Int).Mul(x, y).String(), true
}

func isDigits(s string) bool {
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

func encode(c goldenCase) ([]byte, error) {
	var v vector
	v.Input.A, v.Input.B = c.a, c.b
	if p, ok := product(c.a, c.b); ok {
		v.Output = &p
	}
	return yaml.Marshal(v)
}

func generate(dir string, seed uint64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	cases := append(fixedCases(), randomCases(rng)...)
	for _, c := range cases {
		data, err := encode(c)
		if err != nil {
			return fmt.Errorf("encode %s: %w", c.name, err)
		}
		path := filepath.Join(dir, c.name+".yaml")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		log.Info().Str("file", path).Int("digits_a", len(c.a)).Int("digits_b", len(c.b)).Msg("vector written")
	}
	return nil
}

func main() {
	out := flag.String("out", filepath.Join("internal", "multiply", "testdata", "golden"), "output directory")
	seed := flag.Uint64("seed", 1, "seed for the random operands")
	flag.Parse()

	if err := generate(*out, *seed); err != nil {
		log.Error().Err(err).Msg("generation failed")
		os.Exit(1)
	}
}
