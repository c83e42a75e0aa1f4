package main

import (
	"math/big"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestProduct(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		want   string
		wantOK bool
	}{
		{"small", "123", "456", "56088", true},
		{"zero", "0", "987654321", "0", true},
		{"leading zeros", "000042", "0000100", "4200", true},
		{"empty", "", "5", "", false},
		{"letter", "12a4", "7", "", false},
		{"sign", "-7", "5", "", false},
		{"plus sign", "+7", "5", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := product(tt.a, tt.b)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRandomDigits(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for _, n := range []int{1, 2, 50, 1000} {
		s := randomDigits(rng, n)
		require.Len(t, s, n)
		assert.NotEqual(t, byte('0'), s[0], "leading zero for n=%d", n)
		assert.True(t, isDigits(s))
	}
	assert.Equal(t, "0", randomDigits(rng, 0))
}

func TestRandomCases_Deterministic(t *testing.T) {
	first := randomCases(rand.New(rand.NewPCG(1, 1)))
	second := randomCases(rand.New(rand.NewPCG(1, 1)))
	assert.Equal(t, first, second)
}

func TestGenerate_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generate(dir, 1))

	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	require.NoError(t, err)
	assert.Len(t, paths, len(fixedCases())+3)

	for _, path := range paths {
		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var v vector
		require.NoError(t, yaml.Unmarshal(data, &v), path)
		if !isDigits(v.Input.A) || !isDigits(v.Input.B) {
			assert.Nil(t, v.Output, path)
			continue
		}
		require.NotNil(t, v.Output, path)

		x, _ := new(big.Int).SetString(v.Input.A, 10)
		y, _ := new(big.Int).SetString(v.Input.B, 10)
		assert.Equal(t, new(big.Int).Mul(x, y).String(), *v.Output, path)
	}
}
