package multiply

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

var goldenVectors = filepath.Join("testdata", "golden", "*.yaml")

// GoldenVector is one stored multiplication case. A nil Output marks input
// that must be rejected.
type GoldenVector struct {
	Input struct {
		A string `yaml:"a"`
		B string `yaml:"b"`
	} `yaml:"input"`
	Output *string `yaml:"output"`
}

func TestGoldenVectors(t *testing.T) {
	paths, err := filepath.Glob(goldenVectors)
	require.NoError(t, err)
	require.True(t, len(paths) > 0)

	factory := NewDefaultFactory()
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			file, err := os.Open(path)
			require.NoError(t, err)
			vector := GoldenVector{}
			err = yaml.NewDecoder(file).Decode(&vector)
			require.NoError(t, file.Close())
			require.NoError(t, err)
			valid := vector.Output != nil

			got, err := Multiply(vector.Input.A, vector.Input.B)
			if !valid {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, *vector.Output, got)

			for name, m := range factory.GetAll() {
				got, err := m.Multiply(context.Background(), vector.Input.A, vector.Input.B, Options{})
				require.NoError(t, err, name)
				require.Equal(t, *vector.Output, got, name)
			}
		})
	}
}
