package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSecureRandomInt_StaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.IntRange(-1000, 1000).Draw(t, "lo")
		hi := rapid.IntRange(lo, lo+1000).Draw(t, "hi")

		n, err := SecureRandomInt(lo, hi)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n < lo || n > hi {
			t.Fatalf("%d outside [%d, %d]", n, lo, hi)
		}
	})
}

func TestSecureRandomInt_RejectsInvertedRange(t *testing.T) {
	_, err := SecureRandomInt(5, 4)
	require.Error(t, err)
}

func TestSecureRandomInt_SingleValue(t *testing.T) {
	n, err := SecureRandomInt(7, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestRandomInt(t *testing.T) {
	for i := 0; i < 200; i++ {
		n := RandomInt(1, 20)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 20)
	}
	assert.Equal(t, 3, RandomInt(3, 1), "inverted range returns min")
}
