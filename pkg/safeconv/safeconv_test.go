package safeconv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64ToInt(t *testing.T) {
	t.Parallel()

	t.Run("normal_value", func(t *testing.T) {
		t.Parallel()

		got, err := Int64ToInt(42)
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("negative", func(t *testing.T) {
		t.Parallel()

		got, err := Int64ToInt(-7)
		require.NoError(t, err)
		assert.Equal(t, -7, got)
	})

	t.Run("max_int", func(t *testing.T) {
		t.Parallel()

		got, err := Int64ToInt(int64(MaxInt))
		require.NoError(t, err)
		assert.Equal(t, MaxInt, got)
	})
}

func TestMustInt64ToInt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, MustInt64ToInt(5))

	if MaxInt == math.MaxInt64 {
		t.Skip("int is 64 bits wide; no int64 overflows it")
	}

	assert.PanicsWithValue(t, "safeconv: int64 to int overflow", func() {
		MustInt64ToInt(math.MaxInt64)
	})
}

func TestAddInt64(t *testing.T) {
	t.Parallel()

	t.Run("in_range", func(t *testing.T) {
		t.Parallel()

		sum, ok := AddInt64(40, 2)
		assert.True(t, ok)
		assert.Equal(t, int64(42), sum)
	})

	t.Run("positive_overflow", func(t *testing.T) {
		t.Parallel()

		_, ok := AddInt64(math.MaxInt64, 1)
		assert.False(t, ok)
	})

	t.Run("negative_overflow", func(t *testing.T) {
		t.Parallel()

		_, ok := AddInt64(math.MinInt64, -1)
		assert.False(t, ok)
	})

	t.Run("boundaries", func(t *testing.T) {
		t.Parallel()

		sum, ok := AddInt64(math.MaxInt64, math.MinInt64)
		assert.True(t, ok)
		assert.Equal(t, int64(-1), sum)
	})
}
