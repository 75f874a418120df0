package istat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram(t *testing.T) {
	h, err := NewHistogram(-1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, h.Outcomes())
	assert.Equal(t, -1, h.Start())
	assert.Equal(t, 1, h.End())

	require.NoError(t, h.AddAll([]int{-1, 0, 0, 1, 1, 1}))
	assert.Equal(t, 6, h.Total())
	assert.Equal(t, 1, h.Count(-1))
	assert.Equal(t, 2, h.Count(0))
	assert.Equal(t, 3, h.Count(1))
	assert.Equal(t, 0, h.Count(9))
	assert.InDelta(t, 0.5, h.Frequency(1), 1e-9)

	assert.Error(t, h.Add(2))
	assert.Error(t, h.Add(-2))
	assert.Equal(t, 6, h.Total())

	var keys []int
	h.Range(func(n, count int) bool {
		keys = append(keys, n)
		return true
	})
	assert.Equal(t, []int{-1, 0, 1}, keys)
}

func TestHistogramInvalid(t *testing.T) {
	_, err := NewHistogram(3, 2)
	assert.Error(t, err)

	_, err = NewHistogram(0, MaxOutcomes)
	assert.Error(t, err)

	_, err = NewHistogram(math.MinInt, math.MaxInt)
	assert.Error(t, err)

	h, err := NewHistogram(0, MaxOutcomes-1)
	require.NoError(t, err)
	assert.Equal(t, MaxOutcomes, h.Outcomes())
}

func TestChiSquare(t *testing.T) {
	h, _ := NewHistogram(1, 4)
	assert.Zero(t, ChiSquare(h))

	for n := 1; n <= 4; n++ {
		for i := 0; i < 25; i++ {
			_ = h.Add(n)
		}
	}
	assert.Zero(t, ChiSquare(h))
	assert.True(t, Uniform(h))

	skewed, _ := NewHistogram(1, 4)
	for i := 0; i < 100; i++ {
		_ = skewed.Add(1)
	}
	// 期望每格 25：3*25 + 75^2/25
	assert.InDelta(t, 300.0, ChiSquare(skewed), 1e-9)
	assert.False(t, Uniform(skewed))
}

func TestCriticalValue(t *testing.T) {
	// 查表值 α = 0.001
	table := map[int]float64{
		1:  10.828,
		5:  20.515,
		9:  27.877,
		20: 45.315,
	}
	for df, want := range table {
		got := CriticalValue(df)
		assert.InEpsilon(t, want, got, 0.05, "df=%d", df)
		// 近似值不低于查表值
		assert.GreaterOrEqual(t, got, want*0.99, "df=%d", df)
	}
	assert.Zero(t, CriticalValue(0))
}

func TestUniformSingleOutcome(t *testing.T) {
	h, _ := NewHistogram(5, 5)
	_ = h.Add(5)
	assert.True(t, Uniform(h))
}
