package heatmap

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestClassifyBoundaries(t *testing.T) {
	t.Parallel()

	cases := map[int]Bucket{
		0:       0,
		1:       1,
		2:       2,
		3:       2,
		4:       3,
		5:       3,
		6:       4,
		7:       4,
		100:     4,
		1000000: 4,
	}

	for count, want := range cases {
		require.Equal(t, want, Classify(count), "count %d", count)
	}
}

func TestClassifyMonotonic(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		c1 := rapid.IntRange(0, 1<<20).Draw(t, "c1")
		c2 := rapid.IntRange(0, 1<<20).Draw(t, "c2")

		if c1 > c2 {
			c1, c2 = c2, c1
		}

		if Classify(c1) > Classify(c2) {
			t.Fatalf("Classify(%d)=%d > Classify(%d)=%d", c1, Classify(c1), c2, Classify(c2))
		}
	})
}

func TestClassifyRange(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(0, 1<<30).Draw(t, "count")
		bucket := Classify(count)

		if bucket < 0 || bucket >= NumBuckets {
			t.Fatalf("Classify(%d)=%d out of range", count, bucket)
		}
	})
}

func TestDefaultPaletteArity(t *testing.T) {
	t.Parallel()

	require.Len(t, DefaultPalette, NumBuckets)
	require.Equal(t, "#eeeeee", DefaultPalette[0])
	require.Equal(t, "#1e6823", DefaultPalette[NumBuckets-1])
}
