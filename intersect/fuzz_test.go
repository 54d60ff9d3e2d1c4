package intersect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planarkit/core/segment"
)

func FuzzFindCommutesWithBruteForce(f *testing.F) {
	f.Add(0.0, 0.0, 10.0, 10.0, 10.0, 0.0, 20.0, 10.0)
	f.Add(0.0, 0.0, 10.0, 10.0, 10.0, 10.0, 20.0, 0.0)
	f.Add(0.0, 10.0, 10.0, 0.0, 10.0, 0.0, 20.0, 10.0)
	f.Add(0.0, 10.0, 10.0, 20.0, 0.0, 10.0, 10.0, 0.0)
	f.Add(0.0, 20.0, 10.0, 10.0, 10.0, 10.0, 0.0, 0.0)
	f.Add(0.0, 0.0, 10.0, 10.0, 10.0, 0.0, 0.0, 10.0)
	f.Add(10.0, 20.0, 10.0, 0.0, 0.0, 20.0, 20.0, 0.0)

	f.Fuzz(func(t *testing.T, ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 float64) {
		segA, errA := segment.New(ax1, ay1, ax2, ay2)
		segB, errB := segment.New(bx1, by1, bx2, by2)
		if errA != nil || errB != nil {
			t.Skip("degenerate segment")
		}
		input := []segment.Segment{segA, segB}

		sweepResult, err := FindSweep(input)
		require.NoError(t, err)
		bruteResult, err := FindBruteForce(input)
		require.NoError(t, err)

		require.Equal(t, len(bruteResult), len(sweepResult), "result count mismatch")
		for i := range sweepResult {
			assert.True(t, sweepResult[i].P.Eq(bruteResult[i].P), "point %d mismatch: %s vs %s", i, sweepResult[i].P, bruteResult[i].P)
			assert.ElementsMatch(t, bruteResult[i].Entries, sweepResult[i].Entries, "entries mismatch at point %s", sweepResult[i].P)
		}
	})
}
