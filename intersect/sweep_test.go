package intersect

import (
	"testing"

	"github.com/planarkit/core/point"
	"github.com/planarkit/core/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTwoSegmentCross(t *testing.T) {
	segs := []segment.Segment{
		seg(t, 0, 0, 10, 10),
		seg(t, 0, 10, 10, 0),
	}
	got, err := FindSweep(segs)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, point.New(5, 5).Eq(got[0].P))
	assert.ElementsMatch(t, []Entry{{0, segment.BETWEEN}, {1, segment.BETWEEN}}, got[0].Entries)
}

func TestFindThreeConcurrent(t *testing.T) {
	segs := []segment.Segment{
		seg(t, 0, 0, 10, 10),
		seg(t, 0, 10, 10, 0),
		seg(t, 5, 0, 5, 10),
	}
	got, err := FindSweep(segs)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Entries, 3)
	for _, e := range got[0].Entries {
		assert.Equal(t, segment.BETWEEN, e.Location)
	}
}

func TestFindSharedEndpoint(t *testing.T) {
	segs := []segment.Segment{
		seg(t, 0, 0, 5, 5),
		seg(t, 5, 5, 10, 0),
	}
	got, err := FindSweep(segs)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.ElementsMatch(t, []Entry{{0, segment.END}, {1, segment.START}}, got[0].Entries)
}

func TestFindNoCrossing(t *testing.T) {
	segs := []segment.Segment{
		seg(t, 0, 0, 10, 0),
		seg(t, 0, 5, 10, 5),
	}
	got, err := FindSweep(segs)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindNilSegments(t *testing.T) {
	_, err := FindSweep(nil)
	assert.Error(t, err)
}

func TestFindLexicographicOrder(t *testing.T) {
	segs := []segment.Segment{
		seg(t, 0, 0, 10, 10),
		seg(t, 0, 10, 10, 0),
		seg(t, 0, 2, 2, 0),
		seg(t, 0, 0, 2, 2),
		seg(t, 0, 8, 8, 0),
	}
	got, err := FindSweep(segs)
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		assert.True(t, point.Compare(got[i-1].P, got[i].P) < 0)
	}
}

func TestFindCommutesWithBruteForce(t *testing.T) {
	cases := [][]segment.Segment{
		{seg(t, 0, 0, 10, 10), seg(t, 0, 10, 10, 0)},
		{seg(t, 0, 0, 10, 10), seg(t, 0, 10, 10, 0), seg(t, 5, 0, 5, 10)},
		{seg(t, 0, 0, 5, 5), seg(t, 5, 5, 10, 0)},
		{seg(t, 0, 0, 10, 0), seg(t, 0, 5, 10, 5)},
		{
			seg(t, 1, 1, 9, 9), seg(t, 1, 9, 9, 1), seg(t, 0, 5, 10, 5),
			seg(t, 5, 0, 5, 10), seg(t, 2, 2, 8, 3),
		},
	}
	for i, segs := range cases {
		sweep, err := FindSweep(segs)
		require.NoError(t, err)
		brute, err := FindBruteForce(segs)
		require.NoError(t, err)
		require.Equalf(t, len(brute), len(sweep), "case %d: differing M count", i)
		for j := range brute {
			assert.Truef(t, brute[j].P.Eq(sweep[j].P), "case %d point %d", i, j)
			assert.ElementsMatchf(t, brute[j].Entries, sweep[j].Entries, "case %d point %d", i, j)
		}
	}
}
