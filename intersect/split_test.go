package intersect

import (
	"testing"

	"github.com/planarkit/core/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBasic(t *testing.T) {
	segs := []segment.Segment{seg(t, 0, 0, 10, 0)}
	crossings := []M{{
		P:       seg(t, 5, 0, 5, 1).Start(),
		Entries: []Entry{{Index: 0, Location: segment.BETWEEN}},
	}}
	out, err := Split(segs, crossings)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, out[0].Eq(seg(t, 0, 0, 5, 0)))
	assert.True(t, out[1].Eq(seg(t, 5, 0, 10, 0)))
}

func TestSplitUnaffectedSegmentUnchanged(t *testing.T) {
	segs := []segment.Segment{seg(t, 0, 0, 10, 0), seg(t, 0, 5, 10, 5)}
	out, err := Split(segs, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, out[0].Eq(segs[0]))
	assert.True(t, out[1].Eq(segs[1]))
}

func TestSplitRejectsBadLocationTag(t *testing.T) {
	segs := []segment.Segment{seg(t, 0, 0, 10, 0)}
	crossings := []M{{
		P:       seg(t, 5, 0, 5, 1).Start(),
		Entries: []Entry{{Index: 0, Location: segment.AFTER}},
	}}
	_, err := Split(segs, crossings)
	assert.Error(t, err)
}

func TestSplitConservation(t *testing.T) {
	segs := []segment.Segment{
		seg(t, 0, 0, 10, 10),
		seg(t, 0, 10, 10, 0),
		seg(t, 5, 0, 5, 10),
	}
	crossings, err := FindSweep(segs)
	require.NoError(t, err)
	out, err := Split(segs, crossings)
	require.NoError(t, err)

	lengths := make(map[int]float64, len(segs))
	for _, s := range out {
		idx := -1
		for i, orig := range segs {
			if orig.ContainsPoint(s.Start()) && orig.ContainsPoint(s.End()) {
				idx = i
				break
			}
		}
		require.NotEqual(t, -1, idx, "split piece %s does not belong to any original segment", s)
		lengths[idx] += s.Start().DistanceTo(s.End())
	}
	for i, orig := range segs {
		want := orig.Start().DistanceTo(orig.End())
		assert.InDelta(t, want, lengths[i], 1e-9, "segment %d length not conserved", i)
	}
}

func TestSplitAfterFindLeavesOnlyEndpointIntersections(t *testing.T) {
	segs := []segment.Segment{
		seg(t, 0, 0, 10, 10),
		seg(t, 0, 10, 10, 0),
	}
	crossings, err := FindSweep(segs)
	require.NoError(t, err)
	out, err := Split(segs, crossings)
	require.NoError(t, err)
	require.Len(t, out, 4)

	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			isect := segment.Intersect(out[i], out[j])
			if !isect.Exists() {
				continue
			}
			assert.Contains(t, []segment.Location{segment.START, segment.END}, isect.First)
			assert.Contains(t, []segment.Location{segment.START, segment.END}, isect.Second)
		}
	}
}
