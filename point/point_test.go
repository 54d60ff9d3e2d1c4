package point

import (
	"encoding/json"
	"testing"

	"github.com/planarkit/core/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndAccessors(t *testing.T) {
	p := New(3, 4)
	assert.Equal(t, 3.0, p.X())
	assert.Equal(t, 4.0, p.Y())
	x, y := p.Coordinates()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

func TestTranslateNegate(t *testing.T) {
	p := New(1, 2)
	q := New(-1, 3)
	assert.Equal(t, New(0, 5), p.Translate(q))
	assert.Equal(t, New(-1, -2), p.Negate())
}

func TestCrossAndDotProduct(t *testing.T) {
	a := New(1, 0)
	b := New(0, 1)
	assert.Equal(t, 1.0, a.CrossProduct(b))
	assert.Equal(t, -1.0, b.CrossProduct(a))
	assert.Equal(t, 0.0, a.DotProduct(b))
	assert.Equal(t, 1.0, a.DotProduct(a))
}

func TestDistance(t *testing.T) {
	a := New(0, 0)
	b := New(3, 4)
	assert.Equal(t, 25.0, a.DistanceSquaredTo(b))
	assert.Equal(t, 5.0, a.DistanceTo(b))
}

func TestEq(t *testing.T) {
	a := New(1, 1)
	b := New(1.0000001, 1.0000001)
	assert.False(t, a.Eq(b))
	assert.True(t, a.Eq(b, options.WithEpsilon(1e-6)))
	assert.True(t, a.Eq(New(1, 1)))
}

func TestCompare(t *testing.T) {
	tests := map[string]struct {
		a, b Point
		want int
	}{
		"lower y first":        {New(5, 0), New(0, 1), -1},
		"equal y, lower x":     {New(0, 1), New(5, 1), -1},
		"equal y, higher x":    {New(5, 1), New(0, 1), 1},
		"equal":                {New(1, 1), New(1, 1), 0},
		"higher y, any x last": {New(0, 2), New(5, 1), 1},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Compare(tc.a, tc.b))
		})
	}
}

func TestCompareEpsilon(t *testing.T) {
	a := New(1, 1)
	b := New(1.0000001, 1)
	assert.NotEqual(t, 0, Compare(a, b))
	assert.Equal(t, 0, CompareEpsilon(a, b, 1e-6))
}

func TestLess(t *testing.T) {
	assert.True(t, Less(New(0, 0), New(0, 1)))
	assert.False(t, Less(New(0, 1), New(0, 0)))
	assert.False(t, Less(New(0, 0), New(0, 0)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1,2)", New(1, 2).String())
	assert.Equal(t, "(1.5,2.25)", New(1.5, 2.25).String())
}

func TestJSONRoundTrip(t *testing.T) {
	p := New(1.5, -2.25)
	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1.5,"y":-2.25}`, string(b))

	var got Point
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, p.Eq(got))
}
