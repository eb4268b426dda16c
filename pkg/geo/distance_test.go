package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEuclideanDistance(t *testing.T) {
	testCases := []struct {
		name string
		a, b Coordinate
		want float64
	}{
		{name: "same point", a: NewCoordinate(55, 24), b: NewCoordinate(55, 24), want: 0},
		{name: "pythagorean", a: NewCoordinate(0, 0), b: NewCoordinate(4, 3), want: 5},
		{name: "latitude only", a: NewCoordinate(0, 0), b: NewCoordinate(0.1, 0), want: 0.1},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EuclideanDistance(tt.a, tt.b), 1e-12)
			assert.InDelta(t, tt.want, EuclideanDistance(tt.b, tt.a), 1e-12)
		})
	}
}

func TestBoundingBox(t *testing.T) {
	min, max := BoundingBox(NewCoordinate(55, 24), 0.5)
	assert.InDelta(t, 23.5, min[0], 1e-12)
	assert.InDelta(t, 54.5, min[1], 1e-12)
	assert.InDelta(t, 24.5, max[0], 1e-12)
	assert.InDelta(t, 55.5, max[1], 1e-12)
}

func TestShift(t *testing.T) {
	c := NewCoordinate(54.9, 24.0).Shift(-0.25)
	assert.InDelta(t, 54.65, c.GetLat(), 1e-12)
	assert.Equal(t, 24.0, c.GetLon())
}
