package geo

import (
	"github.com/golang/geo/r2"
)

// Coordinate is a position in plain (longitude, latitude) chart space.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

// Shift returns a copy moved north by dLat (south when negative).
func (c Coordinate) Shift(dLat float64) Coordinate {
	return NewCoordinate(c.Lat+dLat, c.Lon)
}

// Point maps the coordinate onto the plane, x = longitude, y = latitude.
func (c Coordinate) Point() r2.Point {
	return r2.Point{X: c.Lon, Y: c.Lat}
}

// EuclideanDistance is the straight-line distance in degree units. Labels are placed on a flat chart,
// so no projection or earth curvature is involved.
func EuclideanDistance(a, b Coordinate) float64 {
	return a.Point().Sub(b.Point()).Norm()
}

// BoundingBox returns the square of half-width radius centered on c, as [lon, lat] corners.
func BoundingBox(c Coordinate, radius float64) (min, max [2]float64) {
	rect := r2.RectFromCenterSize(c.Point(), r2.Point{X: 2 * radius, Y: 2 * radius})
	lo, hi := rect.Lo(), rect.Hi()
	return [2]float64{lo.X, lo.Y}, [2]float64{hi.X, hi.Y}
}
