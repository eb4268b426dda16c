package datastructure

import (
	"github.com/lintang-b-s/minard/pkg/geo"
)

// TrailPoint is one troop position. Order in a slice is significant, consecutive points of the same
// division and direction are connected into the trail.
type TrailPoint struct {
	Position  geo.Coordinate
	Survivors int
	Direction Direction
	Division  Division

	// Color is empty until the palette is applied.
	Color string
	// Bridge marks a copy inserted at an advance to retreat change.
	Bridge bool
}

func NewTrailPoint(lon, lat float64, survivors int, dir Direction, div Division) TrailPoint {
	return TrailPoint{
		Position:  geo.NewCoordinate(lat, lon),
		Survivors: survivors,
		Direction: dir,
		Division:  div,
	}
}

func (tp TrailPoint) GetLon() float64 {
	return tp.Position.Lon
}

func (tp TrailPoint) GetLat() float64 {
	return tp.Position.Lat
}

// WithDirection returns a copy re-tagged with dir.
func (tp TrailPoint) WithDirection(dir Direction) TrailPoint {
	tp.Direction = dir
	return tp
}

// WithColor returns a copy carrying color.
func (tp TrailPoint) WithColor(color string) TrailPoint {
	tp.Color = color
	return tp
}
