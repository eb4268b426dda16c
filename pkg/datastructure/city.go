package datastructure

import "github.com/lintang-b-s/minard/pkg/geo"

type CityPoint struct {
	Position geo.Coordinate
	Name     string
}

func NewCityPoint(lon, lat float64, name string) CityPoint {
	return CityPoint{
		Position: geo.NewCoordinate(lat, lon),
		Name:     name,
	}
}
