package spatialindex

import (
	"github.com/lintang-b-s/minard/pkg/geo"
	"github.com/tidwall/rtree"
)

// LabelIndex keeps the positions of labels accepted so far and answers proximity queries over them.
type LabelIndex struct {
	tr *rtree.RTreeG[geo.Coordinate]
}

func NewLabelIndex() *LabelIndex {
	var tr rtree.RTreeG[geo.Coordinate]
	return &LabelIndex{
		tr: &tr,
	}
}

// Insert adds an accepted label position as a point entry.
func (li *LabelIndex) Insert(pos geo.Coordinate) {
	p := [2]float64{pos.Lon, pos.Lat}
	li.tr.Insert(p, p, pos)
}

func (li *LabelIndex) Len() int {
	return li.tr.Len()
}

// AnyWithin reports whether some stored position is strictly closer than radius to q.
// The box search only narrows candidates, the Euclidean check decides.
func (li *LabelIndex) AnyWithin(q geo.Coordinate, radius float64) bool {
	min, max := geo.BoundingBox(q, radius)

	found := false
	li.tr.Search(min, max,
		func(min, max [2]float64, data geo.Coordinate) bool {
			if geo.EuclideanDistance(q, data) < radius {
				found = true
				return false
			}
			return true
		})
	return found
}
