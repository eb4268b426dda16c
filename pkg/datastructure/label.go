package datastructure

import "github.com/lintang-b-s/minard/pkg/geo"

// LabelCandidate is a survivor-count annotation placed next to the trail.
type LabelCandidate struct {
	Position  geo.Coordinate
	Text      string
	Direction Direction
}

func NewLabelCandidate(pos geo.Coordinate, text string, dir Direction) LabelCandidate {
	return LabelCandidate{
		Position:  pos,
		Text:      text,
		Direction: dir,
	}
}

// LegendEntry pairs a palette color with its caption.
type LegendEntry struct {
	ColorCode string
	Label     string
}

// GuideLine is a vertical dashed rule at Longitude spanning [From, To] on its chart's y axis.
type GuideLine struct {
	Longitude float64
	From      float64
	To        float64
}
