package preprocessor

import (
	"strconv"

	"github.com/lintang-b-s/minard/pkg/config"
	da "github.com/lintang-b-s/minard/pkg/datastructure"
	"github.com/lintang-b-s/minard/pkg/spatialindex"
)

// SurvivorLabelCandidates takes every stride-th point in table order and moves it off the trail line,
// up for advancing points and down for retreating ones.
func SurvivorLabelCandidates(points []da.TrailPoint, labels config.Labels) []da.LabelCandidate {
	candidates := make([]da.LabelCandidate, 0, len(points)/labels.Stride+1)
	for i := 0; i < len(points); i += labels.Stride {
		tp := points[i]
		offset := labels.AdvanceOffset
		if tp.Direction == da.RETREAT {
			offset = labels.RetreatOffset
		}
		candidates = append(candidates, da.NewLabelCandidate(tp.Position.Shift(offset),
			strconv.Itoa(tp.Survivors), tp.Direction))
	}
	return candidates
}

// FilterByDistance keeps a candidate only if no previously kept candidate is closer than minDistance.
// Greedy and order dependent, the first candidate of a crowded spot wins.
func FilterByDistance(candidates []da.LabelCandidate, minDistance float64) []da.LabelCandidate {
	accepted := make([]da.LabelCandidate, 0, len(candidates))
	index := spatialindex.NewLabelIndex()
	for _, c := range candidates {
		if index.AnyWithin(c.Position, minDistance) {
			continue
		}
		index.Insert(c.Position)
		accepted = append(accepted, c)
	}
	return accepted
}
