package preprocessor

import (
	"sort"

	"github.com/lintang-b-s/minard/pkg/config"
	da "github.com/lintang-b-s/minard/pkg/datastructure"
	"github.com/lintang-b-s/minard/pkg/util"
	"gonum.org/v1/gonum/floats"
)

// SortTrail orders points by division descending, then survivors descending. Ties keep table order.
func SortTrail(points []da.TrailPoint) []da.TrailPoint {
	sorted := make([]da.TrailPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Division != sorted[j].Division {
			return sorted[i].Division > sorted[j].Division
		}
		return sorted[i].Survivors > sorted[j].Survivors
	})
	return sorted
}

/*
DuplicateAtDirectionChange. trail lines are grouped by (division, direction), so without help the
advance line stops one point short of where the retreat line starts. whenever an advance point is
directly followed by a retreat point, a copy of the retreat point tagged as advance is inserted
between them. originals are kept unchanged and in order, the last point has nothing to look ahead to.
*/
func DuplicateAtDirectionChange(points []da.TrailPoint) []da.TrailPoint {
	connected := make([]da.TrailPoint, 0, len(points)+int(da.MAX_DIVISION))
	for i, cur := range points {
		connected = append(connected, cur)
		if i+1 >= len(points) {
			break
		}
		next := points[i+1]
		if cur.Direction == da.ADVANCE && next.Direction == da.RETREAT {
			bridge := next.WithDirection(da.ADVANCE)
			bridge.Bridge = true
			connected = append(connected, bridge)
		}
	}
	return connected
}

// AssignColors returns copies of points carrying their palette color.
func AssignColors(points []da.TrailPoint, palette config.Palette) ([]da.TrailPoint, error) {
	colored := make([]da.TrailPoint, len(points))
	for i, tp := range points {
		color, err := palette.ColorFor(tp.Division, tp.Direction)
		if err != nil {
			return nil, err
		}
		colored[i] = tp.WithColor(color)
	}
	return colored, nil
}

// WidthScale maps survivor counts linearly from [0, MaxSurvivors] onto [MinWidth, MaxWidth].
type WidthScale struct {
	MaxSurvivors float64
	MinWidth     float64
	MaxWidth     float64
}

func NewWidthScale(points []da.TrailPoint, trail config.Trail) WidthScale {
	ws := WidthScale{MinWidth: trail.MinWidth, MaxWidth: trail.MaxWidth}
	if len(points) == 0 {
		return ws
	}
	survivors := make([]float64, len(points))
	for i, tp := range points {
		survivors[i] = float64(tp.Survivors)
	}
	ws.MaxSurvivors = floats.Max(survivors)
	return ws
}

func (ws WidthScale) Width(survivors int) float64 {
	if ws.MaxSurvivors <= 0 {
		return ws.MinWidth
	}
	return util.RoundFloat(ws.MinWidth+(ws.MaxWidth-ws.MinWidth)*float64(survivors)/ws.MaxSurvivors, 2)
}
