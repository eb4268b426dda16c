package preprocessor

import (
	da "github.com/lintang-b-s/minard/pkg/datastructure"
	"github.com/lintang-b-s/minard/pkg/util"
)

// SurvivorGuides pairs each distinct temperature longitude, in table order, with the hand-placed
// latitude at the same position and drops a rule from there to bottom.
// The latitudes are tied to the dataset, an empty list means no guides.
func SurvivorGuides(temps []da.TemperatureRecord, latitudes []float64, bottom float64) ([]da.GuideLine, error) {
	if len(latitudes) == 0 {
		return nil, nil
	}

	seen := make(map[float64]struct{}, len(temps))
	lons := make([]float64, 0, len(temps))
	for _, tr := range temps {
		if _, ok := seen[tr.Longitude]; ok {
			continue
		}
		seen[tr.Longitude] = struct{}{}
		lons = append(lons, tr.Longitude)
	}

	if len(lons) != len(latitudes) {
		return nil, util.WrapErrorf(nil, util.ErrBadConfig,
			"guides.city_latitudes has %d entries but the sheet has %d distinct temperature longitudes",
			len(latitudes), len(lons))
	}

	guides := make([]da.GuideLine, len(lons))
	for i, lon := range lons {
		guides[i] = da.GuideLine{Longitude: lon, From: latitudes[i], To: bottom}
	}
	return guides, nil
}

// TemperatureGuides draws one rule per distinct (longitude, temperature) pair, from the reading up to top.
func TemperatureGuides(temps []da.TemperatureRecord, top float64) []da.GuideLine {
	type key struct{ lon, temp float64 }
	seen := make(map[key]struct{}, len(temps))
	guides := make([]da.GuideLine, 0, len(temps))
	for _, tr := range temps {
		k := key{tr.Longitude, tr.Temperature}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		guides = append(guides, da.GuideLine{Longitude: tr.Longitude, From: tr.Temperature, To: top})
	}
	return guides
}
