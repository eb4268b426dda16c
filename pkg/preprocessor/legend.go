package preprocessor

import (
	"fmt"

	"github.com/lintang-b-s/minard/pkg/config"
	da "github.com/lintang-b-s/minard/pkg/datastructure"
)

// LegendEntries lists the six palette colors, advance before retreat, division 1 first.
func LegendEntries(palette config.Palette) ([]da.LegendEntry, error) {
	entries := make([]da.LegendEntry, 0, 2*int(da.MAX_DIVISION))
	for div := da.MIN_DIVISION; div <= da.MAX_DIVISION; div++ {
		for _, dir := range []da.Direction{da.ADVANCE, da.RETREAT} {
			color, err := palette.ColorFor(div, dir)
			if err != nil {
				return nil, err
			}
			entries = append(entries, da.LegendEntry{
				ColorCode: color,
				Label:     fmt.Sprintf("Division %d (%s)", div, dir),
			})
		}
	}
	return entries, nil
}
