package chart

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/lintang-b-s/minard/pkg/preprocessor"
)

// legendChart lists the palette as colored squares, one row per entry, centered under the plots.
func (a *Assembler) legendChart(layers *preprocessor.Layers, m *Manifest) *charts.Scatter {
	rows := len(layers.Legend)
	left := (a.cfg.Layout.PlotWidth - a.cfg.Layout.LegendWidth) / 2

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  px(a.cfg.Layout.PlotWidth),
			Height: px(60 + 25*rows),
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Legend",
			Left:  "center",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithGridOpts(opts.Grid{
			Left:  px(left),
			Width: px(a.cfg.Layout.LegendWidth),
			Top:   px(50),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Show: opts.Bool(false),
			Min:  0,
			Max:  1,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Show: opts.Bool(false),
			Min:  0,
			Max:  rows + 1,
		}),
	)

	for i, entry := range layers.Legend {
		scatter.AddSeries(entry.Label, []opts.ScatterData{{
			Name:       entry.Label,
			Value:      []float64{0.05, float64(rows - i)},
			Symbol:     "rect",
			SymbolSize: 14,
		}},
			charts.WithItemStyleOpts(opts.ItemStyle{Color: entry.ColorCode}),
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Position:  "right",
				Formatter: "{b}",
				Color:     entry.ColorCode,
			}),
		)
		m.LegendEntries++
	}
	return scatter
}
