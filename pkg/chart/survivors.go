package chart

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	da "github.com/lintang-b-s/minard/pkg/datastructure"
	"github.com/lintang-b-s/minard/pkg/preprocessor"
)

type trailGroup struct {
	division  da.Division
	direction da.Direction
}

func (a *Assembler) survivorChart(layers *preprocessor.Layers, m *Manifest) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: a.cfg.Title,
			Width:     px(a.cfg.Layout.PlotWidth),
			Height:    px(a.cfg.Layout.PlotHeight),
		}),
		charts.WithTitleOpts(opts.Title{
			Title: a.cfg.Title,
			Left:  "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Show: opts.Bool(false),
			Min:  layers.Longitude.Min,
			Max:  layers.Longitude.Max,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Show: opts.Bool(false),
			Min:  layers.Latitude.Min,
			Max:  layers.Latitude.Max,
		}),
	)

	for _, g := range layers.SurvivorGuides {
		addGuide(line, g)
		m.Guides++
	}

	// trail groups in order of first appearance, each drawn segment by segment so the width can follow
	// the survivor count
	groups := make(map[trailGroup][]da.TrailPoint)
	var order []trailGroup
	for _, tp := range layers.Trail {
		key := trailGroup{tp.Division, tp.Direction}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], tp)
	}

	positions := charts.NewScatter()
	for _, key := range order {
		points := groups[key]
		name := fmt.Sprintf("Division %d (%s)", key.division, key.direction)
		for i := 0; i+1 < len(points); i++ {
			from, to := points[i], points[i+1]
			width := (layers.Widths.Width(from.Survivors) + layers.Widths.Width(to.Survivors)) / 2
			line.AddSeries(name, []opts.LineData{
				{Value: []float64{from.GetLon(), from.GetLat()}},
				{Value: []float64{to.GetLon(), to.GetLat()}},
			},
				charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
				charts.WithLineStyleOpts(opts.LineStyle{Color: from.Color, Width: float32(width)}),
			)
			m.TrailSegments++
		}

		data := make([]opts.ScatterData, 0, len(points))
		for _, tp := range points {
			data = append(data, opts.ScatterData{
				Name: fmt.Sprintf("%s: %d survivors (%.1f, %.1f)",
					tp.Direction, tp.Survivors, tp.GetLon(), tp.GetLat()),
				Value:      []float64{tp.GetLon(), tp.GetLat()},
				SymbolSize: 4,
			})
			m.TrailPoints++
		}
		positions.AddSeries(name, data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: points[0].Color}),
		)
	}

	cities := charts.NewScatter()
	cityData := make([]opts.ScatterData, 0, len(layers.Cities))
	for _, c := range layers.Cities {
		cityData = append(cityData, opts.ScatterData{
			Name:       c.Name,
			Value:      []float64{c.Position.GetLon(), c.Position.GetLat()},
			SymbolSize: 7,
		})
		m.Cities++
	}
	cities.AddSeries("Cities", cityData,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: INK_COLOR}),
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Position:  "bottom",
			Formatter: "{b}",
			Color:     INK_COLOR,
		}),
	)

	labels := charts.NewScatter()
	labelData := make([]opts.ScatterData, 0, len(layers.SurvivorLabels))
	for _, l := range layers.SurvivorLabels {
		labelData = append(labelData, opts.ScatterData{
			Name:       l.Text,
			Value:      []float64{l.Position.GetLon(), l.Position.GetLat()},
			Symbol:     "none",
			SymbolSize: 0,
		})
		m.SurvivorLabels++
	}
	labels.AddSeries("Survivors", labelData,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Position:  "inside",
			Formatter: "{b}",
			Color:     INK_COLOR,
		}),
	)

	line.Overlap(positions, cities, labels)
	return line
}

// addGuide draws g as a thin dashed vertical rule.
func addGuide(line *charts.Line, g da.GuideLine) {
	line.AddSeries("Guide", []opts.LineData{
		{Value: []float64{g.Longitude, g.From}},
		{Value: []float64{g.Longitude, g.To}},
	},
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: GUIDE_COLOR, Width: 1, Type: "dashed"}),
	)
}
