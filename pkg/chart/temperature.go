package chart

import (
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/lintang-b-s/minard/pkg/preprocessor"
	"go.uber.org/zap"
)

func (a *Assembler) temperatureChart(layers *preprocessor.Layers, m *Manifest) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  px(a.cfg.Layout.PlotWidth),
			Height: px(a.cfg.Layout.TemperatureHeight),
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
			Name:      temperatureAxisName,
			Type:      "value",
			Min:       layers.Temperature.Min,
			Max:       layers.Temperature.Max,
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)

	for _, g := range layers.TempGuides {
		addGuide(line, g)
		m.Guides++
	}

	data := make([]opts.LineData, 0, len(layers.Temperatures))
	for _, tr := range layers.Temperatures {
		data = append(data, opts.LineData{
			Name:  strings.Join(tr.Label, "\n"),
			Value: []float64{tr.Longitude, tr.Temperature},
		})
		m.Temperatures++
	}
	line.AddSeries("Temperature", data,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: INK_COLOR, Width: 1}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: INK_COLOR}),
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Position:  "bottom",
			Formatter: "{b}",
			Color:     INK_COLOR,
		}),
	)

	a.log.Debug("Temperature chart built.", zap.Float64("min", layers.Temperature.Min),
		zap.Float64("max", layers.Temperature.Max))
	return line
}
