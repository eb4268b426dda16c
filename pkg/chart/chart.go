package chart

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/lintang-b-s/minard/pkg/config"
	"github.com/lintang-b-s/minard/pkg/preprocessor"
	"go.uber.org/zap"
)

const (
	GUIDE_COLOR = "red"
	INK_COLOR   = "#000000"

	temperatureAxisName = "Temperature during retreat (Réaumur)"
)

// Manifest counts what was drawn, one entry per data item handed to the charts.
type Manifest struct {
	TrailPoints    int
	TrailSegments  int
	Cities         int
	SurvivorLabels int
	Temperatures   int
	Guides         int
	LegendEntries  int
}

// Assembler stacks the survivor map, the temperature chart and the legend into one page.
type Assembler struct {
	cfg config.Config
	log *zap.Logger
}

func NewAssembler(cfg config.Config, log *zap.Logger) *Assembler {
	return &Assembler{
		cfg: cfg,
		log: log,
	}
}

// Render writes the complete HTML document for layers to w.
func (a *Assembler) Render(w io.Writer, layers *preprocessor.Layers) (Manifest, error) {
	var m Manifest

	survivors := a.survivorChart(layers, &m)
	temperature := a.temperatureChart(layers, &m)
	legend := a.legendChart(layers, &m)

	page := components.NewPage()
	page.PageTitle = a.cfg.Title
	page.SetLayout(components.PageCenterLayout)
	page.AddCharts(survivors, temperature, legend)

	if err := page.Render(w); err != nil {
		return Manifest{}, fmt.Errorf("render page: %w", err)
	}

	a.log.Info("Chart rendered.",
		zap.Int("trail_points", m.TrailPoints),
		zap.Int("trail_segments", m.TrailSegments),
		zap.Int("cities", m.Cities),
		zap.Int("survivor_labels", m.SurvivorLabels),
		zap.Int("temperatures", m.Temperatures),
		zap.Int("guides", m.Guides),
		zap.Int("legend_entries", m.LegendEntries))
	return m, nil
}

// WriteFile renders into path, replacing any existing file.
func (a *Assembler) WriteFile(path string, layers *preprocessor.Layers) (Manifest, error) {
	f, err := os.Create(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	m, err := a.Render(bw, layers)
	if err != nil {
		return Manifest{}, err
	}
	if err := bw.Flush(); err != nil {
		return Manifest{}, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return Manifest{}, fmt.Errorf("close %s: %w", path, err)
	}

	a.log.Info("Chart written.", zap.String("path", path))
	return m, nil
}

func px(n int) string {
	return fmt.Sprintf("%dpx", n)
}
