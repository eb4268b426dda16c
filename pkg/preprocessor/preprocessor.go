package preprocessor

import (
	"github.com/lintang-b-s/minard/pkg/config"
	da "github.com/lintang-b-s/minard/pkg/datastructure"
	"github.com/lintang-b-s/minard/pkg/util"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// Domain is a closed axis range.
type Domain struct {
	Min float64
	Max float64
}

func newDomain(vals []float64, pad float64) Domain {
	return Domain{Min: floats.Min(vals) - pad, Max: floats.Max(vals) + pad}
}

// Layers is everything the chart assembler draws, already filtered, labeled and colored.
type Layers struct {
	Trail          []da.TrailPoint
	Widths         WidthScale
	Cities         []da.CityPoint
	SurvivorLabels []da.LabelCandidate
	Temperatures   []da.TemperatureRecord
	SurvivorGuides []da.GuideLine
	TempGuides     []da.GuideLine
	Legend         []da.LegendEntry

	Longitude   Domain
	Latitude    Domain
	Temperature Domain
}

type Preprocessor struct {
	campaign *da.Campaign
	cfg      config.Config
	log      *zap.Logger
}

func NewPreprocessor(campaign *da.Campaign, cfg config.Config, log *zap.Logger) *Preprocessor {
	return &Preprocessor{
		campaign: campaign,
		cfg:      cfg,
		log:      log,
	}
}

// PreProcessing runs every transformation once, in order. Any error aborts the whole run.
func (p *Preprocessor) PreProcessing() (*Layers, error) {
	c := p.campaign
	switch {
	case len(c.Trail) == 0:
		return nil, util.WrapErrorf(nil, util.ErrEmptyInput, "trail layer needs at least one point")
	case len(c.Cities) == 0:
		return nil, util.WrapErrorf(nil, util.ErrEmptyInput, "city layer needs at least one city")
	case len(c.Temperatures) == 0:
		return nil, util.WrapErrorf(nil, util.ErrEmptyInput, "temperature layer needs at least one reading")
	}

	p.log.Info("Preparing trail...", zap.Int("points", len(c.Trail)))
	trail := DuplicateAtDirectionChange(SortTrail(c.Trail))
	trail, err := AssignColors(trail, p.cfg.Palette)
	if err != nil {
		return nil, err
	}
	p.log.Debug("Trail bridged at direction changes.", zap.Int("bridges", len(trail)-len(c.Trail)))

	candidates := SurvivorLabelCandidates(c.Trail, p.cfg.Labels)
	labels := FilterByDistance(candidates, p.cfg.Labels.MinDistance)
	p.log.Info("Survivor labels placed.", zap.Int("candidates", len(candidates)), zap.Int("kept", len(labels)))

	temps := TemperatureLabels(c.Temperatures, p.cfg.WrapWidth)

	legend, err := LegendEntries(p.cfg.Palette)
	if err != nil {
		return nil, err
	}

	lons := make([]float64, len(c.Trail))
	for i, tp := range c.Trail {
		lons[i] = tp.GetLon()
	}
	cityLats := make([]float64, len(c.Cities))
	for i, city := range c.Cities {
		cityLats[i] = city.Position.GetLat()
	}
	readings := make([]float64, len(temps))
	for i, tr := range temps {
		readings[i] = tr.Temperature
	}

	layers := &Layers{
		Trail:          trail,
		Widths:         NewWidthScale(trail, p.cfg.Trail),
		Cities:         c.Cities,
		SurvivorLabels: labels,
		Temperatures:   temps,
		Legend:         legend,
		Longitude:      newDomain(lons, 0),
		Latitude:       newDomain(cityLats, p.cfg.Guides.LatitudePadding),
		Temperature:    newDomain(readings, 0),
	}

	layers.SurvivorGuides, err = SurvivorGuides(temps, p.cfg.Guides.CityLatitudes, layers.Latitude.Min)
	if err != nil {
		return nil, err
	}
	layers.TempGuides = TemperatureGuides(temps, layers.Temperature.Max)

	p.log.Info("Preprocessing done.",
		zap.Int("trail_points", len(layers.Trail)),
		zap.Int("cities", len(layers.Cities)),
		zap.Int("temperatures", len(layers.Temperatures)),
		zap.Int("survivor_labels", len(layers.SurvivorLabels)),
		zap.Int("guides", len(layers.SurvivorGuides)+len(layers.TempGuides)))

	return layers, nil
}
