package preprocessor

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/minard/pkg/config"
	"github.com/lintang-b-s/minard/pkg/csvparser"
	da "github.com/lintang-b-s/minard/pkg/datastructure"
	"github.com/lintang-b-s/minard/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPreProcessingBundledDataset(t *testing.T) {
	campaign, err := csvparser.NewParser(zap.NewNop()).ParseFile("../../data/napoleon-russian-campaign.csv")
	require.NoError(t, err)

	layers, err := NewPreprocessor(campaign, config.Default(), zap.NewNop()).PreProcessing()
	require.NoError(t, err)

	// one bridge per division
	assert.Len(t, layers.Trail, 53)
	assert.Equal(t, da.Division(3), layers.Trail[0].Division)
	assert.Equal(t, da.Division(1), layers.Trail[len(layers.Trail)-1].Division)
	for _, tp := range layers.Trail {
		assert.NotEmpty(t, tp.Color)
	}

	assert.Len(t, layers.Cities, 20)
	assert.Len(t, layers.SurvivorLabels, 15)
	assert.Len(t, layers.Temperatures, 9)
	assert.Equal(t, []string{"-11°"}, layers.Temperatures[4].Label)
	assert.Equal(t, []string{"-30° 6", "Dec"}, layers.Temperatures[7].Label)
	assert.Len(t, layers.SurvivorGuides, 9)
	assert.Len(t, layers.TempGuides, 9)
	assert.Len(t, layers.Legend, 6)
	assert.Equal(t, da.LegendEntry{ColorCode: "#3aff12", Label: "Division 2 (Retreat)"}, layers.Legend[3])

	assert.Equal(t, Domain{Min: 24.0, Max: 37.7}, layers.Longitude)
	assert.InDelta(t, 52.65, layers.Latitude.Min, 1e-9)
	assert.InDelta(t, 57.05, layers.Latitude.Max, 1e-9)
	assert.Equal(t, Domain{Min: -30, Max: 0}, layers.Temperature)
	assert.Equal(t, 340000.0, layers.Widths.MaxSurvivors)
}

func TestPreProcessingErrors(t *testing.T) {
	trail := []da.TrailPoint{da.NewTrailPoint(24, 55, 10, da.ADVANCE, 1)}
	cities := []da.CityPoint{da.NewCityPoint(24, 55, "Kowno")}
	temps := []da.TemperatureRecord{da.NewTemperatureRecord(24, -9, 1, "", 0)}

	noGuides := config.Default()
	noGuides.Guides.CityLatitudes = nil

	testCases := []struct {
		name     string
		campaign *da.Campaign
		cfg      config.Config
		wantErr  error
	}{
		{name: "no trail", campaign: da.NewCampaign(nil, cities, temps), cfg: noGuides, wantErr: util.ErrEmptyInput},
		{name: "no cities", campaign: da.NewCampaign(trail, nil, temps), cfg: noGuides, wantErr: util.ErrEmptyInput},
		{name: "no temperatures", campaign: da.NewCampaign(trail, cities, nil), cfg: noGuides, wantErr: util.ErrEmptyInput},
		{
			name:     "bad division",
			campaign: da.NewCampaign([]da.TrailPoint{da.NewTrailPoint(24, 55, 10, da.ADVANCE, 7)}, cities, temps),
			cfg:      noGuides,
			wantErr:  util.ErrInvalidCategory,
		},
		{name: "guide table does not match", campaign: da.NewCampaign(trail, cities, temps), cfg: config.Default(),
			wantErr: util.ErrBadConfig},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPreprocessor(tt.campaign, tt.cfg, zap.NewNop()).PreProcessing()
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
