package preprocessor

import (
	"errors"
	"testing"

	da "github.com/lintang-b-s/minard/pkg/datastructure"
	"github.com/lintang-b-s/minard/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var guideTemps = []da.TemperatureRecord{
	da.NewTemperatureRecord(37.6, 0, 6, "Oct", 18),
	da.NewTemperatureRecord(36.0, 0, 6, "Oct", 24),
	da.NewTemperatureRecord(37.6, -3, 2, "Oct", 19),
	da.NewTemperatureRecord(36.0, 0, 6, "Oct", 24),
}

func TestSurvivorGuides(t *testing.T) {
	got, err := SurvivorGuides(guideTemps, []float64{55.65, 55.05}, 52.65)
	require.NoError(t, err)
	assert.Equal(t, []da.GuideLine{
		{Longitude: 37.6, From: 55.65, To: 52.65},
		{Longitude: 36.0, From: 55.05, To: 52.65},
	}, got)

	none, err := SurvivorGuides(guideTemps, nil, 52.65)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = SurvivorGuides(guideTemps, []float64{55.65}, 52.65)
	assert.True(t, errors.Is(err, util.ErrBadConfig))
}

func TestTemperatureGuides(t *testing.T) {
	assert.Equal(t, []da.GuideLine{
		{Longitude: 37.6, From: 0, To: 0},
		{Longitude: 36.0, From: 0, To: 0},
		{Longitude: 37.6, From: -3, To: 0},
	}, TemperatureGuides(guideTemps, 0))
}
