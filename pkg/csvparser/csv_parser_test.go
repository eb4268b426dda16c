package csvparser

import (
	"errors"
	"strings"
	"testing"

	"github.com/lintang-b-s/minard/pkg/datastructure"
	"github.com/lintang-b-s/minard/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const header = "LONC,LATC,CITY,LONT,TEMP,DAYS,MON,DAY,LONP,LATP,SURV,DIR,DIV\n"

func TestParseSplitsTables(t *testing.T) {
	sheet := header +
		"24.0,55.0,Kowno,37.6,0,6,Oct,18.0,24.0,54.9,340000,A,1\n" +
		"25.3,54.7,Wilna,29.2,-11,10,,,37.7,55.7,100000,r,1\n" +
		",,,,,,,,24.6,55.8,6000,R,3\n" +
		"26.4,,Smorgoni,,,,,,,,,,\n"

	campaign, err := NewParser(zap.NewNop()).Parse(strings.NewReader(sheet))
	require.NoError(t, err)

	require.Len(t, campaign.Trail, 3)
	assert.Equal(t, datastructure.NewTrailPoint(24.0, 54.9, 340000, datastructure.ADVANCE, 1), campaign.Trail[0])
	assert.Equal(t, datastructure.RETREAT, campaign.Trail[1].Direction)
	assert.Equal(t, datastructure.Division(3), campaign.Trail[2].Division)

	// the Smorgoni row has no latitude, so it is dropped as a city
	require.Len(t, campaign.Cities, 2)
	assert.Equal(t, "Wilna", campaign.Cities[1].Name)

	require.Len(t, campaign.Temperatures, 2)
	assert.Equal(t, datastructure.NewTemperatureRecord(37.6, 0, 6, "Oct", 18), campaign.Temperatures[0])
	assert.Equal(t, datastructure.NewTemperatureRecord(29.2, -11, 10, "", 0), campaign.Temperatures[1])
	assert.False(t, campaign.Temperatures[1].HasDate())
}

func TestParseSchemaErrors(t *testing.T) {
	testCases := []struct {
		name    string
		sheet   string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing columns",
			sheet:   "LONC,LATC,CITY,LONP,LATP,SURV,DIR\n1,2,x,1,2,3,A\n",
			wantErr: util.ErrSchema,
			wantMsg: "missing columns LONT, TEMP, DAYS, MON, DAY, DIV",
		},
		{
			name:    "unknown direction",
			sheet:   header + ",,,,,,,,24.0,54.9,340000,X,1\n",
			wantErr: util.ErrSchema,
			wantMsg: "line 2",
		},
		{
			name:    "unknown division",
			sheet:   header + ",,,,,,,,24.0,54.9,340000,A,4\n",
			wantErr: util.ErrSchema,
			wantMsg: "DIV must be one of [1 2 3]",
		},
		{
			name:    "partial trail row",
			sheet:   header + ",,,,,,,,24.0,,340000,A,1\n",
			wantErr: util.ErrSchema,
			wantMsg: "LATP",
		},
		{
			name:    "temperature without reading",
			sheet:   header + ",,,37.6,,6,Oct,18,,,,,\n",
			wantErr: util.ErrSchema,
			wantMsg: "TEMP",
		},
		{
			name:    "ragged row",
			sheet:   header + "1,2,3\n",
			wantErr: util.ErrSchema,
		},
		{
			name:    "header only",
			sheet:   header,
			wantErr: util.ErrEmptyInput,
		},
		{
			name:    "empty file",
			sheet:   "",
			wantErr: util.ErrEmptyInput,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser(zap.NewNop()).Parse(strings.NewReader(tt.sheet))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseHeaderIsCaseInsensitive(t *testing.T) {
	sheet := strings.ToLower(header) + ",,,,,,,,24.0,54.9,340000,A,1\n"
	campaign, err := NewParser(zap.NewNop()).Parse(strings.NewReader(sheet))
	require.NoError(t, err)
	assert.Len(t, campaign.Trail, 1)
}

func TestParseFileBundledDataset(t *testing.T) {
	campaign, err := NewParser(zap.NewNop()).ParseFile("../../data/napoleon-russian-campaign.csv")
	require.NoError(t, err)

	assert.Len(t, campaign.Trail, 50)
	assert.Len(t, campaign.Cities, 20)
	assert.Len(t, campaign.Temperatures, 9)
	assert.Equal(t, "Moscou", campaign.Cities[17].Name)
}
