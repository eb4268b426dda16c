package csvparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/minard/pkg/datastructure"
	"github.com/lintang-b-s/minard/pkg/util"
	"go.uber.org/zap"
)

// column names of the campaign sheet
const (
	COL_CITY_LON  = "LONC"
	COL_CITY_LAT  = "LATC"
	COL_CITY      = "CITY"
	COL_TEMP_LON  = "LONT"
	COL_TEMP      = "TEMP"
	COL_DAYS      = "DAYS"
	COL_MONTH     = "MON"
	COL_DAY       = "DAY"
	COL_TRAIL_LON = "LONP"
	COL_TRAIL_LAT = "LATP"
	COL_SURVIVORS = "SURV"
	COL_DIRECTION = "DIR"
	COL_DIVISION  = "DIV"
)

var requiredColumns = []string{
	COL_CITY_LON, COL_CITY_LAT, COL_CITY,
	COL_TEMP_LON, COL_TEMP, COL_DAYS, COL_MONTH, COL_DAY,
	COL_TRAIL_LON, COL_TRAIL_LAT, COL_SURVIVORS, COL_DIRECTION, COL_DIVISION,
}

var (
	trailColumns       = []string{COL_TRAIL_LON, COL_TRAIL_LAT, COL_SURVIVORS, COL_DIRECTION, COL_DIVISION}
	cityColumns        = []string{COL_CITY_LON, COL_CITY_LAT, COL_CITY}
	temperatureColumns = []string{COL_TEMP_LON, COL_TEMP, COL_DAYS, COL_MONTH, COL_DAY}
)

type trailRow struct {
	Longitude float64 `csv:"LONP" validate:"gte=-180,lte=180"`
	Latitude  float64 `csv:"LATP" validate:"gte=-90,lte=90"`
	Survivors int     `csv:"SURV" validate:"gte=0"`
	Direction string  `csv:"DIR" validate:"required,oneof=A R"`
	Division  int     `csv:"DIV" validate:"required,oneof=1 2 3"`
}

type cityRow struct {
	Longitude float64 `csv:"LONC" validate:"gte=-180,lte=180"`
	Latitude  float64 `csv:"LATC" validate:"gte=-90,lte=90"`
	Name      string  `csv:"CITY" validate:"required"`
}

type temperatureRow struct {
	Longitude   float64 `csv:"LONT" validate:"gte=-180,lte=180"`
	Temperature float64 `csv:"TEMP" validate:"gte=-100,lte=100"`
	Days        int     `csv:"DAYS" validate:"gte=0"`
	Month       string  `csv:"MON" validate:"omitempty,alpha"`
	Day         int     `csv:"DAY" validate:"gte=0,lte=31"`
}

// Parser reads the campaign sheet exported as CSV.
type Parser struct {
	log      *zap.Logger
	validate *validator.Validate
	trans    ut.Translator
}

func NewParser(log *zap.Logger) *Parser {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("csv")
	})

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &Parser{
		log:      log,
		validate: validate,
		trans:    trans,
	}
}

func (p *Parser) ParseFile(path string) (*datastructure.Campaign, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	p.log.Info("Reading campaign sheet...", zap.String("path", path))
	return p.Parse(f)
}

// Parse reads every row and splits it into its trail, city and temperature parts.
func (p *Parser) Parse(r io.Reader) (*datastructure.Campaign, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, util.WrapErrorf(nil, util.ErrEmptyInput, "campaign sheet has no header")
	}
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrSchema, "reading header")
	}

	columns, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	campaign := datastructure.NewCampaign(nil, nil, nil)
	rows := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		// header is line 1
		line := rows + 2
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrSchema, "line %d", line)
		}
		rows++

		cells := make(map[string]string, len(columns))
		for name, idx := range columns {
			cells[name] = strings.TrimSpace(record[idx])
		}

		if err := p.parseRow(cells, line, campaign); err != nil {
			return nil, err
		}
	}

	if rows == 0 {
		return nil, util.WrapErrorf(nil, util.ErrEmptyInput, "campaign sheet has no data rows")
	}

	p.log.Info("Campaign sheet parsed.", zap.Int("rows", rows),
		zap.Int("trail_points", len(campaign.Trail)),
		zap.Int("cities", len(campaign.Cities)),
		zap.Int("temperatures", len(campaign.Temperatures)))

	return campaign, nil
}

func (p *Parser) parseRow(cells map[string]string, line int, campaign *datastructure.Campaign) error {
	if anyPresent(cells, trailColumns) {
		tp, err := p.parseTrail(cells, line)
		if err != nil {
			return err
		}
		campaign.Trail = append(campaign.Trail, tp)
	}

	if allPresent(cells, cityColumns) {
		city, err := p.parseCity(cells, line)
		if err != nil {
			return err
		}
		campaign.Cities = append(campaign.Cities, city)
	}

	if anyPresent(cells, temperatureColumns) {
		temp, err := p.parseTemperature(cells, line)
		if err != nil {
			return err
		}
		campaign.Temperatures = append(campaign.Temperatures, temp)
	}
	return nil
}

func (p *Parser) parseTrail(cells map[string]string, line int) (datastructure.TrailPoint, error) {
	var (
		row trailRow
		err error
	)
	if row.Longitude, err = parseFloat(cells, COL_TRAIL_LON, line); err != nil {
		return datastructure.TrailPoint{}, err
	}
	if row.Latitude, err = parseFloat(cells, COL_TRAIL_LAT, line); err != nil {
		return datastructure.TrailPoint{}, err
	}
	if row.Survivors, err = parseInt(cells, COL_SURVIVORS, line); err != nil {
		return datastructure.TrailPoint{}, err
	}
	if row.Division, err = parseInt(cells, COL_DIVISION, line); err != nil {
		return datastructure.TrailPoint{}, err
	}
	row.Direction = strings.ToUpper(cells[COL_DIRECTION])

	if err := p.validateRow(row, line); err != nil {
		return datastructure.TrailPoint{}, err
	}

	dir, _ := datastructure.ParseDirection(row.Direction)
	return datastructure.NewTrailPoint(row.Longitude, row.Latitude, row.Survivors, dir,
		datastructure.Division(row.Division)), nil
}

func (p *Parser) parseCity(cells map[string]string, line int) (datastructure.CityPoint, error) {
	var (
		row cityRow
		err error
	)
	if row.Longitude, err = parseFloat(cells, COL_CITY_LON, line); err != nil {
		return datastructure.CityPoint{}, err
	}
	if row.Latitude, err = parseFloat(cells, COL_CITY_LAT, line); err != nil {
		return datastructure.CityPoint{}, err
	}
	row.Name = cells[COL_CITY]

	if err := p.validateRow(row, line); err != nil {
		return datastructure.CityPoint{}, err
	}
	return datastructure.NewCityPoint(row.Longitude, row.Latitude, row.Name), nil
}

// parseTemperature treats a blank or "0" month and a blank day as not recorded.
func (p *Parser) parseTemperature(cells map[string]string, line int) (datastructure.TemperatureRecord, error) {
	var (
		row temperatureRow
		err error
	)
	if row.Longitude, err = parseFloat(cells, COL_TEMP_LON, line); err != nil {
		return datastructure.TemperatureRecord{}, err
	}
	if row.Temperature, err = parseFloat(cells, COL_TEMP, line); err != nil {
		return datastructure.TemperatureRecord{}, err
	}
	if row.Days, err = parseInt(cells, COL_DAYS, line); err != nil {
		return datastructure.TemperatureRecord{}, err
	}
	if cells[COL_DAY] != "" {
		if row.Day, err = parseInt(cells, COL_DAY, line); err != nil {
			return datastructure.TemperatureRecord{}, err
		}
	}
	if month := cells[COL_MONTH]; month != "0" {
		row.Month = month
	}

	if err := p.validateRow(row, line); err != nil {
		return datastructure.TemperatureRecord{}, err
	}
	return datastructure.NewTemperatureRecord(row.Longitude, row.Temperature, row.Days, row.Month, row.Day), nil
}

func (p *Parser) validateRow(row interface{}, line int) error {
	if err := p.validate.Struct(row); err != nil {
		return util.WrapErrorf(nil, util.ErrSchema, "line %d: validation error: %v", line,
			translateError(err, p.trans))
	}
	return nil
}

func translateError(err error, trans ut.Translator) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, e.Translate(trans))
	}
	return msgs
}

// indexColumns maps each required column to its position, matching names case-insensitively.
func indexColumns(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := positions[name]; dup {
			return nil, util.WrapErrorf(nil, util.ErrSchema, "column %s appears twice", name)
		}
		positions[name] = i
	}

	columns := make(map[string]int, len(requiredColumns))
	var missing []string
	for _, name := range requiredColumns {
		idx, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		columns[name] = idx
	}
	if len(missing) > 0 {
		return nil, util.WrapErrorf(nil, util.ErrSchema, "missing columns %s", strings.Join(missing, ", "))
	}
	return columns, nil
}

func anyPresent(cells map[string]string, names []string) bool {
	for _, name := range names {
		if cells[name] != "" {
			return true
		}
	}
	return false
}

func allPresent(cells map[string]string, names []string) bool {
	for _, name := range names {
		if cells[name] == "" {
			return false
		}
	}
	return true
}

func parseFloat(cells map[string]string, name string, line int) (float64, error) {
	val, err := util.StringToFloat64(cells[name])
	if err != nil {
		return 0, util.WrapErrorf(err, util.ErrSchema, "line %d: %s %q is not a number", line, name, cells[name])
	}
	return val, nil
}

func parseInt(cells map[string]string, name string, line int) (int, error) {
	val, err := util.StringToInt(cells[name])
	if err != nil {
		return 0, util.WrapErrorf(err, util.ErrSchema, "line %d: %s %q is not an integer", line, name, cells[name])
	}
	return val, nil
}
