package config

import (
	"fmt"

	"github.com/lintang-b-s/minard/pkg/datastructure"
	"github.com/lintang-b-s/minard/pkg/util"
	"github.com/spf13/viper"
)

// Shade is the pair of colors one division is drawn with.
type Shade struct {
	Advance string
	Retreat string
}

// Palette holds one Shade per division, index 0 is division 1.
type Palette [datastructure.MAX_DIVISION]Shade

// ColorFor returns the color for (div, dir), or an ErrInvalidCategory error for anything outside
// the 3x2 table.
func (p Palette) ColorFor(div datastructure.Division, dir datastructure.Direction) (string, error) {
	if !div.Valid() {
		return "", util.WrapErrorf(nil, util.ErrInvalidCategory, "unknown division %d", div)
	}
	shade := p[div-datastructure.MIN_DIVISION]
	switch dir {
	case datastructure.ADVANCE:
		return shade.Advance, nil
	case datastructure.RETREAT:
		return shade.Retreat, nil
	default:
		return "", util.WrapErrorf(nil, util.ErrInvalidCategory, "unknown direction %d for division %d", dir, div)
	}
}

type Layout struct {
	PlotWidth         int
	PlotHeight        int
	LegendWidth       int
	TemperatureHeight int
}

type Labels struct {
	Stride        int
	AdvanceOffset float64
	RetreatOffset float64
	MinDistance   float64
}

type Trail struct {
	MinWidth float64
	MaxWidth float64
}

type Guides struct {
	CityLatitudes   []float64
	LatitudePadding float64
}

// Config is read once at startup and passed by value, nothing mutates it afterwards.
type Config struct {
	InputPath  string
	OutputPath string
	Title      string
	Debug      bool

	Layout    Layout
	Palette   Palette
	Labels    Labels
	Trail     Trail
	WrapWidth int
	Guides    Guides
}

// SetDefaults registers every key with its default so a run without config.yaml still works.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input_path", "./data/napoleon-russian-campaign.csv")
	v.SetDefault("output_path", "./Minard-Visualisation.html")
	v.SetDefault("title", "Recreation of Minard's visualisation of Napoleon's Russian Campaign")
	v.SetDefault("debug", false)

	v.SetDefault("layout.plot_width", 980)
	v.SetDefault("layout.plot_height", 600)
	v.SetDefault("layout.legend_width", 200)
	v.SetDefault("layout.temperature_height", 200)

	v.SetDefault("palette.division_1.advance", "#bf7002")
	v.SetDefault("palette.division_1.retreat", "#ff9f17")
	v.SetDefault("palette.division_2.advance", "#1f9107")
	v.SetDefault("palette.division_2.retreat", "#3aff12")
	v.SetDefault("palette.division_3.advance", "#0394fc")
	v.SetDefault("palette.division_3.retreat", "#00faf6")

	v.SetDefault("labels.stride", 3)
	v.SetDefault("labels.advance_offset", 0.22)
	v.SetDefault("labels.retreat_offset", -0.25)
	v.SetDefault("labels.min_distance", 0.2)

	v.SetDefault("trail.min_width", 1.0)
	v.SetDefault("trail.max_width", 35.0)

	v.SetDefault("temperature.wrap_width", 6)

	v.SetDefault("guides.city_latitudes", []float64{55.65, 55.05, 54.73, 54.55, 54.33, 54.20, 54.43, 54.3, 54.4})
	v.SetDefault("guides.latitude_padding", 1.25)
}

// Default is the configuration used when no config file overrides anything.
func Default() Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := Load(v)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load builds a Config from v, which must already have defaults and any config file applied.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		InputPath:  v.GetString("input_path"),
		OutputPath: v.GetString("output_path"),
		Title:      v.GetString("title"),
		Debug:      v.GetBool("debug"),
		Layout: Layout{
			PlotWidth:         v.GetInt("layout.plot_width"),
			PlotHeight:        v.GetInt("layout.plot_height"),
			LegendWidth:       v.GetInt("layout.legend_width"),
			TemperatureHeight: v.GetInt("layout.temperature_height"),
		},
		Labels: Labels{
			Stride:        v.GetInt("labels.stride"),
			AdvanceOffset: v.GetFloat64("labels.advance_offset"),
			RetreatOffset: v.GetFloat64("labels.retreat_offset"),
			MinDistance:   v.GetFloat64("labels.min_distance"),
		},
		Trail: Trail{
			MinWidth: v.GetFloat64("trail.min_width"),
			MaxWidth: v.GetFloat64("trail.max_width"),
		},
		WrapWidth: v.GetInt("temperature.wrap_width"),
		Guides: Guides{
			LatitudePadding: v.GetFloat64("guides.latitude_padding"),
		},
	}

	for div := datastructure.MIN_DIVISION; div <= datastructure.MAX_DIVISION; div++ {
		key := fmt.Sprintf("palette.division_%d", div)
		cfg.Palette[div-datastructure.MIN_DIVISION] = Shade{
			Advance: v.GetString(key + ".advance"),
			Retreat: v.GetString(key + ".retreat"),
		}
	}

	lats, err := toFloats(v.Get("guides.city_latitudes"))
	if err != nil {
		return Config{}, util.WrapErrorf(err, util.ErrBadConfig, "guides.city_latitudes")
	}
	cfg.Guides.CityLatitudes = lats

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.InputPath == "":
		return util.WrapErrorf(nil, util.ErrBadConfig, "input_path is empty")
	case c.OutputPath == "":
		return util.WrapErrorf(nil, util.ErrBadConfig, "output_path is empty")
	case c.Layout.PlotWidth <= 0 || c.Layout.PlotHeight <= 0 || c.Layout.TemperatureHeight <= 0:
		return util.WrapErrorf(nil, util.ErrBadConfig, "plot sizes must be positive")
	case c.Layout.LegendWidth <= 0 || c.Layout.LegendWidth > c.Layout.PlotWidth:
		return util.WrapErrorf(nil, util.ErrBadConfig, "legend_width must be in (0, plot_width]")
	case c.Labels.Stride <= 0:
		return util.WrapErrorf(nil, util.ErrBadConfig, "labels.stride must be positive")
	case c.Labels.MinDistance < 0:
		return util.WrapErrorf(nil, util.ErrBadConfig, "labels.min_distance must not be negative")
	case c.Trail.MinWidth <= 0 || c.Trail.MaxWidth < c.Trail.MinWidth:
		return util.WrapErrorf(nil, util.ErrBadConfig, "trail widths must satisfy 0 < min_width <= max_width")
	case c.WrapWidth <= 0:
		return util.WrapErrorf(nil, util.ErrBadConfig, "temperature.wrap_width must be positive")
	}
	for i, shade := range c.Palette {
		if shade.Advance == "" || shade.Retreat == "" {
			return util.WrapErrorf(nil, util.ErrBadConfig, "palette.division_%d needs advance and retreat colors", i+1)
		}
	}
	return nil
}

// toFloats accepts the []float64 default as well as the []interface{} viper decodes from yaml.
func toFloats(raw interface{}) ([]float64, error) {
	switch vals := raw.(type) {
	case nil:
		return nil, nil
	case []float64:
		out := make([]float64, len(vals))
		copy(out, vals)
		return out, nil
	case []interface{}:
		out := make([]float64, 0, len(vals))
		for i, val := range vals {
			switch n := val.(type) {
			case float64:
				out = append(out, n)
			case int:
				out = append(out, float64(n))
			default:
				return nil, fmt.Errorf("element %d: %v is not a number", i, val)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a list of numbers, got %T", raw)
	}
}
