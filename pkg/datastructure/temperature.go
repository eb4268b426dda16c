package datastructure

// TemperatureRecord is one reading taken during the retreat. An empty Month and a zero Day mean the
// date was not recorded.
type TemperatureRecord struct {
	Longitude   float64
	Temperature float64
	DaysElapsed int
	Month       string
	Day         int

	// Label holds the wrapped display lines once formatted.
	Label []string
}

func NewTemperatureRecord(lon, temp float64, days int, month string, day int) TemperatureRecord {
	return TemperatureRecord{
		Longitude:   lon,
		Temperature: temp,
		DaysElapsed: days,
		Month:       month,
		Day:         day,
	}
}

// HasDate reports whether both date components are present.
func (tr TemperatureRecord) HasDate() bool {
	return tr.Month != "" && tr.Month != "0" && tr.Day != 0
}
