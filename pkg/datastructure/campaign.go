package datastructure

// Campaign holds the three tables read from the input sheet, each in table order.
type Campaign struct {
	Trail        []TrailPoint
	Cities       []CityPoint
	Temperatures []TemperatureRecord
}

func NewCampaign(trail []TrailPoint, cities []CityPoint, temps []TemperatureRecord) *Campaign {
	return &Campaign{
		Trail:        trail,
		Cities:       cities,
		Temperatures: temps,
	}
}
