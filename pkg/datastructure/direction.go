package datastructure

import "strings"

// Direction of a division along the trail.
type Direction uint8

const (
	ADVANCE Direction = iota
	RETREAT
)

// ParseDirection maps the dataset codes "A" and "R".
func ParseDirection(code string) (Direction, bool) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "A":
		return ADVANCE, true
	case "R":
		return RETREAT, true
	default:
		return 0, false
	}
}

func (d Direction) Code() string {
	switch d {
	case ADVANCE:
		return "A"
	case RETREAT:
		return "R"
	default:
		return "?"
	}
}

func (d Direction) String() string {
	switch d {
	case ADVANCE:
		return "Advance"
	case RETREAT:
		return "Retreat"
	default:
		return "Unknown"
	}
}

// Division is one of the three army groupings, numbered from 1.
type Division uint8

const (
	MIN_DIVISION Division = 1
	MAX_DIVISION Division = 3
)

func (d Division) Valid() bool {
	return d >= MIN_DIVISION && d <= MAX_DIVISION
}
