package util

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// error

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

// Is matches the kind code, so errors.Is(err, ErrSchema) works through wrapping.
func (e *Error) Is(target error) bool {
	return e.code != nil && e.code == target
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

var (
	ErrSchema          = errors.New("input does not match the expected schema")
	ErrInvalidCategory = errors.New("division/direction combination is not valid")
	ErrEmptyInput      = errors.New("layer has no rows")
	ErrBadConfig       = errors.New("configuration is not valid")
)

func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// FormatFloat prints val with the fewest digits needed, so 20.0 prints as "20".
func FormatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

func StringToFloat64(str string) (float64, error) {
	val, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, err
	}
	return val, nil
}

// StringToInt accepts both "24" and "24.0", spreadsheets export integer columns with blanks as floats.
func StringToInt(str string) (int, error) {
	val, err := StringToFloat64(str)
	if err != nil {
		return 0, err
	}
	if val != math.Trunc(val) {
		return 0, fmt.Errorf("%q is not an integer", str)
	}
	return int(val), nil
}
