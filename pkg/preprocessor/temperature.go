package preprocessor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	da "github.com/lintang-b-s/minard/pkg/datastructure"
	"github.com/lintang-b-s/minard/pkg/util"
)

// FormatTemperatureLabel renders "-20°", or "-20° 15 Dec" when the date was recorded.
func FormatTemperatureLabel(tr da.TemperatureRecord) string {
	label := util.FormatFloat(tr.Temperature) + "°"
	if !tr.HasDate() {
		return label
	}
	return fmt.Sprintf("%s %d %s", label, tr.Day, tr.Month)
}

// TemperatureLabels returns copies of temps with Label set to the wrapped display lines.
func TemperatureLabels(temps []da.TemperatureRecord, width int) []da.TemperatureRecord {
	labeled := make([]da.TemperatureRecord, len(temps))
	for i, tr := range temps {
		tr.Label = WrapText(FormatTemperatureLabel(tr), width)
		labeled[i] = tr
	}
	return labeled
}

// WrapText breaks text on whitespace into lines of at most width characters.
// Words are never split, a word longer than width gets a line of its own.
func WrapText(text string, width int) []string {
	words := strings.Fields(text)
	lines := make([]string, 0, len(words))

	var (
		cur    strings.Builder
		curLen int
	)
	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		switch {
		case curLen == 0:
			cur.WriteString(word)
			curLen = wordLen
		case curLen+1+wordLen <= width:
			cur.WriteString(" ")
			cur.WriteString(word)
			curLen += 1 + wordLen
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
			curLen = wordLen
		}
	}
	if curLen > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
