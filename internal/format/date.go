// Package format renders employee values for display.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DisplayLayout is the fixed DD/MM/YYYY display pattern.
const DisplayLayout = "02/01/2006"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC1123Z,
	time.RFC1123,
	"January 2, 2006",
	"Jan 2, 2006",
	"2006/01/02",
}

// FormatDate turns a YYYY-MM-DD date (or a timestamp) into DD/MM/YYYY.
// Empty input yields "" and anything unparseable is returned unchanged.
func FormatDate(value string) string {
	if value == "" {
		return ""
	}

	if strings.Contains(value, "-") && len(value) == 10 {
		if formatted, ok := formatYMD(value); ok {
			return formatted
		}
		return value
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(DisplayLayout)
		}
	}
	return value
}

func formatYMD(value string) (string, bool) {
	parts := strings.SplitN(value, "-", 3)
	if len(parts) != 3 {
		return "", false
	}
	year, month, day := parts[0], parts[1], parts[2]
	if len(year) != 4 || len(month) != 2 || len(day) != 2 {
		return "", false
	}
	if _, err := strconv.Atoi(year); err != nil {
		return "", false
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return "", false
	}
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > 31 {
		return "", false
	}
	return fmt.Sprintf("%s/%s/%s", day, month, year), true
}
