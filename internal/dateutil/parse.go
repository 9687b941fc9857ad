package dateutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrUnparseableDate is wrapped by Parse when no known pattern matches.
var ErrUnparseableDate = fmt.Errorf("unparseable date")

// nativeLayouts are tried before the regional patterns, most specific first.
var nativeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

var twoDigitYearPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2})$`)

// regionalLayouts are the day-first patterns used across the dashboard.
var regionalLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"2006-01-02",
}

// Parse attempts native timestamp layouts first, then the regional day-first
// patterns (DD/MM/YYYY, DD-MM-YYYY, YYYY-MM-DD), and finally DD/MM/YY with a
// 50-year pivot (YY < 50 resolves to 20YY, otherwise 19YY). Unlike loose
// parsers, impossible calendar dates such as 31/02/2024 do not roll over into
// the next month; they fail with ErrUnparseableDate.
func Parse(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrUnparseableDate)
	}

	for _, layout := range nativeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range regionalLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	if m := twoDigitYearPattern.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
		// time.Date normalizes out-of-range fields; reject rollovers.
		if t.Day() == day && int(t.Month()) == month {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, s)
}
