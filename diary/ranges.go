// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package diary

import "time"

// MonthRange returns [first of month, first of next month) in loc.
// Out-of-range months normalize the way time.Date does, so month 12
// ends at January 1 of the next year and month 13 is next January.
func MonthRange(year, month int, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}

// DayRange returns [midnight, next midnight) in loc for the day containing t
func DayRange(t time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := t.In(loc).Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 0, 1)
}

// YearsThrough lists FirstYear..last inclusive
func YearsThrough(last int) []int {
	years := []int{}
	for y := FirstYear; y <= last; y++ {
		years = append(years, y)
	}
	return years
}
