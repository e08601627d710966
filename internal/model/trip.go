// Package model defines the core bikeshare data types.
package model

import (
	"fmt"
	"strings"
	"time"
)

// All is the filter value meaning "no filter".
const All = "all"

// CityData maps each supported city to its data file name.
var CityData = map[string]string{
	"chicago":       "chicago.csv",
	"new york city": "new_york_city.csv",
	"washington":    "washington.csv",
}

// Cities lists the catalog keys in display order.
var Cities = []string{"chicago", "new york city", "washington"}

// Months are the months covered by the datasets. Index i is month i+1.
var Months = []string{"january", "february", "march", "april", "may", "june"}

// Days are the weekday names in time.Weekday order.
var Days = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// Filter is the (city, month, day) selection for one session.
type Filter struct {
	City  string `json:"city"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

func (f Filter) String() string {
	return fmt.Sprintf("%s (month: %s, day: %s)", f.City, f.Month, f.Day)
}

// MonthIndex returns the 1-based month number for Month, or 0 when Month is "all".
func (f Filter) MonthIndex() int {
	for i, m := range Months {
		if m == f.Month {
			return i + 1
		}
	}
	return 0
}

// Trip is one trip record with its derived columns.
type Trip struct {
	Index        string    `json:"index,omitempty"`
	StartTime    time.Time `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Duration     float64   `json:"trip_duration"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    *float64  `json:"birth_year,omitempty"`
	Month        int       `json:"month"`
	Weekday      string    `json:"day_of_week"`
	Hour         int       `json:"hour"`
}

// Columns records which optional columns a dataset exposes.
type Columns struct {
	Index     bool `json:"index"`
	Gender    bool `json:"gender"`
	BirthYear bool `json:"birth_year"`
}

// Normalize lowercases and trims raw user input.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseCity returns the catalog key matching s.
func ParseCity(s string) (string, bool) {
	s = Normalize(s)
	_, ok := CityData[s]
	return s, ok
}

// ParseMonth accepts "all" or one of Months.
func ParseMonth(s string) (string, bool) {
	s = Normalize(s)
	if s == All {
		return s, true
	}
	for _, m := range Months {
		if m == s {
			return s, true
		}
	}
	return s, false
}

// ParseDay accepts "all" or one of Days.
func ParseDay(s string) (string, bool) {
	s = Normalize(s)
	if s == All {
		return s, true
	}
	for _, d := range Days {
		if d == s {
			return s, true
		}
	}
	return s, false
}

// ParseFilter validates all three parts of a filter at once.
func ParseFilter(city, month, day string) (Filter, error) {
	c, ok := ParseCity(city)
	if !ok {
		return Filter{}, fmt.Errorf("invalid city %q (use one of: %s)", city, strings.Join(Cities, ", "))
	}
	m, ok := ParseMonth(month)
	if !ok {
		return Filter{}, fmt.Errorf("invalid month %q (use all or january through june)", month)
	}
	d, ok := ParseDay(day)
	if !ok {
		return Filter{}, fmt.Errorf("invalid day %q (use all or a weekday name)", day)
	}
	return Filter{City: c, Month: m, Day: d}, nil
}

// Title upper-cases the first letter of each word.
func Title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// MonthName returns the title-cased name for a 1-based month number.
func MonthName(n int) string {
	if n >= 1 && n <= len(Months) {
		return Title(Months[n-1])
	}
	if n >= 1 && n <= 12 {
		return time.Month(n).String()
	}
	return fmt.Sprintf("month %d", n)
}
