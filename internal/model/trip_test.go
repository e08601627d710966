package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCity(t *testing.T) {
	for _, city := range Cities {
		for _, in := range []string{city, strings.ToUpper(city), " " + Title(city) + " "} {
			got, ok := ParseCity(in)
			assert.True(t, ok, in)
			assert.Equal(t, city, got)
		}
	}
	for _, in := range []string{"", "boston", "new york", "chicago!", "all"} {
		_, ok := ParseCity(in)
		assert.False(t, ok, in)
	}
}

func TestParseMonth(t *testing.T) {
	for _, in := range []string{"all", "ALL", "January", "june", "MaRcH"} {
		_, ok := ParseMonth(in)
		assert.True(t, ok, in)
	}
	for _, in := range []string{"july", "December", "jan", "", "1"} {
		_, ok := ParseMonth(in)
		assert.False(t, ok, in)
	}
}

func TestParseDay(t *testing.T) {
	for _, d := range Days {
		got, ok := ParseDay(strings.ToUpper(d))
		assert.True(t, ok, d)
		assert.Equal(t, d, got)
	}
	_, ok := ParseDay("funday")
	assert.False(t, ok)
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("Chicago", "March", "all")
	require.NoError(t, err)
	assert.Equal(t, Filter{City: "chicago", Month: "march", Day: "all"}, f)
	assert.Equal(t, 3, f.MonthIndex())

	_, err = ParseFilter("chicago", "july", "all")
	require.Error(t, err)
	_, err = ParseFilter("chicago", "all", "someday")
	require.Error(t, err)
	_, err = ParseFilter("paris", "all", "all")
	require.Error(t, err)
}

func TestMonthIndex_All(t *testing.T) {
	assert.Zero(t, Filter{Month: All}.MonthIndex())
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", MonthName(1))
	assert.Equal(t, "June", MonthName(6))
	assert.Equal(t, "December", MonthName(12))
	assert.Equal(t, "month 13", MonthName(13))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "New York City", Title("new york city"))
	assert.Equal(t, "Monday", Title("monday"))
	assert.Equal(t, "", Title(""))
}
