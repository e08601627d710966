// Package store loads bikeshare trip data into an in-memory SQLite table and
// computes aggregates over it.
package store

import (
	"context"
	"errors"
	"math/rand"

	"github.com/rcliao/bikeshare/internal/model"
)

// ErrMissingColumn is returned when a required CSV column is absent.
var ErrMissingColumn = errors.New("missing required column")

// Column names a queryable column of the trips table.
type Column string

const (
	ColMonth        Column = "month"
	ColWeekday      Column = "day_of_week"
	ColHour         Column = "hour"
	ColStartStation Column = "start_station"
	ColEndStation   Column = "end_station"
	ColTrip         Column = "trip"
	ColUserType     Column = "user_type"
	ColGender       Column = "gender"
	ColBirthYear    Column = "birth_year"
)

var validColumns = map[Column]bool{
	ColMonth:        true,
	ColWeekday:      true,
	ColHour:         true,
	ColStartStation: true,
	ColEndStation:   true,
	ColTrip:         true,
	ColUserType:     true,
	ColGender:       true,
	ColBirthYear:    true,
}

// Count is a value and the number of rows holding it.
type Count struct {
	Value string `json:"value"`
	N     int    `json:"count"`
}

// Durations holds trip duration aggregates in seconds.
type Durations struct {
	Trips int     `json:"trips"`
	Total float64 `json:"total_seconds"`
	Mean  float64 `json:"mean_seconds"`
}

// BirthYears holds birth year aggregates.
type BirthYears struct {
	Earliest   int `json:"earliest"`
	MostRecent int `json:"most_recent"`
	MostCommon int `json:"most_common"`
}

// SampleParams holds parameters for sampling raw rows.
type SampleParams struct {
	N    int
	Rand *rand.Rand
}

// Store defines the read side of a loaded, filtered trip table.
type Store interface {
	// ID identifies this loaded dataset.
	ID() string

	// Filter returns the filter the table was loaded with.
	Filter() model.Filter

	// Columns reports which optional columns the source exposes.
	Columns() model.Columns

	// Count returns the number of trips in the table.
	Count(ctx context.Context) (int, error)

	// Mode returns the most frequent non-null value of col.
	// Ties resolve to the smallest value. ok is false when col has no values.
	Mode(ctx context.Context, col Column) (c Count, ok bool, err error)

	// ValueCounts returns counts per value, descending by count.
	ValueCounts(ctx context.Context, col Column) ([]Count, error)

	// Durations returns trip duration aggregates.
	Durations(ctx context.Context) (Durations, error)

	// BirthYears returns birth year aggregates. ok is false when the
	// dataset has no birth year column or no values in it.
	BirthYears(ctx context.Context) (b BirthYears, ok bool, err error)

	// Sample returns up to p.N random rows.
	Sample(ctx context.Context, p SampleParams) ([]model.Trip, error)

	// Trips returns every row in load order.
	Trips(ctx context.Context) ([]model.Trip, error)

	// Close releases the table.
	Close() error
}
