package store

import (
	"context"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/bikeshare/internal/model"
	"github.com/rcliao/bikeshare/internal/testutil"
)

func newTestStore(t *testing.T, csv, city, month, day string) *SQLiteStore {
	t.Helper()
	f, err := model.ParseFilter(city, month, day)
	require.NoError(t, err)
	path := testutil.WriteFile(t, t.TempDir(), model.CityData[f.City], csv)
	s, err := Load(context.Background(), path, f, Options{})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoad_AllFilters(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testutil.ChicagoCSV, "chicago", "all", "all")

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, model.Columns{Index: true, Gender: true, BirthYear: true}, s.Columns())
	assert.NotEmpty(t, s.ID())
}

func TestLoad_MonthFilter(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testutil.ChicagoCSV, "chicago", "march", "all")

	trips, err := s.Trips(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 3)
	for _, tr := range trips {
		assert.Equal(t, 3, tr.Month)
	}
}

func TestLoad_DayFilter(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testutil.ChicagoCSV, "chicago", "all", "Monday")

	trips, err := s.Trips(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 3)
	for _, tr := range trips {
		assert.Equal(t, "Monday", tr.Weekday)
	}
}

func TestLoad_MonthAndDay(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testutil.ChicagoCSV, "chicago", "MARCH", "monday")

	trips, err := s.Trips(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "0", trips[0].Index)
	assert.Equal(t, "1", trips[1].Index)
	assert.Equal(t, 8, trips[0].Hour)
	assert.Equal(t, "2017-03-06 08:10:00", trips[0].StartTime.Format(TimeLayout))
}

func TestLoad_NoMatches(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testutil.ChicagoCSV, "chicago", "february", "all")

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, ok, err := s.Mode(ctx, ColMonth)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	f := model.Filter{City: "chicago", Month: model.All, Day: model.All}
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), f, Options{})
	require.Error(t, err)
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	f := model.Filter{City: "chicago", Month: model.All, Day: model.All}
	csv := "Start Time,End Time,Trip Duration,Start Station,End Station\n2017-01-01 00:00:00,x,1,a,b\n"
	_, err := LoadReader(context.Background(), strings.NewReader(csv), f, Options{})
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "User Type")
}

func TestLoad_BadTimestamp(t *testing.T) {
	f := model.Filter{City: "chicago", Month: model.All, Day: model.All}
	csv := ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n0,yesterday,x,1,a,b,Subscriber\n"
	_, err := LoadReader(context.Background(), strings.NewReader(csv), f, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoad_EmptyFile(t *testing.T) {
	f := model.Filter{City: "chicago", Month: model.All, Day: model.All}
	_, err := LoadReader(context.Background(), strings.NewReader(""), f, Options{})
	require.Error(t, err)
}

func TestLoad_WithoutOptionalColumns(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testutil.WashingtonCSV, "washington", "all", "all")

	assert.False(t, s.Columns().Gender)
	assert.False(t, s.Columns().BirthYear)

	_, ok, err := s.BirthYears(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	counts, err := s.ValueCounts(ctx, ColGender)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestMode(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testutil.ChicagoCSV, "chicago", "all", "all")

	cases := []struct {
		col  Column
		want Count
	}{
		{ColMonth, Count{Value: "3", N: 3}},
		{ColWeekday, Count{Value: "Monday", N: 3}},
		{ColHour, Count{Value: "8", N: 2}},
		{ColStartStation, Count{Value: "A", N: 3}},
		// B and C tie at 2; the smaller value wins.
		{ColEndStation, Count{Value: "B", N: 2}},
		{ColTrip, Count{Value: "A to B", N: 2}},
	}
	for _, tc := range cases {
		got, ok, err := s.Mode(ctx, tc.col)
		require.NoError(t, err, tc.col)
		assert.True(t, ok, tc.col)
		assert.Equal(t, tc.want, got, tc.col)
	}
}

func TestMode_UnknownColumn(t *testing.T) {
	s := newTestStore(t, testutil.ChicagoCSV, "chicago", "all", "all")
	_, _, err := s.Mode(context.Background(), Column("start_time; DROP TABLE trips"))
	require.Error(t, err)
}

func TestValueCounts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testutil.ChicagoCSV, "chicago", "all", "all")

	users, err := s.ValueCounts(ctx, ColUserType)
	require.NoError(t, err)
	assert.Equal(t, []Count{{"Subscriber", 3}, {"Customer", 2}}, users)

	genders, err := s.ValueCounts(ctx, ColGender)
	require.NoError(t, err)
	assert.Equal(t, []Count{{"Male", 2}, {"Female", 1}}, genders)
}

func TestDurations(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testutil.ChicagoCSV, "chicago", "march", "monday")

	d, err := s.Durations(ctx)
	require.NoError(t, err)
	assert.Equal(t, Durations{Trips: 2, Total: 1200, Mean: 600}, d)
}

func TestDurations_Empty(t *testing.T) {
	s := newTestStore(t, testutil.ChicagoCSV, "chicago", "february", "all")

	d, err := s.Durations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Durations{}, d)
}

func TestBirthYears(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testutil.ChicagoCSV, "chicago", "all", "all")

	b, ok, err := s.BirthYears(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, BirthYears{Earliest: 1985, MostRecent: 1990, MostCommon: 1990}, b)
}

func TestBirthYears_ColumnWithoutValues(t *testing.T) {
	s := newTestStore(t, testutil.ChicagoCSV, "chicago", "june", "all")

	_, ok, err := s.BirthYears(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSample(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testutil.ChicagoCSV, "chicago", "all", "all")

	trips, err := s.Sample(ctx, SampleParams{N: 3, Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)
	require.Len(t, trips, 3)

	seen := map[string]bool{}
	for _, tr := range trips {
		assert.False(t, seen[tr.Index], "duplicate row %s", tr.Index)
		seen[tr.Index] = true
	}

	again, err := s.Sample(ctx, SampleParams{N: 3, Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)
	assert.Equal(t, trips, again)
}

func TestSample_FewerRowsThanRequested(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, testutil.ChicagoCSV, "chicago", "march", "monday")

	trips, err := s.Sample(ctx, SampleParams{N: 5, Rand: rand.New(rand.NewSource(7))})
	require.NoError(t, err)
	require.Len(t, trips, 2)

	idx := []string{trips[0].Index, trips[1].Index}
	assert.ElementsMatch(t, []string{"0", "1"}, idx)
}

func TestSample_EmptyTable(t *testing.T) {
	s := newTestStore(t, testutil.ChicagoCSV, "chicago", "february", "all")

	trips, err := s.Sample(context.Background(), SampleParams{N: 5})
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestStoresAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := newTestStore(t, testutil.ChicagoCSV, "chicago", "all", "all")
	b := newTestStore(t, testutil.WashingtonCSV, "washington", "all", "all")

	na, err := a.Count(ctx)
	require.NoError(t, err)
	nb, err := b.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, na)
	assert.Equal(t, 2, nb)
	assert.NotEqual(t, a.ID(), b.ID())
}
