package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rcliao/bikeshare/internal/model"
)

const tripColumns = `rowid, idx, start_time, end_time, trip_duration, start_station, end_station,
	user_type, gender, birth_year, month, day_of_week, hour`

// Trips returns every trip in the table in load order.
func (s *SQLiteStore) Trips(ctx context.Context) ([]model.Trip, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+tripColumns+` FROM trips ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []model.Trip
	for rows.Next() {
		_, t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

// Sample picks up to p.N distinct rows at random. When the table holds
// fewer than p.N rows, all of them are returned in random order.
func (s *SQLiteStore) Sample(ctx context.Context, p SampleParams) ([]model.Trip, error) {
	if p.N <= 0 {
		return nil, nil
	}
	rng := p.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	total, err := s.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count trips: %w", err)
	}
	if total == 0 {
		return nil, nil
	}

	// Rows are inserted once into a fresh table, so rowids run 1..total.
	ids := pickDistinct(rng, total, p.N)

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE rowid IN (`+strings.Join(placeholders, ",")+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("sample trips: %w", err)
	}
	defer rows.Close()

	byID := make(map[int64]model.Trip, len(ids))
	for rows.Next() {
		id, t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		byID[id] = t
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	trips := make([]model.Trip, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			trips = append(trips, t)
		}
	}
	return trips, nil
}

// pickDistinct returns min(n, total) distinct values in [1, total].
func pickDistinct(rng *rand.Rand, total, n int) []int64 {
	if n >= total {
		perm := rng.Perm(total)
		ids := make([]int64, total)
		for i, v := range perm {
			ids[i] = int64(v + 1)
		}
		return ids
	}

	seen := make(map[int64]bool, n)
	ids := make([]int64, 0, n)
	for len(ids) < n {
		id := int64(rng.Intn(total) + 1)
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTrip(row scanner) (int64, model.Trip, error) {
	var t model.Trip
	var id int64
	var idx, endTime, start, end, userType, gender sql.NullString
	var duration, birthYear sql.NullFloat64
	var startTime string

	err := row.Scan(
		&id, &idx, &startTime, &endTime, &duration, &start, &end,
		&userType, &gender, &birthYear, &t.Month, &t.Weekday, &t.Hour,
	)
	if err != nil {
		return 0, t, err
	}

	t.StartTime, _ = time.Parse(TimeLayout, startTime)
	t.Index = idx.String
	t.EndTime = endTime.String
	t.Duration = duration.Float64
	t.StartStation = start.String
	t.EndStation = end.String
	t.UserType = userType.String
	t.Gender = gender.String
	if birthYear.Valid {
		v := birthYear.Float64
		t.BirthYear = &v
	}

	return id, t, nil
}
