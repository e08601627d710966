package store

import (
	"context"
	"database/sql"
	"fmt"
)

func checkColumn(col Column) error {
	if !validColumns[col] {
		return fmt.Errorf("unknown column %q", col)
	}
	return nil
}

// Mode returns the most frequent value of col, smallest value first on ties.
func (s *SQLiteStore) Mode(ctx context.Context, col Column) (Count, bool, error) {
	if err := checkColumn(col); err != nil {
		return Count{}, false, err
	}

	query := fmt.Sprintf(`
		SELECT %[1]s, COUNT(*) AS cnt
		FROM trips WHERE %[1]s IS NOT NULL
		GROUP BY %[1]s ORDER BY cnt DESC, %[1]s ASC
		LIMIT 1`, col)

	var c Count
	err := s.db.QueryRowContext(ctx, query).Scan(&c.Value, &c.N)
	if err == sql.ErrNoRows {
		return Count{}, false, nil
	}
	if err != nil {
		return Count{}, false, fmt.Errorf("mode %s: %w", col, err)
	}
	return c, true, nil
}

// ValueCounts returns the count of each non-null value of col.
func (s *SQLiteStore) ValueCounts(ctx context.Context, col Column) ([]Count, error) {
	if err := checkColumn(col); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %[1]s, COUNT(*) AS cnt
		FROM trips WHERE %[1]s IS NOT NULL
		GROUP BY %[1]s ORDER BY cnt DESC, %[1]s ASC`, col)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("value counts %s: %w", col, err)
	}
	defer rows.Close()

	var counts []Count
	for rows.Next() {
		var c Count
		if err := rows.Scan(&c.Value, &c.N); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// Durations sums and averages trip_duration over rows that have one.
func (s *SQLiteStore) Durations(ctx context.Context) (Durations, error) {
	var d Durations
	var mean sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(trip_duration), COALESCE(SUM(trip_duration), 0), AVG(trip_duration)
		FROM trips`).Scan(&d.Trips, &d.Total, &mean)
	if err != nil {
		return d, fmt.Errorf("durations: %w", err)
	}
	d.Mean = mean.Float64
	return d, nil
}

// BirthYears returns min, max and mode of birth_year, truncated to whole years.
func (s *SQLiteStore) BirthYears(ctx context.Context) (BirthYears, bool, error) {
	var b BirthYears
	if !s.columns.BirthYear {
		return b, false, nil
	}

	var lo, hi sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `SELECT MIN(birth_year), MAX(birth_year) FROM trips`).Scan(&lo, &hi)
	if err != nil {
		return b, false, fmt.Errorf("birth years: %w", err)
	}
	if !lo.Valid || !hi.Valid {
		return b, false, nil
	}

	var mode float64
	err = s.db.QueryRowContext(ctx, `
		SELECT birth_year, COUNT(*) AS cnt
		FROM trips WHERE birth_year IS NOT NULL
		GROUP BY birth_year ORDER BY cnt DESC, birth_year ASC
		LIMIT 1`).Scan(&mode, new(int))
	if err != nil {
		return b, false, fmt.Errorf("birth year mode: %w", err)
	}

	b.Earliest = int(lo.Float64)
	b.MostRecent = int(hi.Float64)
	b.MostCommon = int(mode)
	return b, true, nil
}
