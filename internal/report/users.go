package report

import (
	"context"
	"fmt"

	"github.com/rcliao/bikeshare/internal/store"
)

// UserStats holds user demographics. Genders and BirthYears are only set
// when the dataset has those columns.
type UserStats struct {
	UserTypes  []store.Count     `json:"user_types"`
	Genders    []store.Count     `json:"genders,omitempty"`
	BirthYears *store.BirthYears `json:"birth_years,omitempty"`
}

func ComputeUsers(ctx context.Context, s store.Store) (UserStats, error) {
	var us UserStats
	var err error

	if us.UserTypes, err = s.ValueCounts(ctx, store.ColUserType); err != nil {
		return us, err
	}

	if s.Columns().Gender {
		if us.Genders, err = s.ValueCounts(ctx, store.ColGender); err != nil {
			return us, err
		}
	}

	b, ok, err := s.BirthYears(ctx)
	if err != nil {
		return us, err
	}
	if ok {
		us.BirthYears = &b
	}

	return us, nil
}

// Users prints user type counts, then gender counts and birth years when
// the dataset exposes them.
func (r *Reporter) Users(ctx context.Context, s store.Store) error {
	r.heading("Calculating User Stats...")
	start := r.now()

	us, err := ComputeUsers(ctx, s)
	if err != nil {
		return fmt.Errorf("user stats: %w", err)
	}

	r.counts("Count of users by type:", us.UserTypes)
	if s.Columns().Gender {
		r.counts("Count of users by gender:", us.Genders)
	}
	if us.BirthYears != nil {
		r.line("Earliest birth year:", us.BirthYears.Earliest)
		r.line("Most recent birth year:", us.BirthYears.MostRecent)
		r.line("Most common birth year:", us.BirthYears.MostCommon)
	}

	r.elapsed("users", start)
	return nil
}
