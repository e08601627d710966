package report

import (
	"context"
	"fmt"

	"github.com/rcliao/bikeshare/internal/store"
)

// DurationStats holds travel time totals in whole minutes.
type DurationStats struct {
	Trips        int `json:"trips"`
	TotalMinutes int `json:"total_minutes"`
	MeanMinutes  int `json:"mean_minutes"`
}

// ComputeDurations converts the second totals to minutes, truncating.
func ComputeDurations(ctx context.Context, s store.Store) (DurationStats, error) {
	d, err := s.Durations(ctx)
	if err != nil {
		return DurationStats{}, err
	}
	return DurationStats{
		Trips:        d.Trips,
		TotalMinutes: int(d.Total / 60),
		MeanMinutes:  int(d.Mean / 60),
	}, nil
}

// Durations prints total and mean travel time.
func (r *Reporter) Durations(ctx context.Context, s store.Store) error {
	r.heading("Calculating Trip Duration...")
	start := r.now()

	ds, err := ComputeDurations(ctx, s)
	if err != nil {
		return fmt.Errorf("trip duration stats: %w", err)
	}

	r.line("Total travel time in this period in minutes:", ds.TotalMinutes)
	r.line("Average (mean) travel time in this period in minutes:", ds.MeanMinutes)

	r.elapsed("durations", start)
	return nil
}
