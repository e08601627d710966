package report

import (
	"context"
	"fmt"

	"github.com/rcliao/bikeshare/internal/store"
)

// StationStats holds the most popular stations and trip.
type StationStats struct {
	Start string `json:"most_common_start_station,omitempty"`
	End   string `json:"most_common_end_station,omitempty"`
	Trip  string `json:"most_common_trip,omitempty"`
}

func ComputeStations(ctx context.Context, s store.Store) (StationStats, error) {
	var ss StationStats
	for _, f := range []struct {
		col  store.Column
		dest *string
	}{
		{store.ColStartStation, &ss.Start},
		{store.ColEndStation, &ss.End},
		{store.ColTrip, &ss.Trip},
	} {
		c, ok, err := s.Mode(ctx, f.col)
		if err != nil {
			return ss, err
		}
		if ok {
			*f.dest = c.Value
		}
	}
	return ss, nil
}

// Stations prints the most common start station, end station and trip.
func (r *Reporter) Stations(ctx context.Context, s store.Store) error {
	r.heading("Calculating The Most Popular Stations and Trip...")
	start := r.now()

	ss, err := ComputeStations(ctx, s)
	if err != nil {
		return fmt.Errorf("station stats: %w", err)
	}

	r.line("Most common start station:", orNA(ss.Start))
	r.line("Most common end station:", orNA(ss.End))
	r.line("Most frequent combination of start station and end station trip:", orNA(ss.Trip))

	r.elapsed("stations", start)
	return nil
}
