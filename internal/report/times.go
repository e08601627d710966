package report

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rcliao/bikeshare/internal/model"
	"github.com/rcliao/bikeshare/internal/store"
)

// TimeStats holds the most frequent times of travel.
type TimeStats struct {
	Month   string `json:"most_common_month,omitempty"`
	Weekday string `json:"most_common_day_of_week,omitempty"`
	Hour    *int   `json:"most_common_start_hour,omitempty"`
}

// ComputeTimes reads the month, weekday and hour modes from the columns
// derived at load time.
func ComputeTimes(ctx context.Context, s store.Store) (TimeStats, error) {
	var ts TimeStats

	month, ok, err := s.Mode(ctx, store.ColMonth)
	if err != nil {
		return ts, err
	}
	if ok {
		n, err := strconv.Atoi(month.Value)
		if err != nil {
			return ts, fmt.Errorf("month %q: %w", month.Value, err)
		}
		ts.Month = model.MonthName(n)
	}

	day, ok, err := s.Mode(ctx, store.ColWeekday)
	if err != nil {
		return ts, err
	}
	if ok {
		ts.Weekday = day.Value
	}

	hour, ok, err := s.Mode(ctx, store.ColHour)
	if err != nil {
		return ts, err
	}
	if ok {
		h, err := strconv.Atoi(hour.Value)
		if err != nil {
			return ts, fmt.Errorf("hour %q: %w", hour.Value, err)
		}
		ts.Hour = &h
	}

	return ts, nil
}

// Times prints the most frequent month, weekday and start hour.
func (r *Reporter) Times(ctx context.Context, s store.Store) error {
	r.heading("Calculating The Most Frequent Times of Travel...")
	start := r.now()

	ts, err := ComputeTimes(ctx, s)
	if err != nil {
		return fmt.Errorf("time stats: %w", err)
	}

	hour := NotAvailable
	if ts.Hour != nil {
		hour = strconv.Itoa(*ts.Hour)
	}
	r.line("Most common month:", orNA(ts.Month))
	r.line("Most common day of week:", orNA(ts.Weekday))
	r.line("Most common start hour:", hour)

	r.elapsed("times", start)
	return nil
}
