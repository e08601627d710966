package session

import (
	"context"
	"fmt"

	"github.com/rcliao/bikeshare/internal/report"
	"github.com/rcliao/bikeshare/internal/store"
)

// viewRows shows RowsPerPage random rows for every "yes" until "no".
// Batches are sampled independently and may repeat rows.
func (s *Session) viewRows(ctx context.Context, st store.Store) error {
	for {
		yes, err := s.prompt.YesNo(fmt.Sprintf("\nWould you like to see %d rows of raw data? Enter yes or no.\n", RowsPerPage))
		if err != nil {
			return err
		}
		if !yes {
			return nil
		}

		start := s.now()
		fmt.Fprintf(s.out, "Preparing %d random rows of data...\n\n", RowsPerPage)
		trips, err := st.Sample(ctx, store.SampleParams{N: RowsPerPage, Rand: s.rng})
		if err != nil {
			return fmt.Errorf("sample rows: %w", err)
		}
		if len(trips) == 0 {
			fmt.Fprintln(s.out, "No rows to display.")
		} else {
			s.reporter.Rows(trips, st.Columns())
		}
		fmt.Fprintf(s.out, "\nThis took %v seconds.\n", s.now().Sub(start).Seconds())
		fmt.Fprintln(s.out, report.Separator)
	}
}
