package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rcliao/bikeshare/internal/model"
	"github.com/rcliao/bikeshare/internal/report"
	"github.com/rcliao/bikeshare/internal/store"
)

// RowsPerPage is how many raw rows each "yes" shows.
const RowsPerPage = 5

// Loader loads the filtered trip table for f.
type Loader func(ctx context.Context, f model.Filter) (store.Store, error)

// Options configures a Session.
type Options struct {
	// Rand drives raw row sampling; seeded from the clock when nil.
	Rand   *rand.Rand
	Now    func() time.Time
	Styles *report.Styles
	Logger *slog.Logger
}

// Session is one interactive run over a pair of console streams.
type Session struct {
	prompt   *Prompter
	out      io.Writer
	load     Loader
	reporter *report.Reporter
	rng      *rand.Rand
	now      func() time.Time
	logger   *slog.Logger
}

// New creates a Session reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, load Loader, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Session{
		prompt: NewPrompter(in, out),
		out:    out,
		load:   load,
		reporter: report.New(out, report.Options{
			Styles: opts.Styles,
			Now:    now,
			Logger: logger,
		}),
		rng:    rng,
		now:    now,
		logger: logger,
	}
}

// Run loops until the user declines to restart or input ends. Load and
// report errors are returned and end the loop.
func (s *Session) Run(ctx context.Context) error {
	for {
		again, err := s.runOnce(ctx)
		if errors.Is(err, io.EOF) {
			s.logger.Debug("input closed")
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
		fmt.Fprint(s.out, "\n\n\n")
	}
}

func (s *Session) runOnce(ctx context.Context) (bool, error) {
	f, err := CollectFilters(s.prompt)
	if err != nil {
		return false, err
	}
	fmt.Fprintln(s.out, report.Separator)

	st, err := s.load(ctx, f)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", f.City, err)
	}
	defer st.Close()
	s.logger.Info("dataset loaded", "dataset", st.ID(), "city", f.City, "month", f.Month, "day", f.Day)

	if err := s.reporter.All(ctx, st); err != nil {
		return false, err
	}
	if err := s.viewRows(ctx, st); err != nil {
		return false, err
	}

	return s.prompt.YesNo("\nWould you like to restart? Enter yes or no.\n")
}
