// Package report computes and prints the bikeshare statistics.
package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rcliao/bikeshare/internal/model"
	"github.com/rcliao/bikeshare/internal/store"
)

// Separator closes every report section.
var Separator = strings.Repeat("-", 40)

// NotAvailable is printed when a statistic has no values to work from.
const NotAvailable = "n/a"

// Styles controls how headings and labels render.
type Styles struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
}

// PlainStyles renders everything as plain text.
func PlainStyles() Styles {
	return Styles{
		Heading: lipgloss.NewStyle(),
		Label:   lipgloss.NewStyle(),
		Value:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
	}
}

// DefaultStyles returns colored styles bound to the renderer for w.
func DefaultStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Label:   r.NewStyle().Foreground(lipgloss.Color("244")),
		Value:   r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Options configures a Reporter.
type Options struct {
	Styles *Styles
	// Now is the clock used for elapsed time lines; defaults to time.Now.
	Now    func() time.Time
	Logger *slog.Logger
}

// Reporter prints statistics sections to a writer.
type Reporter struct {
	out    io.Writer
	styles Styles
	now    func() time.Time
	logger *slog.Logger
}

// New creates a Reporter writing to w.
func New(w io.Writer, opts Options) *Reporter {
	styles := PlainStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reporter{out: w, styles: styles, now: now, logger: logger}
}

// Summary is every statistic for one filtered dataset.
type Summary struct {
	Dataset   string        `json:"dataset"`
	Filter    model.Filter  `json:"filter"`
	Trips     int           `json:"trips"`
	Times     TimeStats     `json:"times"`
	Stations  StationStats  `json:"stations"`
	Durations DurationStats `json:"durations"`
	Users     UserStats     `json:"users"`
}

// Summarize computes all four statistic groups without printing.
func Summarize(ctx context.Context, s store.Store) (*Summary, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}
	sum := &Summary{Dataset: s.ID(), Filter: s.Filter(), Trips: n}

	if sum.Times, err = ComputeTimes(ctx, s); err != nil {
		return nil, err
	}
	if sum.Stations, err = ComputeStations(ctx, s); err != nil {
		return nil, err
	}
	if sum.Durations, err = ComputeDurations(ctx, s); err != nil {
		return nil, err
	}
	if sum.Users, err = ComputeUsers(ctx, s); err != nil {
		return nil, err
	}
	return sum, nil
}

// All prints the time, station, duration and user sections in that order.
func (r *Reporter) All(ctx context.Context, s store.Store) error {
	sections := []func(context.Context, store.Store) error{
		r.Times,
		r.Stations,
		r.Durations,
		r.Users,
	}
	for _, section := range sections {
		if err := section(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) heading(title string) {
	fmt.Fprintf(r.out, "\n%s\n\n", r.styles.Heading.Render(title))
}

func (r *Reporter) line(label string, value interface{}) {
	fmt.Fprintf(r.out, "\n%s %s\n", r.styles.Label.Render(label), r.styles.Value.Render(fmt.Sprint(value)))
}

func (r *Reporter) counts(label string, counts []store.Count) {
	fmt.Fprintf(r.out, "\n%s\n\n", r.styles.Label.Render(label))
	width := 0
	for _, c := range counts {
		if len(c.Value) > width {
			width = len(c.Value)
		}
	}
	for _, c := range counts {
		fmt.Fprintf(r.out, "%-*s  %d\n", width, c.Value, c.N)
	}
}

// elapsed prints the timing footer for a section started at start.
func (r *Reporter) elapsed(section string, start time.Time) {
	d := r.now().Sub(start)
	r.logger.Debug("section done", "section", section, "elapsed", d)
	fmt.Fprintf(r.out, "\n%s\n", r.styles.Muted.Render(fmt.Sprintf("This took %v seconds.", d.Seconds())))
	fmt.Fprintln(r.out, Separator)
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
