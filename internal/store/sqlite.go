package store

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/bikeshare/internal/model"
)

// TimeLayout is the timestamp format used by the trip CSVs.
const TimeLayout = "2006-01-02 15:04:05"

var timeLayouts = []string{
	TimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"1/2/2006 15:04",
}

// CSV header names.
const (
	hdrStartTime    = "Start Time"
	hdrEndTime      = "End Time"
	hdrDuration     = "Trip Duration"
	hdrStartStation = "Start Station"
	hdrEndStation   = "End Station"
	hdrUserType     = "User Type"
	hdrGender       = "Gender"
	hdrBirthYear    = "Birth Year"
)

var requiredHeaders = []string{hdrStartTime, hdrEndTime, hdrDuration, hdrStartStation, hdrEndStation, hdrUserType}

// Options configures a loaded store.
type Options struct {
	Logger *slog.Logger
}

// SQLiteStore implements Store on a private in-memory SQLite database.
type SQLiteStore struct {
	db      *sql.DB
	id      string
	filter  model.Filter
	columns model.Columns
	logger  *slog.Logger
}

// Open creates an empty trips table in a fresh in-memory database.
func Open(ctx context.Context, f model.Filter, opts Options) (*SQLiteStore, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	id := ulid.Make().String()
	db, err := sql.Open("sqlite", "file:"+id+"?mode=memory&cache=shared")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// The database lives only as long as a connection does.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{
		db:     db,
		id:     id,
		filter: f,
		logger: logger.With("dataset", id),
	}

	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Load reads the CSV at path into a new store, keeping only rows that match f.
func Load(ctx context.Context, path string, f model.Filter, opts Options) (*SQLiteStore, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer file.Close()

	s, err := LoadReader(ctx, file, f, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// LoadReader is Load for an already opened CSV stream.
func LoadReader(ctx context.Context, r io.Reader, f model.Filter, opts Options) (*SQLiteStore, error) {
	s, err := Open(ctx, f, opts)
	if err != nil {
		return nil, err
	}
	if err := s.importCSV(ctx, r); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS trips (
		idx           TEXT,
		start_time    TEXT NOT NULL,
		end_time      TEXT,
		trip_duration REAL,
		start_station TEXT,
		end_station   TEXT,
		trip          TEXT,
		user_type     TEXT,
		gender        TEXT,
		birth_year    REAL,
		month         INTEGER NOT NULL,
		day_of_week   TEXT NOT NULL,
		hour          INTEGER NOT NULL
	);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

type header map[string]int

func (h header) get(rec []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func (s *SQLiteStore) importCSV(ctx context.Context, r io.Reader) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	names, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("read header: empty file")
		}
		return fmt.Errorf("read header: %w", err)
	}

	h := header{}
	for i, name := range names {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		h[name] = i
	}
	for _, name := range requiredHeaders {
		if _, ok := h[name]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	_, s.columns.Index = h[""]
	_, s.columns.Gender = h[hdrGender]
	_, s.columns.BirthYear = h[hdrBirthYear]

	month := s.filter.MonthIndex()
	day := ""
	if s.filter.Day != "" && s.filter.Day != model.All {
		day = model.Title(s.filter.Day)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO trips (idx, start_time, end_time, trip_duration, start_station, end_station, trip,
		                    user_type, gender, birth_year, month, day_of_week, hour)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	read, kept := 0, 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}
		read++

		t, err := parseRow(h, rec, s.columns)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return fmt.Errorf("line %d: %w", line, err)
		}
		if month != 0 && t.Month != month {
			continue
		}
		if day != "" && !strings.EqualFold(t.Weekday, day) {
			continue
		}

		var trip *string
		if t.StartStation != "" && t.EndStation != "" {
			v := t.StartStation + " to " + t.EndStation
			trip = &v
		}
		var duration *float64
		if d := h.get(rec, hdrDuration); d != "" {
			duration = &t.Duration
		}

		_, err = stmt.ExecContext(ctx,
			nullString(t.Index), t.StartTime.Format(TimeLayout), nullString(t.EndTime), duration,
			nullString(t.StartStation), nullString(t.EndStation), trip,
			nullString(t.UserType), nullString(t.Gender), t.BirthYear,
			t.Month, t.Weekday, t.Hour)
		if err != nil {
			return fmt.Errorf("insert trip: %w", err)
		}
		kept++
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Debug("loaded trips", "filter", s.filter.String(), "read", read, "kept", kept,
		"gender", s.columns.Gender, "birth_year", s.columns.BirthYear)
	return nil
}

func parseRow(h header, rec []string, cols model.Columns) (model.Trip, error) {
	var t model.Trip

	start, err := parseTime(h.get(rec, hdrStartTime))
	if err != nil {
		return t, err
	}
	t.StartTime = start
	t.Month = int(start.Month())
	t.Weekday = start.Weekday().String()
	t.Hour = start.Hour()

	if cols.Index {
		t.Index = h.get(rec, "")
	}
	t.EndTime = h.get(rec, hdrEndTime)
	t.StartStation = h.get(rec, hdrStartStation)
	t.EndStation = h.get(rec, hdrEndStation)
	t.UserType = h.get(rec, hdrUserType)

	if d := h.get(rec, hdrDuration); d != "" {
		t.Duration, err = strconv.ParseFloat(d, 64)
		if err != nil {
			return t, fmt.Errorf("parse trip duration %q: %w", d, err)
		}
	}
	if cols.Gender {
		t.Gender = h.get(rec, hdrGender)
	}
	if cols.BirthYear {
		if y := h.get(rec, hdrBirthYear); y != "" {
			v, err := strconv.ParseFloat(y, 64)
			if err != nil {
				return t, fmt.Errorf("parse birth year %q: %w", y, err)
			}
			t.BirthYear = &v
		}
	}
	return t, nil
}

func parseTime(v string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse start time %q", v)
}

func nullString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// ID returns the dataset's ULID.
func (s *SQLiteStore) ID() string { return s.id }

func (s *SQLiteStore) Filter() model.Filter { return s.filter }

func (s *SQLiteStore) Columns() model.Columns { return s.columns }

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trips`).Scan(&n)
	return n, err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
