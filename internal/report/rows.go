package report

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rcliao/bikeshare/internal/model"
	"github.com/rcliao/bikeshare/internal/store"
)

// RowHeaders returns the raw-row column titles for a dataset with cols.
func RowHeaders(cols model.Columns) []string {
	h := []string{}
	if cols.Index {
		h = append(h, "")
	}
	h = append(h, "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type")
	if cols.Gender {
		h = append(h, "Gender")
	}
	if cols.BirthYear {
		h = append(h, "Birth Year")
	}
	return append(h, "month", "day_of_week", "hour")
}

// RowValues formats t in RowHeaders order.
func RowValues(t model.Trip, cols model.Columns) []string {
	v := []string{}
	if cols.Index {
		v = append(v, t.Index)
	}
	v = append(v,
		t.StartTime.Format(store.TimeLayout),
		t.EndTime,
		strconv.FormatFloat(t.Duration, 'f', -1, 64),
		t.StartStation,
		t.EndStation,
		t.UserType,
	)
	if cols.Gender {
		v = append(v, t.Gender)
	}
	if cols.BirthYear {
		by := ""
		if t.BirthYear != nil {
			by = strconv.FormatFloat(*t.BirthYear, 'f', 0, 64)
		}
		v = append(v, by)
	}
	return append(v, strconv.Itoa(t.Month), t.Weekday, strconv.Itoa(t.Hour))
}

// Rows prints trips as a bordered table.
func (r *Reporter) Rows(trips []model.Trip, cols model.Columns) {
	rows := make([][]string, len(trips))
	for i, t := range trips {
		rows[i] = RowValues(t, cols)
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Muted).
		Headers(RowHeaders(cols)...).
		Rows(rows...)

	fmt.Fprintln(r.out, tbl.Render())
}
