// Package testutil writes small trip datasets for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ChicagoCSV has gender and birth year columns.
//
// Rows by filter: march → 0,1,2; monday → 0,1,3; march+monday → 0,1.
const ChicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
0,2017-03-06 08:10:00,2017-03-06 08:20:00,600,A,B,Subscriber,Male,1990.0
1,2017-03-06 08:30:00,2017-03-06 08:40:00,600,A,B,Subscriber,Female,1985.0
2,2017-03-07 17:05:00,2017-03-07 17:25:00,1200,B,C,Customer,,
3,2017-01-02 09:00:00,2017-01-02 09:05:00,300,C,A,Subscriber,Male,1990.0
4,2017-06-10 12:00:00,2017-06-10 12:30:00,1800,A,C,Customer,,
`

// NewYorkCSV has gender and birth year columns.
const NewYorkCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
5688089,2017-06-11 14:55:05,2017-06-11 15:08:21,795,Suffolk St & Stanton St,W Broadway & Spring St,Subscriber,Male,1998.0
4096714,2017-05-11 15:30:11,2017-05-11 15:41:43,692,Lispenard St & Broadway,Pike St & Monroe St,Subscriber,Male,1981.0
2173887,2017-03-29 13:26:26,2017-03-29 13:48:31,1325,Broadway & W 60 St,9 Ave & W 45 St,Subscriber,Female,1987.0
`

// WashingtonCSV lacks gender and birth year columns.
const WashingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
0,2017-03-06 08:10:00,2017-03-06 08:20:00,600.5,X,Y,Subscriber
1,2017-03-07 09:10:00,2017-03-07 09:20:00,599.5,X,Z,Customer
`

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// DataDir returns a temp directory holding all three city files.
func DataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "chicago.csv", ChicagoCSV)
	WriteFile(t, dir, "new_york_city.csv", NewYorkCSV)
	WriteFile(t, dir, "washington.csv", WashingtonCSV)
	return dir
}
