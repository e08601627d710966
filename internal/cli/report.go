package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/bikeshare/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print all statistics for one filter",
		Long:  "Load one city with the given month and day filters and print the time, station, duration and user statistics without prompting.",
		Run:   runReport,
	}

	addFilterFlags(cmd)

	RootCmd.AddCommand(cmd)
}

func runReport(cmd *cobra.Command, args []string) {
	f := filterFromFlags(cmd)
	cfg, logger := setup()

	s, err := openTrips(cmd.Context(), cfg, logger, f)
	if err != nil {
		exitErr("load", err)
	}
	defer s.Close()

	if formatFlag == "json" {
		sum, err := report.Summarize(cmd.Context(), s)
		if err != nil {
			exitErr("report", err)
		}
		b, _ := json.MarshalIndent(sum, "", "  ")
		fmt.Println(string(b))
		return
	}

	r := report.New(os.Stdout, report.Options{Styles: stdoutStyles(), Logger: logger})
	if err := r.All(cmd.Context(), s); err != nil {
		exitErr("report", err)
	}
}
