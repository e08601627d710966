package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export filtered trips as JSON",
		Long:  "Export the trips matching the month and day filters, with derived month, day_of_week and hour, as a JSON array.",
		Run:   runExport,
	}

	addFilterFlags(cmd)

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	f := filterFromFlags(cmd)
	cfg, logger := setup()

	s, err := openTrips(cmd.Context(), cfg, logger, f)
	if err != nil {
		exitErr("load", err)
	}
	defer s.Close()

	trips, err := s.Trips(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}

	b, _ := json.MarshalIndent(trips, "", "  ")
	fmt.Println(string(b))
}
