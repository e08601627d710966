package cli

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/bikeshare/internal/report"
	"github.com/rcliao/bikeshare/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print random raw trip rows",
		Run:   runSample,
	}

	addFilterFlags(cmd)
	cmd.Flags().IntP("rows", "n", 5, "Number of rows")
	cmd.Flags().Int64("seed", 0, "Random seed (0 picks one from the clock)")

	RootCmd.AddCommand(cmd)
}

func runSample(cmd *cobra.Command, args []string) {
	f := filterFromFlags(cmd)
	n, _ := cmd.Flags().GetInt("rows")
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg, logger := setup()
	s, err := openTrips(cmd.Context(), cfg, logger, f)
	if err != nil {
		exitErr("load", err)
	}
	defer s.Close()

	trips, err := s.Sample(cmd.Context(), store.SampleParams{N: n, Rand: rand.New(rand.NewSource(seed))})
	if err != nil {
		exitErr("sample", err)
	}

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(trips, "", "  ")
		fmt.Println(string(b))
		return
	}
	if len(trips) == 0 {
		fmt.Println("No rows to display.")
		return
	}
	report.New(os.Stdout, report.Options{Styles: stdoutStyles()}).Rows(trips, s.Columns())
}
