package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/rcliao/bikeshare/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "cities",
		Short: "List supported cities and their data files",
		Run:   runCities,
	}

	RootCmd.AddCommand(cmd)
}

type cityRow struct {
	City   string `json:"city"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

func runCities(cmd *cobra.Command, args []string) {
	cfg, _ := setup()

	var rows []cityRow
	for _, city := range model.Cities {
		path, err := cfg.CityPath(city)
		if err != nil {
			exitErr("cities", err)
		}
		_, statErr := os.Stat(path)
		rows = append(rows, cityRow{City: city, Path: path, Exists: statErr == nil})
	}

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(rows, "", "  ")
		fmt.Println(string(b))
		return
	}

	tbl := table.New().Border(lipgloss.HiddenBorder()).Headers("CITY", "FILE", "STATUS")
	for _, r := range rows {
		status := "ok"
		if !r.Exists {
			status = "missing"
		}
		tbl.Row(r.City, r.Path, status)
	}
	fmt.Println(tbl.Render())
}
