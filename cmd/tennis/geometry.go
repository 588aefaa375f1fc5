package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tennis/internal/config"
	"github.com/vovakirdan/tui-tennis/internal/games/tennis"
)

var geometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Print the playfield layout",
	Long: `Print where paddles, ball, net and serve zone land in the pixel
viewport for the active calibration. Useful when tuning a custom config.

Examples:
  tennis geometry
  tennis geometry --config ./my-tennis.yaml`,
	Args: cobra.NoArgs,
	Run:  runGeometry,
}

func init() {
	geometryCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func runGeometry(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadTennis(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cal := tennis.OptionsFromConfig(cfg).Calibration
	g := tennis.DescribeGeometry(cal)

	rows := [][]string{
		{"viewport", fmt.Sprintf("%dx%d", cal.Width, cal.Height)},
		{"px per H / V", fmt.Sprintf("%.2f / %.2f", cal.PxPerHUnit, cal.PxPerVUnit)},
		{"paddle x (left, right)", fmt.Sprintf("%d, %d", g.PaddleX[0], g.PaddleX[1])},
		{"paddle size", fmt.Sprintf("%dx%d", g.PaddleW, g.PaddleH)},
		{"paddle y (start, range)", fmt.Sprintf("%d, [%d, %d]", g.PaddleStartY, g.PaddleMinY, g.PaddleMaxY)},
		{"segment ends", fmt.Sprint(g.SegmentEnds)},
		{"ball size", fmt.Sprintf("%dx%d", g.BallW, g.BallH)},
		{"serve point", fmt.Sprintf("(%.1f, %.1f)", g.SpawnX, g.SpawnY)},
		{"clear zone", fmt.Sprintf("(%d, %d)", g.ClearZone[0], g.ClearZone[1])},
		{"net", fmt.Sprintf("x=%d, %d segments", g.NetX, g.NetSegments)},
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Item", "Pixels").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	fmt.Println(t)
}
