package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"weightlog/app"
	"weightlog/domain/core"
	"weightlog/internal/config"
	"weightlog/internal/dates"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "weightlog",
		Short: "Track weight and BMI from a YAML measurement file",
	}

	rootCmd.AddCommand(
		newChartCmd(),
		newSummaryCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseAfter handles both the --after flag and the legacy positional form
// `chart after 1 Jan 2024`.
func parseAfter(flagValue string, args []string) (core.Day, error) {
	raw := flagValue
	if raw == "" && len(args) > 1 && strings.EqualFold(args[0], "after") {
		raw = strings.Join(args[1:], " ")
	}
	if raw == "" {
		return core.Day{}, nil
	}
	return dates.Parse(raw)
}

func loadConfig(dataPath, outPath string) config.Config {
	cfg := config.Load()
	if dataPath != "" {
		cfg.DataPath = dataPath
	}
	if outPath != "" {
		cfg.OutPath = outPath
	}
	return cfg
}

func newChartCmd() *cobra.Command {
	var dataPath string
	var outPath string
	var after string
	var horizon int

	cmd := &cobra.Command{
		Use:   "chart [after <date>]",
		Short: "Render the weight/height/BMI chart workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			afterDay, err := parseAfter(after, args)
			if err != nil {
				return err
			}

			svc := app.NewChartService(loadConfig(dataPath, outPath))
			result, err := svc.Run(app.ChartRequest{
				After:       afterDay,
				HorizonDays: horizon,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Wrote %s (%d days", result.OutPath, result.GridDays)
			if result.Extrapolated > 0 {
				fmt.Printf(", %d extrapolated", result.Extrapolated)
			}
			fmt.Println(")")
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "measurement YAML file (default data.yaml)")
	cmd.Flags().StringVar(&outPath, "out", "", "output workbook path (default weightlog.xlsx)")
	cmd.Flags().StringVar(&after, "after", "", "keep only samples on or after this date")
	cmd.Flags().IntVar(&horizon, "horizon", 0, "extrapolate this many days past the last sample")

	return cmd
}

func newSummaryCmd() *cobra.Command {
	var dataPath string
	var after string
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "summary [after <date>]",
		Short: "Print a summary report of observed samples and trends",
		RunE: func(cmd *cobra.Command, args []string) error {
			afterDay, err := parseAfter(after, args)
			if err != nil {
				return err
			}

			svc := app.NewSummaryService(loadConfig(dataPath, ""))
			out, err := svc.Run(app.SummaryRequest{
				After: afterDay,
				HTML:  asHTML,
			})
			if err != nil {
				return err
			}

			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "measurement YAML file (default data.yaml)")
	cmd.Flags().StringVar(&after, "after", "", "keep only samples on or after this date")
	cmd.Flags().BoolVar(&asHTML, "html", false, "render the report as HTML")

	return cmd
}
