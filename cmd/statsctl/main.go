// Command statsctl is the Statline one-shot CLI. It drives the same fetch
// and view pipeline as the API server, without the server.
//
// Usage:
//
//	statsctl fetch --year 2024
//	statsctl export --year 2024 --out nba_2024.csv --teams LAL,BOS --min-games 20
//	statsctl top --year 2024 --column PTS --n 10
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/courtside/statline/internal/bbref"
	"github.com/courtside/statline/internal/config"
	"github.com/courtside/statline/internal/season"
	"github.com/courtside/statline/internal/stats"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "statsctl",
		Short: "Statline fetch and export CLI",
	}

	root.AddCommand(fetchCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(topCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// fetch command
// --------------------------------------------------------------------------

func fetchCmd() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch a season and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSeason(year, func(table *season.Table) error {
				logger.Info("season summary",
					"year", table.Year,
					"rows", table.Len(),
					"columns", len(table.Columns))
				for _, s := range stats.Summary(table) {
					fmt.Printf("%-8s count=%-5d mean=%-8.2f min=%-8.2f max=%.2f\n",
						s.Column, s.Count, s.Mean, s.Min, s.Max)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", config.CurrentSeason(time.Now()), "Season year")
	return cmd
}

// --------------------------------------------------------------------------
// export command
// --------------------------------------------------------------------------

func exportCmd() *cobra.Command {
	var (
		year      int
		out       string
		teams     []string
		positions []string
		minGames  float64
		minPoints float64
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a filtered season table as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSeason(year, func(table *season.Table) error {
				filtered := stats.Filter(table, stats.Selection{
					Teams:     teams,
					Positions: positions,
					MinGames:  minGames,
					MinPoints: minPoints,
				})

				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()

				if err := stats.WriteCSV(f, filtered); err != nil {
					return err
				}
				logger.Info("export finished", "out", out, "rows", filtered.Len())
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", config.CurrentSeason(time.Now()), "Season year")
	cmd.Flags().StringVar(&out, "out", "nba_stats.csv", "Output CSV path")
	cmd.Flags().StringSliceVar(&teams, "teams", nil, "Team codes (empty = all)")
	cmd.Flags().StringSliceVar(&positions, "positions", nil, "Positions (empty = all)")
	cmd.Flags().Float64Var(&minGames, "min-games", 0, "Minimum games played")
	cmd.Flags().Float64Var(&minPoints, "min-points", 0, "Minimum points per game")
	return cmd
}

// --------------------------------------------------------------------------
// top command
// --------------------------------------------------------------------------

func topCmd() *cobra.Command {
	var (
		year   int
		column string
		n      int
	)
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Print the top-N players by a numeric column",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSeason(year, func(table *season.Table) error {
				top, err := stats.TopN(table, column, n)
				if err != nil {
					return err
				}
				for i, r := range top.Rows {
					fmt.Printf("%2d. %-24s %-4s %-3s %.1f\n",
						i+1, r.Player, r.Team, r.Pos, r.Stats[column])
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", config.CurrentSeason(time.Now()), "Season year")
	cmd.Flags().StringVar(&column, "column", "PTS", "Canonical numeric column")
	cmd.Flags().IntVar(&n, "n", 10, "Row count")
	return cmd
}

// withSeason loads config, fetches one season, and runs fn over it.
func withSeason(year int, fn func(*season.Table) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	client := bbref.NewClient(cfg.ScrapeBaseURL, cfg.ScrapeUserAgent,
		cfg.ScrapePerMinute, cfg.ScrapeTimeout, cfg.MinYear, cfg.MaxYear, logger)

	start := time.Now()
	table, err := client.FetchSeason(ctx, year)
	if err != nil {
		return err
	}
	logger.Info("season fetched", "year", year, "elapsed", time.Since(start).Round(time.Millisecond))

	return fn(table)
}
