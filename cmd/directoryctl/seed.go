package main

import (
	"fmt"
	"io"

	"github.com/countydirectory/internal/db"
	"github.com/countydirectory/internal/seed"
	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"
)

var seedDryRun bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the bundled towns, schools, teams, food trucks and pages",
	Long: `seed validates every bundled page fixture and then upserts the
directory data and pages. Running it twice updates rows in place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := seed.Load()
		if err != nil {
			return fmt.Errorf("load fixtures: %w", err)
		}
		if seedDryRun {
			if err := ds.ValidatePages(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "fixtures ok: %d towns, %d schools, %d sports teams, %d food trucks, %d pages\n",
				len(ds.Towns), len(ds.Schools), len(ds.SportsTeams), len(ds.FoodTrucks), len(ds.Pages))
			return nil
		}

		gdb, err := db.Open(appConfig.DatabaseURL, logger.Warn)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		result, err := seed.Run(gdb, ds, log)
		if err != nil {
			return err
		}
		printSeedResult(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "validate fixtures without writing")
}

func printSeedResult(w io.Writer, r *seed.Result) {
	rows := []struct {
		name string
		c    seed.Counts
	}{
		{"towns", r.Towns},
		{"schools", r.Schools},
		{"sports teams", r.SportsTeams},
		{"food trucks", r.FoodTrucks},
		{"pages", r.Pages},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%-13s created %3d  updated %3d\n", row.name, row.c.Created, row.c.Updated)
	}
	for _, name := range r.UnmatchedTowns {
		fmt.Fprintf(w, "warning: no town named %q\n", name)
	}
}
