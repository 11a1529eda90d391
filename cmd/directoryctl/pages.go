package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/countydirectory/internal/db"
	"github.com/countydirectory/internal/service"
	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"
)

var pagesPublishedOnly bool

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List stored pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		gdb, err := db.Open(appConfig.DatabaseURL, logger.Silent)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}

		svc := service.NewPageService(gdb)
		list := svc.List
		if pagesPublishedOnly {
			list = svc.ListPublished
		}
		pages, err := list()
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SLUG\tTITLE\tPUBLISHED\tSECTIONS")
		for _, p := range pages {
			fmt.Fprintf(tw, "%s\t%s\t%t\t%d\n", p.Slug, p.Title, p.IsPublished, p.SectionCount)
		}
		return tw.Flush()
	},
}

func init() {
	pagesCmd.Flags().BoolVar(&pagesPublishedOnly, "published", false, "only list published pages")
}
