package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/oleg578/csvkit"
)

type fileStats struct {
	path       string
	rows       int
	maxColumns int
}

func (a *app) newCountCmd() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "count FILE...",
		Short: "Count rows and the widest row of each FILE",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := make([]fileStats, len(args))

			var g errgroup.Group
			if jobs > 0 {
				g.SetLimit(jobs)
			}
			for i, path := range args {
				path := path
				stats[i].path = path
				cfg := a.parserConfig()
				cfg.UserData = &stats[i]
				cfg.RowHandler = countRow
				g.Go(func() error {
					return csvkit.ParseFile(path, cfg)
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range stats {
				a.logger.Debug("counted file", zap.String("path", s.path), zap.Int("rows", s.rows))
				fmt.Fprintf(out, "%s\t%d rows\t%d columns\n", s.path, s.rows, s.maxColumns)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "files parsed concurrently")
	return cmd
}

func countRow(_ int, columns []string, userData any) {
	s := userData.(*fileStats)
	s.rows++
	s.maxColumns = max(s.maxColumns, len(columns))
}
