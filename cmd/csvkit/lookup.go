package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oleg578/csvkit"
	"github.com/oleg578/csvkit/dict"
)

const missingValue = "<missing>"

type lookupLoader struct {
	dict     *dict.Dictionary
	keyCol   int
	valueCol int
	header   bool
	skipped  int
	logger   *zap.Logger
}

func (a *app) newLookupCmd() *cobra.Command {
	var (
		keyCol   int
		valueCol int
		capacity int
		header   bool
	)

	cmd := &cobra.Command{
		Use:   "lookup FILE KEY...",
		Short: "Load FILE into a dictionary and print the value of each KEY",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if keyCol < 0 || valueCol < 0 {
				return fmt.Errorf("column indexes must not be negative (key %d, value %d)", keyCol, valueCol)
			}
			if !cmd.Flags().Changed("capacity") {
				capacity = a.cfg.Dictionary.Capacity
			}
			d, err := dict.New(capacity, dict.WithLogger(a.logger))
			if err != nil {
				return err
			}

			loader := &lookupLoader{
				dict:     d,
				keyCol:   keyCol,
				valueCol: valueCol,
				header:   header,
				logger:   a.logger,
			}
			cfg := a.parserConfig()
			cfg.UserData = loader
			cfg.RowHandler = loadRow
			if err := csvkit.ParseFile(args[0], cfg); err != nil {
				return err
			}
			a.logger.Debug("dictionary loaded",
				zap.Int("size", d.Size()),
				zap.Int("skipped", loader.skipped),
				zap.Float64("load_factor", d.LoadFactor()))

			out := cmd.OutOrStdout()
			for _, key := range args[1:] {
				value, ok := d.Get(key)
				if !ok {
					value = missingValue
				}
				fmt.Fprintf(out, "%s\t%s\n", key, value)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&keyCol, "key-col", 0, "0-based column holding keys")
	flags.IntVar(&valueCol, "value-col", 1, "0-based column holding values")
	flags.IntVar(&capacity, "capacity", dict.DefaultCapacity, "dictionary bucket count")
	flags.BoolVar(&header, "header", false, "skip the first row")
	return cmd
}

func loadRow(rowIndex int, columns []string, userData any) {
	l := userData.(*lookupLoader)
	if l.header && rowIndex == 0 {
		return
	}
	if l.keyCol >= len(columns) || l.valueCol >= len(columns) {
		l.skipped++
		l.logger.Warn("row too narrow for lookup columns",
			zap.Int("row", rowIndex),
			zap.Int("columns", len(columns)))
		return
	}
	if err := l.dict.Insert(columns[l.keyCol], columns[l.valueCol]); err != nil {
		if !errors.Is(err, dict.ErrEmptyKey) {
			l.logger.Error("dictionary insert failed", zap.Error(err))
		}
		l.skipped++
	}
}
