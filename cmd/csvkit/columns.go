package main

import (
	"github.com/spf13/cobra"

	"github.com/oleg578/csvkit"
)

func (a *app) newColumnsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Add or drop a column and write the result to stdout",
	}

	var value string
	add := &cobra.Command{
		Use:   "add FILE",
		Short: "Append a column holding --value to every row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := a.readRows(cmd, args[0])
			if err != nil {
				return err
			}
			if err := csvkit.AddColumn(rows, value); err != nil {
				return err
			}
			return a.writeRows(cmd, rows)
		},
	}
	add.Flags().StringVar(&value, "value", "", "value of the new column")

	var index int
	drop := &cobra.Command{
		Use:   "drop FILE",
		Short: "Remove the column at --index (0-based) from every row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := a.readRows(cmd, args[0])
			if err != nil {
				return err
			}
			if err := csvkit.DropColumn(rows, index); err != nil {
				return err
			}
			return a.writeRows(cmd, rows)
		},
	}
	drop.Flags().IntVar(&index, "index", 0, "0-based column index")
	_ = drop.MarkFlagRequired("index")

	cmd.AddCommand(add, drop)
	return cmd
}
