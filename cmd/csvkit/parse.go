package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oleg578/csvkit"
)

func (a *app) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE",
		Short: "Print every row of FILE (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.parserConfig()
			cfg.UserData = cmd.OutOrStdout()
			cfg.RowHandler = printRow

			if args[0] == "-" {
				return csvkit.ParseReader(cmd.InOrStdin(), cfg)
			}
			return csvkit.ParseFile(args[0], cfg)
		},
	}
}

func printRow(rowIndex int, columns []string, userData any) {
	fmt.Fprintf(userData.(io.Writer), "Row %d: %s\n", rowIndex, strings.Join(columns, ", "))
}
