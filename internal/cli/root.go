// Package cli implements the mayacal command-line interface.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/mayacal-api/internal/calendar"
)

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "mayacal",
		Short:        "Convert between Gregorian, Tzolkʼin and Haabʼ dates",
		SilenceUsage: true,
	}

	cmd.AddCommand(convertCmd())
	cmd.AddCommand(tzolkinCmd())
	cmd.AddCommand(haabCmd())
	return cmd
}

// startDate parses the --start flag, defaulting to today.
func startDate(flag string) (time.Time, error) {
	if flag == "" {
		return time.Now(), nil
	}
	return calendar.ParseDateString(flag)
}

// printDates writes one search result date per line.
func printDates(cmd *cobra.Command, dates []time.Time) {
	for _, d := range dates {
		fmt.Fprintln(cmd.OutOrStdout(), calendar.FormatDate(d))
	}
}
