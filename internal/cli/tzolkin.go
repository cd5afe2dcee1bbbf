package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/mayacal-api/internal/calendar"
)

func tzolkinCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "tzolkin",
		Short: "Search, diff and list Tzolkʼin dates",
	}

	c.AddCommand(
		tzolkinSearchCmd("next", true),
		tzolkinSearchCmd("last", false),
		tzolkinDiffCmd(),
		tzolkinCalendarCmd(),
	)
	return c
}

func tzolkinSearchCmd(name string, forward bool) *cobra.Command {
	var start string
	var count int

	short := "Find the next Gregorian dates with the given Tzolkʼin date"
	if !forward {
		short = "Find the previous Gregorian dates with the given Tzolkʼin date"
	}

	c := &cobra.Command{
		Use:   name + " DAY...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := calendar.ParseTzolkinDay(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}

			from, err := startDate(start)
			if err != nil {
				return err
			}

			printDates(cmd, calendar.TzolkinDates(day, from, count, forward))
			return nil
		},
	}

	c.Flags().StringVarP(&start, "start", "s", "", "Start date, YYYY-MM-DD (default: today)")
	c.Flags().IntVarP(&count, "count", "n", 1, "Number of dates to list")
	return c
}

func tzolkinDiffCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "diff FROM TO",
		Short: "Days to travel forward from one Tzolkʼin date to another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := calendar.ParseTzolkinDay(args[0])
			if err != nil {
				return err
			}
			to, err := calendar.ParseTzolkinDay(args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: %d days\n", from, to, calendar.TzolkinDiff(from, to))
			return nil
		},
	}
	return c
}

func tzolkinCalendarCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "calendar",
		Short: "List the full 260-day Tzolkʼin round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, day := range calendar.TzolkinCalendar() {
				fmt.Fprintln(cmd.OutOrStdout(), day)
			}
			return nil
		},
	}
	return c
}
