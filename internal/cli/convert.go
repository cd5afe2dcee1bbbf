package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/mayacal-api/internal/calendar"
)

func convertCmd() *cobra.Command {
	var layout string

	c := &cobra.Command{
		Use:   "convert [DATE]",
		Short: "Convert a Gregorian date (default: today) to both calendars",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now()
			if len(args) == 1 {
				parsed, err := calendar.ParseDateLayout(args[0], layout)
				if err != nil {
					return err
				}
				date = parsed
			}

			tz := calendar.TzolkinFromDate(date)
			haab := calendar.HaabFromDate(date)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Gregorian: %s\n", calendar.FormatDate(date))
			fmt.Fprintf(out, "Tzolkʼin:  %s (day %d of %d)\n", tz, tz.CycleDay(), calendar.TzolkinDays)
			fmt.Fprintf(out, "Haabʼ:     %s (day %d of %d)\n", haab, haab.CycleDay(), calendar.HaabDays)
			return nil
		},
	}

	c.Flags().StringVarP(&layout, "layout", "l", "2006-01-02", "Go time layout used to parse DATE")
	return c
}
