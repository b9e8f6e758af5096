package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

func newScheduleCommand() *cobra.Command {
	var asOf string
	var count int

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show upcoming commission payment dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			ref, err := refDate(asOf)
			if err != nil {
				return err
			}
			return runSchedule(ws, ref, count, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "reference date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&count, "count", 4, "number of upcoming payments to show")

	return cmd
}

func runSchedule(ws *workspace, ref time.Time, count int, w io.Writer) error {
	start, end := ws.sched.CurrentWindow(ref)
	fmt.Fprintf(w, "Current pay period: %s through %s\n",
		start.Format("Mon Jan 2 2006"), end.AddDate(0, 0, -1).Format("Mon Jan 2 2006"))

	cursor := ref
	for i := 0; i < count; i++ {
		next := ws.sched.NextPayment(cursor)
		fmt.Fprintf(w, "  %s  (%s)\n", next.PaymentDate.Format("Mon Jan 2 2006"), next.Label)
		cursor = next.PaymentDate
	}
	return nil
}
