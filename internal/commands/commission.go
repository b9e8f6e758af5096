package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/holdback-dev/holdback/internal/model"
	"github.com/holdback-dev/holdback/internal/project"
)

func newCommissionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commission",
		Short: "Track expected commission deposits",
	}
	cmd.AddCommand(newCommissionAddCommand())
	cmd.AddCommand(newCommissionListCommand())
	return cmd
}

func newCommissionAddCommand() *cobra.Command {
	var amount string
	var date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expected commission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			return runCommissionAdd(ws, amount, date)
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "expected amount, e.g. 3200.00 (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&date, "date", "", "expected deposit date, YYYY-MM-DD (default next payday)")

	return cmd
}

func runCommissionAdd(ws *workspace, amount, date string) error {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	var expected time.Time
	var period model.PaymentPeriod
	if date == "" {
		today, err := refDate("")
		if err != nil {
			return err
		}
		period = ws.sched.NextPayment(today)
		expected = period.PaymentDate
	} else {
		expected, err = refDate(date)
		if err != nil {
			return err
		}
		period = ws.sched.NextPayment(expected.AddDate(0, 0, -1))
	}

	commissions, err := ws.store.LoadCommissions()
	if err != nil {
		return fmt.Errorf("loading commissions: %w", err)
	}
	commissions = append(commissions, model.PendingCommission{
		Amount:       amt,
		ExpectedDate: expected,
		CutoffLabel:  period.Label,
	})
	if err := ws.store.SaveCommissions(commissions); err != nil {
		return fmt.Errorf("saving commissions: %w", err)
	}

	fmt.Printf("Expecting %s on %s (%s)\n", amt.StringFixed(2), expected.Format("2006-01-02"), period.Label)
	return nil
}

func newCommissionListCommand() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expected commissions",
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
			return runCommissionList(ws, ref, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "reference date (YYYY-MM-DD, default today)")

	return cmd
}

func runCommissionList(ws *workspace, ref time.Time, w io.Writer) error {
	commissions, err := ws.store.LoadCommissions()
	if err != nil {
		return fmt.Errorf("loading commissions: %w", err)
	}
	if len(commissions) == 0 {
		fmt.Fprintln(w, "No commissions expected")
		return nil
	}

	// NextCommission points into the slice, so the marker compares by
	// identity rather than by field values.
	next := project.NextCommission(commissions, ref)
	for i := range commissions {
		c := commissions[i]
		marker := " "
		if next == &commissions[i] {
			marker = ">"
		}
		label := c.CutoffLabel
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(w, "%s %s  %10s  %s\n",
			marker, c.ExpectedDate.Format("2006-01-02"), c.Amount.StringFixed(2), label)
	}
	return nil
}
