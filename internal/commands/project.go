package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/holdback-dev/holdback/internal/match"
	"github.com/holdback-dev/holdback/internal/project"
)

func newProjectCommand() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Show the safe-to-spend projection",
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
			return runProject(ws, ref, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "reference date (YYYY-MM-DD, default today)")

	return cmd
}

func runProject(ws *workspace, ref time.Time, w io.Writer) error {
	bills, err := ws.store.LoadBills()
	if err != nil {
		return fmt.Errorf("loading bills: %w", err)
	}
	commissions, err := ws.store.LoadCommissions()
	if err != nil {
		return fmt.Errorf("loading commissions: %w", err)
	}

	// A missing ledger is fine here; bills simply stay unresolved.
	txns, _ := loadLedger(ws)

	in := project.Input{
		Bills:          bills,
		Resolutions:    match.Resolve(bills, txns, ref),
		CurrentBalance: ws.cfg.CurrentBalance(),
		Commission:     project.NextCommission(commissions, ref),
	}
	p := project.Compute(in, ws.sched, ref)

	fmt.Fprintf(w, "As of %s\n", ref.Format("Mon Jan 2 2006"))
	fmt.Fprintf(w, "  Next payment:      %s\n", p.NextPaymentDate.Format("Mon Jan 2 2006"))
	if in.Commission != nil {
		fmt.Fprintf(w, "  Expected deposit:  %s on %s\n",
			in.Commission.Amount.StringFixed(2), in.Commission.ExpectedDate.Format("Jan 2"))
	}
	fmt.Fprintf(w, "  Liquidity:         %s\n", p.LiquidityBalance.StringFixed(2))
	fmt.Fprintf(w, "  Bills to hold for: %s\n", p.AmountToKeep.StringFixed(2))
	fmt.Fprintf(w, "  Safe to spend:     %s\n", p.SafeToSpend.StringFixed(2))
	fmt.Fprintf(w, "  Projected balance: %s\n", p.ProjectedBalance.StringFixed(2))
	fmt.Fprintf(w, "  Coverage:          %d%%\n", p.CoveragePercent)
	if p.IsShort {
		fmt.Fprintf(w, "  SHORT by %s before payday\n", p.Shortfall.StringFixed(2))
	}
	return nil
}
