package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/holdback-dev/holdback/internal/match"
	"github.com/holdback-dev/holdback/internal/model"
)

func newBillCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Manage declared bills",
	}
	cmd.AddCommand(newBillAddCommand())
	cmd.AddCommand(newBillListCommand())
	cmd.AddCommand(newBillRemoveCommand())
	return cmd
}

func newBillAddCommand() *cobra.Command {
	var vendor string
	var amount string
	var dueDay int
	var category string
	var oneTime bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Declare a bill",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			return runBillAdd(ws, vendor, amount, dueDay, category, oneTime)
		},
	}

	cmd.Flags().StringVar(&vendor, "vendor", "", "vendor name as it appears on statements (required)")
	_ = cmd.MarkFlagRequired("vendor")
	cmd.Flags().StringVar(&amount, "amount", "", "typical amount, e.g. 52.40 (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().IntVar(&dueDay, "due-day", 0, "day of month the bill is due, 1-31 (required)")
	_ = cmd.MarkFlagRequired("due-day")
	cmd.Flags().StringVar(&category, "category", string(model.CategoryMisc), "bill category")
	cmd.Flags().BoolVar(&oneTime, "one-time", false, "bill does not repeat")

	return cmd
}

func runBillAdd(ws *workspace, vendor, amount string, dueDay int, category string, oneTime bool) error {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if dueDay < 1 || dueDay > 31 {
		return fmt.Errorf("due day must be 1-31, got %d", dueDay)
	}
	cat := model.Category(category)
	if !cat.Valid() {
		return fmt.Errorf("unknown category %q", category)
	}

	billType := model.BillRecurring
	if oneTime {
		billType = model.BillOneTime
	}
	bill := model.Bill{
		ID:       uuid.NewString(),
		Vendor:   vendor,
		Amount:   amt.Abs(),
		DueDay:   dueDay,
		Category: cat,
		Active:   true,
		Type:     billType,
	}

	bills, err := ws.store.LoadBills()
	if err != nil {
		return fmt.Errorf("loading bills: %w", err)
	}
	bills = append(bills, bill)
	if err := ws.store.SaveBills(bills); err != nil {
		return fmt.Errorf("saving bills: %w", err)
	}

	fmt.Printf("Added bill %s: %s %s due on day %d\n", bill.ID, vendor, amt.Abs().StringFixed(2), dueDay)
	return nil
}

func newBillListCommand() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bills with this month's paid status",
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
			return runBillList(ws, ref, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "reference date (YYYY-MM-DD, default today)")

	return cmd
}

func runBillList(ws *workspace, ref time.Time, w io.Writer) error {
	bills, err := ws.store.LoadBills()
	if err != nil {
		return fmt.Errorf("loading bills: %w", err)
	}
	if len(bills) == 0 {
		fmt.Fprintln(w, "No bills declared")
		return nil
	}

	// The paid status is recomputed from the ledger; a missing ledger just
	// means nothing is resolved yet.
	txns, _ := loadLedger(ws)
	resolutions := match.Resolve(bills, txns, ref)

	for _, bill := range bills {
		if !bill.Active {
			fmt.Fprintf(w, "%s  %-24s  %10s  inactive\n",
				bill.ID, bill.Vendor, bill.Amount.StringFixed(2))
			continue
		}
		status := fmt.Sprintf("due %s", bill.DueDate(ref).Format("Jan 2"))
		if res := resolutions[bill.ID]; res.Found {
			status = fmt.Sprintf("paid %s (%s)", res.Date.Format("Jan 2"), res.Amount.Abs().StringFixed(2))
		}
		fmt.Fprintf(w, "%s  %-24s  %10s  %s\n",
			bill.ID, bill.Vendor, bill.Amount.StringFixed(2), status)
	}
	return nil
}

func newBillRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <bill-id>",
		Short: "Deactivate a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			return runBillRemove(ws, args[0])
		},
	}
	return cmd
}

func runBillRemove(ws *workspace, id string) error {
	bills, err := ws.store.LoadBills()
	if err != nil {
		return fmt.Errorf("loading bills: %w", err)
	}

	found := false
	for i := range bills {
		if bills[i].ID == id {
			bills[i].Active = false
			found = true
		}
	}
	if !found {
		return fmt.Errorf("no bill with id %s", id)
	}

	if err := ws.store.SaveBills(bills); err != nil {
		return fmt.Errorf("saving bills: %w", err)
	}
	fmt.Printf("Deactivated bill %s\n", id)
	return nil
}
