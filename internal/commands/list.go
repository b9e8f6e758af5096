package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/holdback-dev/holdback/internal/export"
	"github.com/holdback-dev/holdback/internal/model"
)

func newListCommand() *cobra.Command {
	var limit int
	var recurringOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List processed transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			return runList(ws, limit, recurringOnly, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 25, "maximum rows to print (0 for all)")
	cmd.Flags().BoolVar(&recurringOnly, "recurring", false, "only show recurring transactions")

	return cmd
}

func runList(ws *workspace, limit int, recurringOnly bool, w io.Writer) error {
	txns, err := loadLedger(ws)
	if err != nil {
		return err
	}

	printed := 0
	for _, txn := range txns {
		if recurringOnly && !txn.IsRecurring {
			continue
		}
		if limit > 0 && printed >= limit {
			break
		}
		marker := " "
		if txn.IsRecurring {
			marker = "R"
		}
		fmt.Fprintf(w, "%s  %10s  %s %-14s  %s\n",
			txn.Date.Format("2006-01-02"),
			txn.Amount.StringFixed(2),
			marker,
			txn.Category,
			txn.Description)
		printed++
	}
	fmt.Fprintf(w, "%d of %d transaction(s)\n", printed, len(txns))
	return nil
}

// loadLedger reads the processed ledger written by the import command.
func loadLedger(ws *workspace) ([]model.Transaction, error) {
	f, err := os.Open(filepath.Join(ws.dir, ledgerFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("no processed ledger; run holdback import first")
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	txns, err := export.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	return txns, nil
}
