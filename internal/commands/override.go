package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/holdback-dev/holdback/internal/engine"
	"github.com/holdback-dev/holdback/internal/importer"
	"github.com/holdback-dev/holdback/internal/model"
	"github.com/holdback-dev/holdback/internal/overrides"
)

func newOverrideCommand() *cobra.Command {
	var matchText string
	var onDate string
	var category string
	var recurring string
	var clear bool

	cmd := &cobra.Command{
		Use:   "override [transaction-id]",
		Short: "Pin a category or recurring flag on one transaction",
		Long: `Override records a sparse patch keyed by transaction id. Patches
survive re-imports because ids are derived from transaction content, not
position. Pass an id directly, or use --match (and optionally --date) to
locate the transaction in the last imported file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd)
			if err != nil {
				return err
			}

			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			if id == "" && matchText == "" {
				return fmt.Errorf("pass a transaction id or --match")
			}
			if id == "" {
				id, err = findTransactionID(ws, matchText, onDate)
				if err != nil {
					return err
				}
			}

			if clear {
				return runClearOverride(ws, id)
			}
			return runOverride(ws, id, category, recurring)
		},
	}

	cmd.Flags().StringVar(&matchText, "match", "", "locate by case-insensitive description substring")
	cmd.Flags().StringVar(&onDate, "date", "", "narrow --match to one date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "category to pin")
	cmd.Flags().StringVar(&recurring, "recurring", "", "recurring flag to pin (true or false)")
	cmd.Flags().BoolVar(&clear, "clear", false, "remove any existing patch instead")

	return cmd
}

func runOverride(ws *workspace, id, category, recurring string) error {
	set, err := ws.store.LoadOverrides()
	if err != nil {
		return fmt.Errorf("loading overrides: %w", err)
	}
	if set == nil {
		set = overrides.Set{}
	}

	patch := set[id]
	if category != "" {
		cat := model.Category(category)
		if !cat.Valid() {
			return fmt.Errorf("unknown category %q", category)
		}
		patch.Category = &cat
	}
	switch recurring {
	case "":
	case "true":
		v := true
		patch.IsRecurring = &v
	case "false":
		v := false
		patch.IsRecurring = &v
	default:
		return fmt.Errorf("--recurring wants true or false, got %q", recurring)
	}
	if patch.Empty() {
		return fmt.Errorf("nothing to pin; pass --category or --recurring")
	}
	set[id] = patch

	if err := ws.store.SaveOverrides(set); err != nil {
		return fmt.Errorf("saving overrides: %w", err)
	}
	fmt.Printf("Recorded override for %s (re-run holdback import to apply)\n", id)
	return nil
}

func runClearOverride(ws *workspace, id string) error {
	set, err := ws.store.LoadOverrides()
	if err != nil {
		return fmt.Errorf("loading overrides: %w", err)
	}
	if _, ok := set[id]; !ok {
		return fmt.Errorf("no override recorded for %s", id)
	}
	delete(set, id)
	if err := ws.store.SaveOverrides(set); err != nil {
		return fmt.Errorf("saving overrides: %w", err)
	}
	fmt.Printf("Cleared override for %s\n", id)
	return nil
}

// findTransactionID re-ingests the most recent archived import and looks
// for exactly one transaction whose description contains text.
func findTransactionID(ws *workspace, text, onDate string) (string, error) {
	txns, err := reprocessLatest(ws)
	if err != nil {
		return "", err
	}

	var wantDate time.Time
	if onDate != "" {
		wantDate, err = time.Parse(flagDateFormat, onDate)
		if err != nil {
			return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", onDate)
		}
	}

	needle := strings.ToLower(text)
	var hits []model.Transaction
	for _, txn := range txns {
		if !strings.Contains(strings.ToLower(txn.Description), needle) {
			continue
		}
		if onDate != "" && !txn.Date.Equal(wantDate) {
			continue
		}
		hits = append(hits, txn)
	}

	switch len(hits) {
	case 0:
		return "", fmt.Errorf("no transaction matches %q", text)
	case 1:
		return hits[0].ID, nil
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "%d transactions match %q:\n", len(hits), text)
		for _, txn := range hits {
			fmt.Fprintf(&b, "  %s  %s  %10s  %s\n",
				txn.ID, txn.Date.Format("2006-01-02"), txn.Amount.StringFixed(2), txn.Description)
		}
		b.WriteString("narrow with --date or pass an id")
		return "", fmt.Errorf("%s", b.String())
	}
}

// reprocessLatest runs the newest archived import back through the
// pipeline so content-derived ids can be looked up.
func reprocessLatest(ws *workspace) ([]model.Transaction, error) {
	dir := filepath.Join(ws.dir, "import", "processed")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("no archived imports; run holdback import first")
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no archived imports; run holdback import first")
	}
	// Archive names are timestamp-prefixed, so the newest sorts last.
	sort.Strings(names)

	text, err := os.ReadFile(filepath.Join(dir, names[len(names)-1]))
	if err != nil {
		return nil, fmt.Errorf("reading archived import: %w", err)
	}

	result := importer.DefaultRegistry().ParseText(string(text))
	ref, err := refDate("")
	if err != nil {
		return nil, err
	}
	return engine.New(ws.sched).Process(result.Records, ws.cfg.StartingBalance(), ref), nil
}
