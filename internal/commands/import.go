package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/holdback-dev/holdback/internal/engine"
	"github.com/holdback-dev/holdback/internal/export"
	"github.com/holdback-dev/holdback/internal/importer"
	"github.com/holdback-dev/holdback/internal/overrides"
	"github.com/holdback-dev/holdback/internal/runlog"
)

func newImportCommand() *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a transaction export and rebuild the processed ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			ref, err := refDate(asOf)
			if err != nil {
				return err
			}
			return runImport(ws, args[0], ref)
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "reference date for pay-period tagging (YYYY-MM-DD, default today)")

	return cmd
}

func runImport(ws *workspace, file string, ref time.Time) error {
	text, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}

	result := importer.DefaultRegistry().ParseText(string(text))
	if len(result.Records) == 0 {
		return fmt.Errorf("no transactions recognized in %s", file)
	}

	txns := engine.New(ws.sched).Process(result.Records, ws.cfg.StartingBalance(), ref)

	set, err := ws.store.LoadOverrides()
	if err != nil {
		return fmt.Errorf("loading overrides: %w", err)
	}
	txns = overrides.Apply(txns, set)

	// The processed ledger is rebuilt whole on every import; transaction
	// ids stay stable across runs, so overrides keep applying.
	out := filepath.Join(ws.dir, ledgerFileName)
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	if err := export.Write(f, txns); err != nil {
		f.Close()
		return fmt.Errorf("writing ledger: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing ledger: %w", err)
	}

	// Archive the source so overrides can resolve ids against it later.
	archive := filepath.Join(ws.dir, "import", "processed",
		time.Now().UTC().Format("20060102-150405")+"-"+filepath.Base(file))
	if err := os.MkdirAll(filepath.Dir(archive), 0o755); err != nil {
		return fmt.Errorf("creating archive directory: %w", err)
	}
	if err := os.WriteFile(archive, text, 0o644); err != nil {
		return fmt.Errorf("archiving %s: %w", file, err)
	}

	entry := runlog.Entry{
		Timestamp: time.Now().UTC(),
		File:      filepath.Base(file),
		Sections:  result.Sections,
		Parsed:    len(result.Records),
		Skipped:   result.Skipped,
	}
	if err := runlog.Append(ws.dir, []runlog.Entry{entry}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write import log: %v\n", err)
	}

	fmt.Printf("Imported %d transactions from %d section(s), skipped %d malformed row(s)\n",
		len(txns), result.Sections, result.Skipped)
	return nil
}
