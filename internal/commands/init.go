package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/holdback-dev/holdback/internal/config"
)

func newInitCommand() *cobra.Command {
	var startingBalance float64

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a holdback data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, startingBalance)
		},
	}

	cmd.Flags().Float64Var(&startingBalance, "starting-balance", 0, "account balance before the oldest import")

	return cmd
}

func runInit(dir string, startingBalance float64) error {
	// Create directory structure.
	dirs := []string{
		"import",
		filepath.Join("import", "processed"),
		"logs",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write holdback.yaml. The current balance starts at the starting
	// balance; the user updates it as statements come in.
	cfg := config.Default()
	cfg.Account.StartingBalance = startingBalance
	cfg.Account.CurrentBalance = startingBalance
	if err := config.Save(filepath.Join(dir, configFileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write import/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	fmt.Printf("Initialized holdback data directory at %s\n", dir)
	return nil
}
