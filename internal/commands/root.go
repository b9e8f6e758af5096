package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/holdback-dev/holdback/internal/buildinfo"
	"github.com/holdback-dev/holdback/internal/busday"
	"github.com/holdback-dev/holdback/internal/config"
	"github.com/holdback-dev/holdback/internal/schedule"
	"github.com/holdback-dev/holdback/internal/store"
)

const (
	configFileName = "holdback.yaml"
	ledgerFileName = "transactions.csv"
	dataDirEnvVar  = "HOLDBACK_DATA"
	flagDateFormat = "2006-01-02"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "holdback",
		Short:   "Cash-flow planning for commission income",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("data", "", "data directory (defaults to $HOLDBACK_DATA, then the working directory)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newOverrideCommand())
	rootCmd.AddCommand(newBillCommand())
	rootCmd.AddCommand(newCommissionCommand())
	rootCmd.AddCommand(newScheduleCommand())
	rootCmd.AddCommand(newProjectCommand())

	return rootCmd
}

// workspace bundles what every command past init needs: the resolved data
// directory, its config, the flat-file store, and a payment calculator
// built from the configured holidays.
type workspace struct {
	dir   string
	cfg   *config.Config
	store *store.Store
	sched *schedule.Calculator
}

func openWorkspace(cmd *cobra.Command) (*workspace, error) {
	dir, err := resolveDataDir(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(filepath.Join(dir, configFileName))
	if err != nil {
		return nil, fmt.Errorf("loading config (run holdback init first?): %w", err)
	}
	extra, err := cfg.ExtraHolidays()
	if err != nil {
		return nil, fmt.Errorf("parsing extra holidays: %w", err)
	}
	return &workspace{
		dir:   dir,
		cfg:   cfg,
		store: store.New(dir),
		sched: schedule.New(busday.NewCalendar(extra...)),
	}, nil
}

func resolveDataDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString("data")
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = os.Getenv(dataDirEnvVar)
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Abs(dir)
}

// refDate resolves an --as-of flag value, defaulting to today. All date
// math runs on UTC midnights.
func refDate(asOf string) (time.Time, error) {
	if asOf == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(flagDateFormat, asOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", asOf)
	}
	return t, nil
}
