// internal/cli/sync.go
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/spf13/cobra"

	"github.com/crateutil/cratesync/internal/output"
	"github.com/crateutil/cratesync/pkg/cargo"
	"github.com/crateutil/cratesync/pkg/crates"
	"github.com/crateutil/cratesync/pkg/filter"
)

var (
	syncForce   bool
	syncLocked  bool
	syncDryRun  bool
	syncOnly    []string
	syncExclude []string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run cargo install for every recorded package",
	Long: `Re-run "cargo install" for each package in .crates2.json, with the
source, features, and target recorded at its original install.

Examples:
  cratesync sync
  cratesync sync --force --locked
  cratesync sync --only 'cargo-*' --exclude bat
  cratesync sync --dry-run`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncForce, "force", false, "pass --force to cargo install")
	syncCmd.Flags().BoolVar(&syncLocked, "locked", false, "pass --locked to cargo install")
	syncCmd.Flags().BoolVarP(&syncDryRun, "dry-run", "n", false, "print cargo commands without running them")
	syncCmd.Flags().StringSliceVar(&syncOnly, "only", nil, "only sync packages matching these globs")
	syncCmd.Flags().StringSliceVar(&syncExclude, "exclude", nil, "skip packages matching these globs")
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	meta, err := loadMetadata()
	if err != nil {
		return err
	}

	exclude := append(append([]string{}, cfg.Exclude...), syncExclude...)
	f, err := filter.New(syncOnly, exclude)
	if err != nil {
		return err
	}

	runner := &cargo.Runner{Cargo: cfg.CargoPath, DryRun: syncDryRun}
	locked := syncLocked || cfg.Locked

	// One entry failing should not abort the rest of the batch
	var failed int
	for _, raw := range sortedInstalls(meta) {
		opts := meta.Installs[raw]

		id, err := crates.ParseIdentifier(raw)
		if err != nil {
			output.Error("skipping unparseable entry", "error", err)
			failed++
			continue
		}
		if !f.Match(id.Name) {
			output.Debug("filtered out", "package", id.Name)
			continue
		}

		output.Info("installing", "package", id.Name, "version", id.Version)
		if err := runner.Run(ctx, crates.InstallArgs(id, opts, syncForce, locked)); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			output.Error("install failed", "package", id.Name, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d package(s) failed", failed)
	}
	return nil
}

// sortedInstalls returns the identifier keys in sorted order so runs
// are reproducible; Go map iteration is not.
func sortedInstalls(meta *crates.Metadata) []string {
	keys := make([]string, 0, len(meta.Installs))
	for k := range meta.Installs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
