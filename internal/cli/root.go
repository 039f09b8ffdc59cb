// internal/cli/root.go
package cli

import (
	"github.com/spf13/cobra"

	"github.com/crateutil/cratesync/internal/output"
	"github.com/crateutil/cratesync/pkg/config"
	"github.com/crateutil/cratesync/pkg/crates"
)

var (
	cfgFile      string
	cargoPath    string
	metadataPath string
	verbose      bool
	cfg          *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cratesync",
	Short: "Reinstall the cargo packages recorded in .crates2.json",
	Long: `cratesync - reinstall your cargo-installed packages

Reads Cargo's .crates2.json installation metadata and re-runs
"cargo install" for each recorded package with its original source,
features, and target, e.g. after a toolchain update.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/cratesync/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&cargoPath, "cargo", "", "cargo binary to invoke")
	rootCmd.PersistentFlags().StringVar(&metadataPath, "metadata", "", "path to .crates2.json (default is $CARGO_HOME/.crates2.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		output.Warn("falling back to default config", "error", err)
		cfg = config.DefaultConfig()
	}

	// Override config with flags
	if cargoPath != "" {
		cfg.CargoPath = cargoPath
	}
	if verbose {
		cfg.Verbose = true
	}
	output.Setup(cfg.Verbose)
}

// loadMetadata reads the metadata file named by --metadata, falling
// back to Cargo's default location.
func loadMetadata() (*crates.Metadata, error) {
	path := metadataPath
	if path == "" {
		var err error
		path, err = crates.DefaultMetadataPath()
		if err != nil {
			return nil, err
		}
	}
	output.Debug("loading metadata", "path", path)
	return crates.LoadMetadata(path)
}
