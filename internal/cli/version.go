// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cratesync version 0.1.0")
		fmt.Println("Reinstalls cargo packages from .crates2.json")
		fmt.Println("https://github.com/crateutil/cratesync")
	},
}
