// internal/cli/list.go
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/crateutil/cratesync/internal/output"
	"github.com/crateutil/cratesync/pkg/crates"
)

var (
	nameStyle    = lipgloss.NewStyle().Bold(true)
	versionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	sourceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List packages recorded in .crates2.json",
	Long:  `List every installed package recorded in Cargo's metadata, with its version and source.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	meta, err := loadMetadata()
	if err != nil {
		return err
	}

	for _, raw := range sortedInstalls(meta) {
		id, err := crates.ParseIdentifier(raw)
		if err != nil {
			output.Warn("skipping unparseable entry", "error", err)
			continue
		}
		fmt.Printf("%s %s %s\n",
			nameStyle.Render(id.Name),
			versionStyle.Render(id.Version),
			sourceStyle.Render(describeSource(id.Source)))
	}
	return nil
}

func describeSource(s crates.PackageSource) string {
	switch s.Kind {
	case crates.SourceGit:
		desc := "git " + s.URL
		if s.Branch != "" {
			desc += " branch=" + s.Branch
		}
		if s.Tag != "" {
			desc += " tag=" + s.Tag
		}
		return desc
	case crates.SourcePath:
		return "path " + s.Path
	default:
		return "registry " + s.URL
	}
}
