package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modmeta/cli/internal/output"
	"github.com/modmeta/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show CLI version information",
		Long:  `Display version and build information for the modmeta CLI.`,
		RunE:  runVersion,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := version.GetInfo()

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n  %s %s\n  %s %s\n  %s %s\n",
		output.Styled(os.Stdout, output.StyleHeading, "modmeta:"),
		output.Styled(os.Stdout, output.StyleDim, "Version: "), info.Version,
		output.Styled(os.Stdout, output.StyleDim, "Build ID:"), info.BuildDate+"/"+info.GitCommit,
		output.Styled(os.Stdout, output.StyleDim, "Go:      "), info.GoVersion,
	)
	return nil
}
