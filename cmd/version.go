package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/tailblocks/internal/version"
)

var (
	versionFormat   string
	versionShort    bool
	versionDetailed bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for tailblocks including:

- Semantic version number
- Git commit hash
- Build timestamp
- Go and templ versions
- Target platform (OS/architecture)

Examples:
  tailblocks version               # Version and platform
  tailblocks version --short       # Version only
  tailblocks version --detailed    # Every build field
  tailblocks version --format json # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "Output format (text, json, yaml)")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
	versionCmd.Flags().BoolVar(&versionDetailed, "detailed", false, "Show detailed version information")

	AddFlagValidation(versionCmd, "format", ValidateFormat("text", "json", "yaml"))
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	info := version.GetBuildInfo()

	switch versionFormat {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(info)
	case "yaml":
		return yaml.NewEncoder(out).Encode(info)
	}

	switch {
	case versionShort:
		fmt.Fprintln(out, version.GetShortVersion())
	case versionDetailed:
		fmt.Fprintln(out, version.GetDetailedVersion())
		if version.IsRelease() {
			fmt.Fprintln(out, "Build type: release")
		} else {
			fmt.Fprintln(out, "Build type: development")
		}
	default:
		fmt.Fprintf(out, "tailblocks %s\n", version.GetShortVersion())
		fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
		fmt.Fprintf(out, "Platform: %s\n", info.Platform)
	}
	return nil
}
