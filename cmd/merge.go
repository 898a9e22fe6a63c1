package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <classes...>",
	Short: "Merge Tailwind classes, later classes winning conflicts",
	Long: `Merge Tailwind class lists the way components merge caller classes: when two
classes set the same property under the same variants, the later one is kept.

The merge.prefix and merge.cache_size settings apply to this command only;
rendered components keep using the unprefixed default merger.

Examples:
  tailblocks merge "px-2 py-1" "px-4"          # py-1 px-4
  tailblocks merge "hover:bg-red-500 bg-blue-500" "hover:bg-green-500"
  tailblocks merge --prefix tw- "tw-p-2 tw-p-4"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().String("prefix", "", "Tailwind prefix configured for the project")
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), cfg.Merger().Merge(args...))
	return err
}
