package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/tailblocks/internal/snapshot"
)

var renderCmd = &cobra.Command{
	Use:     "render <component>",
	Aliases: []string{"r"},
	Short:   "Render a component to HTML",
	Long: `Render one component, or one of its fixture examples, to stdout.

Props are JSON or YAML; prefix a file name with @ to read them from disk.

Examples:
  tailblocks render button --text Save
  tailblocks render badge --props '{"variant":"outline"}' --text New
  tailblocks render dialog --example basic --normalize
  tailblocks render alert --props @alert.yml`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var (
	renderExample   string
	renderProps     string
	renderText      string
	renderNormalize bool
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderExample, "example", "e", "", "Render a fixture example instead of props")
	renderCmd.Flags().StringVar(&renderProps, "props", "", "Component props (JSON, YAML or @file)")
	renderCmd.Flags().StringVarP(&renderText, "text", "t", "", "Text child")
	renderCmd.Flags().BoolVarP(&renderNormalize, "normalize", "n", false, "Print the normalized snapshot form")
	renderCmd.MarkFlagsMutuallyExclusive("example", "props")
	renderCmd.MarkFlagsMutuallyExclusive("example", "text")
}

func runRender(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	name := args[0]

	var html string
	if renderExample != "" {
		html, err = a.renderer.RenderExample(cmd.Context(), name, renderExample)
	} else {
		props, perr := readProps(renderProps)
		if perr != nil {
			return perr
		}
		html, err = a.renderer.RenderComponent(cmd.Context(), name, props, renderText)
	}
	if err != nil {
		return err
	}

	if renderNormalize {
		if html, err = snapshot.Normalize(html); err != nil {
			return fmt.Errorf("normalize: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if !strings.HasSuffix(html, "\n") {
		html += "\n"
	}
	_, err = fmt.Fprint(out, html)
	return err
}
