package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/tailblocks/internal/registry"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List the component catalog",
	Long: `List every component with its category, Stimulus controller and number of
fixture examples.

Examples:
  tailblocks list                     # Table of all components
  tailblocks list -f json             # Output as JSON
  tailblocks list -p                  # Include props
  tailblocks list -c overlays -f yaml # Only overlays, as YAML`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listFormat    string
	listWithProps bool
	listCategory  string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "Output format (table, json, yaml)")
	listCmd.Flags().BoolVarP(&listWithProps, "with-props", "p", false, "Include component props")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only list one category")

	AddFlagValidation(listCmd, "format", ValidateFormat("table", "json", "yaml"))
}

// listItem is one component as list prints it.
type listItem struct {
	Name       string                   `json:"name" yaml:"name"`
	Title      string                   `json:"title" yaml:"title"`
	Category   string                   `json:"category" yaml:"category"`
	Controller string                   `json:"controller,omitempty" yaml:"controller,omitempty"`
	Examples   []string                 `json:"examples" yaml:"examples"`
	Props      []registry.ParameterInfo `json:"props,omitempty" yaml:"props,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	var items []listItem
	for _, c := range a.registry.List() {
		if listCategory != "" && c.Category != listCategory {
			continue
		}
		item := listItem{
			Name:       c.Name,
			Title:      c.Title,
			Category:   c.Category,
			Controller: c.Controller,
			Examples:   make([]string, 0, len(c.Examples)),
		}
		for _, ex := range c.Examples {
			item.Examples = append(item.Examples, ex.Name)
		}
		if listWithProps {
			item.Props = c.Parameters
		}
		items = append(items, item)
	}

	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "No components found.")
		return nil
	}

	switch strings.ToLower(listFormat) {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(items)
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(items)
	default:
		return outputTable(out, items)
	}
}

func outputTable(out io.Writer, items []listItem) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	header := "NAME\tCATEGORY\tCONTROLLER\tEXAMPLES"
	if listWithProps {
		header += "\tPROPS"
	}
	fmt.Fprintln(w, header)

	for _, item := range items {
		controller := item.Controller
		if controller == "" {
			controller = "-"
		}
		row := fmt.Sprintf("%s\t%s\t%s\t%d", item.Name, item.Category, controller, len(item.Examples))

		if listWithProps {
			var props []string
			for _, p := range item.Props {
				prop := p.Name + ":" + p.Type
				if p.Optional {
					prop += "?"
				}
				props = append(props, prop)
			}
			row += "\t" + strings.Join(props, ", ")
		}

		fmt.Fprintln(w, row)
	}

	fmt.Fprintf(w, "\nTotal: %d components\n", len(items))
	return w.Flush()
}
