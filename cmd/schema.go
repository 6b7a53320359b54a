package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"toolbox/internal/catalog"
	"toolbox/internal/operation"
	"toolbox/internal/schema"
)

var schemaOutputFormat string

func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema <tool-id>",
		Short: "Show the input fields of a tool",
		Long: `Shows the input fields a tool takes: name, control kind, default value
and, for selects, the accepted options. Field names are what
'toolbox run <tool-id> --set name=value' expects.`,
		Args: cobra.ExactArgs(1),
		RunE: runSchema,
	}
	cmd.Flags().StringVarP(&schemaOutputFormat, "output", "o", "yaml", "Output format (yaml, table)")
	return cmd
}

func runSchema(cmd *cobra.Command, args []string) error {
	format, err := parseOutputFormat(schemaOutputFormat, OutputFormatYAML, OutputFormatTable)
	if err != nil {
		return err
	}

	tool, err := catalog.Find(args[0])
	if err != nil {
		return err
	}
	fields := operation.InputSchemaFor(tool)
	w := cmd.OutOrStdout()

	if format == OutputFormatYAML {
		return outputYAML(w, fields)
	}

	if len(fields) == 0 {
		fmt.Fprintf(w, "%s takes no input\n", tool.ID)
		return nil
	}
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		required := ""
		if f.Required {
			required = "yes"
		}
		rows = append(rows, []string{f.Name, f.Kind.String(), f.Label, f.Default, required, optionValues(f)})
	}
	return outputTable(w, []string{"NAME", "KIND", "LABEL", "DEFAULT", "REQUIRED", "OPTIONS"}, rows)
}

func optionValues(f schema.Field) string {
	values := make([]string, 0, len(f.Options))
	for _, o := range f.Options {
		values = append(values, o.Value)
	}
	return strings.Join(values, ", ")
}
