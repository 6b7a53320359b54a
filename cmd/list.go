package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"toolbox/internal/catalog"
)

var (
	listSearch       string
	listOutputFormat string
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [category]",
		Short: "List the tools of the catalogue",
		Long: `Lists catalogue tools, optionally restricted to one category
(text, color, css, code, converters, generators, math, seo, developer,
ai, misc) and filtered by a case-insensitive search on name and
description.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runList,
	}
	cmd.Flags().StringVarP(&listSearch, "search", "s", "", "Only show tools whose name or description contains this text")
	cmd.Flags().StringVarP(&listOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := parseOutputFormat(listOutputFormat, OutputFormatTable, OutputFormatJSON, OutputFormatYAML)
	if err != nil {
		return err
	}

	categoryID := catalog.AllCategories
	if len(args) == 1 {
		categoryID = args[0]
		if _, ok := catalog.CategoryByID(categoryID); !ok && categoryID != catalog.AllCategories {
			return fmt.Errorf("unknown category %q", categoryID)
		}
	}

	tools := catalog.Filter(catalog.Tools(categoryID), listSearch)
	w := cmd.OutOrStdout()

	switch format {
	case OutputFormatJSON:
		return outputJSON(w, tools)
	case OutputFormatYAML:
		return outputYAML(w, tools)
	}

	if len(tools) == 0 {
		fmt.Fprintln(w, "No tools found")
		return nil
	}
	rows := make([][]string, 0, len(tools))
	for _, t := range tools {
		rows = append(rows, []string{t.ID, t.Name, t.Category, t.Description})
	}
	if err := outputTable(w, []string{"ID", "NAME", "CATEGORY", "DESCRIPTION"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d tools in %s\n", len(tools), catalog.DisplayName(categoryID))
	return nil
}
