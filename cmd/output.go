package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"toolbox/internal/tui/design"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// parseOutputFormat validates s against the formats a command accepts.
func parseOutputFormat(s string, allowed ...OutputFormat) (OutputFormat, error) {
	names := make([]string, 0, len(allowed))
	for _, f := range allowed {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
		names = append(names, string(f))
	}
	return "", fmt.Errorf("unsupported output format: %s (want %s)", s, strings.Join(names, ", "))
}

// outputJSON prints data as indented JSON.
func outputJSON(w io.Writer, data interface{}) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// outputYAML prints data as YAML.
func outputYAML(w io.Writer, data interface{}) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	_, err = w.Write(out)
	return err
}

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(design.ColorInfo).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// outputTable prints rows under headers in a rounded table.
func outputTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(design.ColorBorder)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...)
	for _, r := range rows {
		t.Row(r...)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
