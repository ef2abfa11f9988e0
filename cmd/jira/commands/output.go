package commands

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/jira-client/internal/constants"
)

const defaultJSONIndent = "  "

// writeOutput renders value in the configured output format. Table output is
// delegated to fill, which appends the rows.
func writeOutput(writer io.Writer, value any, fill func(table *tablewriter.Table)) error {
	switch format := viper.GetString("output"); format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", defaultJSONIndent)

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(writer)
		defer func() { _ = encoder.Close() }()

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return nil
	case constants.FormatTable, "":
		table := tablewriter.NewWriter(writer)
		fill(table)

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrInvalidOutput, format)
	}
}

func isTableOutput() bool {
	format := viper.GetString("output")

	return format == "" || format == constants.FormatTable
}

func uriString(uri *url.URL) string {
	if uri == nil {
		return ""
	}

	return uri.String()
}

func orNA(value *string) string {
	if value == nil || *value == "" {
		return constants.NotAvailable
	}

	return *value
}

func idString(id *int64) string {
	if id == nil {
		return constants.NotAvailable
	}

	return strconv.FormatInt(*id, 10)
}

func displayTime(value time.Time) string {
	if value.IsZero() {
		return constants.NotAvailable
	}

	return value.Format(constants.DisplayTimeLayout)
}

func truncate(value string, length int) string {
	runes := []rune(value)
	if len(runes) <= length {
		return value
	}

	return string(runes[:length-3]) + "..."
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return constants.NotAvailable
	}

	return strings.Join(values, ", ")
}
