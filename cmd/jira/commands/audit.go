package commands

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/jira-client/internal/constants"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// NewAuditCommand creates the audit command group
func NewAuditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Read and write the audit log",
		Long:  "Search audit records and add new ones",
	}

	cmd.AddCommand(newAuditListCommand())
	cmd.AddCommand(newAuditAddCommand())

	return cmd
}

func newAuditListCommand() *cobra.Command {
	var (
		offset int
		limit  int
		filter string
		from   string
		to     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List audit records",
		Long:  "Search the audit log by text and creation date",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := jira.AuditRecordSearchInput{Filter: filter}

			if cmd.Flags().Changed("offset") {
				input.Offset = &offset
			}

			if cmd.Flags().Changed("limit") {
				input.Limit = &limit
			}

			var err error

			if input.From, err = parseDate(from); err != nil {
				return err
			}

			if input.To, err = parseDate(to); err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			data, err := client.Audit().GetAuditRecords(ctx, input).Await(ctx)
			if err != nil {
				return fmt.Errorf("failed to get audit records: %w", err)
			}

			err = writeOutput(cmd.OutOrStdout(), data, func(table *tablewriter.Table) {
				table.Header("ID", "Created", "Category", "Summary", "Author")

				for _, record := range data.Records {
					_ = table.Append(
						strconv.FormatInt(record.ID, 10),
						displayTime(record.Created),
						record.Category,
						truncate(record.Summary, constants.SummaryDisplayLength),
						orNA(record.AuthorKey),
					)
				}
			})
			if err != nil {
				return err
			}

			if isTableOutput() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Showing %d of %d records\n", len(data.Records), data.Total)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "number of records to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of records")
	cmd.Flags().StringVar(&filter, "filter", "", "text filter")
	cmd.Flags().StringVar(&from, "from", "", "created on or after (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&to, "to", "", "created on or before (YYYY-MM-DD or RFC 3339)")

	return cmd
}

func newAuditAddCommand() *cobra.Command {
	var (
		input   jira.AuditRecordInput
		changed []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an audit record",
		Long:  "Add a record to the audit log, with changed values given as FIELD=VALUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			if input.Category == "" {
				return constants.ErrCategoryRequired
			}

			if input.Summary == "" {
				return constants.ErrSummaryRequired
			}

			values, err := parseChangedValues(changed)
			if err != nil {
				return err
			}

			input.ChangedValues = values

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			if _, err := client.Audit().AddAuditRecord(ctx, input).Await(ctx); err != nil {
				return fmt.Errorf("failed to add audit record: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Audit record added")

			return nil
		},
	}

	cmd.Flags().StringVar(&input.Category, "category", "", "record category")
	cmd.Flags().StringVar(&input.Summary, "summary", "", "record summary")
	cmd.Flags().StringArrayVar(&changed, "changed", nil, "changed value as FIELD=VALUE (repeatable)")

	return cmd
}

// parseDate accepts a calendar date, read as UTC midnight, or an RFC 3339
// timestamp. An empty value yields nil.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	for _, layout := range []string{constants.DateLayout, time.RFC3339} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", constants.ErrInvalidDate, value)
}

func parseChangedValues(pairs []string) ([]jira.AuditChangedValue, error) {
	values := make([]jira.AuditChangedValue, 0, len(pairs))

	for _, pair := range pairs {
		field, value, found := strings.Cut(pair, "=")
		if !found || field == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidChangedValue, pair)
		}

		values = append(values, jira.AuditChangedValue{FieldName: field, ChangedTo: &value})
	}

	if len(values) == 0 {
		return nil, nil
	}

	return values, nil
}

func parseResourceURI(value string) (*url.URL, error) {
	uri, err := url.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("invalid resource URI %q: %w", value, err)
	}

	if !uri.IsAbs() {
		return nil, fmt.Errorf("%w: %s", constants.ErrInvalidResourceURI, value)
	}

	return uri, nil
}
