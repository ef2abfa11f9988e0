package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/jira-client/internal/constants"
)

// NewInfoCommand creates the info command
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display server information",
		Long:  "Display version and build information about the JIRA server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(commandContext(cmd), constants.ShortHTTPTimeout)
			defer cancel()

			info, err := client.Metadata().GetServerInfo(ctx).Await(ctx)
			if err != nil {
				return fmt.Errorf("failed to get server info: %w", err)
			}

			view := newServerInfoView(info)

			return writeOutput(cmd.OutOrStdout(), view, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("Title", info.ServerTitle)
				_ = table.Append("Base URL", view.BaseURI)
				_ = table.Append("Version", info.Version)
				_ = table.Append("Build", strconv.Itoa(info.BuildNumber))
				_ = table.Append("Build Date", displayTime(info.BuildDate))

				if info.ServerTime != nil {
					_ = table.Append("Server Time", displayTime(*info.ServerTime))
				}

				if info.ScmInfo != "" {
					_ = table.Append("SCM", info.ScmInfo)
				}
			})
		},
	}
}
