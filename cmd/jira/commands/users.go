package commands

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewUserCommand creates the user command group
func NewUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users"},
		Short:   "Inspect users",
		Long:    "Display user details including groups",
	}

	cmd.AddCommand(newUserGetCommand())

	return cmd
}

func newUserGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USERNAME",
		Short: "Get user details",
		Long:  "Display a user with its groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			user, err := client.Users().GetUser(ctx, args[0]).Await(ctx)
			if err != nil {
				return fmt.Errorf("failed to get user %s: %w", args[0], err)
			}

			view := newUserView(user)

			return writeOutput(cmd.OutOrStdout(), view, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("Name", view.Name)
				_ = table.Append("Display Name", orNA(view.DisplayName))
				_ = table.Append("Email", orNA(view.Email))
				_ = table.Append("Active", strconv.FormatBool(user.Active))
				_ = table.Append("Time Zone", orNA(view.TimeZone))
				_ = table.Append("Groups", joinOrNA(view.Groups))
			})
		},
	}
}
