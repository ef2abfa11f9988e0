package commands

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/jira-client/internal/constants"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// NewIssueCommand creates the issue command group
func NewIssueCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "issue",
		Aliases: []string{"issues", "i"},
		Short:   "Manage issues",
		Long:    "Get, create and delete issues and manage their watchers and comments",
	}

	cmd.AddCommand(newIssueGetCommand())
	cmd.AddCommand(newIssueCreateCommand())
	cmd.AddCommand(newIssueDeleteCommand())
	cmd.AddCommand(newIssueWatchersCommand())
	cmd.AddCommand(newIssueCommentCommand())

	return cmd
}

func newIssueGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ISSUE_KEY",
		Short: "Get issue details",
		Long:  "Display an issue with its custom fields and links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			issue, err := client.Issues().GetIssue(ctx, args[0]).Await(ctx)
			if err != nil {
				return fmt.Errorf("failed to get issue %s: %w", args[0], err)
			}

			view := newIssueView(issue)

			return writeOutput(cmd.OutOrStdout(), view, func(table *tablewriter.Table) {
				fillIssueTable(table, view)
			})
		},
	}
}

func fillIssueTable(table *tablewriter.Table, view issueView) {
	table.Header("Property", "Value")

	_ = table.Append("Key", view.Key)
	_ = table.Append("Summary", view.Summary)
	_ = table.Append("Project", view.Project)
	_ = table.Append("Type", view.IssueType)
	_ = table.Append("Status", view.Status)
	_ = table.Append("Priority", orNA(&view.Priority))
	_ = table.Append("Resolution", orNA(&view.Resolution))

	if view.Assignee != nil {
		_ = table.Append("Assignee", view.Assignee.Name)
	}

	if view.Reporter != nil {
		_ = table.Append("Reporter", view.Reporter.Name)
	}

	_ = table.Append("Created", displayTime(view.Created))
	_ = table.Append("Updated", displayTime(view.Updated))
	_ = table.Append("Labels", joinOrNA(view.Labels))
	_ = table.Append("Components", joinOrNA(view.Components))
	_ = table.Append("Comments", strconv.Itoa(view.Comments))
	_ = table.Append("Attachments", strconv.Itoa(view.Attachments))

	for _, link := range view.Links {
		_ = table.Append("Link", fmt.Sprintf("%s %s", link.Type, link.Target))
	}

	for _, field := range view.Fields {
		if field.Value == nil {
			continue
		}

		_ = table.Append(field.Name, fmt.Sprint(field.Value))
	}
}

func newIssueCreateCommand() *cobra.Command {
	var (
		input      jira.IssueInput
		components []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an issue",
		Long:  "Create a new issue in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if input.ProjectKey == "" {
				return constants.ErrProjectRequired
			}

			if input.IssueTypeID == 0 {
				return constants.ErrIssueTypeRequired
			}

			if input.Summary == "" {
				return constants.ErrSummaryRequired
			}

			for _, component := range components {
				id, err := strconv.ParseInt(component, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid component id %q: %w", component, err)
				}

				input.ComponentIDs = append(input.ComponentIDs, id)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			created, err := client.Issues().CreateIssue(ctx, input).Await(ctx)
			if err != nil {
				return fmt.Errorf("failed to create issue: %w", err)
			}

			view := map[string]string{"key": created.Key, "self": uriString(created.Self)}

			return writeOutput(cmd.OutOrStdout(), view, func(table *tablewriter.Table) {
				table.Header("Key", "Self")
				_ = table.Append(created.Key, view["self"])
			})
		},
	}

	cmd.Flags().StringVarP(&input.ProjectKey, "project", "p", "", "project key")
	cmd.Flags().Int64Var(&input.IssueTypeID, "type", 0, "issue type id")
	cmd.Flags().StringVar(&input.Summary, "summary", "", "issue summary")
	cmd.Flags().StringVar(&input.Description, "description", "", "issue description")
	cmd.Flags().StringVar(&input.Assignee, "assignee", "", "assignee username")
	cmd.Flags().StringVar(&input.Priority, "priority", "", "priority name")
	cmd.Flags().StringSliceVar(&input.Labels, "label", nil, "label (repeatable)")
	cmd.Flags().StringSliceVar(&components, "component", nil, "component id (repeatable)")

	return cmd
}

func newIssueDeleteCommand() *cobra.Command {
	var deleteSubtasks bool

	cmd := &cobra.Command{
		Use:   "delete ISSUE_KEY",
		Short: "Delete an issue",
		Long:  "Delete an issue, optionally together with its subtasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			if _, err := client.Issues().DeleteIssue(ctx, args[0], deleteSubtasks).Await(ctx); err != nil {
				return fmt.Errorf("failed to delete issue %s: %w", args[0], err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Issue %s deleted\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVar(&deleteSubtasks, "delete-subtasks", false, "also delete the subtasks")

	return cmd
}

func newIssueWatchersCommand() *cobra.Command {
	var (
		add    string
		remove string
	)

	cmd := &cobra.Command{
		Use:   "watchers ISSUE_KEY",
		Short: "List or change issue watchers",
		Long:  "List the watchers of an issue, optionally adding or removing one first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			watchersURI, err := issueResourceURI(ctx, client, args[0], "watchers")
			if err != nil {
				return err
			}

			if add != "" {
				if _, err := client.Issues().AddWatcher(ctx, watchersURI, add).Await(ctx); err != nil {
					return fmt.Errorf("failed to add watcher %s: %w", add, err)
				}
			}

			if remove != "" {
				if _, err := client.Issues().RemoveWatcher(ctx, watchersURI, remove).Await(ctx); err != nil {
					return fmt.Errorf("failed to remove watcher %s: %w", remove, err)
				}
			}

			watchers, err := client.Issues().GetWatchers(ctx, watchersURI).Await(ctx)
			if err != nil {
				return fmt.Errorf("failed to get watchers: %w", err)
			}

			view := newWatchersView(watchers)

			return writeOutput(cmd.OutOrStdout(), view, func(table *tablewriter.Table) {
				table.Header("Name", "Display Name")

				for _, watcher := range view.Watchers {
					_ = table.Append(watcher.Name, orNA(watcher.DisplayName))
				}
			})
		},
	}

	cmd.Flags().StringVar(&add, "add", "", "username to start watching")
	cmd.Flags().StringVar(&remove, "remove", "", "username to stop watching")

	return cmd
}

func newIssueCommentCommand() *cobra.Command {
	var visibility string

	cmd := &cobra.Command{
		Use:   "comment ISSUE_KEY BODY",
		Short: "Comment on an issue",
		Long:  "Add a comment to an issue, optionally restricted with --visibility group:NAME or role:NAME",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := jira.CommentInput{Body: args[1]}

			if visibility != "" {
				kind, value, found := strings.Cut(visibility, ":")
				if !found || value == "" {
					return fmt.Errorf("%w: %s", constants.ErrInvalidVisibility, visibility)
				}

				input.Visibility = &jira.Visibility{Type: kind, Value: value}
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			commentsURI, err := issueResourceURI(ctx, client, args[0], "comment")
			if err != nil {
				return err
			}

			if _, err := client.Issues().AddComment(ctx, commentsURI, input).Await(ctx); err != nil {
				return fmt.Errorf("failed to add comment: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Comment added to %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&visibility, "visibility", "", "restrict visibility (group:NAME or role:NAME)")

	return cmd
}

// issueResourceURI resolves a sub-resource of an issue from its self link.
func issueResourceURI(ctx context.Context, client jira.Client, key, resource string) (*url.URL, error) {
	issue, err := client.Issues().GetIssue(ctx, key).Await(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get issue %s: %w", key, err)
	}

	if resource == "watchers" && issue.Watchers != nil && issue.Watchers.Self != nil {
		return issue.Watchers.Self, nil
	}

	return issue.Self.JoinPath(resource), nil
}
