package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/jira-client/internal/constants"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// NewProjectCommand creates the project command group
func NewProjectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects", "p"},
		Short:   "Inspect projects",
		Long:    "List projects and display project details and roles",
	}

	cmd.AddCommand(newProjectListCommand())
	cmd.AddCommand(newProjectGetCommand())
	cmd.AddCommand(newProjectRolesCommand())

	return cmd
}

func newProjectListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List all projects visible to the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			projects, err := client.Projects().GetAllProjects(ctx).Await(ctx)
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			views := make([]projectView, 0, len(projects))
			for _, project := range projects {
				views = append(views, newBasicProjectView(project))
			}

			return writeOutput(cmd.OutOrStdout(), views, func(table *tablewriter.Table) {
				table.Header("Key", "Name", "ID")

				for _, view := range views {
					_ = table.Append(view.Key, orNA(view.Name), idString(view.ID))
				}
			})
		},
	}
}

func newProjectGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_KEY",
		Short: "Get project details",
		Long:  "Display a project with its components, versions and issue types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			project, err := client.Projects().GetProject(ctx, args[0]).Await(ctx)
			if err != nil {
				return fmt.Errorf("failed to get project %s: %w", args[0], err)
			}

			view := newProjectView(project)

			return writeOutput(cmd.OutOrStdout(), view, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("Key", view.Key)
				_ = table.Append("Name", orNA(view.Name))
				_ = table.Append("Description", orNA(view.Description))
				_ = table.Append("Lead", view.Lead)
				_ = table.Append("Components", joinOrNA(view.Components))
				_ = table.Append("Versions", joinOrNA(view.Versions))
				_ = table.Append("Issue Types", joinOrNA(view.IssueTypes))
			})
		},
	}
}

func newProjectRolesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "roles PROJECT_KEY [ROLE_ID]",
		Short: "List project roles",
		Long:  "List every role of a project with its actors, or a single role by id",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			project, err := client.Projects().GetProject(ctx, args[0]).Await(ctx)
			if err != nil {
				return fmt.Errorf("failed to get project %s: %w", args[0], err)
			}

			var roles []jira.ProjectRole

			if len(args) > 1 {
				roleID, parseErr := strconv.ParseInt(args[1], 10, 64)
				if parseErr != nil {
					return fmt.Errorf("%w: %s", constants.ErrInvalidRoleID, args[1])
				}

				role, err := client.ProjectRoles().GetRoleByID(ctx, project.Self, roleID).Await(ctx)
				if err != nil {
					return fmt.Errorf("failed to get role %d: %w", roleID, err)
				}

				roles = []jira.ProjectRole{*role}
			} else {
				roles, err = client.ProjectRoles().GetRoles(ctx, project.Self).Await(ctx)
				if err != nil {
					return fmt.Errorf("failed to get roles of %s: %w", args[0], err)
				}
			}

			views := make([]roleView, 0, len(roles))
			for i := range roles {
				views = append(views, newRoleView(&roles[i]))
			}

			return writeOutput(cmd.OutOrStdout(), views, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Actors")

				for _, view := range views {
					_ = table.Append(idString(view.ID), view.Name, joinOrNA(view.Actors))
				}
			})
		},
	}
}

// NewVersionsCommand creates the versions command group
func NewVersionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "versions",
		Aliases: []string{"v"},
		Short:   "Inspect project versions",
		Long:    "List the versions of a project and display a single version",
	}

	cmd.AddCommand(newVersionsListCommand())
	cmd.AddCommand(newVersionsGetCommand())

	return cmd
}

func newVersionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT_KEY",
		Short: "List project versions",
		Long:  "List the versions of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			project, err := client.Projects().GetProject(ctx, args[0]).Await(ctx)
			if err != nil {
				return fmt.Errorf("failed to get project %s: %w", args[0], err)
			}

			views := make([]versionView, 0, len(project.Versions))
			for i := range project.Versions {
				views = append(views, newVersionView(&project.Versions[i]))
			}

			return writeOutput(cmd.OutOrStdout(), views, func(table *tablewriter.Table) {
				fillVersionsTable(table, views)
			})
		},
	}
}

func newVersionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get VERSION_ID|VERSION_URI",
		Short: "Get version details",
		Long:  "Display a version by numeric id or by its self URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			versionURI := client.ServerURI().JoinPath(constants.APIPathLatest, "version", args[0])
			if strings.Contains(args[0], "://") {
				versionURI, err = parseResourceURI(args[0])
				if err != nil {
					return err
				}
			}

			ctx := commandContext(cmd)

			version, err := client.Versions().GetVersion(ctx, versionURI).Await(ctx)
			if err != nil {
				return fmt.Errorf("failed to get version %s: %w", args[0], err)
			}

			views := []versionView{newVersionView(version)}

			return writeOutput(cmd.OutOrStdout(), views[0], func(table *tablewriter.Table) {
				fillVersionsTable(table, views)
			})
		},
	}
}

func fillVersionsTable(table *tablewriter.Table, views []versionView) {
	table.Header("ID", "Name", "Released", "Archived", "Release Date")

	for _, view := range views {
		releaseDate := constants.NotAvailable
		if view.ReleaseDate != nil {
			releaseDate = view.ReleaseDate.Format(constants.DateLayout)
		}

		_ = table.Append(
			idString(view.ID),
			view.Name,
			strconv.FormatBool(view.Released),
			strconv.FormatBool(view.Archived),
			releaseDate,
		)
	}
}
