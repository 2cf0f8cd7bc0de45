package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/redmine-go/redmine/internal/constants"
	"github.com/redmine-go/redmine/pkg/redmine"
)

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage projects",
		Long:    "List and show Redmine projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsShowCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List all projects visible to the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsListCommand(allPages, offset, limit)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultCLIPageSize, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "skip the first N results")

	return cmd
}

func runProjectsListCommand(allPages bool, offset, limit int) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	if allPages {
		projects, err := client.Projects().List(ctx, nil)
		if err != nil {
			return fmt.Errorf("listing projects: %w", err)
		}

		return outputProjects(projects, uint64(len(projects)))
	}

	page, err := client.Projects().ListPage(ctx, nil, offset, limit)
	if err != nil {
		return fmt.Errorf("listing projects: %w", err)
	}

	return outputProjects(page.Values, page.TotalCount)
}

func outputProjects(projects []redmine.Project, totalCount uint64) error {
	if done, err := renderStructured(projects); done {
		return err
	}

	if len(projects) == 0 {
		_, _ = os.Stdout.WriteString("No projects found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Identifier", "Name", "Parent", "Created")

	for _, project := range projects {
		_ = table.Append(
			fmt.Sprintf("%d", project.ID),
			project.Identifier,
			project.Name,
			idNameOrNA(project.Parent),
			timestampOrNA(project.CreatedOn),
		)
	}

	_ = table.Render()

	if totalCount > uint64(len(projects)) {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d projects. Use --all to fetch all pages.\n",
			len(projects), totalCount)
	}

	return nil
}

func newProjectsShowCommand() *cobra.Command {
	var include []string

	cmd := &cobra.Command{
		Use:   "show PROJECT_ID_OR_IDENTIFIER",
		Short: "Show project details",
		Long:  "Display detailed information about a single project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsShowCommand(args[0], include)
		},
	}

	cmd.Flags().StringSliceVar(&include, "include", nil,
		"associations to fetch (trackers, issue_categories, enabled_modules, time_entry_activities)")

	return cmd
}

func runProjectsShowCommand(idOrIdentifier string, include []string) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	opts := &redmine.ProjectGetOptions{}
	for _, inc := range include {
		opts.Include = append(opts.Include, redmine.ProjectInclude(inc))
	}

	project, err := client.Projects().Get(context.Background(), idOrIdentifier, opts)
	if err != nil {
		return fmt.Errorf("fetching project %q: %w", idOrIdentifier, err)
	}

	if done, err := renderStructured(project); done {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", fmt.Sprintf("%d", project.ID))
	_ = table.Append("Identifier", project.Identifier)
	_ = table.Append("Name", project.Name)
	_ = table.Append("Parent", idNameOrNA(project.Parent))
	_ = table.Append("Homepage", project.Homepage)
	_ = table.Append("Created", timestampOrNA(project.CreatedOn))
	_ = table.Append("Updated", timestampOrNA(project.UpdatedOn))

	_ = table.Render()

	if project.Description != "" {
		_, _ = fmt.Fprintf(os.Stdout, "\n%s\n", project.Description)
	}

	return nil
}
