package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/redmine-go/redmine/internal/constants"
	"github.com/redmine-go/redmine/pkg/redmine"
)

// NewIssuesCommand creates the issues command group.
func NewIssuesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "issues",
		Aliases: []string{"issue"},
		Short:   "Manage issues",
		Long:    "List and show Redmine issues",
	}

	cmd.AddCommand(newIssuesListCommand())
	cmd.AddCommand(newIssuesShowCommand())

	return cmd
}

func newIssuesListCommand() *cobra.Command {
	var (
		project  string
		status   string
		assignee string
		sort     string
		allPages bool
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issues",
		Long:  "List issues, optionally filtered by project, status, and assignee",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &redmine.IssuesListOptions{}
			if project != "" {
				opts.ProjectID = &project
			}

			if status != "" {
				opts.StatusID = &status
			}

			if assignee != "" {
				opts.AssignedToID = &assignee
			}

			if sort != "" {
				opts.Sort = &sort
			}

			return runIssuesListCommand(opts, allPages, offset, limit)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "filter by project id or identifier")
	cmd.Flags().StringVarP(&status, "status", "s", "", "filter by status id, 'open', 'closed', or '*'")
	cmd.Flags().StringVarP(&assignee, "assignee", "a", "", "filter by assignee id or 'me'")
	cmd.Flags().StringVar(&sort, "sort", "", "sort order, e.g. 'updated_on:desc'")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultCLIPageSize, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "skip the first N results")

	return cmd
}

func runIssuesListCommand(opts *redmine.IssuesListOptions, allPages bool, offset, limit int) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	if allPages {
		issues, err := client.Issues().List(ctx, opts)
		if err != nil {
			return fmt.Errorf("listing issues: %w", err)
		}

		return outputIssues(issues, uint64(len(issues)))
	}

	page, err := client.Issues().ListPage(ctx, opts, offset, limit)
	if err != nil {
		return fmt.Errorf("listing issues: %w", err)
	}

	return outputIssues(page.Values, page.TotalCount)
}

func outputIssues(issues []redmine.Issue, totalCount uint64) error {
	if done, err := renderStructured(issues); done {
		return err
	}

	if len(issues) == 0 {
		_, _ = os.Stdout.WriteString("No issues found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Tracker", "Status", "Priority", "Subject", "Assignee", "Updated")

	for _, issue := range issues {
		_ = table.Append(
			fmt.Sprintf("%d", issue.ID),
			issue.Tracker.Name,
			issue.Status.Name,
			issue.Priority.Name,
			truncate(issue.Subject, constants.DescriptionDisplayLength),
			idNameOrNA(issue.AssignedTo),
			timestampOrNA(issue.UpdatedOn),
		)
	}

	_ = table.Render()

	if totalCount > uint64(len(issues)) {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d issues. Use --all to fetch all pages.\n",
			len(issues), totalCount)
	}

	return nil
}

func newIssuesShowCommand() *cobra.Command {
	var include []string

	cmd := &cobra.Command{
		Use:   "show ISSUE_ID",
		Short: "Show issue details",
		Long:  "Display detailed information about a single issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIssuesShowCommand(args[0], include)
		},
	}

	cmd.Flags().StringSliceVar(&include, "include", nil,
		"associations to fetch (journals, watchers, relations, attachments, children, changesets)")

	return cmd
}

func runIssuesShowCommand(arg string, include []string) error {
	issueID, err := parseID(arg)
	if err != nil {
		return err
	}

	client, err := createClient()
	if err != nil {
		return err
	}

	opts := &redmine.IssueGetOptions{}
	for _, inc := range include {
		opts.Include = append(opts.Include, redmine.IssueInclude(inc))
	}

	issue, err := client.Issues().Get(context.Background(), issueID, opts)
	if err != nil {
		return fmt.Errorf("fetching issue %d: %w", issueID, err)
	}

	if done, err := renderStructured(issue); done {
		return err
	}

	return renderIssueDetail(issue)
}

func renderIssueDetail(issue *redmine.Issue) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", fmt.Sprintf("%d", issue.ID))
	_ = table.Append("Project", issue.Project.Name)
	_ = table.Append("Tracker", issue.Tracker.Name)
	_ = table.Append("Status", issue.Status.Name)
	_ = table.Append("Priority", issue.Priority.Name)
	_ = table.Append("Author", issue.Author.Name)
	_ = table.Append("Assignee", idNameOrNA(issue.AssignedTo))
	_ = table.Append("Subject", issue.Subject)
	_ = table.Append("Start date", dateOrNA(issue.StartDate))
	_ = table.Append("Due date", dateOrNA(issue.DueDate))
	_ = table.Append("Done", fmt.Sprintf("%d%%", issue.DoneRatio))
	_ = table.Append("Created", timestampOrNA(issue.CreatedOn))
	_ = table.Append("Updated", timestampOrNA(issue.UpdatedOn))

	_ = table.Render()

	if issue.Description != "" {
		_, _ = fmt.Fprintf(os.Stdout, "\n%s\n", issue.Description)
	}

	if len(issue.Journals) > 0 {
		_, _ = os.Stdout.WriteString("\nHistory:\n")

		for _, journal := range issue.Journals {
			if strings.TrimSpace(journal.Notes) == "" {
				continue
			}

			_, _ = fmt.Fprintf(os.Stdout, "  [%s] %s: %s\n",
				timestampOrNA(journal.CreatedOn), journal.User.Name, journal.Notes)
		}
	}

	return nil
}
