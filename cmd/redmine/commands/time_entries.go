package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/redmine-go/redmine/internal/constants"
	"github.com/redmine-go/redmine/pkg/redmine"
)

// NewTimeEntriesCommand creates the time-entries command group.
func NewTimeEntriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "time-entries",
		Aliases: []string{"time", "te"},
		Short:   "Manage time entries",
		Long:    "List and show logged time",
	}

	cmd.AddCommand(newTimeEntriesListCommand())
	cmd.AddCommand(newTimeEntriesShowCommand())

	return cmd
}

func newTimeEntriesListCommand() *cobra.Command {
	var (
		project  string
		issueID  uint64
		userID   uint64
		from     string
		to       string
		allPages bool
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List time entries",
		Long:  "List time entries, optionally filtered by project, issue, user, and date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &redmine.TimeEntriesListOptions{}
			if project != "" {
				opts.ProjectID = &project
			}

			if issueID != 0 {
				opts.IssueID = &issueID
			}

			if userID != 0 {
				opts.UserID = &userID
			}

			if from != "" {
				fromDate, err := parseDateFlag(from)
				if err != nil {
					return err
				}

				opts.From = fromDate
			}

			if to != "" {
				toDate, err := parseDateFlag(to)
				if err != nil {
					return err
				}

				opts.To = toDate
			}

			return runTimeEntriesListCommand(opts, allPages, offset, limit)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "filter by project id or identifier")
	cmd.Flags().Uint64Var(&issueID, "issue", 0, "filter by issue id")
	cmd.Flags().Uint64Var(&userID, "user", 0, "filter by user id")
	cmd.Flags().StringVar(&from, "from", "", "earliest spent-on date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "latest spent-on date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultCLIPageSize, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "skip the first N results")

	return cmd
}

func parseDateFlag(value string) (*redmine.Date, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}

	return &redmine.Date{Time: parsed}, nil
}

func runTimeEntriesListCommand(opts *redmine.TimeEntriesListOptions, allPages bool, offset, limit int) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	if allPages {
		entries, err := client.TimeEntries().List(ctx, opts)
		if err != nil {
			return fmt.Errorf("listing time entries: %w", err)
		}

		return outputTimeEntries(entries, uint64(len(entries)))
	}

	page, err := client.TimeEntries().ListPage(ctx, opts, offset, limit)
	if err != nil {
		return fmt.Errorf("listing time entries: %w", err)
	}

	return outputTimeEntries(page.Values, page.TotalCount)
}

func outputTimeEntries(entries []redmine.TimeEntry, totalCount uint64) error {
	if done, err := renderStructured(entries); done {
		return err
	}

	if len(entries) == 0 {
		_, _ = os.Stdout.WriteString("No time entries found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Project", "Issue", "User", "Activity", "Hours", "Spent on")

	var totalHours float64

	for _, entry := range entries {
		issueRef := constants.NotAvailable
		if entry.Issue != nil {
			issueRef = fmt.Sprintf("#%d", entry.Issue.ID)
		}

		_ = table.Append(
			fmt.Sprintf("%d", entry.ID),
			entry.Project.Name,
			issueRef,
			entry.User.Name,
			entry.Activity.Name,
			fmt.Sprintf("%.2f", entry.Hours),
			dateOrNA(entry.SpentOn),
		)

		totalHours += entry.Hours
	}

	_ = table.Render()

	_, _ = fmt.Fprintf(os.Stdout, "\nTotal: %.2f hours\n", totalHours)

	if totalCount > uint64(len(entries)) {
		_, _ = fmt.Fprintf(os.Stdout, "Showing %d of %d entries. Use --all to fetch all pages.\n",
			len(entries), totalCount)
	}

	return nil
}

func newTimeEntriesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show TIME_ENTRY_ID",
		Short: "Show time entry details",
		Long:  "Display detailed information about a single time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimeEntriesShowCommand(args[0])
		},
	}
}

func runTimeEntriesShowCommand(arg string) error {
	entryID, err := parseID(arg)
	if err != nil {
		return err
	}

	client, err := createClient()
	if err != nil {
		return err
	}

	entry, err := client.TimeEntries().Get(context.Background(), entryID)
	if err != nil {
		return fmt.Errorf("fetching time entry %d: %w", entryID, err)
	}

	if done, err := renderStructured(entry); done {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	issueRef := constants.NotAvailable
	if entry.Issue != nil {
		issueRef = fmt.Sprintf("#%d", entry.Issue.ID)
	}

	_ = table.Append("ID", fmt.Sprintf("%d", entry.ID))
	_ = table.Append("Project", entry.Project.Name)
	_ = table.Append("Issue", issueRef)
	_ = table.Append("User", entry.User.Name)
	_ = table.Append("Activity", entry.Activity.Name)
	_ = table.Append("Hours", fmt.Sprintf("%.2f", entry.Hours))
	_ = table.Append("Spent on", dateOrNA(entry.SpentOn))
	_ = table.Append("Comments", entry.Comments)
	_ = table.Append("Created", timestampOrNA(entry.CreatedOn))

	_ = table.Render()

	return nil
}
