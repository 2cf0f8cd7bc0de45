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

// NewNewsCommand creates the news command group.
func NewNewsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Browse news",
		Long:  "List news entries across all projects or for a single project",
	}

	cmd.AddCommand(newNewsListCommand())

	return cmd
}

func newNewsListCommand() *cobra.Command {
	var (
		project  string
		allPages bool
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List news",
		Long:  "List news entries, optionally limited to one project",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &redmine.NewsListOptions{}
			if project != "" {
				opts.ProjectID = &project
			}

			return runNewsListCommand(opts, allPages, offset, limit)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "limit to a project id or identifier")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultCLIPageSize, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "skip the first N results")

	return cmd
}

func runNewsListCommand(opts *redmine.NewsListOptions, allPages bool, offset, limit int) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	if allPages {
		news, err := client.News().List(ctx, opts)
		if err != nil {
			return fmt.Errorf("listing news: %w", err)
		}

		return outputNews(news, uint64(len(news)))
	}

	page, err := client.News().ListPage(ctx, opts, offset, limit)
	if err != nil {
		return fmt.Errorf("listing news: %w", err)
	}

	return outputNews(page.Values, page.TotalCount)
}

func outputNews(news []redmine.News, totalCount uint64) error {
	if done, err := renderStructured(news); done {
		return err
	}

	if len(news) == 0 {
		_, _ = os.Stdout.WriteString("No news found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Project", "Title", "Author", "Created")

	for _, entry := range news {
		_ = table.Append(
			fmt.Sprintf("%d", entry.ID),
			entry.Project.Name,
			truncate(entry.Title, constants.DescriptionDisplayLength),
			entry.Author.Name,
			timestampOrNA(entry.CreatedOn),
		)
	}

	_ = table.Render()

	if totalCount > uint64(len(news)) {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d news entries. Use --all to fetch all pages.\n",
			len(news), totalCount)
	}

	return nil
}
