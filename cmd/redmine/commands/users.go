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

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
		Long:    "List and show Redmine users (listing requires admin privileges)",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersShowCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var (
		name     string
		status   string
		allPages bool
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Long:  "List users, optionally filtered by name and account status",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &redmine.UsersListOptions{}
			if name != "" {
				opts.Name = &name
			}

			if status != "" {
				userStatus := redmine.UserStatus(status)
				opts.Status = &userStatus
			}

			return runUsersListCommand(opts, allPages, offset, limit)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "filter by login, name, or email")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (1 active, 2 registered, 3 locked)")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultCLIPageSize, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "skip the first N results")

	return cmd
}

func runUsersListCommand(opts *redmine.UsersListOptions, allPages bool, offset, limit int) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	if allPages {
		users, err := client.Users().List(ctx, opts)
		if err != nil {
			return fmt.Errorf("listing users: %w", err)
		}

		return outputUsers(users, uint64(len(users)))
	}

	page, err := client.Users().ListPage(ctx, opts, offset, limit)
	if err != nil {
		return fmt.Errorf("listing users: %w", err)
	}

	return outputUsers(page.Values, page.TotalCount)
}

func outputUsers(users []redmine.User, totalCount uint64) error {
	if done, err := renderStructured(users); done {
		return err
	}

	if len(users) == 0 {
		_, _ = os.Stdout.WriteString("No users found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Login", "Name", "Email", "Last login")

	for _, user := range users {
		_ = table.Append(
			fmt.Sprintf("%d", user.ID),
			user.Login,
			user.Firstname+" "+user.Lastname,
			user.Mail,
			timestampOrNA(user.LastLoginOn),
		)
	}

	_ = table.Render()

	if totalCount > uint64(len(users)) {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d users. Use --all to fetch all pages.\n",
			len(users), totalCount)
	}

	return nil
}

func newUsersShowCommand() *cobra.Command {
	var include []string

	cmd := &cobra.Command{
		Use:   "show USER_ID",
		Short: "Show user details",
		Long:  "Display detailed information about a user; use 'current' for the authenticated user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersShowCommand(args[0], include)
		},
	}

	cmd.Flags().StringSliceVar(&include, "include", nil, "associations to fetch (memberships, groups)")

	return cmd
}

func runUsersShowCommand(arg string, include []string) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	opts := &redmine.UserGetOptions{}
	for _, inc := range include {
		opts.Include = append(opts.Include, redmine.UserInclude(inc))
	}

	ctx := context.Background()

	var user *redmine.User

	if arg == "current" || arg == "me" {
		user, err = client.Users().Current(ctx, opts)
		if err != nil {
			return fmt.Errorf("fetching current user: %w", err)
		}
	} else {
		userID, parseErr := parseID(arg)
		if parseErr != nil {
			return parseErr
		}

		user, err = client.Users().Get(ctx, userID, opts)
		if err != nil {
			return fmt.Errorf("fetching user %d: %w", userID, err)
		}
	}

	if done, err := renderStructured(user); done {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", fmt.Sprintf("%d", user.ID))
	_ = table.Append("Login", user.Login)
	_ = table.Append("Name", user.Firstname+" "+user.Lastname)
	_ = table.Append("Email", user.Mail)
	_ = table.Append("Admin", fmt.Sprintf("%t", user.Admin))
	_ = table.Append("Created", timestampOrNA(user.CreatedOn))
	_ = table.Append("Last login", timestampOrNA(user.LastLoginOn))

	if user.APIKey != "" {
		_ = table.Append("API key", constants.MaskedSecret)
	}

	_ = table.Render()

	return nil
}
