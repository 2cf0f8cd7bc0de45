// Package redmine provides types, interfaces, and helpers for working with
// the Redmine JSON REST API.
//
// # Overview
//
// The redmine package defines the domain types (e.g., Issue, Project, User,
// TimeEntry) and the interfaces for resource-oriented clients (e.g.,
// IssuesClient, ProjectsClient). A concrete implementation of these clients
// is provided by the redmineclient package, which wires configuration,
// transport, authentication, and logging. Most consumers should import
// redmineclient to construct a client and then interact with the resource
// client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/redmine-go/redmine/pkg/redmine"
//	  "github.com/redmine-go/redmine/pkg/redmineclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := redmineclient.New(&redmine.Config{
//	    BaseURL: "https://redmine.example.com",
//	    APIKey:  "0123456789abcdef0123456789abcdef01234567",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  issues, err := cli.Issues().List(ctx, &redmine.IssuesListOptions{})
//	  if err != nil { log.Fatal(err) }
//	  _ = issues
//	}
//
// # Queries and pagination
//
// Use QueryParams to express list filters in a fixed order; PushOpt skips
// nil values, so optional filters are added only when set. Paginated list
// endpoints come in two flavors on each resource client: List collects
// every page, ListPage fetches a single page as a ResponsePage with the
// server-reported total count, offset, and limit.
//
// For custom endpoints, the generic helpers dispatch an Endpoint and decode
// its response:
//
//	user, err := redmine.Object[redmine.User](ctx, requester, endpoint)
//
//	it := redmine.NewPageIterator[redmine.Issue](ctx, requester, endpoint)
//	for it.HasNext() {
//	  issue, err := it.Next()
//	  if err != nil { break }
//	  _ = issue
//	}
//
// # Errors
//
// Failures are represented by typed errors such as TransportError,
// EmptyResponseBodyError, PaginationKeyMissingError, and JSONDecodeError,
// all of which support errors.As and errors.Is. HTTP status codes are
// returned alongside bodies rather than turned into errors; CheckStatus
// converts a 4xx/5xx status into an HTTPErrorResponse when callers want
// that.
//
// # Impersonation
//
// Clients constructed with admin credentials can act on behalf of another
// user via Impersonate, which sets the X-Redmine-Switch-User header on
// subsequent requests until ClearImpersonation is called.
package redmine
