// Package redmineclient provides the primary entry point for constructing
// a Redmine API client that implements the redmine.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the redmine package. Most applications
// should import redmineclient to build a client, then use the returned
// redmine.Client to access resource-specific clients, for example
// Issues(), Projects(), Users(), etc.
//
// Quick start
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
//
//	  cli, err := redmineclient.New(&redmine.Config{
//	    BaseURL: "https://redmine.example.com",
//	    APIKey:  "0123456789abcdef",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or from the environment (REDMINE_URL, REDMINE_API_KEY):
//	  cli, err = redmineclient.FromEnv()
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the redmine.Client interface
//	  issues, err := cli.Issues().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = issues
//	}
//
// # Impersonation
//
// An admin API key can act on behalf of another user via
// Config.ImpersonateUserID or the Impersonate method on the client; see
// the redmine package documentation.
//
// # Helpers
//
// The package also provides the convenience constructor NewWithAPIKey
// that wraps New with the minimal configuration.
package redmineclient
