// Package jiraclient provides the primary entry point for constructing a
// JIRA REST client that implements the jira.Client interface.
//
// It layers configuration, HTTP transport and authentication on top of the
// resource interfaces and types defined in the jira package. Most
// applications should import jiraclient to build a client, then use the
// returned jira.Client to access resource-specific clients, for example
// Issues(), Projects(), Audit(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/jira-client/pkg/jira"
//	  "github.com/fivetwenty-io/jira-client/pkg/jiraclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just a server URI (no auth).
//	  cli, err := jiraclient.NewAnonymous("jira.example.com")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a personal access token:
//	  cli, err = jiraclient.New(&jira.Config{
//	    ServerURI:   "https://jira.example.com",
//	    AccessToken: "NjE4...", // bearer token
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  projects, err := cli.Projects().GetAllProjects(ctx).Claim()
//	  if err != nil { log.Fatal(err) }
//	  _ = projects
//	}
//
// # Server URI
//
// The server URI may carry a context path ("https://example.com/jira").
// A missing scheme defaults to https and trailing slashes are dropped.
//
// # Helpers
//
// The package also provides convenience constructors NewAnonymous,
// NewWithToken, NewWithBasicAuth and NewWithTokenSource that wrap New with
// the appropriate configuration.
package jiraclient
