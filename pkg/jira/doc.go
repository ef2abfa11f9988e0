// Package jira provides types, interfaces, and helpers for working with the
// JIRA REST API.
//
// # Overview
//
// The jira package defines the domain types (e.g., Issue, Project, Version,
// AuditRecord) and the interfaces for resource-oriented clients (e.g.,
// IssueClient, ProjectClient). A concrete implementation is provided by the
// jiraclient package, which wires configuration, transport and
// authentication. Most consumers import jiraclient to construct a client and
// then use the resource client interfaces exposed here.
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
//	  cli, err := jiraclient.NewWithBasicAuth("https://jira.example.com", "admin", "secret")
//	  if err != nil { log.Fatal(err) }
//
//	  issue, err := cli.Issues().GetIssue(ctx, "TST-1").Claim()
//	  if err != nil { log.Fatal(err) }
//	  _ = issue
//	}
//
// # Promises
//
// Every remote operation returns immediately with a *Promise. Claim blocks
// until the call completes; Await does the same but stops waiting when its
// context ends. Then, Handle and All compose promises without blocking.
// Giving up in Await does not abort the call; only the context passed to the
// operation itself reaches the transport.
//
// # Errors
//
// Every failure of a remote operation is a *ClientError. It carries the HTTP
// status code when one was received, the error records reported by the
// server (from both the "errorMessages" array and the "errors" field map),
// and the lower-level cause such as a transport failure or a *DecodeError.
// Helpers such as IsNotFound, IsUnauthorized and StatusCode make it easy to
// branch on common cases.
//
// # Interceptors
//
// Request and response interceptors can be set on Config to inspect or
// mutate outgoing requests (headers, request ids) and to observe responses.
package jira
