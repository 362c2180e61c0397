// Package jpclient provides the primary entry point for constructing a
// JSONPlaceholder API client that implements the placeholder.Client interface.
//
// It layers configuration validation, endpoint normalization, and the HTTP
// transport on top of the resource interfaces and types defined in the
// placeholder package. Most applications should import jpclient to build a
// client, then use the returned placeholder.Client to access the resource
// clients Posts() and Comments().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/postline-io/placeholder-client/pkg/jpclient"
//	  "github.com/postline-io/placeholder-client/pkg/placeholder"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: the zero config targets the public JSONPlaceholder host.
//	  cli, err := jpclient.New(&placeholder.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or pointing at another deployment of the same API:
//	  cli, err = jpclient.NewWithEndpoint("https://placeholder.internal.example.com")
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the placeholder.Client interface
//	  posts, err := cli.Posts().List(ctx, &placeholder.ListOptions{Limit: 10})
//	  if err != nil { log.Fatal(err) }
//	  _ = posts
//	}
//
// # Endpoint normalization
//
// New trims a trailing slash from Config.APIEndpoint and prepends "https://"
// when no scheme is present, so "jsonplaceholder.typicode.com/" and
// "https://jsonplaceholder.typicode.com" configure the same client.
package jpclient
