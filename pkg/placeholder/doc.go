// Package placeholder provides types, interfaces, and helpers for working
// with the JSONPlaceholder posts API.
//
// # Overview
//
// The placeholder package defines the domain types (Post, Comment), the
// request types (PostCreateRequest, PostUpdate, ListOptions), and the
// interfaces for the resource-oriented clients (PostsClient, CommentsClient).
// A concrete implementation of these clients is provided by the jpclient
// package, which wires configuration, transport, and logging. Most consumers
// should import jpclient to construct a client and then interact with the
// interfaces exposed here.
//
// Getting a client
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
//	  cli, err := jpclient.New(&placeholder.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first ten posts
//	  posts, err := cli.Posts().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = posts
//	}
//
// # Errors
//
// Non-2xx responses are represented by ResponseError; lower-level transport
// failures are returned wrapped with their cause. Helpers IsNotFound and
// IsTimeout make it easy to branch on the two cases callers commonly care
// about. The one deliberate exception: PostsClient.Get returns (nil, nil)
// for a missing post, because a 404 on a read is an answer, not a failure.
//
// # Semantics
//
// Every value returned by a client is the server's JSON payload, decoded.
// The client never caches, never derives state, never generates ids, and
// issues exactly one HTTP request per operation with no retries.
package placeholder
