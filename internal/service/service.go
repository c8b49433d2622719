// Package service hosts one controller per backend resource. Each
// controller owns the create/read/delete operations for its resource and
// goes through the shared HTTP gateway; none of them hold authoritative
// data, only what the active view needs.
package service

import (
	"context"
	"net/url"
)

// httpGateway is the slice of the gateway the controllers consume.
type httpGateway interface {
	Get(ctx context.Context, path string, query url.Values, out interface{}) error
	Post(ctx context.Context, path string, body, out interface{}) error
	Put(ctx context.Context, path string, body, out interface{}) error
	Delete(ctx context.Context, path string) error
}
