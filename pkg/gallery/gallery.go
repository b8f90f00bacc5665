// Package gallery persists rendered charts for the HTTP API.
//
// This package defines the storage interface for the optional chart
// gallery, with implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for server deployments
//
// Gallery records are append-mostly: the server stores each rendered
// chart with its specification and image so clients can fetch or list
// past renders. Nothing in the core pipeline depends on the gallery.
package gallery

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Chart is one persisted gallery record.
type Chart struct {
	ID        string         `json:"id" bson:"_id"`
	Type      string         `json:"type" bson:"type"`
	Title     string         `json:"title,omitempty" bson:"title,omitempty"`
	Dialect   string         `json:"dialect" bson:"dialect"`
	Spec      map[string]any `json:"spec" bson:"spec"`
	SpecHash  string         `json:"spec_hash" bson:"spec_hash"`
	Format    string         `json:"format" bson:"format"`
	Image     []byte         `json:"-" bson:"image,omitempty"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
}

// NewID mints a gallery record id.
func NewID() string {
	return uuid.NewString()
}

// Store is the gallery storage interface.
//
// Get returns a NOT_FOUND coded error for unknown ids. List returns the
// newest records first, capped at limit (0 means no cap).
type Store interface {
	Put(ctx context.Context, c *Chart) error
	Get(ctx context.Context, id string) (*Chart, error)
	List(ctx context.Context, limit int) ([]*Chart, error)
	Delete(ctx context.Context, id string) error
	Close(ctx context.Context) error
}
