package domain

import "context"

// Database is the lifecycle the commands need from a storage backend.
// Backends ship their own migrations.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
