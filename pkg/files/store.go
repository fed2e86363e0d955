package files

import (
	"context"
	"net/url"
	"os"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=files

// Store is the read-only view of a filesystem the browser works against.
type Store interface {
	RootTitle() string
	RootURL() url.URL

	// ReadDir returns the children of the named directory in no particular order.
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)

	// Stat follows symlinks.
	Stat(ctx context.Context, name string) (os.FileInfo, error)

	ReadFile(ctx context.Context, name string) ([]byte, error)
}
