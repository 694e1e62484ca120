// Package docstore is the read-only adapter over the document corpus. It is
// the only code that touches storage: a pure passthrough read with no retry,
// no transformation and no caching.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// ErrNotFound reports that a document ref does not resolve to a content blob.
var ErrNotFound = errors.New("document not found")

// Store loads one content blob per document ref.
type Store interface {
	Load(ctx context.Context, ref string) (string, error)
}

// FSStore reads documents from an fs.FS rooted at a fixed base directory.
// Production uses the embedded corpus; tests use fstest.MapFS fixtures.
type FSStore struct {
	fsys fs.FS
	root string
}

// NewFSStore creates a store reading refs relative to root inside fsys.
func NewFSStore(fsys fs.FS, root string) *FSStore {
	return &FSStore{fsys: fsys, root: root}
}

// Load returns the content of one document. Missing blobs report ErrNotFound;
// any other failure is an I/O fault for the caller to surface.
func (s *FSStore) Load(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := path.Join(s.root, ref)
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, ref)
		}
		return "", fmt.Errorf("failed to read document %s: %w", ref, err)
	}

	return string(data), nil
}
