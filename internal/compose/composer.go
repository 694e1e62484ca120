// Package compose assembles documentation responses: it loads the documents
// a registry lookup selected, concatenates them deterministically, appends
// cross-references, and synthesizes the fallback listing when nothing
// matched.
package compose

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/archkit/mcp-server/internal/docstore"
	"github.com/archkit/mcp-server/internal/registry"
)

// Separator joins document blocks inside one composite.
const Separator = "\n\n---\n\n"

// MissingPlaceholder is the visible marker substituted for a document that
// failed to load. It keeps the gap debuggable without failing the composite.
func MissingPlaceholder(ref registry.DocumentRef) string {
	return fmt.Sprintf("<!-- missing: %s -->", ref)
}

// Composer turns an ordered ref list into a single markdown block.
type Composer struct {
	store docstore.Store
}

// NewComposer creates a composer reading through the given store.
func NewComposer(store docstore.Store) *Composer {
	return &Composer{store: store}
}

// Compose loads every ref and joins the contents in input order. Loads run
// concurrently within the composite and are joined before concatenation, so
// output order is input order, not completion order. A missing document
// degrades to a placeholder; any other load failure fails the composite.
func (c *Composer) Compose(ctx context.Context, refs []registry.DocumentRef) (string, error) {
	if len(refs) == 0 {
		return "", fmt.Errorf("empty document ref list")
	}

	blocks := make([]string, len(refs))
	faults := make([]error, len(refs))

	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		go func(i int, ref registry.DocumentRef) {
			defer wg.Done()

			text, err := c.store.Load(ctx, string(ref))
			if err != nil {
				if errors.Is(err, docstore.ErrNotFound) {
					blocks[i] = MissingPlaceholder(ref)
					return
				}
				faults[i] = err
				return
			}
			blocks[i] = strings.TrimRight(text, "\n")
		}(i, ref)
	}
	wg.Wait()

	for _, err := range faults {
		if err != nil {
			return "", err
		}
	}

	return strings.Join(blocks, Separator), nil
}
