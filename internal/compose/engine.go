package compose

import (
	"context"
	"fmt"

	"github.com/archkit/mcp-server/internal/classify"
	"github.com/archkit/mcp-server/internal/docstore"
	"github.com/archkit/mcp-server/internal/registry"
)

// Engine threads one request through the whole pipeline:
// classify → registry lookup → compose → augment, with the fallback
// synthesizer covering the unrecognized and unmatched branches. Engines are
// immutable after construction and safe for concurrent use.
type Engine struct {
	reg       *registry.Registry
	uris      *classify.URIClassifier
	composer  *Composer
	augmenter *Augmenter
	fallback  *Fallback
}

// NewEngine wires an engine over a registry and a document store.
func NewEngine(reg *registry.Registry, store docstore.Store) (*Engine, error) {
	uris, err := classify.NewURIClassifier(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to build URI classifier: %w", err)
	}

	return &Engine{
		reg:       reg,
		uris:      uris,
		composer:  NewComposer(store),
		augmenter: NewAugmenter(reg),
		fallback:  NewFallback(reg),
	}, nil
}

// Registry exposes the engine's mapping tables, for listing surfaces.
func (e *Engine) Registry() *registry.Registry {
	return e.reg
}

// ResolveTool answers a classified tool call. Unclassifiable calls get the
// fallback listing; they are never an error.
func (e *Engine) ResolveTool(ctx context.Context, call classify.ToolCall) (Resolution, error) {
	pair, ok := classify.ClassifyTool(call)
	if !ok {
		return Resolution{
			Status: StatusFallback,
			Text:   e.fallback.Listing(classify.DescribeTool(call)),
		}, nil
	}
	return e.resolve(ctx, pair, classify.DescribeTool(call))
}

// ResolveURI answers a resource URI read. Malformed or unknown URI shapes
// get the fallback listing; they are never an error.
func (e *Engine) ResolveURI(ctx context.Context, uri string) (Resolution, error) {
	pair, ok := e.uris.Classify(uri)
	if !ok {
		return Resolution{
			Status: StatusFallback,
			Text:   e.fallback.Listing(fmt.Sprintf("`%s`", uri)),
		}, nil
	}
	return e.resolve(ctx, pair, fmt.Sprintf("`%s`", uri))
}

// Resolve answers an already-canonical pair, for callers that classified out
// of band.
func (e *Engine) Resolve(ctx context.Context, pair classify.Canonical) (Resolution, error) {
	return e.resolve(ctx, pair, fmt.Sprintf("(%s, %s)", pair.Category, pair.Topic))
}

func (e *Engine) resolve(ctx context.Context, pair classify.Canonical, input string) (Resolution, error) {
	refs, ok := e.reg.Resolve(pair.Category, pair.Topic)
	if !ok {
		return Resolution{
			Status: StatusFallback,
			Text:   e.fallback.Listing(input),
		}, nil
	}

	text, err := e.composer.Compose(ctx, refs)
	if err != nil {
		return Resolution{}, fmt.Errorf("failed to compose (%s, %s): %w", pair.Category, pair.Topic, err)
	}

	return Resolution{
		Status: StatusResolved,
		Text:   e.augmenter.Append(text, pair.Category, pair.Topic),
	}, nil
}
