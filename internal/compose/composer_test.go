package compose

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/archkit/mcp-server/internal/docstore"
	"github.com/archkit/mcp-server/internal/registry"
)

func fixtureStore() docstore.Store {
	return docstore.NewFSStore(fstest.MapFS{
		"core/guard-clauses.md":   &fstest.MapFile{Data: []byte("# Guard clauses\n\nReturn early.\n")},
		"core/value-objects.md":   &fstest.MapFile{Data: []byte("# Value objects\n\nCompare by value.\n")},
		"core/aggregates.md":      &fstest.MapFile{Data: []byte("# Aggregates\n")},
		"core/aggregate-rules.md": &fstest.MapFile{Data: []byte("# Aggregate design rules\n")},
		"database/postgresql.md":  &fstest.MapFile{Data: []byte("# PostgreSQL guidance\n")},
		"template/cqrs.md":        &fstest.MapFile{Data: []byte("# CQRS project template\n")},
		"cqrs/overview.md":        &fstest.MapFile{Data: []byte("# CQRS overview\n")},
	}, ".")
}

// faultyStore fails every load with an error that is not ErrNotFound.
type faultyStore struct{}

func (faultyStore) Load(ctx context.Context, ref string) (string, error) {
	return "", fmt.Errorf("disk on fire: %s", ref)
}

func TestCompose_JoinsInInputOrder(t *testing.T) {
	composer := NewComposer(fixtureStore())

	refs := []registry.DocumentRef{"core/aggregates.md", "core/aggregate-rules.md"}
	text, err := composer.Compose(context.Background(), refs)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	want := "# Aggregates" + Separator + "# Aggregate design rules"
	if text != want {
		t.Errorf("Compose = %q, want %q", text, want)
	}
}

func TestCompose_Deterministic(t *testing.T) {
	composer := NewComposer(fixtureStore())
	refs := []registry.DocumentRef{
		"core/guard-clauses.md",
		"core/value-objects.md",
		"core/aggregates.md",
	}

	first, err := composer.Compose(context.Background(), refs)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	// Loads run concurrently; output must still be byte-identical run to run
	for i := 0; i < 20; i++ {
		again, err := composer.Compose(context.Background(), refs)
		if err != nil {
			t.Fatalf("Compose failed on run %d: %v", i, err)
		}
		if again != first {
			t.Fatalf("Run %d differs from first run", i)
		}
	}
}

func TestCompose_MissingDocBecomesPlaceholder(t *testing.T) {
	composer := NewComposer(fixtureStore())

	refs := []registry.DocumentRef{
		"core/guard-clauses.md",
		"core/not-there.md",
		"core/value-objects.md",
	}
	text, err := composer.Compose(context.Background(), refs)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	if !strings.Contains(text, "<!-- missing: core/not-there.md -->") {
		t.Error("Expected placeholder for missing document")
	}
	// Remaining documents must not be suppressed
	if !strings.Contains(text, "Return early.") {
		t.Error("Preceding document missing from composite")
	}
	if !strings.Contains(text, "Compare by value.") {
		t.Error("Following document missing from composite")
	}
	// Placeholder keeps its slot in input order
	if strings.Index(text, "Return early.") > strings.Index(text, "missing:") {
		t.Error("Placeholder out of input order")
	}
}

func TestCompose_AllMissingStillNonEmpty(t *testing.T) {
	composer := NewComposer(fixtureStore())

	refs := []registry.DocumentRef{"gone/a.md", "gone/b.md"}
	text, err := composer.Compose(context.Background(), refs)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if text == "" {
		t.Fatal("Composite of placeholders must not be empty")
	}
	if !strings.Contains(text, "<!-- missing: gone/a.md -->") || !strings.Contains(text, "<!-- missing: gone/b.md -->") {
		t.Errorf("Expected placeholders for every missing ref, got: %q", text)
	}
}

func TestCompose_EmptyRefListIsError(t *testing.T) {
	composer := NewComposer(fixtureStore())

	if _, err := composer.Compose(context.Background(), nil); err == nil {
		t.Error("Expected error for empty ref list")
	}
}

func TestCompose_StoreFaultFailsComposite(t *testing.T) {
	composer := NewComposer(faultyStore{})

	_, err := composer.Compose(context.Background(), []registry.DocumentRef{"core/guard-clauses.md"})
	if err == nil {
		t.Fatal("Expected fault to fail the composite")
	}
	if errors.Is(err, docstore.ErrNotFound) {
		t.Error("Fault must not be mistaken for a missing document")
	}
}
