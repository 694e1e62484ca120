package tools

import (
	"io/fs"
	"testing"
)

func TestMockDataProvider_ReadFile(t *testing.T) {
	mock := NewMockDataProvider()

	// Add a test file
	mock.AddFile("data/test.txt", []byte("test content"))

	// Read existing file
	content, err := mock.ReadFile("data/test.txt")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(content) != "test content" {
		t.Errorf("Expected 'test content', got: %s", string(content))
	}

	// Try to read non-existent file
	_, err = mock.ReadFile("data/missing.txt")
	if err != fs.ErrNotExist {
		t.Errorf("Expected fs.ErrNotExist, got: %v", err)
	}
}

func TestMockDataProvider_DocsFS(t *testing.T) {
	mock := NewMockDataProvider()

	mock.AddFile("data/docs/core/overview.md", []byte("# Overview"))
	mock.AddFile("data/mappings/catalog.json", []byte("{}"))

	docsFS, err := mock.DocsFS()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// Files under data/docs/ are re-rooted at the docs directory
	content, err := fs.ReadFile(docsFS, "core/overview.md")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(content) != "# Overview" {
		t.Errorf("Expected '# Overview', got: %s", string(content))
	}

	// Files outside data/docs/ must not leak into the corpus
	if _, err := fs.ReadFile(docsFS, "catalog.json"); err == nil {
		t.Error("Expected mapping files to be excluded from the docs filesystem")
	}
}

func TestMockDataProvider_SetAndReset(t *testing.T) {
	// Create mock provider
	mock := NewMockDataProvider()
	mock.AddFile("data/test.json", []byte(`{"test": true}`))

	// Set as default
	originalProvider := defaultDataProvider
	defer func() {
		defaultDataProvider = originalProvider
	}()

	SetDefaultDataProvider(mock)

	// Verify it's being used
	content, err := defaultDataProvider.ReadFile("data/test.json")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(content) != `{"test": true}` {
		t.Errorf("Expected test JSON, got: %s", string(content))
	}

	// Reset to default
	ResetDefaultDataProvider()

	// Verify reset worked (defaultDataProvider should be different now)
	if defaultDataProvider == mock {
		t.Error("Expected defaultDataProvider to be reset")
	}
}

func TestEmbeddedDataProvider(t *testing.T) {
	provider := NewEmbeddedDataProvider()

	catalog, err := provider.ReadFile(catalogFile)
	if err != nil {
		t.Fatalf("Expected embedded catalog, got: %v", err)
	}
	if len(catalog) == 0 {
		t.Error("Expected non-empty catalog")
	}

	docsFS, err := provider.DocsFS()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if _, err := fs.ReadFile(docsFS, "core/overview.md"); err != nil {
		t.Errorf("Expected embedded docs corpus to be readable: %v", err)
	}
}
