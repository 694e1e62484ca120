package tools

import (
	"io/fs"
	"strings"
	"testing/fstest"
)

// MockDataProvider implements DataProvider for testing.
// It uses an in-memory map to simulate file storage without requiring
// actual files or embedded data to be present.
type MockDataProvider struct {
	files map[string][]byte
}

// NewMockDataProvider creates a new mock data provider for testing.
func NewMockDataProvider() *MockDataProvider {
	return &MockDataProvider{
		files: make(map[string][]byte),
	}
}

// AddFile adds a file to the mock provider.
func (m *MockDataProvider) AddFile(name string, content []byte) {
	m.files[name] = content
}

// ReadFile reads a file from the mock storage.
func (m *MockDataProvider) ReadFile(name string) ([]byte, error) {
	content, exists := m.files[name]
	if !exists {
		return nil, fs.ErrNotExist
	}
	return content, nil
}

// DocsFS exposes the files under data/docs/ as a filesystem rooted at the
// docs directory, mirroring what the embedded provider returns.
func (m *MockDataProvider) DocsFS() (fs.FS, error) {
	const prefix = "data/docs/"
	docs := fstest.MapFS{}
	for name, content := range m.files {
		if strings.HasPrefix(name, prefix) {
			docs[strings.TrimPrefix(name, prefix)] = &fstest.MapFile{Data: content}
		}
	}
	return docs, nil
}

// SetDefaultDataProvider sets the default data provider for the package.
// This is useful for testing to inject a mock provider.
func SetDefaultDataProvider(provider DataProvider) {
	defaultDataProvider = provider
}

// ResetDefaultDataProvider resets the default provider to use embedded data.
func ResetDefaultDataProvider() {
	defaultDataProvider = NewEmbeddedDataProvider()
}
