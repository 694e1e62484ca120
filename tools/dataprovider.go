package tools

import (
	"io/fs"
)

// DataProvider defines the interface for accessing embedded data files.
// This abstraction allows for dependency injection and makes the code
// testable without requiring actual embedded files to be present.
//
// Implementations:
//   - embeddedDataProvider: Uses embed.FS for production (real embedded files)
//   - MockDataProvider: Uses an in-memory map for testing
type DataProvider interface {
	// ReadFile reads the named file and returns its contents.
	// The name is relative to the data root (e.g., "data/mappings/catalog.json").
	ReadFile(name string) ([]byte, error)

	// DocsFS returns the documentation corpus as a filesystem rooted at the
	// docs directory, for the document store adapter to read through.
	DocsFS() (fs.FS, error)
}
