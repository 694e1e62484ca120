package tools

import (
	"embed"
	"io/fs"
)

// Embed static data files into the binary
// This ensures the MCP server works standalone without requiring
// external data files to be present on the filesystem.
// Works cross-platform: macOS, Linux, Windows
//
// Embedded files:
// - Mapping catalog and its JSON schema (routing configuration)
// - Documentation corpus (the markdown served to agents)

//go:embed data/mappings/catalog.json
//go:embed data/mappings/catalog.schema.json
//go:embed data/docs
var embeddedFS embed.FS

// embeddedDataProvider implements DataProvider using embed.FS.
// This is the production implementation that uses actual embedded files.
type embeddedDataProvider struct {
	fs embed.FS
}

// NewEmbeddedDataProvider creates a production DataProvider that uses embedded files.
func NewEmbeddedDataProvider() DataProvider {
	return &embeddedDataProvider{fs: embeddedFS}
}

// ReadFile reads the named file from the embedded filesystem.
func (p *embeddedDataProvider) ReadFile(name string) ([]byte, error) {
	return p.fs.ReadFile(name)
}

// DocsFS returns the embedded documentation corpus rooted at data/docs.
func (p *embeddedDataProvider) DocsFS() (fs.FS, error) {
	return fs.Sub(p.fs, "data/docs")
}

// Default provider used by package-level functions (for backward compatibility)
var defaultDataProvider DataProvider = NewEmbeddedDataProvider()
