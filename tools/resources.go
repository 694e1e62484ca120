package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterDocResources registers the documentation resources: one static
// resource per literal path in the catalog, and one URI template per
// category. Every read handler delegates to the engine through the URI
// classifier, so SDK-side template matching and engine-side matching cannot
// diverge.
func RegisterDocResources(server *mcp.Server) error {
	if err := ensureDocs(); err != nil {
		return err
	}

	scheme := docRegistry.Scheme()

	for _, su := range docRegistry.StaticURIs() {
		server.AddResource(&mcp.Resource{
			URI:         fmt.Sprintf("%s://docs/%s", scheme, su.Path),
			Name:        fmt.Sprintf("docs-%s", su.Path),
			Description: fmt.Sprintf("Documentation entry point: %s", su.Path),
			MIMEType:    "text/markdown",
		}, handleDocResource)
	}

	for _, name := range docRegistry.Categories() {
		server.AddResourceTemplate(&mcp.ResourceTemplate{
			URITemplate: fmt.Sprintf("%s://docs/%s/{topic}", scheme, name),
			Name:        fmt.Sprintf("%s-docs", name),
			Description: docRegistry.Display(name),
			MIMEType:    "text/markdown",
		}, handleDocResource)
	}

	return nil
}

// handleDocResource reads one documentation resource. Unknown topics and
// malformed URIs yield the catalog listing as ordinary content; only
// unexpected faults become protocol errors.
func handleDocResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	if err := ensureDocs(); err != nil {
		return nil, fmt.Errorf("documentation engine unavailable: %w", err)
	}

	res, err := docEngine.ResolveURI(ctx, req.Params.URI)
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     res.Text,
		}},
	}, nil
}
