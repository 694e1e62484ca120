package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/archkit/mcp-server/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	version     = "0.3.0"
	serverName  = "archkit-mcp-server"
	description = "MCP server routing architecture documentation to AI agents"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("%s version %s\n", serverName, version)
		os.Exit(0)
	}

	// Set up logging to stderr (MCP uses stdout for protocol)
	log.SetOutput(os.Stderr)
	log.Printf("%s v%s starting...", serverName, version)

	// Create MCP server
	server := createMCPServer()

	// Register all tools and resources
	if err := registerTools(server); err != nil {
		log.Fatalf("Failed to register tools: %v", err)
	}
	if err := registerResources(server); err != nil {
		log.Fatalf("Failed to register resources: %v", err)
	}

	log.Printf("✓ Server ready and waiting for connections")

	// Run server with stdio transport
	ctx := context.Background()
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// createMCPServer initializes the MCP server
func createMCPServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    serverName,
			Version: version,
		},
		nil, // Default options
	)

	log.Printf("Server initialized: %s v%s", serverName, version)
	return server
}

// registerTools registers all MCP tools
func registerTools(server *mcp.Server) error {
	// Documentation tools (4 per-category tools + list_topics)
	if err := tools.RegisterDocTools(server); err != nil {
		return fmt.Errorf("failed to register documentation tools: %w", err)
	}

	log.Printf("✓ All tools registered: 5 tools (per-category docs + listing)")
	return nil
}

// registerResources registers all MCP resources
func registerResources(server *mcp.Server) error {
	if err := tools.RegisterDocResources(server); err != nil {
		return fmt.Errorf("failed to register documentation resources: %w", err)
	}

	log.Printf("✓ Resources registered (static paths + per-category templates)")
	return nil
}
