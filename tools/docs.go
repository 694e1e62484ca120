package tools

import (
	"context"
	"fmt"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/archkit/mcp-server/internal/classify"
	"github.com/archkit/mcp-server/internal/compose"
	"github.com/archkit/mcp-server/internal/docstore"
	"github.com/archkit/mcp-server/internal/registry"
)

const (
	catalogFile       = "data/mappings/catalog.json"
	catalogSchemaFile = "data/mappings/catalog.schema.json"
)

var (
	docRegistry *registry.Registry
	docEngine   *compose.Engine
)

// InitializeDocs builds the documentation engine: it loads and
// schema-validates the embedded mapping catalog, constructs the immutable
// registry, and wires the composer over the embedded corpus. Catalog
// problems (schema violations, overlapping keys, dangling static URIs) fail
// here, at startup, never at request time.
func InitializeDocs() error {
	catalogJSON, err := defaultDataProvider.ReadFile(catalogFile)
	if err != nil {
		return fmt.Errorf("failed to read mapping catalog: %w", err)
	}
	schemaJSON, err := defaultDataProvider.ReadFile(catalogSchemaFile)
	if err != nil {
		return fmt.Errorf("failed to read catalog schema: %w", err)
	}

	cfg, err := registry.LoadConfig(catalogJSON, schemaJSON)
	if err != nil {
		return fmt.Errorf("invalid mapping catalog: %w", err)
	}

	reg, err := registry.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to build mapping registry: %w", err)
	}

	docsFS, err := defaultDataProvider.DocsFS()
	if err != nil {
		return fmt.Errorf("failed to open documentation corpus: %w", err)
	}

	engine, err := compose.NewEngine(reg, docstore.NewFSStore(docsFS, "."))
	if err != nil {
		return fmt.Errorf("failed to build documentation engine: %w", err)
	}

	docRegistry = reg
	docEngine = engine
	log.Printf("✓ Documentation engine initialized (%d categories, %d topics)",
		len(reg.Categories()), len(reg.AllEntries("")))
	return nil
}

// ensureDocs lazily initializes the engine for handlers invoked before (or
// despite a failed) registration-time initialization.
func ensureDocs() error {
	if docEngine != nil {
		return nil
	}
	log.Printf("Documentation engine not initialized, initializing now...")
	return InitializeDocs()
}

// TopicDocOutput is the shared output of the per-category documentation
// tools. Content always carries markdown: the composed documents on a match,
// the catalog listing when the request could not be resolved (Resolved is
// false in that case).
type TopicDocOutput struct {
	Category string `json:"category"`
	Topic    string `json:"topic"`
	Resolved bool   `json:"resolved"`
	Content  string `json:"content"`
}

// CoreConceptsInput defines input for the core_concepts tool
type CoreConceptsInput struct {
	Topic string `json:"topic" jsonschema:"Core topic key. One of: overview, glossary, guard-clauses, value-objects, aggregates, domain-events"`
}

// CoreConcepts serves the core tactical-pattern documentation
func CoreConcepts(ctx context.Context, req *mcp.CallToolRequest, input CoreConceptsInput) (*mcp.CallToolResult, TopicDocOutput, error) {
	return resolveToolCall(ctx, "core", input.Topic, classify.CoreConceptsCall{Topic: input.Topic})
}

// DatabaseAdvisorInput defines input for the database_advisor tool
type DatabaseAdvisorInput struct {
	Provider     string   `json:"provider" jsonschema:"Database provider. One of: postgresql, mysql, mongodb, sqlite"`
	Requirements []string `json:"requirements,omitempty" jsonschema:"Optional workload requirements, e.g. transactions (advisory context only)"`
}

// DatabaseAdvisor serves the per-provider database guidance
func DatabaseAdvisor(ctx context.Context, req *mcp.CallToolRequest, input DatabaseAdvisorInput) (*mcp.CallToolResult, TopicDocOutput, error) {
	call := classify.DatabaseAdvisorCall{
		Provider:     input.Provider,
		Requirements: input.Requirements,
	}
	return resolveToolCall(ctx, "database", input.Provider, call)
}

// CQRSGuideInput defines input for the cqrs_guide tool
type CQRSGuideInput struct {
	Aspect string `json:"aspect" jsonschema:"CQRS aspect. One of: overview, commands, queries, projections"`
}

// CQRSGuide serves the CQRS documentation
func CQRSGuide(ctx context.Context, req *mcp.CallToolRequest, input CQRSGuideInput) (*mcp.CallToolResult, TopicDocOutput, error) {
	return resolveToolCall(ctx, "cqrs", input.Aspect, classify.CQRSGuideCall{Aspect: input.Aspect})
}

// ProjectTemplateInput defines input for the project_template tool
type ProjectTemplateInput struct {
	Style string `json:"style" jsonschema:"Scaffolding style. One of: cqrs, crud, hexagonal"`
}

// ProjectTemplate serves the project scaffolding templates
func ProjectTemplate(ctx context.Context, req *mcp.CallToolRequest, input ProjectTemplateInput) (*mcp.CallToolResult, TopicDocOutput, error) {
	return resolveToolCall(ctx, "template", input.Style, classify.ProjectTemplateCall{Style: input.Style})
}

// resolveToolCall is the shared handler body: every recoverable condition
// comes back as ordinary content; only unexpected faults become errors.
func resolveToolCall(ctx context.Context, category, topic string, call classify.ToolCall) (*mcp.CallToolResult, TopicDocOutput, error) {
	if err := ensureDocs(); err != nil {
		return nil, TopicDocOutput{}, fmt.Errorf("documentation engine unavailable: %w", err)
	}

	res, err := docEngine.ResolveTool(ctx, call)
	if err != nil {
		return nil, TopicDocOutput{}, err
	}

	return nil, TopicDocOutput{
		Category: category,
		Topic:    topic,
		Resolved: res.Resolved(),
		Content:  res.Text,
	}, nil
}

// TopicListing groups the registered topic keys of one category.
type TopicListing struct {
	Category string   `json:"category"`
	Display  string   `json:"display"`
	Topics   []string `json:"topics"`
}

// ListTopicsInput defines input for the list_topics tool
type ListTopicsInput struct {
	Category string `json:"category,omitempty" jsonschema:"Optional category filter. One of: core, database, cqrs, template. Unknown values list everything."`
}

// ListTopicsOutput defines output for the list_topics tool
type ListTopicsOutput struct {
	Categories []TopicListing `json:"categories"`
	Count      int            `json:"count"`
}

// ListTopics enumerates every registered category and topic key
func ListTopics(ctx context.Context, req *mcp.CallToolRequest, input ListTopicsInput) (*mcp.CallToolResult, ListTopicsOutput, error) {
	if err := ensureDocs(); err != nil {
		return nil, ListTopicsOutput{}, fmt.Errorf("documentation engine unavailable: %w", err)
	}

	filter := input.Category
	if filter != "" && !docRegistry.HasCategory(filter) {
		// Unknown filters fall back to the full listing, consistent with the
		// engine's self-describing fallback path.
		filter = ""
	}

	output := ListTopicsOutput{}
	for _, name := range docRegistry.Categories() {
		if filter != "" && name != filter {
			continue
		}
		listing := TopicListing{
			Category: name,
			Display:  docRegistry.Display(name),
		}
		for _, entry := range docRegistry.AllEntries(name) {
			listing.Topics = append(listing.Topics, entry.Topic)
			output.Count++
		}
		output.Categories = append(output.Categories, listing)
	}

	return nil, output, nil
}

// RegisterDocTools registers the documentation tools
func RegisterDocTools(server *mcp.Server) error {
	if err := InitializeDocs(); err != nil {
		return err
	}

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "core_concepts",
			Description: "Get documentation for a core tactical pattern (guard clauses, value objects, aggregates, domain events). Returns the full catalog listing when the topic is unknown.",
		},
		CoreConcepts,
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "database_advisor",
			Description: "Get database guidance for a provider (postgresql, mysql, mongodb, sqlite), including transaction-boundary rules where curated.",
		},
		DatabaseAdvisor,
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "cqrs_guide",
			Description: "Get CQRS documentation for one aspect (overview, commands, queries, projections).",
		},
		CQRSGuide,
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "project_template",
			Description: "Get a project scaffolding template by style (cqrs, crud, hexagonal).",
		},
		ProjectTemplate,
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "list_topics",
			Description: "List every registered documentation category and topic key. Use this to discover valid arguments for the other tools.",
		},
		ListTopics,
	)

	return nil
}
