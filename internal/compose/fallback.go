package compose

import (
	"fmt"
	"strings"

	"github.com/archkit/mcp-server/internal/registry"
)

// Fallback synthesizes the self-describing listing returned for requests the
// engine could not map: every category, every registered topic, and literal
// example invocations an agent can retry with. It is ordinary content, not
// an error.
type Fallback struct {
	reg *registry.Registry
}

// NewFallback creates a synthesizer over the registry tables.
func NewFallback(reg *registry.Registry) *Fallback {
	return &Fallback{reg: reg}
}

// Listing renders the full catalog listing. The input argument is echoed so
// the caller can see what failed to classify; examples are drawn from
// actually registered entries, never invented.
func (f *Fallback) Listing(input string) string {
	var b strings.Builder

	b.WriteString("# Documentation request not recognized\n\n")
	if input != "" {
		b.WriteString(fmt.Sprintf("No documentation mapping matches %s.\n", input))
	} else {
		b.WriteString("No documentation mapping matches the request.\n")
	}
	b.WriteString("Retry with one of the registered categories and topics below.\n")

	for _, categoryName := range f.reg.Categories() {
		b.WriteString(fmt.Sprintf("\n## %s — %s\n\n", categoryName, f.reg.Display(categoryName)))
		for _, entry := range f.reg.AllEntries(categoryName) {
			b.WriteString(fmt.Sprintf("- %s\n", entry.Topic))
		}
	}

	toolExample, uriExample := f.examples()
	if toolExample != "" || uriExample != "" {
		b.WriteString("\n## Example invocations\n\n")
		if toolExample != "" {
			b.WriteString(fmt.Sprintf("- Tool call: %s\n", toolExample))
		}
		if uriExample != "" {
			b.WriteString(fmt.Sprintf("- Resource: %s\n", uriExample))
		}
	}

	return b.String()
}

// examples picks one tool-style and one URI-style invocation from the
// registered entries. The URI example prefers a template-kind entry so both
// request shapes are demonstrated.
func (f *Fallback) examples() (toolExample, uriExample string) {
	entries := f.reg.AllEntries("")
	if len(entries) == 0 {
		return "", ""
	}

	first := entries[0]
	if tool, ok := f.reg.ToolFor(first.Category); ok {
		toolExample = fmt.Sprintf("%s {%q: %q}", tool.Name, tool.Argument, first.Topic)
	}

	uriEntry := first
	for _, entry := range entries {
		if entry.Kind == registry.KindTemplate {
			uriEntry = entry
			break
		}
	}
	uriExample = fmt.Sprintf("%s://docs/%s/%s", f.reg.Scheme(), uriEntry.Category, uriEntry.Topic)

	return toolExample, uriExample
}
