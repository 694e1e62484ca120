package compose

import (
	"fmt"
	"strings"

	"github.com/archkit/mcp-server/internal/registry"
)

// Augmenter appends a related-topics section derived from the curated topic
// graph. Augmentation is optional: no curated siblings, no section.
type Augmenter struct {
	reg *registry.Registry
}

// NewAugmenter creates an augmenter over the registry's topic graph.
func NewAugmenter(reg *registry.Registry) *Augmenter {
	return &Augmenter{reg: reg}
}

// Append adds a "Related topics" block for (category, topic) to text, with
// one canonical invocation per sibling. The requesting topic is filtered out
// even if the catalog lists it, and siblings that are not actually
// registered are skipped: every rendered invocation must be retrievable.
func (a *Augmenter) Append(text, categoryName, topic string) string {
	related := a.reg.RelatedTopics(categoryName, topic)
	if len(related) == 0 {
		return text
	}

	var lines []string
	seen := make(map[string]struct{}, len(related))
	for _, sibling := range related {
		if sibling == topic {
			continue
		}
		if _, dup := seen[sibling]; dup {
			continue
		}
		seen[sibling] = struct{}{}

		if _, ok := a.reg.Resolve(categoryName, sibling); !ok {
			continue
		}
		lines = append(lines, a.invocationLine(categoryName, sibling))
	}

	if len(lines) == 0 {
		return text
	}

	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n## Related topics\n\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func (a *Augmenter) invocationLine(categoryName, topic string) string {
	uri := fmt.Sprintf("%s://docs/%s/%s", a.reg.Scheme(), categoryName, topic)
	if tool, ok := a.reg.ToolFor(categoryName); ok {
		return fmt.Sprintf("- `%s` — tool `%s` with `{%q: %q}`, or resource `%s`",
			topic, tool.Name, tool.Argument, topic, uri)
	}
	return fmt.Sprintf("- `%s` — resource `%s`", topic, uri)
}
