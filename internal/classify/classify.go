// Package classify normalizes incoming tool calls and resource URIs into
// canonical (category, topic) pairs. Classification is purely structural: a
// well-formed request classifies even when its topic is not registered; the
// registry performs the real existence check afterwards.
package classify

import "fmt"

// Canonical is the normalized (category, topic) pair every request reduces to.
type Canonical struct {
	Category string
	Topic    string
}

// ToolCall is the closed set of tool argument shapes, one variant per tool.
// The classifier is a total function over this union.
type ToolCall interface {
	// describe renders the call for fallback listings, so an agent can see
	// what it sent alongside what it could have sent.
	describe() string
}

// CoreConceptsCall carries the arguments of the core_concepts tool.
type CoreConceptsCall struct {
	Topic string
}

// DatabaseAdvisorCall carries the arguments of the database_advisor tool.
// Requirements is advisory context only; classification keys on Provider.
type DatabaseAdvisorCall struct {
	Provider     string
	Requirements []string
}

// CQRSGuideCall carries the arguments of the cqrs_guide tool.
type CQRSGuideCall struct {
	Aspect string
}

// ProjectTemplateCall carries the arguments of the project_template tool.
type ProjectTemplateCall struct {
	Style string
}

func (c CoreConceptsCall) describe() string {
	return fmt.Sprintf("core_concepts {\"topic\": %q}", c.Topic)
}

func (c DatabaseAdvisorCall) describe() string {
	return fmt.Sprintf("database_advisor {\"provider\": %q}", c.Provider)
}

func (c CQRSGuideCall) describe() string {
	return fmt.Sprintf("cqrs_guide {\"aspect\": %q}", c.Aspect)
}

func (c ProjectTemplateCall) describe() string {
	return fmt.Sprintf("project_template {\"style\": %q}", c.Style)
}

// DescribeTool renders a tool call as a literal invocation string.
func DescribeTool(call ToolCall) string {
	if call == nil {
		return "unknown tool call"
	}
	return call.describe()
}

// ClassifyTool maps a tool call to its canonical pair. It returns false for
// calls whose classifying argument is empty; it never panics.
func ClassifyTool(call ToolCall) (Canonical, bool) {
	switch c := call.(type) {
	case CoreConceptsCall:
		return canonical("core", c.Topic)
	case DatabaseAdvisorCall:
		return canonical("database", c.Provider)
	case CQRSGuideCall:
		return canonical("cqrs", c.Aspect)
	case ProjectTemplateCall:
		return canonical("template", c.Style)
	default:
		return Canonical{}, false
	}
}

func canonical(category, topic string) (Canonical, bool) {
	if topic == "" {
		return Canonical{}, false
	}
	return Canonical{Category: category, Topic: topic}, true
}
