package classify

import (
	"fmt"
	"strings"

	"github.com/yosida95/uritemplate/v3"

	"github.com/archkit/mcp-server/internal/registry"
)

// URIClassifier matches resource URIs against a static exact-string table
// and an ordered list of per-category template shapes. All shapes are
// compiled once at construction; per-request matching never compiles
// patterns.
type URIClassifier struct {
	scheme  string
	statics map[string]Canonical
	shapes  []uriShape
}

type uriShape struct {
	category string
	tmpl     *uritemplate.Template
}

// NewURIClassifier compiles the URI tables for a registry. One template
// shape of the form scheme://docs/<category>/{topic} is registered per
// category, in catalog order.
func NewURIClassifier(reg *registry.Registry) (*URIClassifier, error) {
	c := &URIClassifier{
		scheme:  reg.Scheme(),
		statics: make(map[string]Canonical),
	}

	for _, su := range reg.StaticURIs() {
		uri := fmt.Sprintf("%s://docs/%s", c.scheme, su.Path)
		c.statics[uri] = Canonical{Category: su.Category, Topic: su.Topic}
	}

	for _, name := range reg.Categories() {
		raw := fmt.Sprintf("%s://docs/%s/{topic}", c.scheme, name)
		tmpl, err := uritemplate.New(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to compile URI shape %q: %w", raw, err)
		}
		c.shapes = append(c.shapes, uriShape{category: name, tmpl: tmpl})
	}

	return c, nil
}

// TemplateURI renders the canonical resource URI for a pair.
func (c *URIClassifier) TemplateURI(categoryName, topic string) string {
	return fmt.Sprintf("%s://docs/%s/%s", c.scheme, categoryName, topic)
}

// Classify maps a resource URI string to its canonical pair. The static
// table is checked first, then the template shapes in order. Malformed URIs
// and unknown shapes report false; they never panic.
func (c *URIClassifier) Classify(uri string) (Canonical, bool) {
	if uri == "" {
		return Canonical{}, false
	}

	if pair, ok := c.statics[uri]; ok {
		return pair, true
	}

	for _, shape := range c.shapes {
		values := shape.tmpl.Match(uri)
		if values == nil {
			continue
		}
		topic := values.Get("topic").String()
		// A two-segment shape only: a topic spanning path segments means
		// the URI did not really have the category/topic form.
		if topic == "" || strings.Contains(topic, "/") {
			continue
		}
		return Canonical{Category: shape.category, Topic: topic}, true
	}

	return Canonical{}, false
}
