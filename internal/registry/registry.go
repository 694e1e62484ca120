// Package registry holds the immutable mapping tables that route canonical
// (category, topic) pairs to ordered document references. The registry is
// built once at process start from the embedded catalog and is read-only for
// the process lifetime, so concurrent lookups need no locking.
package registry

import (
	"fmt"
)

// DocumentRef is an opaque logical identifier resolving to exactly one
// content blob in the document store.
type DocumentRef string

// EntryKind distinguishes exact-key mappings from template-parameter mappings.
type EntryKind int

const (
	KindExact EntryKind = iota
	KindTemplate
)

func (k EntryKind) String() string {
	if k == KindTemplate {
		return "template"
	}
	return "exact"
}

// Entry is one registered (category, topic) pair, as reported by AllEntries.
type Entry struct {
	Category string
	Topic    string
	Kind     EntryKind
}

// StaticURI maps a literal resource path to a canonical pair.
type StaticURI struct {
	Path     string
	Category string
	Topic    string
}

type topicEntry struct {
	key     string
	kind    EntryKind
	docs    []DocumentRef
	related []string
}

type category struct {
	name    string
	display string
	tool    ToolConfig
	// order preserves catalog authoring order for listing output;
	// exact and template are the two disjoint lookup tables.
	order    []*topicEntry
	exact    map[string]*topicEntry
	template map[string]*topicEntry
}

// Registry is the read-only lookup service over the catalog tables.
type Registry struct {
	scheme     string
	order      []*category
	byName     map[string]*category
	staticURIs []StaticURI
}

// New builds a Registry from a validated Config. Construction fails fast on
// duplicate keys: within a category no two entries may share a key, whether
// they live in the same table or not (exact/template overlap is a
// configuration bug, not a precedence choice).
func New(cfg *Config) (*Registry, error) {
	if cfg.Scheme == "" {
		return nil, fmt.Errorf("catalog has no URI scheme")
	}

	reg := &Registry{
		scheme: cfg.Scheme,
		byName: make(map[string]*category, len(cfg.Categories)),
	}

	for _, cc := range cfg.Categories {
		if _, exists := reg.byName[cc.Name]; exists {
			return nil, fmt.Errorf("duplicate category %q", cc.Name)
		}

		cat := &category{
			name:     cc.Name,
			display:  cc.Display,
			tool:     cc.Tool,
			exact:    make(map[string]*topicEntry, len(cc.Entries)),
			template: make(map[string]*topicEntry),
		}

		for _, ec := range cc.Entries {
			if len(ec.Docs) == 0 {
				return nil, fmt.Errorf("category %q: entry %q maps to no documents", cc.Name, ec.Key)
			}
			if _, dup := cat.exact[ec.Key]; dup {
				return nil, fmt.Errorf("category %q: duplicate key %q", cc.Name, ec.Key)
			}
			if _, dup := cat.template[ec.Key]; dup {
				return nil, fmt.Errorf("category %q: key %q registered as both exact and template", cc.Name, ec.Key)
			}

			entry := &topicEntry{
				key:     ec.Key,
				related: ec.Related,
				docs:    make([]DocumentRef, 0, len(ec.Docs)),
			}
			for _, d := range ec.Docs {
				entry.docs = append(entry.docs, DocumentRef(d))
			}

			switch ec.Kind {
			case "exact":
				entry.kind = KindExact
				cat.exact[ec.Key] = entry
			case "template":
				entry.kind = KindTemplate
				cat.template[ec.Key] = entry
			default:
				return nil, fmt.Errorf("category %q: entry %q has unknown kind %q", cc.Name, ec.Key, ec.Kind)
			}
			cat.order = append(cat.order, entry)
		}

		reg.order = append(reg.order, cat)
		reg.byName[cc.Name] = cat
	}

	for _, su := range cfg.StaticURIs {
		cat, ok := reg.byName[su.Category]
		if !ok {
			return nil, fmt.Errorf("static URI %q references unknown category %q", su.Path, su.Category)
		}
		if _, ok := cat.exact[su.Topic]; !ok {
			if _, ok := cat.template[su.Topic]; !ok {
				return nil, fmt.Errorf("static URI %q references unregistered topic (%s, %s)", su.Path, su.Category, su.Topic)
			}
		}
		reg.staticURIs = append(reg.staticURIs, StaticURI{
			Path:     su.Path,
			Category: su.Category,
			Topic:    su.Topic,
		})
	}

	return reg, nil
}

// Scheme returns the resource URI scheme (e.g. "archkit").
func (r *Registry) Scheme() string {
	return r.scheme
}

// LookupExact resolves a topic through the exact-key table of a category.
func (r *Registry) LookupExact(categoryName, topic string) ([]DocumentRef, bool) {
	cat, ok := r.byName[categoryName]
	if !ok {
		return nil, false
	}
	entry, ok := cat.exact[topic]
	if !ok {
		return nil, false
	}
	return entry.docs, true
}

// LookupTemplate resolves a template parameter value through the template
// table of a category. Callers check this only after LookupExact misses.
func (r *Registry) LookupTemplate(categoryName, param string) ([]DocumentRef, bool) {
	cat, ok := r.byName[categoryName]
	if !ok {
		return nil, false
	}
	entry, ok := cat.template[param]
	if !ok {
		return nil, false
	}
	return entry.docs, true
}

// Resolve applies the precedence contract: the exact-key table always wins
// over the template table for the same pair.
func (r *Registry) Resolve(categoryName, topic string) ([]DocumentRef, bool) {
	if docs, ok := r.LookupExact(categoryName, topic); ok {
		return docs, true
	}
	return r.LookupTemplate(categoryName, topic)
}

// RelatedTopics returns the curated sibling topics for a pair, in catalog
// order. Empty when nothing is curated or the pair is unknown.
func (r *Registry) RelatedTopics(categoryName, topic string) []string {
	cat, ok := r.byName[categoryName]
	if !ok {
		return nil
	}
	entry, ok := cat.exact[topic]
	if !ok {
		entry, ok = cat.template[topic]
	}
	if !ok {
		return nil
	}
	return entry.related
}

// AllEntries enumerates registered pairs in catalog order. With a category
// name it is limited to that category; with "" it spans every category.
func (r *Registry) AllEntries(categoryName string) []Entry {
	var entries []Entry
	for _, cat := range r.order {
		if categoryName != "" && cat.name != categoryName {
			continue
		}
		for _, e := range cat.order {
			entries = append(entries, Entry{
				Category: cat.name,
				Topic:    e.key,
				Kind:     e.kind,
			})
		}
	}
	return entries
}

// Categories returns the category names in catalog order.
func (r *Registry) Categories() []string {
	names := make([]string, 0, len(r.order))
	for _, cat := range r.order {
		names = append(names, cat.name)
	}
	return names
}

// HasCategory reports whether a category is registered.
func (r *Registry) HasCategory(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Display returns the human-readable category title, falling back to the
// category name when no title is curated.
func (r *Registry) Display(categoryName string) string {
	cat, ok := r.byName[categoryName]
	if !ok || cat.display == "" {
		return categoryName
	}
	return cat.display
}

// ToolFor returns the MCP tool metadata serving a category.
func (r *Registry) ToolFor(categoryName string) (ToolConfig, bool) {
	cat, ok := r.byName[categoryName]
	if !ok {
		return ToolConfig{}, false
	}
	return cat.tool, true
}

// StaticURIs returns the literal resource path table in catalog order.
func (r *Registry) StaticURIs() []StaticURI {
	return r.staticURIs
}
