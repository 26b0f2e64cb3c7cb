package model

import "sort"

// defaultKey is the catalog entry used when a model identifier is unknown.
const defaultKey = "default"

// Pricing holds per-million-token pricing for a model, in USD.
type Pricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// Info describes a model's capabilities.
type Info struct {
	// ContextWindow is the maximum total token capacity (input plus
	// reserved output).
	ContextWindow int

	// Pricing is the model's token pricing. Zero values mean the model
	// is treated as free for cost estimation.
	Pricing Pricing
}

// Catalog maps model identifiers to their capabilities. Lookups never
// mutate a catalog, so a single instance may be shared across goroutines.
type Catalog struct {
	entries map[string]Info
}

// builtin is the catalog compiled into the package (pricing as of 2025).
// The "default" entry is the conservative fallback for unknown models.
var builtin = &Catalog{entries: map[string]Info{
	// Claude models
	"claude-opus-4":     {ContextWindow: 200000, Pricing: Pricing{InputPerMillion: 15.0, OutputPerMillion: 75.0}},
	"claude-sonnet-4":   {ContextWindow: 200000, Pricing: Pricing{InputPerMillion: 3.0, OutputPerMillion: 15.0}},
	"claude-3.5-sonnet": {ContextWindow: 200000, Pricing: Pricing{InputPerMillion: 3.0, OutputPerMillion: 15.0}},
	"claude-3.5-haiku":  {ContextWindow: 200000, Pricing: Pricing{InputPerMillion: 0.80, OutputPerMillion: 4.0}},
	"claude-3-haiku":    {ContextWindow: 200000, Pricing: Pricing{InputPerMillion: 0.25, OutputPerMillion: 1.25}},

	// GPT models
	"gpt-5":       {ContextWindow: 400000, Pricing: Pricing{InputPerMillion: 1.25, OutputPerMillion: 10.0}},
	"gpt-5-mini":  {ContextWindow: 400000, Pricing: Pricing{InputPerMillion: 0.25, OutputPerMillion: 2.0}},
	"gpt-4o":      {ContextWindow: 128000, Pricing: Pricing{InputPerMillion: 2.50, OutputPerMillion: 10.0}},
	"gpt-4o-mini": {ContextWindow: 128000, Pricing: Pricing{InputPerMillion: 0.15, OutputPerMillion: 0.60}},

	// Gemini models
	"gemini-2.5-pro":   {ContextWindow: 1048576, Pricing: Pricing{InputPerMillion: 1.25, OutputPerMillion: 10.0}},
	"gemini-2.5-flash": {ContextWindow: 1048576, Pricing: Pricing{InputPerMillion: 0.30, OutputPerMillion: 2.50}},

	// Default fallback
	defaultKey: {ContextWindow: 100000},
}}

// Builtin returns the catalog compiled into the package.
func Builtin() *Catalog {
	return builtin
}

// resolve finds the catalog key for a model identifier: exact match first,
// then the normalized family name.
func (c *Catalog) resolve(model string) (string, Info, bool) {
	if info, ok := c.entries[model]; ok {
		return model, info, true
	}
	norm := Normalize(model)
	if info, ok := c.entries[norm]; ok {
		return norm, info, true
	}
	return model, Info{}, false
}

// Lookup returns the capabilities for a model identifier and whether the
// identifier is known. Dated and aliased identifiers are normalized before
// the lookup fails.
func (c *Catalog) Lookup(model string) (Info, bool) {
	_, info, ok := c.resolve(model)
	return info, ok
}

// ContextWindow returns the context window for a model, or the default
// fallback if the model is not known.
func (c *Catalog) ContextWindow(model string) int {
	if _, info, ok := c.resolve(model); ok {
		return info.ContextWindow
	}
	return c.entries[defaultKey].ContextWindow
}

// Names returns the known model identifiers, sorted. The default fallback
// entry is not a model and is excluded.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		if name == defaultKey {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the capabilities for a model from the builtin catalog.
func Lookup(model string) (Info, bool) {
	return builtin.Lookup(model)
}

// ContextWindowFor returns the context window for a model from the builtin
// catalog, or the default (100000 tokens) if the model is not known.
func ContextWindowFor(model string) int {
	return builtin.ContextWindow(model)
}

// Names returns the model identifiers in the builtin catalog, sorted.
func Names() []string {
	return builtin.Names()
}
