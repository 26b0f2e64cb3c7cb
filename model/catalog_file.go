package model

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// CatalogEntry is one model's record in a catalog file.
type CatalogEntry struct {
	ContextWindow    int     `yaml:"context_window" json:"context_window" jsonschema:"required,description=Maximum total token capacity (input plus reserved output)"`
	InputPerMillion  float64 `yaml:"input_per_million" json:"input_per_million,omitempty" jsonschema:"description=Input price in USD per million tokens"`
	OutputPerMillion float64 `yaml:"output_per_million" json:"output_per_million,omitempty" jsonschema:"description=Output price in USD per million tokens"`
}

// LoadCatalog reads a YAML catalog file mapping model identifiers to
// CatalogEntry records and returns a catalog layering those entries over
// the builtin table. File entries win on conflict; the builtin table is
// never mutated.
//
// Example file:
//
//	my-private-model:
//	  context_window: 32768
//	  input_per_million: 0.50
//	  output_per_million: 1.50
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var entries map[string]CatalogEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	merged := make(map[string]Info, len(builtin.entries)+len(entries))
	for name, info := range builtin.entries {
		merged[name] = info
	}
	for name, entry := range entries {
		if entry.ContextWindow <= 0 {
			return nil, fmt.Errorf("catalog entry %q: context_window must be positive", name)
		}
		merged[name] = Info{
			ContextWindow: entry.ContextWindow,
			Pricing: Pricing{
				InputPerMillion:  entry.InputPerMillion,
				OutputPerMillion: entry.OutputPerMillion,
			},
		}
	}
	return &Catalog{entries: merged}, nil
}

// CatalogSchema returns the JSON Schema for the catalog file format, for
// validating catalog files in editors and CI.
func CatalogSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{DoNotReference: true}
	schema := reflector.ReflectFromType(reflect.TypeOf(map[string]CatalogEntry{}))
	schema.Title = "promptkit model catalog"
	schema.Description = "Maps model identifiers to context windows and pricing."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal catalog schema: %w", err)
	}
	return data, nil
}
