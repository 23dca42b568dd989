package benchmark

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/autoaudit/autoaudit/internal/audit"
	"github.com/autoaudit/autoaudit/internal/benchmark/assets"
)

// Definition describes one selectable benchmark and names its bundled
// sample result document.
type Definition struct {
	Key         string `yaml:"key"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Framework   string `yaml:"framework"`
	Version     string `yaml:"version"`
	Results     string `yaml:"results"`
}

type catalogFile struct {
	Benchmarks []Definition `yaml:"benchmarks"`
}

// Catalog is the ordered set of bundled benchmarks. The first entry is the
// default selection.
type Catalog struct {
	defs []Definition
}

// LoadCatalog parses and validates the embedded benchmark catalog.
func LoadCatalog() (*Catalog, error) {
	data, err := assets.FS.ReadFile("benchmarks.yaml")
	if err != nil {
		return nil, fmt.Errorf("read benchmark catalog: %w", err)
	}

	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse benchmark catalog: %w", err)
	}
	if len(cf.Benchmarks) == 0 {
		return nil, fmt.Errorf("benchmark catalog is empty")
	}

	seen := make(map[string]bool, len(cf.Benchmarks))
	for i := range cf.Benchmarks {
		def := &cf.Benchmarks[i]
		def.Key = strings.ToLower(strings.TrimSpace(def.Key))
		if def.Key == "" {
			return nil, fmt.Errorf("benchmark %d has no key", i)
		}
		if seen[def.Key] {
			return nil, fmt.Errorf("duplicate benchmark key %q", def.Key)
		}
		seen[def.Key] = true

		if strings.TrimSpace(def.Results) == "" {
			return nil, fmt.Errorf("benchmark %q names no results file", def.Key)
		}
		if _, err := assets.FS.ReadFile(def.Results); err != nil {
			return nil, fmt.Errorf("benchmark %q results: %w", def.Key, err)
		}
	}

	return &Catalog{defs: cf.Benchmarks}, nil
}

// List returns the definitions in catalog order.
func (c *Catalog) List() []Definition {
	return append([]Definition(nil), c.defs...)
}

// Default returns the first catalog entry.
func (c *Catalog) Default() Definition {
	return c.defs[0]
}

// Get resolves a user-supplied benchmark key. Unknown keys fall back to the
// default definition, mirroring how filter selections degrade.
func (c *Catalog) Get(key string) (Definition, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, def := range c.defs {
		if def.Key == key {
			return def, true
		}
	}
	return c.Default(), false
}

// Source returns a result source backed by the definition's bundled sample.
// The document is parsed on every load.
func (c *Catalog) Source(def Definition) audit.Source {
	return assetSource{name: def.Results}
}

type assetSource struct {
	name string
}

func (s assetSource) Load(ctx context.Context) (audit.Document, error) {
	if err := ctx.Err(); err != nil {
		return audit.Document{}, err
	}

	data, err := assets.FS.ReadFile(s.name)
	if err != nil {
		return audit.Document{}, fmt.Errorf("read embedded results %s: %w", s.name, err)
	}

	doc, err := audit.ParseDocumentBytes(data)
	if err != nil {
		return audit.Document{}, fmt.Errorf("parse embedded results %s: %w", s.name, err)
	}
	return doc, nil
}
