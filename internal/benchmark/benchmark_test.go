package benchmark

import (
	"context"
	"testing"

	"github.com/autoaudit/autoaudit/internal/audit"
)

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	defs := c.List()
	if len(defs) == 0 {
		t.Fatalf("List() returned no benchmarks")
	}
	if got := c.Default().Key; got != defs[0].Key {
		t.Fatalf("Default().Key = %q, want first entry %q", got, defs[0].Key)
	}
	if c.Default().Key != "essential-eight" {
		t.Fatalf("Default().Key = %q, want essential-eight", c.Default().Key)
	}

	for _, def := range defs {
		if def.Name == "" || def.Results == "" {
			t.Fatalf("definition %q incomplete: %+v", def.Key, def)
		}
	}
}

func TestCatalogGet(t *testing.T) {
	t.Parallel()

	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	def, ok := c.Get("cis-docker")
	if !ok || def.Key != "cis-docker" {
		t.Fatalf("Get(cis-docker) = (%+v, %v), want the cis-docker definition", def, ok)
	}

	def, ok = c.Get("  CIS-Docker ")
	if !ok || def.Key != "cis-docker" {
		t.Fatalf("Get with padding/case = (%+v, %v), want the cis-docker definition", def, ok)
	}

	def, ok = c.Get("does-not-exist")
	if ok {
		t.Fatalf("Get(does-not-exist) ok = true, want fallback")
	}
	if def.Key != c.Default().Key {
		t.Fatalf("fallback definition = %q, want default %q", def.Key, c.Default().Key)
	}
}

func TestEverySampleDocumentNormalizes(t *testing.T) {
	t.Parallel()

	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	for _, def := range c.List() {
		def := def
		t.Run(def.Key, func(t *testing.T) {
			t.Parallel()

			doc, err := c.Source(def).Load(context.Background())
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(doc.Records) == 0 {
				t.Fatalf("sample document for %q is empty", def.Key)
			}

			rows := audit.Normalize(doc)
			if len(rows) != len(doc.Records) {
				t.Fatalf("len(rows) = %d, want %d", len(rows), len(doc.Records))
			}
			for _, row := range rows {
				if row.ID == "" {
					t.Fatalf("row with empty ID in %q", def.Key)
				}
				if row.Status == "" {
					t.Fatalf("row %s has empty status", row.ID)
				}
			}
		})
	}
}

func TestDefaultSampleCoversEveryStatus(t *testing.T) {
	t.Parallel()

	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	doc, err := c.Source(c.Default()).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	s := audit.Summarize(audit.Normalize(doc))
	if s.Compliant == 0 || s.NonCompliant == 0 || s.Errored == 0 || s.Unknown == 0 {
		t.Fatalf("default sample summary %+v, want every status represented", s)
	}
	if s.Violations == 0 {
		t.Fatalf("default sample has no violations to display")
	}
}
