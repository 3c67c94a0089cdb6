// Package content is the static content layer for the site backend. The
// catalog, product and careers data ship compiled in, with an optional YAML
// override file for content edits that should not require a rebuild. The
// chat script is code-owned and has no override path.
package content

import (
	"fmt"
	"os"

	"iot-site-backend/models"

	"gopkg.in/yaml.v2"
)

// Store holds the loaded site content. Records are immutable after load;
// accessors return copies so callers cannot mutate the backing slices.
type Store struct {
	documents []models.DocumentRecord
	products  []models.Product
	openings  []models.JobOpening
	script    *ChatScript
}

// overrideFile is the YAML override document. A non-empty section replaces
// the corresponding built-in content wholesale.
type overrideFile struct {
	Documents []models.DocumentRecord `yaml:"documents"`
	Products  []models.Product        `yaml:"products"`
	Openings  []models.JobOpening     `yaml:"openings"`
}

// Load builds the content store from built-in data, applying the YAML
// override file at path if one is given.
func Load(path string) (*Store, error) {
	store := &Store{
		documents: defaultDocuments(),
		products:  defaultProducts(),
		openings:  defaultOpenings(),
		script:    defaultChatScript(),
	}

	if path == "" {
		return store, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}

	var override overrideFile
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse content file %s: %w", path, err)
	}

	if len(override.Documents) > 0 {
		store.documents = override.Documents
	}
	if len(override.Products) > 0 {
		store.products = override.Products
	}
	if len(override.Openings) > 0 {
		store.openings = override.Openings
	}

	return store, nil
}

// Documents returns the download-center records in display order
func (s *Store) Documents() []models.DocumentRecord {
	out := make([]models.DocumentRecord, len(s.documents))
	copy(out, s.documents)
	return out
}

// Products returns the product catalog in display order
func (s *Store) Products() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Openings returns the careers-page positions
func (s *Store) Openings() []models.JobOpening {
	out := make([]models.JobOpening, len(s.openings))
	copy(out, s.openings)
	return out
}

// Script returns the chat responder script
func (s *Store) Script() *ChatScript {
	return s.script
}
