package iso8583

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Catalog is a set of message families and their field definitions.
type Catalog struct {
	Families []FamilyDefinition `json:"families" yaml:"families"`
}

// FamilyDefinition lists the fields of one message family as agreed with
// one peer.
type FamilyDefinition struct {
	Name   string            `json:"name" yaml:"name"`
	Peer   string            `json:"peer" yaml:"peer"`
	Fields []FieldDefinition `json:"fields" yaml:"fields"`
}

// Family returns the family with the given name and peer. An empty peer
// matches the first family of that name.
func (c *Catalog) Family(name, peer string) (FamilyDefinition, error) {
	for _, f := range c.Families {
		if f.Name == name && (peer == "" || f.Peer == peer) {
			return f, nil
		}
	}
	return FamilyDefinition{}, fmt.Errorf("%w: %s/%s", ErrFamilyNotFound, name, peer)
}

// Registry compiles the named family into a Registry.
func (c *Catalog) Registry(name, peer string, compiler *Compiler) (*Registry, error) {
	fam, err := c.Family(name, peer)
	if err != nil {
		return nil, err
	}
	return NewRegistry(fam.Name, fam.Fields, compiler)
}

// LoadCatalogJSON decodes a JSON catalog.
func LoadCatalogJSON(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &cat, nil
}

// LoadCatalogYAML decodes a YAML catalog.
func LoadCatalogYAML(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &cat, nil
}

// LoadCatalogFile reads a catalog from path, choosing the decoder by file
// extension (.json, .yaml or .yml).
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return LoadCatalogJSON(data)
	case ".yaml", ".yml":
		return LoadCatalogYAML(data)
	default:
		return nil, fmt.Errorf("unsupported catalog extension %q", ext)
	}
}

func cloneDefinitions(defs []FieldDefinition) []FieldDefinition {
	out := make([]FieldDefinition, len(defs))
	copy(out, defs)
	return out
}
