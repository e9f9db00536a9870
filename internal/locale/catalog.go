// Package locale holds the read-only country catalog used to recognise the
// locale at the end of a carrier status message.
package locale

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed countries.yaml
var defaultCatalog []byte

// ErrDuplicateKey is returned when two countries claim the same lookup key.
var ErrDuplicateKey = errors.New("duplicate catalog key")

// Country is one catalog entry. Every non-empty field is a lookup key.
type Country struct {
	Alpha2  string   `yaml:"alpha2"`
	Alpha3  string   `yaml:"alpha3"`
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases,omitempty"`
}

// Keys returns the tokens that resolve to this country.
func (c Country) Keys() []string {
	keys := make([]string, 0, 3+len(c.Aliases))
	for _, k := range append([]string{c.Alpha2, c.Alpha3, c.Name}, c.Aliases...) {
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

type catalogFile struct {
	Countries []Country `yaml:"countries"`
}

// Catalog maps country codes, names and aliases to a canonical display name.
// Lookups are exact and case-sensitive.
type Catalog struct {
	byKey     map[string]string
	countries []Country
}

// NewCatalog indexes the given countries.
func NewCatalog(countries []Country) (*Catalog, error) {
	c := &Catalog{
		byKey:     make(map[string]string, len(countries)*3),
		countries: countries,
	}
	for _, country := range countries {
		if country.Name == "" {
			return nil, fmt.Errorf("catalog entry %q/%q has no name", country.Alpha2, country.Alpha3)
		}
		for _, key := range country.Keys() {
			if existing, ok := c.byKey[key]; ok && existing != country.Name {
				return nil, fmt.Errorf("%w: %q maps to both %q and %q", ErrDuplicateKey, key, existing, country.Name)
			}
			c.byKey[key] = country.Name
		}
	}
	return c, nil
}

// Parse reads a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse locale catalog: %w", err)
	}
	return NewCatalog(f.Countries)
}

// LoadFile reads a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the embedded ISO 3166 catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded locale catalog is invalid: %v", err))
	}
	return c
}

// Lookup resolves a token to its canonical country name.
func (c *Catalog) Lookup(token string) (string, bool) {
	name, ok := c.byKey[token]
	return name, ok
}

// Len returns the number of countries in the catalog.
func (c *Catalog) Len() int { return len(c.countries) }
