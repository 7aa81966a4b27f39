package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"service-booking-api/internal/model"
)

//go:embed services.yaml
var defaultFile []byte

type file struct {
	Fallback model.Service   `yaml:"fallback"`
	Services []model.Service `yaml:"services"`
}

type Catalog struct {
	services []model.Service
	byName   map[string]model.Service
	fallback model.Service
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultFile)
}

// Load reads a catalog file; an empty path means the embedded one.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	c := &Catalog{
		services: f.Services,
		byName:   make(map[string]model.Service, len(f.Services)),
		fallback: f.Fallback,
	}
	for _, s := range f.Services {
		if s.Name == "" {
			return nil, fmt.Errorf("catalog: service %d has no name", s.ID)
		}
		if _, dup := c.byName[s.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate service %q", s.Name)
		}
		c.byName[s.Name] = s
	}
	return c, nil
}

func (c *Catalog) List() []model.Service {
	out := make([]model.Service, len(c.services))
	copy(out, c.services)
	return out
}

func (c *Catalog) Known(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Details never fails: unknown names get the fallback record under the asked name.
func (c *Catalog) Details(name string) model.Service {
	if s, ok := c.byName[name]; ok {
		return s
	}
	s := c.fallback
	s.Name = name
	return s
}
