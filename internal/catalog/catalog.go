// Package catalog loads and validates the static question, package and
// reason catalogs the engine reads from.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"health-advisor/internal/model"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// PackageCount is the fixed size of the package catalog.
const PackageCount = 6

// Catalog is read-only once parsed.
type Catalog struct {
	Questions []model.Question `yaml:"questions" validate:"required,min=1,dive"`
	Packages  []model.Package  `yaml:"packages" validate:"len=6,dive"`
	Reasons   []model.Reason   `yaml:"reasons" validate:"required,min=1,dive"`

	questionIndex map[string]int
	packageIndex  map[string]int
	reasonIndex   map[string]int
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML catalog data and runs the startup validation pass.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.buildIndexes()
	return &c, nil
}

func (c *Catalog) buildIndexes() {
	c.questionIndex = make(map[string]int, len(c.Questions))
	for i, q := range c.Questions {
		c.questionIndex[q.ID] = i
	}
	c.packageIndex = make(map[string]int, len(c.Packages))
	for i, p := range c.Packages {
		c.packageIndex[p.Slug] = i
	}
	c.reasonIndex = make(map[string]int, len(c.Reasons))
	for i, r := range c.Reasons {
		c.reasonIndex[r.Key] = i
	}
}

// Question returns the question with the given id.
func (c *Catalog) Question(id string) (*model.Question, bool) {
	i, ok := c.questionIndex[id]
	if !ok {
		return nil, false
	}
	return &c.Questions[i], true
}

// Position returns the catalog index of a question id, or -1.
func (c *Catalog) Position(id string) int {
	i, ok := c.questionIndex[id]
	if !ok {
		return -1
	}
	return i
}

func (c *Catalog) Package(slug string) (model.Package, bool) {
	i, ok := c.packageIndex[slug]
	if !ok {
		return model.Package{}, false
	}
	return c.Packages[i], true
}

func (c *Catalog) Reason(key string) (model.Reason, bool) {
	i, ok := c.reasonIndex[key]
	if !ok {
		return model.Reason{}, false
	}
	return c.Reasons[i], true
}

// WithPrices returns a copy of the catalog whose package prices are
// replaced by the given overrides. Slugs missing from prices keep theirs.
func (c *Catalog) WithPrices(prices map[string]int64) *Catalog {
	out := *c
	out.Packages = make([]model.Package, len(c.Packages))
	copy(out.Packages, c.Packages)
	for i, p := range out.Packages {
		if price, ok := prices[p.Slug]; ok && price >= 0 {
			out.Packages[i].Price = price
		}
	}
	return &out
}
