package plan

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed plans.yaml
var defaultPlans []byte

// Plan - pricing tier shown on the pricing page
type Plan struct {
	// ID - identifier stored in subscription records
	ID string `yaml:"id" json:"id"`
	// Name - display name
	Name string `yaml:"name" json:"name"`
	// PriceCents - monthly price in minor units
	PriceCents int64 `yaml:"price_cents" json:"priceCents"`
	// Currency - ISO 4217 code
	Currency string `yaml:"currency" json:"currency"`
	// Features - bullet points for the pricing card
	Features []string `yaml:"features" json:"features"`
}

// Catalog is an ordered, read-only list of plans.
// It is informational: subscription writes do not check plan ids against it.
type Catalog struct {
	plans []Plan
	byID  map[string]Plan
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultPlans)
}

// Parse builds a catalog from a YAML document with a top-level "plans" list.
func Parse(raw []byte) (*Catalog, error) {
	var doc struct {
		Plans []Plan `yaml:"plans"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal plans: %w", err)
	}
	if len(doc.Plans) == 0 {
		return nil, errors.New("plans: empty catalog")
	}

	c := &Catalog{
		plans: doc.Plans,
		byID:  make(map[string]Plan, len(doc.Plans)),
	}
	for i, p := range doc.Plans {
		if p.ID == "" {
			return nil, fmt.Errorf("plans[%d]: empty id", i)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("plans[%d]: duplicate id %q", i, p.ID)
		}
		c.byID[p.ID] = p
	}
	return c, nil
}

// List returns a copy of the plans in catalog order.
func (c *Catalog) List() []Plan {
	out := make([]Plan, len(c.plans))
	copy(out, c.plans)
	return out
}

// Get looks up a plan by id.
func (c *Catalog) Get(id string) (Plan, bool) {
	p, ok := c.byID[id]
	return p, ok
}
