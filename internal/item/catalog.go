package item

import (
	"fmt"
	"os"

	"gridinv/internal/pkg/idgen"

	"gopkg.in/yaml.v3"
)

// Definition describes an item kind before it gets an id.
type Definition struct {
	Name       string `yaml:"name"`
	Tooltip    string `yaml:"tooltip"`
	Image      string `yaml:"image"`
	Consumable bool   `yaml:"consumable"`
	Stackable  bool   `yaml:"stackable"`
	// Count is how many instances Spawn creates; zero means one
	Count int `yaml:"count"`
}

// Catalog is an ordered list of item definitions.
type Catalog struct {
	Items []Definition `yaml:"items"`
}

// DefaultCatalog mirrors the sample scene: four pieces of gear and a
// stack of four potions.
func DefaultCatalog() Catalog {
	return Catalog{Items: []Definition{
		{Name: "Evenstar Helmet", Tooltip: "<b>Evenstar Helmet</b>\n\nSample Text", Image: "evenstar_helm"},
		{Name: "Curtana Novus", Tooltip: "<b>Curtana Novus</b>\n\nSample Text", Image: "curtana_novus"},
		{Name: "High Allagan Shield", Tooltip: "<b>High Allagan Shield</b>\n\nSample Text", Image: "ha_shield"},
		{Name: "Elkhorn Robe", Tooltip: "<b>Elkhorn Robe</b>\n\nSample Text", Image: "elkhorn_robe"},
		{Name: "X-Potion", Tooltip: "<b>X-Potion</b>\n\nSample Text", Image: "x_potion", Consumable: true, Stackable: true, Count: 4},
	}}
}

// LoadCatalog reads a catalog from a YAML file
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	for i, def := range c.Items {
		if def.Name == "" {
			return Catalog{}, fmt.Errorf("catalog item %d: name is required", i)
		}
		if def.Count < 0 {
			return Catalog{}, fmt.Errorf("catalog item %q: negative count", def.Name)
		}
	}
	return c, nil
}

// Spawn creates Count instances of every definition, in catalog order,
// all bound to owner.
func (c Catalog) Spawn(gen idgen.Generator, owner Owner) []*Basic {
	var out []*Basic
	for _, def := range c.Items {
		n := max(def.Count, 1)
		for range n {
			out = append(out, NewBasic(gen.Generate(), def, owner))
		}
	}
	return out
}
