package inventory

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed items.yaml
var catalogYAML []byte

// ItemDef defines a catalogue item loaded from YAML.
type ItemDef struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Type        string  `yaml:"type"` // "armor", "weapon", "consumable" or "misc"
	Weight      float64 `yaml:"weight"`
	Value       int     `yaml:"value"`

	// Armor
	Slot    string `yaml:"slot"`
	Defense int    `yaml:"defense"`

	// Weapon
	Class  string `yaml:"class"`
	Damage int    `yaml:"damage"`
	Range  int    `yaml:"range"`

	// Consumable
	Effect   string `yaml:"effect"`
	Potency  int    `yaml:"potency"`
	Duration int    `yaml:"duration"`
}

// Validate reports every problem with the definition.
func (d *ItemDef) Validate() error {
	var errs []error
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if d.Weight < 0 {
		errs = append(errs, errors.New("weight must be >= 0"))
	}
	if d.Value < 0 {
		errs = append(errs, errors.New("value must be >= 0"))
	}
	switch d.Type {
	case "armor":
		if _, err := ParseArmorSlot(d.Slot); err != nil {
			errs = append(errs, err)
		}
	case "weapon":
		if _, err := ParseWeaponClass(d.Class); err != nil {
			errs = append(errs, err)
		}
		if d.Range < 0 {
			errs = append(errs, errors.New("range must be >= 0"))
		}
	case "consumable":
		if d.Effect == "" {
			errs = append(errs, errors.New("consumable effect must not be empty"))
		}
		if d.Duration < 0 {
			errs = append(errs, errors.New("duration must be >= 0"))
		}
	case "misc":
	default:
		errs = append(errs, fmt.Errorf("type %q is not a valid item type", d.Type))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item %q: %w", d.Name, errors.Join(errs...))
	}
	return nil
}

// build instantiates a fresh item. The definition must be valid.
func (d *ItemDef) build() Item {
	switch d.Type {
	case "armor":
		slot, _ := ParseArmorSlot(d.Slot)
		return NewArmor(d.Name, d.Description, d.Weight, d.Value, slot, d.Defense)
	case "weapon":
		class, _ := ParseWeaponClass(d.Class)
		w := NewWeaponItem(d.Name, d.Description, d.Weight, d.Value, class, d.Damage)
		if d.Range > 0 {
			w.Range = d.Range
		}
		return w
	case "consumable":
		return NewConsumable(d.Name, d.Description, d.Weight, d.Value, d.Effect, d.Potency, d.Duration)
	default:
		return NewMisc(d.Name, d.Description, d.Weight, d.Value)
	}
}

type catalogFile struct {
	Items []ItemDef `yaml:"items"`
}

// Catalog holds item definitions by name.
type Catalog struct {
	defs map[string]*ItemDef
}

// ParseCatalog decodes and validates a YAML item catalogue.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse item catalog: %w", err)
	}

	c := &Catalog{defs: make(map[string]*ItemDef, len(file.Items))}
	var errs []error
	for i := range file.Items {
		def := &file.Items[i]
		if err := def.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := c.defs[def.Name]; dup {
			errs = append(errs, fmt.Errorf("item %q defined twice", def.Name))
			continue
		}
		c.defs[def.Name] = def
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// LoadCatalog loads the embedded items.yaml.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(catalogYAML)
}

// New returns a fresh instance of the named item.
func (c *Catalog) New(name string) (Item, bool) {
	def, ok := c.defs[name]
	if !ok {
		return nil, false
	}
	return def.build(), true
}
