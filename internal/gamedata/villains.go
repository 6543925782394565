package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rpsquest/internal/entity"
)

// VillainDef defines a regular enemy loaded from JSON.
type VillainDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string `json:"name"`        // Display name (e.g., "Goblin")
	Archetype   string `json:"archetype"`   // entity archetype name: "goblin" or "orc"
	Health      int    `json:"health"`      // Starting and maximum health
	Damage      int    `json:"damage"`      // Base damage per attack
	Ability     string `json:"ability"`     // Special ability display name
	Color       string `json:"color"`       // Hex color code (e.g., "#00FF00")
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// Validate reports every problem with the definition.
func (v *VillainDef) Validate() error {
	var errs []error
	if v.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if v.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if a, ok := entity.ParseArchetype(v.Archetype); !ok || !a.IsVillain() || a == entity.ArchetypeBoss {
		errs = append(errs, fmt.Errorf("archetype %q is not a regular villain", v.Archetype))
	}
	if v.Health <= 0 {
		errs = append(errs, fmt.Errorf("health must be positive, got %d", v.Health))
	}
	if v.Damage < 0 {
		errs = append(errs, fmt.Errorf("damage must be non-negative, got %d", v.Damage))
	}
	if v.SpawnWeight < 0 {
		errs = append(errs, fmt.Errorf("spawnWeight must be non-negative, got %d", v.SpawnWeight))
	}
	if len(errs) > 0 {
		return fmt.Errorf("villain %q: %w", v.ID, errors.Join(errs...))
	}
	return nil
}

// NewCharacter creates a fresh, full-health character from the definition.
func (v *VillainDef) NewCharacter() *entity.Character {
	a, _ := entity.ParseArchetype(v.Archetype)
	c := entity.New(v.Name, a, v.Health, v.Damage)
	c.Ability = v.Ability
	return c
}

// TCellColor returns the display color, white if unset or malformed.
func (v *VillainDef) TCellColor() tcell.Color {
	return colorOr(v.Color, tcell.ColorWhite)
}

// VillainsFile represents the structure of villains.json.
type VillainsFile struct {
	Villains []VillainDef `json:"villains"`
}

// LoadVillains loads and validates villain definitions from the embedded
// villains.json file.
func LoadVillains() ([]VillainDef, error) {
	file, err := Load[VillainsFile]("villains.json")
	if err != nil {
		return nil, err
	}
	var errs []error
	for i := range file.Villains {
		if err := file.Villains[i].Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return file.Villains, nil
}
