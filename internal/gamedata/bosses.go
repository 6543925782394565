package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rpsquest/internal/entity"
)

// BossDef defines a boss loaded from JSON.
type BossDef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Health  int    `json:"health"`
	Damage  int    `json:"damage"`
	Ability string `json:"ability"`
	Color   string `json:"color"`
}

// Validate reports every problem with the definition.
func (b *BossDef) Validate() error {
	var errs []error
	if b.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if b.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if b.Health <= 0 {
		errs = append(errs, fmt.Errorf("health must be positive, got %d", b.Health))
	}
	if b.Damage < 0 {
		errs = append(errs, fmt.Errorf("damage must be non-negative, got %d", b.Damage))
	}
	if len(errs) > 0 {
		return fmt.Errorf("boss %q: %w", b.ID, errors.Join(errs...))
	}
	return nil
}

// NewCharacter creates a fresh boss from the definition.
func (b *BossDef) NewCharacter() *entity.Character {
	return entity.NewBoss(b.Name, b.Health, b.Damage, b.Ability)
}

// TCellColor returns the display color, red if unset or malformed.
func (b *BossDef) TCellColor() tcell.Color {
	return colorOr(b.Color, tcell.ColorRed)
}

// BossesFile represents the structure of bosses.json.
type BossesFile struct {
	Bosses []BossDef `json:"bosses"`
}

// LoadBosses loads and validates boss definitions from the embedded
// bosses.json file. Boss names must be unique since quests refer to them
// by name.
func LoadBosses() ([]BossDef, error) {
	file, err := Load[BossesFile]("bosses.json")
	if err != nil {
		return nil, err
	}
	var errs []error
	seen := make(map[string]bool, len(file.Bosses))
	for i := range file.Bosses {
		b := &file.Bosses[i]
		if err := b.Validate(); err != nil {
			errs = append(errs, err)
		}
		if seen[b.Name] {
			errs = append(errs, fmt.Errorf("boss %q: name %q defined twice", b.ID, b.Name))
		}
		seen[b.Name] = true
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return file.Bosses, nil
}

// NewBossRoster creates a roster holding a fresh boss for each definition,
// in file order.
func NewBossRoster(defs []BossDef) *entity.Roster {
	r := entity.NewRoster()
	for i := range defs {
		r.Add(defs[i].NewCharacter())
	}
	return r
}
