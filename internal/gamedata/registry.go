package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/rpsquest/internal/random"
)

// VillainRegistry holds loaded villain definitions and provides spawning utilities.
type VillainRegistry struct {
	villains    []VillainDef
	totalWeight int
}

// NewVillainRegistry creates a registry from loaded villain definitions.
func NewVillainRegistry(villains []VillainDef) *VillainRegistry {
	totalWeight := 0
	for _, v := range villains {
		totalWeight += v.SpawnWeight
	}
	return &VillainRegistry{
		villains:    villains,
		totalWeight: totalWeight,
	}
}

// SpawnRandom selects a villain definition using weighted probability, or
// nil if nothing can spawn.
func (r *VillainRegistry) SpawnRandom(src random.Source) *VillainDef {
	if r.totalWeight <= 0 {
		return nil
	}

	roll := random.Pick(src, r.totalWeight)
	cumulative := 0
	for i := range r.villains {
		cumulative += r.villains[i].SpawnWeight
		if roll < cumulative {
			return &r.villains[i]
		}
	}
	return &r.villains[len(r.villains)-1]
}

// All returns all villain definitions.
func (r *VillainRegistry) All() []VillainDef {
	return r.villains
}

// Count returns the number of villain types in the registry.
func (r *VillainRegistry) Count() int {
	return len(r.villains)
}

// Bundle is every embedded definition, cross-checked.
type Bundle struct {
	Villains *VillainRegistry
	Bosses   []BossDef
	Quests   []QuestDef
}

// BossByName returns the boss definition with the given name, or nil.
func (b *Bundle) BossByName(name string) *BossDef {
	for i := range b.Bosses {
		if b.Bosses[i].Name == name {
			return &b.Bosses[i]
		}
	}
	return nil
}

// LoadBundle loads villains, bosses and quests and checks that every quest
// targets a defined boss.
func LoadBundle() (*Bundle, error) {
	villains, err := LoadVillains()
	if err != nil {
		return nil, err
	}
	if len(villains) == 0 {
		return nil, errors.New("no villains loaded from villains.json")
	}
	bosses, err := LoadBosses()
	if err != nil {
		return nil, err
	}
	quests, err := LoadQuests()
	if err != nil {
		return nil, err
	}

	b := &Bundle{
		Villains: NewVillainRegistry(villains),
		Bosses:   bosses,
		Quests:   quests,
	}
	var errs []error
	for _, q := range quests {
		if b.BossByName(q.Objective.Target) == nil {
			errs = append(errs, fmt.Errorf("quest %q: unknown boss %q", q.ID, q.Objective.Target))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return b, nil
}
