// Package world holds the places the player can be and what happens when
// they look around.
package world

import (
	"github.com/samdwyer/rpsquest/internal/entity"
	"github.com/samdwyer/rpsquest/internal/gamedata"
	"github.com/samdwyer/rpsquest/internal/random"
)

// DefaultEncounterChance is the probability that exploring finds an enemy.
const DefaultEncounterChance = 0.3

// Location is a named place on the map.
type Location struct {
	Name        string
	Description string
}

// Locations is the map, starting village first.
var Locations = []Location{
	{"Townsville (Starting Village)", "A quiet village where every adventure begins."},
	{"The Shattered Spire", "A broken tower that hums with stray magic."},
	{"Whispering Catacombs", "Narrow tunnels where the dead do not rest quietly."},
	{"Clockwork Forge", "A foundry of gears that still turn with no one to tend them."},
	{"Verdant Maw", "A jungle so thick it swallows the light."},
	{"Drowned Cathedral", "A flooded ruin where bells ring beneath the water."},
}

// Spawner picks a villain to encounter. *gamedata.VillainRegistry satisfies it.
type Spawner interface {
	SpawnRandom(src random.Source) *gamedata.VillainDef
}

// World tracks where the player is and rolls encounters.
type World struct {
	current int
	chance  float64
	src     random.Source
	spawner Spawner
}

// New creates a world starting in the first location.
func New(src random.Source, encounterChance float64, spawner Spawner) *World {
	return &World{
		chance:  encounterChance,
		src:     src,
		spawner: spawner,
	}
}

// Current returns the player's location.
func (w *World) Current() Location { return Locations[w.current] }

// CurrentIndex returns the index of the player's location.
func (w *World) CurrentIndex() int { return w.current }

// Travel moves to Locations[index]. It returns false for an out-of-range
// index and leaves the location unchanged.
func (w *World) Travel(index int) bool {
	if index < 0 || index >= len(Locations) {
		return false
	}
	w.current = index
	return true
}

// Explore searches the current location. With the encounter chance it
// returns a freshly spawned enemy; otherwise nil.
func (w *World) Explore() *entity.Character {
	if !random.Chance(w.src, w.chance) {
		return nil
	}
	def := w.spawner.SpawnRandom(w.src)
	if def == nil {
		return nil
	}
	return def.NewCharacter()
}

// Rest restores c to full health.
func Rest(c *entity.Character) {
	c.SetHealth(c.MaxHealth)
}
