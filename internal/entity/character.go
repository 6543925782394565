// Package entity provides the characters that take part in the game: the
// player, sidekicks, villains and bosses.
package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/samdwyer/rpsquest/internal/inventory"
	"github.com/samdwyer/rpsquest/internal/random"
	"github.com/samdwyer/rpsquest/internal/weapon"
)

const (
	// PlayerStartHealth and PlayerStartDamage are the player's initial vitals.
	PlayerStartHealth = 100
	PlayerStartDamage = 10

	// HealCeiling caps the player's Second Wind heal.
	HealCeiling = 100

	// ExperiencePerLevel is the threshold multiplier: a character levels up
	// while experience >= level × ExperiencePerLevel.
	ExperiencePerLevel = 100
	HealthPerLevel     = 10
	DamagePerLevel     = 2

	// BossCriticalChance is the probability of a boss landing a second,
	// equal strike.
	BossCriticalChance = 0.2
)

// Character is any combatant. Health is never negative.
type Character struct {
	ID        uuid.UUID
	Name      string
	Archetype Archetype
	Ability   string // special ability display name

	health    int
	MaxHealth int

	Damage     int // base damage
	Level      int
	Experience int

	Weapon    *weapon.Weapon // shared, may be nil
	Inventory *inventory.Inventory
	Sidekick  *Character
}

// New creates a level 1 character with an empty default inventory.
func New(name string, archetype Archetype, health, damage int) *Character {
	if health < 0 {
		health = 0
	}
	return &Character{
		ID:        uuid.New(),
		Name:      name,
		Archetype: archetype,
		health:    health,
		MaxHealth: health,
		Damage:    damage,
		Level:     1,
		Inventory: inventory.NewDefault(),
	}
}

// NewPlayer creates the player character with the starting vitals.
func NewPlayer(name string) *Character {
	c := New(name, ArchetypePlayer, PlayerStartHealth, PlayerStartDamage)
	c.Ability = "Second Wind"
	return c
}

// NewDefender creates a sidekick whose ability is Shield Ally.
func NewDefender(name string, health, damage int) *Character {
	c := New(name, ArchetypeDefender, health, damage)
	c.Ability = "Shield Ally"
	return c
}

// NewHealer creates a sidekick whose ability is Healing Touch.
func NewHealer(name string, health, damage int) *Character {
	c := New(name, ArchetypeHealer, health, damage)
	c.Ability = "Healing Touch"
	return c
}

// NewGoblin creates a standard goblin.
func NewGoblin() *Character {
	c := New("Goblin", ArchetypeGoblin, 30, 5)
	c.Ability = "Sneak Attack"
	return c
}

// NewOrc creates a standard orc.
func NewOrc() *Character {
	c := New("Orc", ArchetypeOrc, 60, 8)
	c.Ability = "Brute Force"
	return c
}

// NewBoss creates a boss.
func NewBoss(name string, health, damage int, ability string) *Character {
	c := New(name, ArchetypeBoss, health, damage)
	c.Ability = ability
	return c
}

// Health returns current health.
func (c *Character) Health() int { return c.health }

// SetHealth sets health, clamped at 0.
func (c *Character) SetHealth(h int) {
	if h < 0 {
		h = 0
	}
	c.health = h
}

// IsAlive returns true if the character has health remaining.
func (c *Character) IsAlive() bool { return c.health > 0 }

// AttackDamage returns base damage plus the equipped weapon's bonus.
func (c *Character) AttackDamage() int {
	return c.Damage + weapon.BonusOf(c.Weapon)
}

// Strike is the outcome of one attack.
type Strike struct {
	Damage   int            // first hit
	Extra    int            // second hit from a boss critical, else 0
	Critical bool           // true when Extra was applied
	Verdict  weapon.Verdict // attacker's weapon against the target's
}

// Total returns all damage dealt by the strike.
func (s Strike) Total() int { return s.Damage + s.Extra }

// Attack hits target for AttackDamage. A boss then rolls src for a
// critical that repeats the same damage; src may be nil, which never crits.
// The attacker is not mutated.
func (c *Character) Attack(target *Character, src random.Source) Strike {
	s := Strike{
		Damage:  c.AttackDamage(),
		Verdict: weapon.ResolveWeapons(c.Weapon, target.Weapon),
	}
	target.TakeDamage(s.Damage)

	if c.Archetype == ArchetypeBoss && src != nil && random.Chance(src, BossCriticalChance) {
		s.Extra = s.Damage
		s.Critical = true
		target.TakeDamage(s.Extra)
	}
	return s
}

// TakeDamage reduces health by amount, never below 0, and returns the health
// actually lost. Negative amounts are ignored.
func (c *Character) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > c.health {
		actual = c.health
	}
	c.health -= actual
	return actual
}

// Heal adds amount to health without any ceiling and returns it.
func (c *Character) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	c.health += amount
	return amount
}

// HealCapped adds up to amount without taking health above ceiling and
// returns what was restored. Health already at or above the ceiling is left
// unchanged.
func (c *Character) HealCapped(amount, ceiling int) int {
	if amount <= 0 || c.health >= ceiling {
		return 0
	}
	actual := amount
	if c.health+actual > ceiling {
		actual = ceiling - c.health
	}
	c.health += actual
	return actual
}

// AddExperience adds amount and levels up once for every threshold crossed.
// It returns the number of levels gained.
func (c *Character) AddExperience(amount int) int {
	if amount <= 0 {
		return 0
	}
	c.Experience += amount
	gained := 0
	for c.Experience >= c.Level*ExperiencePerLevel {
		c.LevelUp(1)
		gained++
	}
	return gained
}

// LevelUp raises level by levels, adding health and damage. Health is added,
// not refilled; MaxHealth rises by the same amount.
func (c *Character) LevelUp(levels int) {
	if levels <= 0 {
		return
	}
	c.Level += levels
	c.health += HealthPerLevel * levels
	c.MaxHealth += HealthPerLevel * levels
	c.Damage += DamagePerLevel * levels
}

// AddSidekick attaches a sidekick and returns the join message.
func (c *Character) AddSidekick(s *Character) string {
	c.Sidekick = s
	return fmt.Sprintf("%s has joined %s's party!", s.Name, c.Name)
}

// String returns "Name (Lv. N): H HP, D ATK".
func (c *Character) String() string {
	return fmt.Sprintf("%s (Lv. %d): %d HP, %d ATK", c.Name, c.Level, c.health, c.Damage)
}
