// Package ability dispatches special abilities by character archetype.
package ability

import (
	"fmt"

	"github.com/samdwyer/rpsquest/internal/entity"
)

const (
	// SecondWindPercent is the share of current health the player's Second
	// Wind restores.
	SecondWindPercent = 20
	// HealingTouchAmount is the flat heal of the healer sidekick.
	HealingTouchAmount = 15
)

// Outcome describes what a special ability did.
type Outcome struct {
	Success bool
	User    string
	Target  string // empty for self or untargeted abilities
	Healing int
	Message string
}

// Ability is one archetype's special ability. Use must not be called with a
// nil user; target is ignored by abilities that do not need one.
type Ability interface {
	Use(user, target *entity.Character) Outcome
	NeedsTarget() bool
}

// For returns the ability for an archetype.
func For(a entity.Archetype) Ability {
	switch a {
	case entity.ArchetypePlayer:
		return secondWind{}
	case entity.ArchetypeHealer:
		return healingTouch{}
	case entity.ArchetypeDefender:
		return flavor{format: "%s raises their shield, ready to defend!"}
	case entity.ArchetypeGoblin:
		return flavor{format: "%s attempts a Sneak Attack!"}
	case entity.ArchetypeOrc:
		return flavor{format: "%s channels Brute Force for their next attack!"}
	case entity.ArchetypeBoss:
		return flavor{format: "%s unleashes their ultimate power!"}
	default:
		return flavor{format: "%s hesitates."}
	}
}

// Use dispatches user's special ability.
func Use(user, target *entity.Character) Outcome {
	return For(user.Archetype).Use(user, target)
}

// secondWind heals the user for a share of current health. Health afterwards
// is never above entity.HealCeiling, even when it started there.
type secondWind struct{}

func (secondWind) NeedsTarget() bool { return false }

func (secondWind) Use(user, _ *entity.Character) Outcome {
	before := user.Health()
	user.SetHealth(min(entity.HealCeiling, before+before*SecondWindPercent/100))
	healed := max(0, user.Health()-before)
	return Outcome{
		Success: true,
		User:    user.Name,
		Healing: healed,
		Message: fmt.Sprintf("%s uses Second Wind and heals for %d HP!", user.Name, healed),
	}
}

// healingTouch heals another character by a flat amount with no ceiling.
type healingTouch struct{}

func (healingTouch) NeedsTarget() bool { return true }

func (healingTouch) Use(user, target *entity.Character) Outcome {
	if target == nil {
		return Outcome{
			User:    user.Name,
			Message: fmt.Sprintf("%s has no one to heal.", user.Name),
		}
	}
	healed := target.Heal(HealingTouchAmount)
	return Outcome{
		Success: true,
		User:    user.Name,
		Target:  target.Name,
		Healing: healed,
		Message: fmt.Sprintf("%s heals %s for %d HP!", user.Name, target.Name, healed),
	}
}

// flavor announces the ability without any mechanical effect.
// TODO: Shield Ally, Sneak Attack and Brute Force describe damage modifiers
// that no combat rule applies yet.
type flavor struct {
	format string
}

func (flavor) NeedsTarget() bool { return false }

func (f flavor) Use(user, _ *entity.Character) Outcome {
	return Outcome{
		Success: true,
		User:    user.Name,
		Message: fmt.Sprintf(f.format, user.Name),
	}
}
