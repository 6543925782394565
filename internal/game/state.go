// Package game provides the main game loop and state management.
package game

// State represents the current game screen.
type State int

const (
	// StateChooseWeapon - character creation, picking a starting weapon
	StateChooseWeapon State = iota
	// StateMenu - the main menu between encounters
	StateMenu
	// StateInventory - listing items; a number equips or unequips gear
	StateInventory
	// StateQuests - listing quests
	StateQuests
	// StateUseItem - picking an item to use outside combat
	StateUseItem
	// StateTravel - picking a location
	StateTravel
	// StateCombat - waiting for the player's combat action
	StateCombat
	// StateCombatItem - picking a consumable during combat
	StateCombatItem
	// StateGameOver - final message; any key exits
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateChooseWeapon:
		return "choose_weapon"
	case StateMenu:
		return "menu"
	case StateInventory:
		return "inventory"
	case StateQuests:
		return "quests"
	case StateUseItem:
		return "use_item"
	case StateTravel:
		return "travel"
	case StateCombat:
		return "combat"
	case StateCombatItem:
		return "combat_item"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome is how the game ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
	OutcomeQuit
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}
