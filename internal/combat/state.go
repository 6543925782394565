// Package combat drives one-on-one, turn-based encounters between the player
// and a single enemy.
package combat

// State is the encounter state.
type State int

const (
	// StatePlayerTurn - waiting for the player's action
	StatePlayerTurn State = iota
	// StateEnemyTurn - the enemy is acting; never observed between turns
	StateEnemyTurn
	// StateVictory - enemy defeated
	StateVictory
	// StateDefeat - player defeated
	StateDefeat
	// StateFled - player escaped
	StateFled
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlayerTurn:
		return "player_turn"
	case StateEnemyTurn:
		return "enemy_turn"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	case StateFled:
		return "fled"
	default:
		return "unknown"
	}
}

// Terminal reports whether the encounter is over.
func (s State) Terminal() bool {
	return s == StateVictory || s == StateDefeat || s == StateFled
}

// Action is what the player chooses on their turn.
type Action int

const (
	ActionAttack Action = iota
	ActionAbility
	ActionUseItem
	ActionFlee
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionAbility:
		return "ability"
	case ActionUseItem:
		return "use_item"
	case ActionFlee:
		return "flee"
	default:
		return "unknown"
	}
}
