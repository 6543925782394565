package combat

import "github.com/samdwyer/rpsquest/internal/weapon"

// EventKind classifies a combat event.
type EventKind int

const (
	EventAttack EventKind = iota
	EventAbility
	EventItemUsed
	EventItemRejected
	EventFleeSucceeded
	EventFleeFailed
	EventHesitate
	EventVictory
	EventDefeat
	EventExperience
	EventLevelUp
	EventBossDefeated
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventAttack:
		return "attack"
	case EventAbility:
		return "ability"
	case EventItemUsed:
		return "item_used"
	case EventItemRejected:
		return "item_rejected"
	case EventFleeSucceeded:
		return "flee_succeeded"
	case EventFleeFailed:
		return "flee_failed"
	case EventHesitate:
		return "hesitate"
	case EventVictory:
		return "victory"
	case EventDefeat:
		return "defeat"
	case EventExperience:
		return "experience"
	case EventLevelUp:
		return "level_up"
	case EventBossDefeated:
		return "boss_defeated"
	default:
		return "unknown"
	}
}

// Event is one thing that happened during a turn, in the order it happened.
// Amount is damage for attacks, health restored for abilities and items,
// experience for EventExperience and the new level for EventLevelUp.
type Event struct {
	Kind     EventKind
	Turn     int
	Attacker string
	Defender string
	Amount   int
	Critical bool
	Verdict  weapon.Verdict
	Message  string
}
