// Package weapon defines combat weapons and the matchup relation between
// their kinds.
package weapon

import "fmt"

// Kind is the closed set of weapon kinds. KindNone means "unarmed" and
// never grants or suffers a matchup modifier.
type Kind int

const (
	KindNone Kind = iota
	KindRock
	KindPaper
	KindScissors
	KindLizard
	KindSpock
)

// Kinds lists every armed kind in declaration order.
var Kinds = []Kind{KindRock, KindPaper, KindScissors, KindLizard, KindSpock}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindRock:
		return "Rock"
	case KindPaper:
		return "Paper"
	case KindScissors:
		return "Scissors"
	case KindLizard:
		return "Lizard"
	case KindSpock:
		return "Spock"
	default:
		return "Unknown"
	}
}

// Weapon is a combat modifier held by a character. Weapons are immutable once
// constructed and may be shared between characters.
type Weapon struct {
	name        string
	damageBonus int
	kind        Kind
}

// New creates a weapon.
func New(name string, damageBonus int, kind Kind) *Weapon {
	return &Weapon{name: name, damageBonus: damageBonus, kind: kind}
}

// Name returns the weapon name.
func (w *Weapon) Name() string { return w.name }

// DamageBonus returns the damage added to the wielder's base damage.
func (w *Weapon) DamageBonus() int { return w.damageBonus }

// Kind returns the weapon's matchup kind.
func (w *Weapon) Kind() Kind { return w.kind }

// String returns "Name (+N damage)".
func (w *Weapon) String() string {
	return fmt.Sprintf("%s (+%d damage)", w.name, w.damageBonus)
}

// KindOf returns the kind of w, or KindNone when w is nil.
func KindOf(w *Weapon) Kind {
	if w == nil {
		return KindNone
	}
	return w.kind
}

// BonusOf returns the damage bonus of w, or 0 when w is nil.
func BonusOf(w *Weapon) int {
	if w == nil {
		return 0
	}
	return w.damageBonus
}

// Standard weapons offered at character creation.
func Rock() *Weapon     { return New("Rock", 5, KindRock) }
func Paper() *Weapon    { return New("Paper", 3, KindPaper) }
func Scissors() *Weapon { return New("Scissors", 4, KindScissors) }
func Lizard() *Weapon   { return New("Lizard", 3, KindLizard) }
func Spock() *Weapon    { return New("Spock", 5, KindSpock) }

// Standard returns a fresh set of the five standard weapons in menu order.
func Standard() []*Weapon {
	return []*Weapon{Rock(), Paper(), Scissors(), Lizard(), Spock()}
}
