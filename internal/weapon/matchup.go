package weapon

import "fmt"

// Verdict is the outcome of comparing an attacker's weapon kind against the
// defender's.
type Verdict int

const (
	Neutral Verdict = iota
	CriticalAdvantage
	Disadvantage
)

// String returns a snake_case verdict name.
func (v Verdict) String() string {
	switch v {
	case Neutral:
		return "neutral"
	case CriticalAdvantage:
		return "critical_advantage"
	case Disadvantage:
		return "disadvantage"
	default:
		return "unknown"
	}
}

// matchup holds, per kind, the kinds it beats and the kinds it loses to.
//
// Rock and Paper list one win and one loss each while the other kinds list
// two of each, so a pair such as Rock vs Lizard is Neutral from Rock's side
// but Disadvantage from Lizard's. The table is kept as observed in play.
var matchup = map[Kind]relation{
	KindRock:     {beats: []Kind{KindScissors}, losesTo: []Kind{KindPaper}, verb: "crushes", lossVerb: "is wrapped by"},
	KindPaper:    {beats: []Kind{KindRock}, losesTo: []Kind{KindScissors}, verb: "wraps around", lossVerb: "is cut by"},
	KindScissors: {beats: []Kind{KindPaper, KindLizard}, losesTo: []Kind{KindRock, KindSpock}, verb: "cut through", lossVerb: "are crushed by"},
	KindLizard:   {beats: []Kind{KindSpock, KindPaper}, losesTo: []Kind{KindRock, KindScissors}, verb: "poisons", lossVerb: "is defeated by"},
	KindSpock:    {beats: []Kind{KindRock, KindScissors}, losesTo: []Kind{KindLizard, KindPaper}, verb: "vaporizes", lossVerb: "is defeated by"},
}

type relation struct {
	beats    []Kind
	losesTo  []Kind
	verb     string
	lossVerb string
}

// Resolve compares the attacker's kind against the defender's. It is total:
// any pair involving KindNone, and any pair the table does not list, is
// Neutral.
func Resolve(attacker, defender Kind) Verdict {
	entry, ok := matchup[attacker]
	if !ok || defender == KindNone {
		return Neutral
	}
	for _, k := range entry.beats {
		if k == defender {
			return CriticalAdvantage
		}
	}
	for _, k := range entry.losesTo {
		if k == defender {
			return Disadvantage
		}
	}
	return Neutral
}

// ResolveWeapons is Resolve over possibly-absent weapons.
func ResolveWeapons(attacker, defender *Weapon) Verdict {
	return Resolve(KindOf(attacker), KindOf(defender))
}

// Describe returns the flavour line for using attacker against a target
// named targetName who wields defender.
func Describe(attacker, defender *Weapon, targetName string) string {
	if attacker == nil {
		return fmt.Sprintf("Attacked %s bare-handed!", targetName)
	}
	entry := matchup[attacker.kind]
	switch ResolveWeapons(attacker, defender) {
	case CriticalAdvantage:
		return fmt.Sprintf("%s %s %s! Critical hit!", attacker.name, entry.verb, defender.name)
	case Disadvantage:
		return fmt.Sprintf("%s %s %s! Not very effective...", attacker.name, entry.lossVerb, defender.name)
	}
	if attacker.kind == KindRock {
		return fmt.Sprintf("Threw %s at %s!", attacker.name, targetName)
	}
	return fmt.Sprintf("Used %s on %s!", attacker.name, targetName)
}
