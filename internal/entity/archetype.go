package entity

// Archetype is the closed category of a character. It decides which special
// ability the character has and whether its attack is overridden.
type Archetype int

const (
	ArchetypePlayer Archetype = iota
	ArchetypeDefender
	ArchetypeHealer
	ArchetypeGoblin
	ArchetypeOrc
	ArchetypeBoss
)

// String returns the archetype name.
func (a Archetype) String() string {
	switch a {
	case ArchetypePlayer:
		return "player"
	case ArchetypeDefender:
		return "defender"
	case ArchetypeHealer:
		return "healer"
	case ArchetypeGoblin:
		return "goblin"
	case ArchetypeOrc:
		return "orc"
	case ArchetypeBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// ParseArchetype converts a name produced by String back into an Archetype.
func ParseArchetype(name string) (Archetype, bool) {
	for a := ArchetypePlayer; a <= ArchetypeBoss; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return 0, false
}

// IsVillain reports whether a is a villain subtype, bosses included.
func (a Archetype) IsVillain() bool {
	return a == ArchetypeGoblin || a == ArchetypeOrc || a == ArchetypeBoss
}
