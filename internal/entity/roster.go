package entity

// Roster tracks the bosses still at large. Quest objectives poll it for
// membership; the combat engine removes a boss when it is defeated.
type Roster struct {
	members []*Character
}

// NewRoster creates a roster holding members in order.
func NewRoster(members ...*Character) *Roster {
	r := &Roster{}
	for _, m := range members {
		r.Add(m)
	}
	return r
}

// Add appends c unless a character with the same ID is already present.
func (r *Roster) Add(c *Character) {
	if c == nil || r.Contains(c) {
		return
	}
	r.members = append(r.members, c)
}

// Remove drops c and reports whether it was present.
func (r *Roster) Remove(c *Character) bool {
	if c == nil {
		return false
	}
	for i, m := range r.members {
		if m.ID == c.ID {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether c is present.
func (r *Roster) Contains(c *Character) bool {
	if c == nil {
		return false
	}
	for _, m := range r.members {
		if m.ID == c.ID {
			return true
		}
	}
	return false
}

// Find returns the first member named name, or nil.
func (r *Roster) Find(name string) *Character {
	for _, m := range r.members {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Members returns a copy of the roster in order.
func (r *Roster) Members() []*Character {
	out := make([]*Character, len(r.members))
	copy(out, r.members)
	return out
}

// Len returns the number of members.
func (r *Roster) Len() int { return len(r.members) }
