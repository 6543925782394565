package inventory

const (
	// DefaultCapacity is the default carry limit in kg.
	DefaultCapacity = 100.0
	// DefaultMaxConsumableTypes is the default number of consumable entries
	// an inventory may hold, regardless of stack sizes.
	DefaultMaxConsumableTypes = 3
)

// EffectApplier applies a consumable's effect when it is used. The inventory
// only manages the unit being consumed; what the effect does is up to the
// applier.
type EffectApplier interface {
	ApplyEffect(c *Consumable)
}

// EffectFunc adapts a plain function to EffectApplier.
type EffectFunc func(c *Consumable)

// ApplyEffect calls f(c).
func (f EffectFunc) ApplyEffect(c *Consumable) { f(c) }

// Inventory is an ordered collection of items with a weight limit, a cap on
// consumable entries, and equip slots.
//
// Invariants:
//   - weight == Σ item.Weight × item.Quantity over held items, and weight <= capacity
//   - the number of consumable entries held <= maxConsumables
//   - every equipped item is also held
type Inventory struct {
	items          []Item
	weight         float64
	capacity       float64
	maxConsumables int
	armor          [numArmorSlots]*Armor
	weapon         *WeaponItem

	// Gold is the purse. It has no weight.
	Gold int
}

// New creates an empty inventory with the given limits.
func New(capacity float64, maxConsumableTypes int) *Inventory {
	return &Inventory{
		items:          []Item{},
		capacity:       capacity,
		maxConsumables: maxConsumableTypes,
	}
}

// NewDefault creates an empty inventory with the default limits.
func NewDefault() *Inventory {
	return New(DefaultCapacity, DefaultMaxConsumableTypes)
}

// AddItem adds item and charges its weight. It returns false without
// mutating anything when the item is already held, is malformed, would
// exceed the weight capacity, or would need a new consumable entry while the
// consumable cap is reached.
//
// A consumable whose name matches a held stack with spare room tops that
// stack up to MaxStack. Any remainder stays in item, which is appended as a
// new entry.
func (inv *Inventory) AddItem(item Item) bool {
	if item == nil || inv.indexOf(item) >= 0 {
		return false
	}
	b := item.Info()
	if b.Quantity < 1 || b.Quantity > b.MaxStack || b.Weight < 0 {
		return false
	}

	c, isConsumable := item.(*Consumable)
	var existing *Consumable
	moved := 0
	added := b.StackWeight()
	if isConsumable {
		if existing = inv.stackWithRoom(c.Name); existing != nil {
			moved = min(c.Quantity, existing.MaxStack-existing.Quantity)
			added = existing.Weight*float64(moved) + c.Weight*float64(c.Quantity-moved)
		}
	}
	if inv.weight+added > inv.capacity {
		return false
	}

	if isConsumable {
		if existing != nil && moved == c.Quantity {
			existing.Quantity += moved
			inv.weight += added
			return true
		}
		if inv.ConsumableEntries() >= inv.maxConsumables {
			return false
		}
		if existing != nil {
			existing.Quantity += moved
			c.Quantity -= moved
		}
	}

	inv.items = append(inv.items, item)
	inv.weight += added
	return true
}

// RemoveItem removes quantity units of item. If more units are held than
// requested the stack shrinks; otherwise the whole entry goes. It returns
// false when the item is not held or quantity is not positive.
//
// Removing an equipped item does not unequip it; callers unequip first.
func (inv *Inventory) RemoveItem(item Item, quantity int) bool {
	if quantity < 1 {
		return false
	}
	i := inv.indexOf(item)
	if i < 0 {
		return false
	}

	b := inv.items[i].Info()
	if b.Quantity > quantity {
		b.Quantity -= quantity
		inv.weight -= b.Weight * float64(quantity)
	} else {
		inv.weight -= b.StackWeight()
		inv.items = append(inv.items[:i], inv.items[i+1:]...)
	}

	if len(inv.items) == 0 || inv.weight < 0 {
		// Absorb float drift so an empty inventory weighs exactly nothing.
		inv.weight = inv.TotalWeight()
	}
	return true
}

// EquipArmor puts armor in its slot, unequipping any previous occupant.
// The armor must be held.
func (inv *Inventory) EquipArmor(armor *Armor) bool {
	if armor == nil || !armor.Slot.Valid() || inv.indexOf(armor) < 0 {
		return false
	}
	if inv.armor[armor.Slot] != nil {
		inv.UnequipArmor(armor.Slot)
	}
	armor.Equipped = true
	inv.armor[armor.Slot] = armor
	return true
}

// UnequipArmor clears slot. It returns false if the slot is already empty.
func (inv *Inventory) UnequipArmor(slot ArmorSlot) bool {
	if !slot.Valid() || inv.armor[slot] == nil {
		return false
	}
	inv.armor[slot].Equipped = false
	inv.armor[slot] = nil
	return true
}

// EquipWeapon puts w in the weapon slot, unequipping any previous weapon.
// The weapon must be held.
func (inv *Inventory) EquipWeapon(w *WeaponItem) bool {
	if w == nil || inv.indexOf(w) < 0 {
		return false
	}
	if inv.weapon != nil {
		inv.UnequipWeapon()
	}
	w.Equipped = true
	inv.weapon = w
	return true
}

// UnequipWeapon clears the weapon slot. It returns false if it is already empty.
func (inv *Inventory) UnequipWeapon() bool {
	if inv.weapon == nil {
		return false
	}
	inv.weapon.Equipped = false
	inv.weapon = nil
	return true
}

// UseConsumable applies c through fx (which may be nil) and removes one unit.
// It returns false if c is not held.
func (inv *Inventory) UseConsumable(c *Consumable, fx EffectApplier) bool {
	if c == nil || inv.indexOf(c) < 0 {
		return false
	}
	if fx != nil {
		fx.ApplyEffect(c)
	}
	return inv.RemoveItem(c, 1)
}

// ItemsByType returns held items of type t in insertion order.
func (inv *Inventory) ItemsByType(t ItemType) []Item {
	var out []Item
	for _, it := range inv.items {
		if it.Type() == t {
			out = append(out, it)
		}
	}
	return out
}

// Consumables returns held consumables in insertion order.
func (inv *Inventory) Consumables() []*Consumable {
	var out []*Consumable
	for _, it := range inv.items {
		if c, ok := it.(*Consumable); ok {
			out = append(out, c)
		}
	}
	return out
}

// TotalWeight recomputes Σ Weight × Quantity over held items.
func (inv *Inventory) TotalWeight() float64 {
	total := 0.0
	for _, it := range inv.items {
		total += it.Info().StackWeight()
	}
	return total
}

// CurrentWeight returns the running weight total.
func (inv *Inventory) CurrentWeight() float64 { return inv.weight }

// Capacity returns the weight limit.
func (inv *Inventory) Capacity() float64 { return inv.capacity }

// ConsumableEntries returns the number of consumable entries held. Two
// stacks of the same consumable count twice.
func (inv *Inventory) ConsumableEntries() int {
	return len(inv.Consumables())
}

// Items returns a copy of the held items in insertion order.
func (inv *Inventory) Items() []Item {
	out := make([]Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the number of entries.
func (inv *Inventory) Len() int { return len(inv.items) }

// At returns the entry at a zero-based index, or false when out of range.
func (inv *Inventory) At(index int) (Item, bool) {
	if index < 0 || index >= len(inv.items) {
		return nil, false
	}
	return inv.items[index], true
}

// ConsumableAt returns the index-th consumable, or false when out of range.
func (inv *Inventory) ConsumableAt(index int) (*Consumable, bool) {
	cs := inv.Consumables()
	if index < 0 || index >= len(cs) {
		return nil, false
	}
	return cs[index], true
}

// Contains reports whether item is held.
func (inv *Inventory) Contains(item Item) bool {
	return inv.indexOf(item) >= 0
}

// Equipment is a point-in-time view of the equip slots.
type Equipment struct {
	Weapon *WeaponItem
	Armor  map[ArmorSlot]*Armor // occupied slots only
}

// EquippedSnapshot returns the current equip slots.
func (inv *Inventory) EquippedSnapshot() Equipment {
	eq := Equipment{Weapon: inv.weapon, Armor: make(map[ArmorSlot]*Armor)}
	for _, slot := range ArmorSlots {
		if a := inv.armor[slot]; a != nil {
			eq.Armor[slot] = a
		}
	}
	return eq
}

// TotalDefense sums the defense of equipped armor.
func (eq Equipment) TotalDefense() int {
	total := 0
	for _, a := range eq.Armor {
		total += a.Defense
	}
	return total
}

func (inv *Inventory) indexOf(item Item) int {
	for i, it := range inv.items {
		if it == item {
			return i
		}
	}
	return -1
}

// stackWithRoom returns the first held consumable stack named name that is
// below MaxStack.
func (inv *Inventory) stackWithRoom(name string) *Consumable {
	for _, existing := range inv.Consumables() {
		if existing.Name == name && existing.Quantity < existing.MaxStack {
			return existing
		}
	}
	return nil
}
