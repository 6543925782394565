// Package inventory provides items and the weight- and stack-constrained
// inventory that characters carry.
package inventory

import "fmt"

// ItemType is the closed category of an item.
type ItemType int

const (
	TypeArmor ItemType = iota
	TypeWeapon
	TypeConsumable
	TypeMisc
)

// String returns the item type name.
func (t ItemType) String() string {
	switch t {
	case TypeArmor:
		return "armor"
	case TypeWeapon:
		return "weapon"
	case TypeConsumable:
		return "consumable"
	case TypeMisc:
		return "misc"
	default:
		return "unknown"
	}
}

// ArmorSlot identifies an armor equip slot.
type ArmorSlot int

const (
	SlotHelmet ArmorSlot = iota
	SlotChestplate
	SlotLeggings
	SlotBoots
	SlotCharm

	numArmorSlots
)

// ArmorSlots lists every armor slot in display order.
var ArmorSlots = []ArmorSlot{SlotHelmet, SlotChestplate, SlotLeggings, SlotBoots, SlotCharm}

// String returns the slot display name.
func (s ArmorSlot) String() string {
	switch s {
	case SlotHelmet:
		return "Helmet"
	case SlotChestplate:
		return "Chestplate"
	case SlotLeggings:
		return "Leggings"
	case SlotBoots:
		return "Boots"
	case SlotCharm:
		return "Armor Charm"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the declared slots.
func (s ArmorSlot) Valid() bool {
	return s >= 0 && s < numArmorSlots
}

// ParseArmorSlot converts a display name back into an ArmorSlot.
func ParseArmorSlot(name string) (ArmorSlot, error) {
	for _, s := range ArmorSlots {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown armor slot %q", name)
}

// WeaponClass is the kind of an inventory weapon item.
type WeaponClass int

const (
	ClassBattleAxe WeaponClass = iota
	ClassShortSword
	ClassBowAndArrow
)

// WeaponClasses lists every weapon class.
var WeaponClasses = []WeaponClass{ClassBattleAxe, ClassShortSword, ClassBowAndArrow}

// String returns the weapon class display name.
func (c WeaponClass) String() string {
	switch c {
	case ClassBattleAxe:
		return "Battle Axe"
	case ClassShortSword:
		return "Short Sword"
	case ClassBowAndArrow:
		return "Bow and Arrow"
	default:
		return "Unknown"
	}
}

// ParseWeaponClass converts a display name back into a WeaponClass.
func ParseWeaponClass(name string) (WeaponClass, error) {
	for _, c := range WeaponClasses {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown weapon class %q", name)
}

// Base holds the fields every item shares.
// Invariant: 1 <= Quantity <= MaxStack for items held in an Inventory.
type Base struct {
	Name        string
	Description string
	Weight      float64 // kg per unit
	Value       int     // gold per unit
	MaxStack    int
	Quantity    int
}

// Info returns the shared fields. It lets callers reach Base through the
// Item interface.
func (b *Base) Info() *Base { return b }

// StackWeight returns Weight × Quantity.
func (b *Base) StackWeight() float64 {
	return b.Weight * float64(b.Quantity)
}

// String returns "Name (xN): Description - Wkg".
func (b *Base) String() string {
	return fmt.Sprintf("%s (x%d): %s - %gkg", b.Name, b.Quantity, b.Description, b.Weight)
}

// Item is implemented by *Armor, *WeaponItem, *Consumable and *Misc.
type Item interface {
	Info() *Base
	Type() ItemType
}

// Armor is wearable protection bound to one ArmorSlot.
type Armor struct {
	Base
	Slot       ArmorSlot
	Defense    int
	Durability int
	Equipped   bool
}

// NewArmor creates a single, unequipped armor piece at full durability.
func NewArmor(name, description string, weight float64, value int, slot ArmorSlot, defense int) *Armor {
	return &Armor{
		Base:       Base{Name: name, Description: description, Weight: weight, Value: value, MaxStack: 1, Quantity: 1},
		Slot:       slot,
		Defense:    defense,
		Durability: 100,
	}
}

// Type returns TypeArmor.
func (a *Armor) Type() ItemType { return TypeArmor }

// WeaponItem is a carried weapon. It is distinct from weapon.Weapon, which is
// the combat modifier a character wields.
type WeaponItem struct {
	Base
	Class      WeaponClass
	Damage     int
	Durability int
	Equipped   bool
	Range      int // 1 for melee, >1 for ranged
}

// NewWeaponItem creates a single, unequipped melee weapon at full durability.
func NewWeaponItem(name, description string, weight float64, value int, class WeaponClass, damage int) *WeaponItem {
	return &WeaponItem{
		Base:       Base{Name: name, Description: description, Weight: weight, Value: value, MaxStack: 1, Quantity: 1},
		Class:      class,
		Damage:     damage,
		Durability: 100,
		Range:      1,
	}
}

// Type returns TypeWeapon.
func (w *WeaponItem) Type() ItemType { return TypeWeapon }

// DefaultConsumableStack is the stack bound for consumables.
const DefaultConsumableStack = 5

// Consumable effects understood by the game.
const (
	EffectRestoreHealth  = "restore_health"
	EffectRestoreStamina = "restore_stamina"
)

// Consumable is a stackable single-use item.
type Consumable struct {
	Base
	Effect   string
	Potency  int
	Duration int // turns; 0 is instant
}

// NewConsumable creates a one-unit consumable stack.
func NewConsumable(name, description string, weight float64, value int, effect string, potency, duration int) *Consumable {
	return &Consumable{
		Base:     Base{Name: name, Description: description, Weight: weight, Value: value, MaxStack: DefaultConsumableStack, Quantity: 1},
		Effect:   effect,
		Potency:  potency,
		Duration: duration,
	}
}

// Type returns TypeConsumable.
func (c *Consumable) Type() ItemType { return TypeConsumable }

// Misc is any other carried item, such as a quest reward.
type Misc struct {
	Base
}

// NewMisc creates a single misc item.
func NewMisc(name, description string, weight float64, value int) *Misc {
	return &Misc{Base: Base{Name: name, Description: description, Weight: weight, Value: value, MaxStack: 1, Quantity: 1}}
}

// Type returns TypeMisc.
func (m *Misc) Type() ItemType { return TypeMisc }

var (
	_ Item = (*Armor)(nil)
	_ Item = (*WeaponItem)(nil)
	_ Item = (*Consumable)(nil)
	_ Item = (*Misc)(nil)
)
