package inventory

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

const weightTolerance = 1e-9

func potion() *Consumable {
	return NewConsumable("Health Potion", "Restores 30 health.", 0.3, 25, "restore_health", 30, 0)
}

func TestAddItemChargesWeight(t *testing.T) {
	inv := NewDefault()
	helmet := NewArmor("Leather Helmet", "", 0.5, 15, SlotHelmet, 2)

	if !inv.AddItem(helmet) {
		t.Fatal("AddItem(helmet) = false, want true")
	}
	if inv.CurrentWeight() != 0.5 {
		t.Errorf("CurrentWeight() = %v, want 0.5", inv.CurrentWeight())
	}
	if inv.Len() != 1 {
		t.Errorf("Len() = %d, want 1", inv.Len())
	}
}

func TestAddItemRejectsOverCapacity(t *testing.T) {
	inv := New(10, DefaultMaxConsumableTypes)
	plate := NewArmor("Iron Chestplate", "", 8, 100, SlotChestplate, 8)
	sword := NewWeaponItem("Rusty Sword", "", 2.5, 20, ClassShortSword, 5)

	if !inv.AddItem(plate) {
		t.Fatal("AddItem(plate) = false, want true")
	}
	if inv.AddItem(sword) {
		t.Error("AddItem(sword) should fail: 8 + 2.5 > 10")
	}
	if inv.CurrentWeight() != 8 || inv.Len() != 1 {
		t.Errorf("failed add mutated inventory: weight %v, len %d", inv.CurrentWeight(), inv.Len())
	}
}

func TestAddItemExactCapacityAllowed(t *testing.T) {
	inv := New(10, DefaultMaxConsumableTypes)
	if !inv.AddItem(NewMisc("Anvil", "", 10, 1)) {
		t.Error("AddItem at exactly capacity should succeed")
	}
}

func TestAddItemRejectsDuplicateAndMalformed(t *testing.T) {
	inv := NewDefault()
	helmet := NewArmor("Leather Helmet", "", 0.5, 15, SlotHelmet, 2)
	inv.AddItem(helmet)

	if inv.AddItem(helmet) {
		t.Error("adding the same item twice should fail")
	}

	bad := potion()
	bad.Quantity = 0
	if inv.AddItem(bad) {
		t.Error("adding a zero-quantity stack should fail")
	}

	over := potion()
	over.Quantity = over.MaxStack + 1
	if inv.AddItem(over) {
		t.Error("adding a stack above MaxStack should fail")
	}

	if inv.AddItem(nil) {
		t.Error("AddItem(nil) should fail")
	}
}

func TestConsumableStacking(t *testing.T) {
	inv := NewDefault()
	first := potion()
	second := potion()
	second.Quantity = 2

	inv.AddItem(first)
	if !inv.AddItem(second) {
		t.Fatal("stacking AddItem = false, want true")
	}

	if inv.Len() != 1 {
		t.Errorf("Len() = %d, want 1 merged stack", inv.Len())
	}
	if first.Quantity != 3 {
		t.Errorf("merged Quantity = %d, want 3", first.Quantity)
	}
	if math.Abs(inv.CurrentWeight()-0.9) > weightTolerance {
		t.Errorf("CurrentWeight() = %v, want 0.9", inv.CurrentWeight())
	}
}

func TestConsumableFullStackStartsNewEntry(t *testing.T) {
	inv := NewDefault()
	full := potion()
	full.Quantity = full.MaxStack
	inv.AddItem(full)

	extra := potion()
	if !inv.AddItem(extra) {
		t.Fatal("AddItem beyond a full stack = false, want true")
	}
	if inv.Len() != 2 {
		t.Errorf("Len() = %d, want 2 stacks", inv.Len())
	}
	if inv.ConsumableEntries() != 2 {
		t.Errorf("ConsumableEntries() = %d, want 2", inv.ConsumableEntries())
	}
}

func TestConsumableTopsUpStackWithRoom(t *testing.T) {
	inv := NewDefault()
	held := potion()
	held.Quantity = 4
	inv.AddItem(held)

	extra := potion()
	extra.Quantity = 2
	if !inv.AddItem(extra) {
		t.Fatal("AddItem onto a stack with room = false, want true")
	}

	if held.Quantity != held.MaxStack {
		t.Errorf("held Quantity = %d, want %d", held.Quantity, held.MaxStack)
	}
	if extra.Quantity != 1 {
		t.Errorf("remainder Quantity = %d, want 1", extra.Quantity)
	}
	if inv.Len() != 2 {
		t.Errorf("Len() = %d, want 2", inv.Len())
	}
	if math.Abs(inv.CurrentWeight()-1.8) > weightTolerance {
		t.Errorf("CurrentWeight() = %v, want 1.8", inv.CurrentWeight())
	}
}

func TestConsumableRemainderRespectsCap(t *testing.T) {
	inv := New(DefaultCapacity, 1)
	held := potion()
	held.Quantity = 4
	inv.AddItem(held)

	extra := potion()
	extra.Quantity = 2
	if inv.AddItem(extra) {
		t.Error("AddItem needing a second entry at the cap = true, want false")
	}
	if held.Quantity != 4 || extra.Quantity != 2 {
		t.Errorf("rejected add moved units: held %d, extra %d", held.Quantity, extra.Quantity)
	}
	if math.Abs(inv.CurrentWeight()-1.2) > weightTolerance {
		t.Errorf("CurrentWeight() = %v, want 1.2", inv.CurrentWeight())
	}

	// A remainder-free top-up still fits under the cap.
	if !inv.AddItem(potion()) {
		t.Error("AddItem filling the last slot of a stack = false, want true")
	}
	if held.Quantity != 5 {
		t.Errorf("held Quantity = %d, want 5", held.Quantity)
	}
}

func TestConsumableTypeCap(t *testing.T) {
	inv := NewDefault()
	for _, name := range []string{"Health Potion", "Stamina Elixir", "Antidote"} {
		if !inv.AddItem(NewConsumable(name, "", 0.3, 10, "restore_health", 10, 0)) {
			t.Fatalf("AddItem(%s) = false, want true", name)
		}
	}

	before := inv.CurrentWeight()
	fourth := NewConsumable("Smoke Bomb", "", 0.3, 10, "escape", 0, 0)
	if inv.AddItem(fourth) {
		t.Error("a 4th consumable entry should be rejected")
	}
	if inv.CurrentWeight() != before || inv.Len() != 3 {
		t.Errorf("rejected add mutated inventory: weight %v -> %v, len %d", before, inv.CurrentWeight(), inv.Len())
	}

	// Stacking an existing type is still fine.
	if !inv.AddItem(NewConsumable("Antidote", "", 0.3, 10, "restore_health", 10, 0)) {
		t.Error("stacking an existing type at the cap should succeed")
	}

	// Non-consumables are not affected by the cap.
	if !inv.AddItem(NewMisc("Rope", "", 1, 1)) {
		t.Error("misc items should ignore the consumable cap")
	}
}

func TestWeightCheckedBeforeStacking(t *testing.T) {
	inv := New(1, DefaultMaxConsumableTypes)
	held := potion()
	inv.AddItem(held)

	heavy := potion()
	heavy.Quantity = 4 // 0.3 + 1.2 > 1
	if inv.AddItem(heavy) {
		t.Error("stacking must respect capacity")
	}
	if held.Quantity != 1 {
		t.Errorf("held Quantity = %d, want 1", held.Quantity)
	}
}

func TestRemoveItem(t *testing.T) {
	inv := NewDefault()
	stack := potion()
	stack.Quantity = 4
	inv.AddItem(stack)

	if !inv.RemoveItem(stack, 1) {
		t.Fatal("RemoveItem(stack, 1) = false, want true")
	}
	if stack.Quantity != 3 {
		t.Errorf("Quantity = %d, want 3", stack.Quantity)
	}
	if math.Abs(inv.CurrentWeight()-0.9) > weightTolerance {
		t.Errorf("CurrentWeight() = %v, want 0.9", inv.CurrentWeight())
	}

	// Removing at least the held quantity drops the entry.
	if !inv.RemoveItem(stack, 10) {
		t.Fatal("RemoveItem(stack, 10) = false, want true")
	}
	if inv.Len() != 0 || inv.CurrentWeight() != 0 {
		t.Errorf("after full removal: len %d, weight %v", inv.Len(), inv.CurrentWeight())
	}

	if inv.RemoveItem(stack, 1) {
		t.Error("removing an absent item should fail")
	}
}

func TestRemoveItemRejectsNonPositiveQuantity(t *testing.T) {
	inv := NewDefault()
	p := potion()
	inv.AddItem(p)
	if inv.RemoveItem(p, 0) || inv.RemoveItem(p, -1) {
		t.Error("RemoveItem with quantity < 1 should fail")
	}
	if !inv.Contains(p) {
		t.Error("item should still be held")
	}
}

func TestEquipArmorRoundTrip(t *testing.T) {
	inv := NewDefault()
	helmet := NewArmor("Leather Helmet", "", 0.5, 15, SlotHelmet, 2)

	if inv.EquipArmor(helmet) {
		t.Error("equipping an item that is not held should fail")
	}

	inv.AddItem(helmet)
	if !inv.EquipArmor(helmet) {
		t.Fatal("EquipArmor = false, want true")
	}
	if !helmet.Equipped {
		t.Error("helmet.Equipped = false after equip")
	}
	if got := inv.EquippedSnapshot().Armor[SlotHelmet]; got != helmet {
		t.Errorf("snapshot helmet = %v, want %v", got, helmet)
	}

	if !inv.UnequipArmor(SlotHelmet) {
		t.Fatal("UnequipArmor = false, want true")
	}
	if helmet.Equipped {
		t.Error("helmet.Equipped = true after unequip")
	}
	if _, ok := inv.EquippedSnapshot().Armor[SlotHelmet]; ok {
		t.Error("helmet slot should be empty after unequip")
	}
	if !inv.Contains(helmet) {
		t.Error("helmet should remain in the inventory")
	}
	if inv.UnequipArmor(SlotHelmet) {
		t.Error("unequipping an empty slot should fail")
	}
}

func TestEquipArmorReplacesOccupant(t *testing.T) {
	inv := NewDefault()
	old := NewArmor("Leather Helmet", "", 0.5, 15, SlotHelmet, 2)
	better := NewArmor("Iron Helm", "", 2, 60, SlotHelmet, 5)
	inv.AddItem(old)
	inv.AddItem(better)

	inv.EquipArmor(old)
	inv.EquipArmor(better)

	if old.Equipped {
		t.Error("replaced helmet should be unequipped")
	}
	if !inv.Contains(old) {
		t.Error("replaced helmet should stay in the inventory")
	}
	if got := inv.EquippedSnapshot().TotalDefense(); got != 5 {
		t.Errorf("TotalDefense() = %d, want 5", got)
	}
}

func TestEquipWeaponRoundTrip(t *testing.T) {
	inv := NewDefault()
	sword := NewWeaponItem("Rusty Sword", "", 2.5, 20, ClassShortSword, 5)
	bow := NewWeaponItem("Hunter's Bow", "", 1.5, 75, ClassBowAndArrow, 7)
	inv.AddItem(sword)
	inv.AddItem(bow)

	if inv.UnequipWeapon() {
		t.Error("UnequipWeapon on an empty slot should fail")
	}
	inv.EquipWeapon(sword)
	inv.EquipWeapon(bow)

	if sword.Equipped {
		t.Error("sword should be unequipped when the bow replaces it")
	}
	if inv.EquippedSnapshot().Weapon != bow {
		t.Error("bow should be equipped")
	}
	if !inv.UnequipWeapon() || bow.Equipped || inv.EquippedSnapshot().Weapon != nil {
		t.Error("UnequipWeapon should clear the slot and flag")
	}
	if inv.Len() != 2 {
		t.Errorf("Len() = %d, want 2", inv.Len())
	}
}

func TestUseConsumable(t *testing.T) {
	inv := NewDefault()
	p := potion()
	p.Quantity = 2
	inv.AddItem(p)

	var applied []string
	fx := EffectFunc(func(c *Consumable) { applied = append(applied, c.Effect) })

	if !inv.UseConsumable(p, fx) {
		t.Fatal("UseConsumable = false, want true")
	}
	if p.Quantity != 1 {
		t.Errorf("Quantity = %d, want 1", p.Quantity)
	}
	if len(applied) != 1 || applied[0] != "restore_health" {
		t.Errorf("applied = %v, want [restore_health]", applied)
	}

	inv.UseConsumable(p, nil)
	if inv.Contains(p) {
		t.Error("last unit should remove the entry")
	}
	if inv.UseConsumable(p, fx) {
		t.Error("using an absent consumable should fail")
	}
	if len(applied) != 1 {
		t.Errorf("effect applied %d times, want 1", len(applied))
	}
}

func TestSelectionBounds(t *testing.T) {
	inv := NewDefault()
	inv.AddItem(NewMisc("Rope", "", 1, 1))
	inv.AddItem(potion())

	tests := []struct {
		index int
		ok    bool
	}{
		{-1, false},
		{0, true},
		{1, true},
		{2, false},
	}
	for _, tt := range tests {
		if _, ok := inv.At(tt.index); ok != tt.ok {
			t.Errorf("At(%d) ok = %v, want %v", tt.index, ok, tt.ok)
		}
	}

	if c, ok := inv.ConsumableAt(0); !ok || c.Name != "Health Potion" {
		t.Errorf("ConsumableAt(0) = %v, %v", c, ok)
	}
	if _, ok := inv.ConsumableAt(1); ok {
		t.Error("ConsumableAt(1) should be out of range")
	}
}

func TestItemsByType(t *testing.T) {
	inv := NewDefault()
	inv.AddItem(NewMisc("Rope", "", 1, 1))
	inv.AddItem(potion())
	inv.AddItem(NewMisc("Torch", "", 1, 1))

	misc := inv.ItemsByType(TypeMisc)
	if len(misc) != 2 || misc[0].Info().Name != "Rope" || misc[1].Info().Name != "Torch" {
		t.Errorf("ItemsByType(misc) = %v, want [Rope Torch]", misc)
	}
	if got := inv.ItemsByType(TypeArmor); len(got) != 0 {
		t.Errorf("ItemsByType(armor) = %v, want empty", got)
	}
}

// TestWeightInvariant checks that after any sequence of adds and removes the
// running weight equals the recomputed sum and never exceeds capacity.
func TestWeightInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.Float64Range(1, 50).Draw(t, "capacity")
		inv := New(capacity, DefaultMaxConsumableTypes)
		names := []string{"Potion", "Elixir", "Antidote", "Bomb"}

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(t, "add") || inv.Len() == 0 {
				var item Item
				weight := rapid.Float64Range(0, 10).Draw(t, "weight")
				if rapid.Bool().Draw(t, "consumable") {
					c := NewConsumable(rapid.SampledFrom(names).Draw(t, "name"), "", weight, 1, "fx", 1, 0)
					c.Quantity = rapid.IntRange(1, c.MaxStack).Draw(t, "qty")
					item = c
				} else {
					item = NewMisc("Thing", "", weight, 1)
				}
				inv.AddItem(item)
			} else {
				idx := rapid.IntRange(0, inv.Len()-1).Draw(t, "idx")
				item, _ := inv.At(idx)
				inv.RemoveItem(item, rapid.IntRange(1, 6).Draw(t, "removeQty"))
			}

			if math.Abs(inv.CurrentWeight()-inv.TotalWeight()) > weightTolerance {
				t.Fatalf("CurrentWeight() = %v, TotalWeight() = %v", inv.CurrentWeight(), inv.TotalWeight())
			}
			if inv.CurrentWeight() > capacity+weightTolerance {
				t.Fatalf("CurrentWeight() = %v exceeds capacity %v", inv.CurrentWeight(), capacity)
			}
			if inv.ConsumableEntries() > DefaultMaxConsumableTypes {
				t.Fatalf("ConsumableEntries() = %d exceeds cap", inv.ConsumableEntries())
			}
			for _, it := range inv.Items() {
				b := it.Info()
				if b.Quantity < 1 || b.Quantity > b.MaxStack {
					t.Fatalf("%s quantity %d outside [1, %d]", b.Name, b.Quantity, b.MaxStack)
				}
			}
		}
	})
}
