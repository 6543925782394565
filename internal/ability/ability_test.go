package ability

import (
	"testing"

	"github.com/samdwyer/rpsquest/internal/entity"
)

func TestSecondWind(t *testing.T) {
	tests := []struct {
		health  int
		healing int
		after   int
	}{
		{50, 10, 60},
		{90, 10, 100},
		{95, 5, 100},
		{100, 0, 100},
		{4, 0, 4},
		{110, 0, 100},
	}

	for _, tt := range tests {
		p := entity.NewPlayer("Hero")
		p.SetHealth(tt.health)

		out := Use(p, nil)

		if !out.Success || out.Healing != tt.healing || p.Health() != tt.after {
			t.Errorf("health %d: Second Wind healed %d -> %d, want %d -> %d",
				tt.health, out.Healing, p.Health(), tt.healing, tt.after)
		}
	}
}

func TestSecondWindAfterLevelUp(t *testing.T) {
	p := entity.NewPlayer("Hero")
	p.LevelUp(1)

	Use(p, nil)

	if p.Health() > entity.HealCeiling {
		t.Errorf("Health() = %d after Second Wind, want at most %d", p.Health(), entity.HealCeiling)
	}
}

func TestSecondWindMessage(t *testing.T) {
	p := entity.NewPlayer("Hero")
	p.SetHealth(50)
	want := "Hero uses Second Wind and heals for 10 HP!"
	if got := Use(p, nil).Message; got != want {
		t.Errorf("Message = %q, want %q", got, want)
	}
}

func TestHealingTouchIsUncapped(t *testing.T) {
	healer := entity.NewHealer("Mira", 50, 4)
	player := entity.NewPlayer("Hero")

	out := Use(healer, player)

	if !out.Success || out.Healing != 15 {
		t.Errorf("Outcome = %+v, want 15 healing", out)
	}
	if player.Health() != 115 {
		t.Errorf("player Health() = %d, want 115 (no ceiling)", player.Health())
	}
	if out.Target != "Hero" {
		t.Errorf("Target = %q, want Hero", out.Target)
	}
}

func TestHealingTouchRequiresTarget(t *testing.T) {
	healer := entity.NewHealer("Mira", 50, 4)
	if !For(entity.ArchetypeHealer).NeedsTarget() {
		t.Error("healer ability should need a target")
	}

	out := Use(healer, nil)
	if out.Success {
		t.Error("Healing Touch without a target should fail")
	}
	if healer.Health() != 50 {
		t.Errorf("healer Health() = %d, want 50", healer.Health())
	}
}

func TestFlavorAbilitiesHaveNoEffect(t *testing.T) {
	tests := []struct {
		character *entity.Character
		message   string
	}{
		{entity.NewDefender("Bram", 80, 6), "Bram raises their shield, ready to defend!"},
		{entity.NewGoblin(), "Goblin attempts a Sneak Attack!"},
		{entity.NewOrc(), "Orc channels Brute Force for their next attack!"},
		{entity.NewBoss("Dragon Lord", 300, 20, "Fire Breath"), "Dragon Lord unleashes their ultimate power!"},
	}

	for _, tt := range tests {
		victim := entity.NewPlayer("Hero")
		before := tt.character.Health()

		out := Use(tt.character, victim)

		if out.Message != tt.message {
			t.Errorf("Message = %q, want %q", out.Message, tt.message)
		}
		if out.Healing != 0 || victim.Health() != 100 || tt.character.Health() != before {
			t.Errorf("%s ability changed health", tt.character.Name)
		}
		if For(tt.character.Archetype).NeedsTarget() {
			t.Errorf("%s ability should not need a target", tt.character.Name)
		}
	}
}
