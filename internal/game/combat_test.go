package game

import (
	"testing"

	"github.com/samdwyer/rpsquest/internal/random"
)

func TestExploreStartsCombat(t *testing.T) {
	g := newTestGame(t, random.Always)
	press(g, "11")

	if g.state != StateCombat {
		t.Fatalf("state = %v, want %v", g.state, StateCombat)
	}
	if g.encounter.Enemy().Name != "Goblin" {
		t.Errorf("enemy = %s, want Goblin", g.encounter.Enemy().Name)
	}
}

func TestFleeReturnsToMenu(t *testing.T) {
	g := newTestGame(t, random.Always)
	press(g, "114")

	if g.state != StateMenu {
		t.Errorf("state = %v, want %v", g.state, StateMenu)
	}
	if g.player.Health() != 100 {
		t.Errorf("Health() = %d, want 100", g.player.Health())
	}
	if g.encounter != nil {
		t.Error("encounter kept after fleeing")
	}
}

func TestCombatVictory(t *testing.T) {
	g := newTestGame(t, random.Always)
	press(g, "11") // Rock, explore
	press(g, "11") // attack twice

	if g.state != StateMenu {
		t.Fatalf("state = %v, want %v", g.state, StateMenu)
	}
	if g.player.Experience != 20 {
		t.Errorf("Experience = %d, want 20", g.player.Experience)
	}
	if g.player.Health() != 95 {
		t.Errorf("Health() = %d, want 95", g.player.Health())
	}
	if !logContains(g, "Goblin has been defeated!") {
		t.Errorf("log = %v", g.log)
	}
}

func TestHesitateWastesTurn(t *testing.T) {
	g := newTestGame(t, random.Always)
	press(g, "11")
	press(g, "x")

	if g.state != StateCombat {
		t.Fatalf("state = %v, want %v", g.state, StateCombat)
	}
	if g.encounter.Enemy().Health() != 30 || g.player.Health() != 95 {
		t.Errorf("enemy %d player %d, want 30 and 95", g.encounter.Enemy().Health(), g.player.Health())
	}
	if !logContains(g, "Hero hesitates!") {
		t.Errorf("log = %v", g.log)
	}
}

func TestCombatItemKeepsTurn(t *testing.T) {
	g := newTestGame(t, random.Always)
	press(g, "11")
	g.player.SetHealth(50)

	press(g, "3")
	if g.state != StateCombatItem {
		t.Fatalf("state = %v, want %v", g.state, StateCombatItem)
	}
	press(g, "1")

	if g.state != StateCombat {
		t.Errorf("state = %v, want %v", g.state, StateCombat)
	}
	if g.player.Health() != 80 {
		t.Errorf("Health() = %d, want 80", g.player.Health())
	}
	if g.encounter.Enemy().Health() != 30 {
		t.Errorf("enemy health = %d, want 30", g.encounter.Enemy().Health())
	}

	press(g, "39")
	if g.state != StateCombat || !logContains(g, "Invalid choice.") {
		t.Errorf("state = %v, log = %v", g.state, g.log)
	}
}

func TestDefeatEndsGame(t *testing.T) {
	g := newTestGame(t, random.Always)
	press(g, "11")
	g.player.SetHealth(1)
	press(g, "1")

	if g.state != StateGameOver || g.Outcome() != OutcomeDefeat {
		t.Errorf("state = %v outcome = %v, want game over by defeat", g.state, g.Outcome())
	}
}

func TestBossVictoryCompletesQuest(t *testing.T) {
	g := newTestGame(t, random.Never)
	press(g, "1")
	king := g.bosses.Find("Goblin King")
	king.SetHealth(1)

	press(g, "71")

	if g.bosses.Contains(king) {
		t.Error("Goblin King still in roster")
	}
	// 100 for the boss and 100 from the quest.
	if g.player.Experience != 200 || g.player.Level != 3 {
		t.Errorf("experience %d level %d, want 200 and 3", g.player.Experience, g.player.Level)
	}
	if g.player.Inventory.Gold != 50 {
		t.Errorf("Gold = %d, want 50", g.player.Inventory.Gold)
	}
	if !logContains(g, "Quest completed: Defeat the Goblin King!") {
		t.Errorf("log = %v", g.log)
	}

	press(g, "1")
	if g.player.Inventory.Gold != 50 {
		t.Errorf("quest reward applied twice: Gold = %d", g.player.Inventory.Gold)
	}
}

func TestLastBossWinsGame(t *testing.T) {
	g := newTestGame(t, random.Never)
	press(g, "1")
	members := g.bosses.Members()
	for _, b := range members[1:] {
		g.bosses.Remove(b)
	}
	members[0].SetHealth(1)

	press(g, "71")

	if g.state != StateGameOver || g.Outcome() != OutcomeVictory {
		t.Errorf("state = %v outcome = %v, want game over by victory", g.state, g.Outcome())
	}
}
