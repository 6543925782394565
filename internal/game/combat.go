package game

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rpsquest/internal/combat"
	"github.com/samdwyer/rpsquest/internal/entity"
)

var combatMenu = []string{
	"Attack",
	"Use special ability",
	"Use item",
	"Try to flee",
}

// actionInvalid is sent for an unrecognised combat choice; the engine makes
// the player hesitate.
const actionInvalid combat.Action = -1

// startCombat begins an encounter with enemy and switches to the combat menu.
func (g *Game) startCombat(ctx context.Context, enemy *entity.Character, color tcell.Color) {
	cfg := combat.DefaultConfig()
	cfg.FleeChance = g.cfg.FleeChance
	cfg.Source = g.src
	cfg.Roster = g.bosses
	cfg.Tracer = tracerFor(g.cfg, "combat")

	g.encounter = combat.NewEngine(ctx, g.player, enemy, cfg)
	g.enemyColor = color
	g.combatLog.Start(g.player.Name, enemy.Name)
	g.say("=== Combat Started ===")
	g.say(g.player.Name + " vs " + enemy.Name)
	g.state = StateCombat
}

func (g *Game) combatKey(ctx context.Context, key tcell.Key, r rune) {
	switch choice(key, r) {
	case 0:
		// Esc does nothing mid-fight; fleeing is an explicit choice.
	case 1:
		g.runCombatTurn(ctx, combat.Attack())
	case 2:
		g.runCombatTurn(ctx, combat.UseAbility(nil))
	case 3:
		if len(g.player.Inventory.Consumables()) == 0 {
			g.say("You don't have any usable items!")
			return
		}
		g.state = StateCombatItem
	case 4:
		g.runCombatTurn(ctx, combat.Flee())
	default:
		g.runCombatTurn(ctx, combat.Command{Action: actionInvalid})
	}
}

func (g *Game) combatItemKey(ctx context.Context, key tcell.Key, r rune) {
	n := choice(key, r)
	g.state = StateCombat
	if n == 0 {
		return
	}
	c, ok := g.player.Inventory.ConsumableAt(n - 1)
	if !ok {
		g.say("Invalid choice.")
		return
	}
	g.runCombatTurn(ctx, combat.UseItem(c))
}

// runCombatTurn feeds one command to the engine, logs what happened and
// returns to the main menu once the encounter is over.
func (g *Game) runCombatTurn(ctx context.Context, cmd combat.Command) {
	state, events := g.encounter.RunTurn(ctx, cmd)
	g.combatLog.Record(events)
	for _, ev := range events {
		g.say(ev.Message)
	}
	if !state.Terminal() {
		return
	}

	g.combatLog.End(state, g.encounter.Turn())
	g.encounter = nil
	g.state = StateMenu
}
