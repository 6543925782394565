package combat

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/rpsquest/internal/ability"
	"github.com/samdwyer/rpsquest/internal/entity"
	"github.com/samdwyer/rpsquest/internal/inventory"
	"github.com/samdwyer/rpsquest/internal/random"
	"github.com/samdwyer/rpsquest/internal/telemetry"
	"github.com/samdwyer/rpsquest/internal/weapon"
)

const (
	// DefaultFleeChance is the probability a flee attempt succeeds.
	DefaultFleeChance = 0.5
	// VictoryExperience is awarded for defeating a regular enemy.
	VictoryExperience = 20
	// BossExperience is awarded for defeating a boss.
	BossExperience = 100
)

// Config tunes an encounter. The zero value is usable apart from
// FleeChance; start from DefaultConfig.
type Config struct {
	FleeChance float64
	Source     random.Source           // nil seeds from the clock
	Roster     *entity.Roster          // defeated enemies are removed from it
	Effects    inventory.EffectApplier // nil uses PotionEffects on the player
	Tracer     trace.Tracer            // nil uses the global "combat" tracer
}

// DefaultConfig returns the standard encounter settings.
func DefaultConfig() Config {
	return Config{FleeChance: DefaultFleeChance}
}

// Engine runs one encounter between the player and an enemy.
type Engine struct {
	player  *entity.Character
	enemy   *entity.Character
	state   State
	turn    int
	cfg     Config
	effects inventory.EffectApplier
	tracer  trace.Tracer
}

// NewEngine starts an encounter. The player acts first.
func NewEngine(ctx context.Context, player, enemy *entity.Character, cfg Config) *Engine {
	if cfg.Source == nil {
		cfg.Source = random.New(time.Now().UnixNano())
	}
	e := &Engine{
		player:  player,
		enemy:   enemy,
		state:   StatePlayerTurn,
		cfg:     cfg,
		effects: cfg.Effects,
		tracer:  cfg.Tracer,
	}
	if e.effects == nil {
		e.effects = PotionEffects(player)
	}
	if e.tracer == nil {
		e.tracer = telemetry.Tracer("combat")
	}

	_, span := e.tracer.Start(ctx, "combat.start")
	span.SetAttributes(
		attribute.String("player", player.Name),
		attribute.String("enemy", enemy.Name),
		attribute.String("enemy_archetype", enemy.Archetype.String()),
		attribute.Int("enemy_health", enemy.Health()),
	)
	span.End()
	return e
}

// State returns the current encounter state.
func (e *Engine) State() State { return e.state }

// Turn returns the number of turns used up so far. Free item use does not
// count.
func (e *Engine) Turn() int { return e.turn }

// Player returns the player character.
func (e *Engine) Player() *entity.Character { return e.player }

// Enemy returns the opposing character.
func (e *Engine) Enemy() *entity.Character { return e.enemy }

// RunTurn applies the player's command and, when the turn passes, the
// enemy's reply. Events are returned in the order they occurred. Calls made
// after the encounter has ended change nothing and return no events.
func (e *Engine) RunTurn(ctx context.Context, cmd Command) (State, []Event) {
	if e.state != StatePlayerTurn {
		return e.state, nil
	}

	if cmd.Action != ActionUseItem {
		e.turn++
	}
	ctx, span := e.tracer.Start(ctx, "combat.turn")
	span.SetAttributes(
		attribute.Int("turn", e.turn),
		attribute.String("action", cmd.Action.String()),
	)
	defer span.End()

	var events []Event
	switch cmd.Action {
	case ActionAttack:
		events = append(events, e.playerAttack())
	case ActionAbility:
		events = append(events, e.playerAbility(cmd.Target))
	case ActionUseItem:
		events = append(events, e.useItem(cmd.Item))
		span.SetAttributes(attribute.String("state", e.state.String()))
		return e.state, e.stampNext(events)
	case ActionFlee:
		if random.Chance(e.cfg.Source, e.cfg.FleeChance) {
			events = append(events, Event{
				Kind:     EventFleeSucceeded,
				Attacker: e.player.Name,
				Defender: e.enemy.Name,
				Message:  fmt.Sprintf("%s escaped from %s!", e.player.Name, e.enemy.Name),
			})
			e.finish(ctx, StateFled)
			span.SetAttributes(attribute.String("state", e.state.String()))
			return e.state, e.stamp(events)
		}
		events = append(events, Event{
			Kind:     EventFleeFailed,
			Attacker: e.player.Name,
			Defender: e.enemy.Name,
			Message:  fmt.Sprintf("%s failed to escape!", e.player.Name),
		})
	default:
		events = append(events, Event{
			Kind:     EventHesitate,
			Attacker: e.player.Name,
			Message:  fmt.Sprintf("%s hesitates!", e.player.Name),
		})
	}

	if !e.enemy.IsAlive() {
		events = append(events, e.victory(ctx)...)
	} else {
		e.state = StateEnemyTurn
		events = append(events, e.enemyTurn(ctx)...)
	}

	span.SetAttributes(
		attribute.String("state", e.state.String()),
		attribute.Int("player_health", e.player.Health()),
		attribute.Int("enemy_health", e.enemy.Health()),
	)
	return e.state, e.stamp(events)
}

// ExperienceReward returns the experience granted for defeating c.
func ExperienceReward(c *entity.Character) int {
	if c.Archetype == entity.ArchetypeBoss {
		return BossExperience
	}
	return VictoryExperience
}

// PotionEffects returns the default applier: restore_health consumables heal
// target by their potency up to its maximum health. Other effects do nothing.
func PotionEffects(target *entity.Character) inventory.EffectApplier {
	return inventory.EffectFunc(func(c *inventory.Consumable) {
		if c.Effect == inventory.EffectRestoreHealth {
			target.HealCapped(c.Potency, target.MaxHealth)
		}
	})
}

func (e *Engine) playerAttack() Event {
	return e.strikeEvent(e.player, e.enemy, e.player.Attack(e.enemy, e.cfg.Source))
}

func (e *Engine) playerAbility(target *entity.Character) Event {
	a := ability.For(e.player.Archetype)
	if target == nil && a.NeedsTarget() {
		target = e.player
	}
	out := a.Use(e.player, target)
	return Event{
		Kind:     EventAbility,
		Attacker: out.User,
		Defender: out.Target,
		Amount:   out.Healing,
		Message:  out.Message,
	}
}

func (e *Engine) useItem(item *inventory.Consumable) Event {
	before := e.player.Health()
	if !e.player.Inventory.UseConsumable(item, e.effects) {
		return Event{
			Kind:     EventItemRejected,
			Attacker: e.player.Name,
			Message:  "Invalid item selection.",
		}
	}
	return Event{
		Kind:     EventItemUsed,
		Attacker: e.player.Name,
		Amount:   e.player.Health() - before,
		Message:  fmt.Sprintf("%s used %s.", e.player.Name, item.Name),
	}
}

func (e *Engine) enemyTurn(ctx context.Context) []Event {
	strike := e.enemy.Attack(e.player, e.cfg.Source)
	events := []Event{e.strikeEvent(e.enemy, e.player, strike)}

	if !e.player.IsAlive() {
		events = append(events, Event{
			Kind:     EventDefeat,
			Attacker: e.enemy.Name,
			Defender: e.player.Name,
			Message:  fmt.Sprintf("%s has been defeated!", e.player.Name),
		})
		e.finish(ctx, StateDefeat)
		return events
	}
	e.state = StatePlayerTurn
	return events
}

func (e *Engine) victory(ctx context.Context) []Event {
	reward := ExperienceReward(e.enemy)
	events := []Event{
		{
			Kind:     EventVictory,
			Attacker: e.player.Name,
			Defender: e.enemy.Name,
			Message:  fmt.Sprintf("%s has been defeated!", e.enemy.Name),
		},
		{
			Kind:     EventExperience,
			Attacker: e.player.Name,
			Amount:   reward,
			Message:  fmt.Sprintf("%s gains %d experience.", e.player.Name, reward),
		},
	}
	if levels := e.player.AddExperience(reward); levels > 0 {
		events = append(events, Event{
			Kind:     EventLevelUp,
			Attacker: e.player.Name,
			Amount:   e.player.Level,
			Message:  fmt.Sprintf("%s reached level %d!", e.player.Name, e.player.Level),
		})
	}
	if e.cfg.Roster != nil && e.cfg.Roster.Remove(e.enemy) {
		events = append(events, Event{
			Kind:     EventBossDefeated,
			Defender: e.enemy.Name,
			Message:  fmt.Sprintf("%s has fallen!", e.enemy.Name),
		})
	}
	e.finish(ctx, StateVictory)
	return events
}

func (e *Engine) strikeEvent(attacker, defender *entity.Character, s entity.Strike) Event {
	msg := weapon.Describe(attacker.Weapon, defender.Weapon, defender.Name)
	msg += fmt.Sprintf(" %s takes %d damage.", defender.Name, s.Damage)
	if s.Critical {
		msg += fmt.Sprintf(" Critical hit! %s takes %d more damage.", defender.Name, s.Extra)
	}
	return Event{
		Kind:     EventAttack,
		Attacker: attacker.Name,
		Defender: defender.Name,
		Amount:   s.Total(),
		Critical: s.Critical,
		Verdict:  s.Verdict,
		Message:  msg,
	}
}

func (e *Engine) finish(ctx context.Context, s State) {
	e.state = s
	_, span := e.tracer.Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("result", s.String()),
		attribute.Int("turns", e.turn),
		attribute.Int("player_level", e.player.Level),
	)
	span.End()
}

// stampNext tags free actions with the turn they happen in.
func (e *Engine) stampNext(events []Event) []Event {
	for i := range events {
		events[i].Turn = e.turn + 1
	}
	return events
}

func (e *Engine) stamp(events []Event) []Event {
	for i := range events {
		events[i].Turn = e.turn
	}
	return events
}
