package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/rpsquest/internal/combat"
	"github.com/samdwyer/rpsquest/internal/combatlog"
	"github.com/samdwyer/rpsquest/internal/config"
	"github.com/samdwyer/rpsquest/internal/entity"
	"github.com/samdwyer/rpsquest/internal/gamedata"
	"github.com/samdwyer/rpsquest/internal/inventory"
	"github.com/samdwyer/rpsquest/internal/quest"
	"github.com/samdwyer/rpsquest/internal/random"
	"github.com/samdwyer/rpsquest/internal/telemetry"
	"github.com/samdwyer/rpsquest/internal/ui"
	"github.com/samdwyer/rpsquest/internal/weapon"
	"github.com/samdwyer/rpsquest/internal/world"
)

// maxLog bounds the message history kept for display.
const maxLog = 100

// starterKit is added to the player's inventory at the start.
var starterKit = []string{"Health Potion", "Health Potion", "Leather Helmet"}

var mainMenu = []string{
	"Explore",
	"Check inventory",
	"View quests",
	"Use item",
	"Rest (heal to full health)",
	"Travel",
	"Challenge a boss",
	"Quit game",
}

// Game holds the entire game state.
type Game struct {
	cfg       config.Config
	screen    *ui.Screen
	renderer  *ui.Renderer
	src       random.Source
	data      *gamedata.Bundle
	player    *entity.Character
	bosses    *entity.Roster
	quests    *quest.Book
	world     *world.World
	combatLog *combatlog.Logger
	tracer    trace.Tracer

	encounter  *combat.Engine
	enemyColor tcell.Color

	state   State
	outcome Outcome
	log     []string
	running bool
}

// New creates a game drawing to screen. A nil combat log discards events.
func New(cfg config.Config, screen *ui.Screen, clog *combatlog.Logger) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return newGame(cfg, screen, clog, random.New(seed))
}

func newGame(cfg config.Config, screen *ui.Screen, clog *combatlog.Logger, src random.Source) (*Game, error) {
	data, err := gamedata.LoadBundle()
	if err != nil {
		return nil, fmt.Errorf("load game data: %w", err)
	}
	catalog, err := inventory.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load item catalogue: %w", err)
	}
	book, err := quest.NewBook(data.Quests, catalog)
	if err != nil {
		return nil, fmt.Errorf("build quest book: %w", err)
	}
	if clog == nil {
		clog = combatlog.NewNop()
	}

	player := entity.NewPlayer(cfg.PlayerName)
	player.Inventory = inventory.New(cfg.InventoryCapacity, cfg.MaxConsumableTypes)
	for _, name := range starterKit {
		if item, ok := catalog.New(name); ok {
			player.Inventory.AddItem(item)
		}
	}

	g := &Game{
		cfg:       cfg,
		screen:    screen,
		renderer:  ui.NewRenderer(screen),
		src:       src,
		data:      data,
		player:    player,
		bosses:    gamedata.NewBossRoster(data.Bosses),
		quests:    book,
		world:     world.New(src, cfg.EncounterChance, data.Villains),
		combatLog: clog,
		tracer:    tracerFor(cfg, "game"),
		state:     StateChooseWeapon,
		running:   true,
	}
	g.say("=== Welcome to the RPG Adventure! ===")
	g.say("A text-based adventure where you battle monsters and complete quests!")
	return g, nil
}

// tracerFor returns the named component tracer, or a no-op one when tracing
// is switched off.
func tracerFor(cfg config.Config, name string) trace.Tracer {
	if !cfg.Tracing {
		return telemetry.NoopTracer()
	}
	return telemetry.Tracer(name)
}

// Run executes the main game loop until the player exits.
func (g *Game) Run(ctx context.Context) error {
	_, initSpan := g.tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.String("player", g.player.Name),
		attribute.Int("bosses", g.bosses.Len()),
		attribute.Int("quests", len(g.quests.Quests())),
		attribute.Int("villain_types", g.data.Villains.Count()),
	)
	if s, ok := g.src.(*random.Seeded); ok {
		initSpan.SetAttributes(attribute.Int64("seed", s.Seed()))
	}
	initSpan.End()

	for g.running {
		g.renderer.Render(g.view())
		g.handleInput(ctx)
	}

	if err := g.combatLog.Sync(); err != nil {
		return fmt.Errorf("flush combat log: %w", err)
	}
	return nil
}

// Outcome returns how the game ended, or OutcomeNone while it is running.
func (g *Game) Outcome() Outcome { return g.outcome }

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		g.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized.
		g.running = false
	}
}

// handleKey routes one key press to the current screen.
func (g *Game) handleKey(ctx context.Context, key tcell.Key, r rune) {
	if key == tcell.KeyCtrlC {
		g.running = false
		return
	}
	if g.state == StateGameOver {
		g.running = false
		return
	}
	if key != tcell.KeyRune && key != tcell.KeyEscape {
		return
	}

	switch g.state {
	case StateChooseWeapon:
		g.chooseWeapon(key, r)
	case StateMenu:
		g.menuKey(ctx, key, r)
	case StateInventory:
		g.inventoryKey(key, r)
	case StateQuests:
		g.state = StateMenu
	case StateUseItem:
		g.useItemKey(key, r)
	case StateTravel:
		g.travelKey(key, r)
	case StateCombat:
		g.combatKey(ctx, key, r)
	case StateCombatItem:
		g.combatItemKey(ctx, key, r)
	}

	if g.state == StateMenu {
		g.checkProgress(ctx)
	}
}

// choice maps a key press to a menu number: 0 for Esc or '0', 1-9 for
// digits, -1 for anything else.
func choice(key tcell.Key, r rune) int {
	if key == tcell.KeyEscape {
		return 0
	}
	if key == tcell.KeyRune && r >= '0' && r <= '9' {
		return int(r - '0')
	}
	return -1
}

func (g *Game) chooseWeapon(key tcell.Key, r rune) {
	weapons := weapon.Standard()
	n := choice(key, r)
	if n < 1 || n > len(weapons) {
		g.say("Invalid choice. Choose a weapon from the list.")
		return
	}
	g.player.Weapon = weapons[n-1]
	g.say(fmt.Sprintf("Welcome, %s! You wield %s. Your adventure begins now!", g.player.Name, g.player.Weapon))
	g.state = StateMenu
}

func (g *Game) menuKey(ctx context.Context, key tcell.Key, r rune) {
	switch choice(key, r) {
	case 1:
		g.explore(ctx)
	case 2:
		g.state = StateInventory
	case 3:
		g.state = StateQuests
	case 4:
		if g.player.Inventory.Len() == 0 {
			g.say("Your inventory is empty!")
			return
		}
		g.state = StateUseItem
	case 5:
		world.Rest(g.player)
		g.say("You rest and recover your health.")
	case 6:
		g.state = StateTravel
	case 7:
		g.challengeBoss(ctx)
	case 0, 8:
		g.endGame(OutcomeQuit)
	default:
		g.say("Invalid choice. Please try again.")
	}
}

func (g *Game) explore(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "game.explore")
	defer span.End()

	loc := g.world.Current()
	g.say(fmt.Sprintf("You explore the area around %s...", loc.Name))
	enemy := g.world.Explore()
	span.SetAttributes(
		attribute.String("location", loc.Name),
		attribute.Bool("encounter", enemy != nil),
	)
	if enemy == nil {
		g.say("You find nothing of interest.")
		return
	}

	span.SetAttributes(attribute.String("enemy", enemy.Name))
	g.say(fmt.Sprintf("A wild %s appears!", enemy.Name))
	g.startCombat(ctx, enemy, g.villainColor(enemy.Name))
}

func (g *Game) challengeBoss(ctx context.Context) {
	members := g.bosses.Members()
	if len(members) == 0 {
		g.say("There are no bosses left to challenge.")
		return
	}
	boss := members[0]
	color := tcell.ColorRed
	if def := g.data.BossByName(boss.Name); def != nil {
		color = def.TCellColor()
	}
	g.say(fmt.Sprintf("You challenge %s!", boss.Name))
	g.startCombat(ctx, boss, color)
}

func (g *Game) villainColor(name string) tcell.Color {
	for _, v := range g.data.Villains.All() {
		if v.Name == name {
			return v.TCellColor()
		}
	}
	return tcell.ColorWhite
}

func (g *Game) inventoryKey(key tcell.Key, r rune) {
	n := choice(key, r)
	if n == 0 {
		g.state = StateMenu
		return
	}
	item, ok := g.player.Inventory.At(n - 1)
	if !ok {
		g.say("Invalid choice.")
		return
	}

	inv := g.player.Inventory
	switch it := item.(type) {
	case *inventory.Armor:
		if it.Equipped {
			inv.UnequipArmor(it.Slot)
			g.say(fmt.Sprintf("You remove %s.", it.Name))
		} else if inv.EquipArmor(it) {
			g.say(fmt.Sprintf("You equip %s.", it.Name))
		}
	case *inventory.WeaponItem:
		if it.Equipped {
			inv.UnequipWeapon()
			g.say(fmt.Sprintf("You put away %s.", it.Name))
		} else if inv.EquipWeapon(it) {
			g.say(fmt.Sprintf("You ready %s.", it.Name))
		}
	default:
		g.say(fmt.Sprintf("You can't equip %s.", item.Info().Name))
	}
}

func (g *Game) useItemKey(key tcell.Key, r rune) {
	n := choice(key, r)
	g.state = StateMenu
	if n == 0 {
		return
	}
	item, ok := g.player.Inventory.At(n - 1)
	if !ok {
		g.say("Invalid choice.")
		return
	}
	c, ok := item.(*inventory.Consumable)
	if !ok {
		g.say("You can't use that item right now.")
		return
	}
	g.player.Inventory.UseConsumable(c, combat.PotionEffects(g.player))
	g.say(fmt.Sprintf("You used %s!", c.Name))
}

func (g *Game) travelKey(key tcell.Key, r rune) {
	n := choice(key, r)
	g.state = StateMenu
	if n == 0 {
		return
	}
	if !g.world.Travel(n - 1) {
		g.say("Invalid choice.")
		return
	}
	g.say(fmt.Sprintf("You travel to %s.", g.world.Current().Name))
}

// checkProgress applies finished quests and ends the game when the player
// has died or no bosses remain.
func (g *Game) checkProgress(ctx context.Context) {
	for _, c := range g.quests.Update(ctx, g.bosses, g.player) {
		g.say(c.Message())
		if c.LevelsGained > 0 {
			g.say(fmt.Sprintf("Level up! You are now level %d.", g.player.Level))
		}
	}

	switch {
	case !g.player.IsAlive():
		g.endGame(OutcomeDefeat)
	case g.bosses.Len() == 0:
		g.endGame(OutcomeVictory)
	}
}

func (g *Game) endGame(o Outcome) {
	g.outcome = o
	g.state = StateGameOver
	switch o {
	case OutcomeDefeat:
		g.say("You have been defeated. Better luck next time!")
	case OutcomeVictory:
		g.say("Congratulations! You have defeated all the bosses and saved the land!")
	default:
		g.say("Thanks for playing!")
	}
}

func (g *Game) say(msg string) {
	g.log = append(g.log, msg)
	if len(g.log) > maxLog {
		g.log = g.log[len(g.log)-maxLog:]
	}
}

// view assembles what the renderer draws for the current state.
func (g *Game) view() ui.View {
	v := ui.View{
		Location: g.world.Current().Name,
		Player:   g.player,
		Log:      g.log,
	}

	switch g.state {
	case StateChooseWeapon:
		v.Title = "=== Character Creation ==="
		v.Lines = []string{"Choose your weapon:"}
		v.Options = ui.WeaponOptions()
	case StateMenu:
		v.Title = "What would you like to do?"
		v.Options = mainMenu
	case StateInventory:
		v.Title = "=== Inventory ==="
		v.Lines = append(ui.InventoryLines(g.player.Inventory), "", "Press a number to equip or unequip, 0 to go back.")
	case StateQuests:
		v.Title = "=== Quests ==="
		v.Lines = append(ui.QuestLines(g.quests.Quests()), "", "Press any key to return.")
	case StateUseItem:
		v.Title = "Select an item to use (0 to cancel):"
		for _, item := range g.player.Inventory.Items() {
			v.Options = append(v.Options, fmt.Sprintf("%s - %s", item.Info().Name, item.Info().Description))
		}
	case StateTravel:
		v.Title = "Where would you like to go? (0 to cancel)"
		for _, loc := range world.Locations {
			v.Options = append(v.Options, loc.Name)
		}
	case StateCombat:
		v.Enemy, v.EnemyColor = g.encounter.Enemy(), g.enemyColor
		v.Title = "Your turn!"
		v.Options = combatMenu
	case StateCombatItem:
		v.Enemy, v.EnemyColor = g.encounter.Enemy(), g.enemyColor
		v.Title = "Select an item to use (0 to cancel):"
		v.Options = ui.ConsumableOptions(g.player.Inventory)
	case StateGameOver:
		v.Title = "=== Game Over ==="
		if g.outcome == OutcomeVictory {
			v.Title = "=== Victory! ==="
		}
		v.Lines = []string{"Press any key to exit."}
	}
	return v
}
