package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rpsquest/internal/entity"
	"github.com/samdwyer/rpsquest/internal/inventory"
	"github.com/samdwyer/rpsquest/internal/quest"
	"github.com/samdwyer/rpsquest/internal/weapon"
)

// View is everything drawn in one frame.
type View struct {
	Location   string
	Player     *entity.Character // nil before character creation
	Enemy      *entity.Character // nil outside combat
	EnemyColor tcell.Color
	Title      string
	Lines      []string // body text above the options
	Options    []string // numbered from 1
	Log        []string // most recent last
}

var (
	headerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	optionStyle = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws v, filling the bottom of the screen with as much of the log
// as fits.
func (r *Renderer) Render(v View) {
	r.screen.Clear()
	_, height := r.screen.Size()

	y := 0
	if v.Location != "" {
		r.screen.DrawText(0, y, "=== "+v.Location+" ===", headerStyle)
		y++
	}
	if v.Player != nil {
		r.screen.DrawText(0, y, StatusLine(v.Player), textStyle)
		y++
	}
	if v.Enemy != nil {
		style := tcell.StyleDefault.Foreground(v.EnemyColor).Bold(true)
		r.screen.DrawText(0, y, EnemyLine(v.Enemy), style)
		y++
	}
	y++

	if v.Title != "" {
		r.screen.DrawText(0, y, v.Title, headerStyle)
		y++
	}
	for _, line := range v.Lines {
		r.screen.DrawText(0, y, line, textStyle)
		y++
	}
	for i, opt := range v.Options {
		r.screen.DrawText(0, y, fmt.Sprintf("%d. %s", i+1, opt), optionStyle)
		y++
	}

	y++
	if y < height && len(v.Log) > 0 {
		r.screen.DrawText(0, y, "--------------------", dimStyle)
		y++
		room := height - y
		start := 0
		if len(v.Log) > room {
			start = len(v.Log) - room
		}
		for _, line := range v.Log[start:] {
			r.screen.DrawText(0, y, line, textStyle)
			y++
		}
	}

	r.screen.Show()
}

// StatusLine summarises the player: level, health, experience toward the
// next level, gold and weapon.
func StatusLine(p *entity.Character) string {
	line := fmt.Sprintf("%s (Lv. %d)  Health: %d/%d  XP: %d/%d",
		p.Name, p.Level, p.Health(), p.MaxHealth, p.Experience, p.Level*entity.ExperiencePerLevel)
	if p.Inventory != nil {
		line += fmt.Sprintf("  Gold: %d", p.Inventory.Gold)
	}
	if p.Weapon != nil {
		line += "  Weapon: " + p.Weapon.String()
	}
	return line
}

// EnemyLine summarises an opponent.
func EnemyLine(e *entity.Character) string {
	return fmt.Sprintf("%s  Health: %d/%d  Ability: %s", e.Name, e.Health(), e.MaxHealth, e.Ability)
}

// InventoryLines lists gold, carried weight and each item with its
// 1-based selection number. Equipped items are marked.
func InventoryLines(inv *inventory.Inventory) []string {
	lines := []string{
		fmt.Sprintf("Gold: %d", inv.Gold),
		fmt.Sprintf("Weight: %g/%g  Defense: %d", inv.CurrentWeight(), inv.Capacity(), inv.EquippedSnapshot().TotalDefense()),
	}
	if inv.Len() == 0 {
		return append(lines, "Your inventory is empty!")
	}
	for i, item := range inv.Items() {
		line := fmt.Sprintf("%d. %s", i+1, item.Info())
		if equipped(item) {
			line += " [equipped]"
		}
		lines = append(lines, line)
	}
	return lines
}

func equipped(item inventory.Item) bool {
	switch it := item.(type) {
	case *inventory.Armor:
		return it.Equipped
	case *inventory.WeaponItem:
		return it.Equipped
	default:
		return false
	}
}

// ConsumableOptions names each held consumable, in selection order.
func ConsumableOptions(inv *inventory.Inventory) []string {
	var opts []string
	for _, c := range inv.Consumables() {
		opts = append(opts, fmt.Sprintf("%s x%d - %s", c.Name, c.Quantity, c.Description))
	}
	return opts
}

// QuestLines lists quests with their status and description.
func QuestLines(quests []*quest.Quest) []string {
	var lines []string
	for i, q := range quests {
		status := ""
		if q.Completed() {
			status = " [COMPLETED]"
		}
		lines = append(lines,
			fmt.Sprintf("%d. %s%s", i+1, q.Name, status),
			"   "+q.Description,
		)
	}
	return lines
}

// WeaponOptions names each standard weapon, in weapon.Kinds order.
func WeaponOptions() []string {
	var opts []string
	for _, w := range weapon.Standard() {
		opts = append(opts, w.String())
	}
	return opts
}
