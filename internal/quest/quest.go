// Package quest tracks defeat quests and grants their rewards.
package quest

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/rpsquest/internal/entity"
	"github.com/samdwyer/rpsquest/internal/gamedata"
	"github.com/samdwyer/rpsquest/internal/inventory"
	"github.com/samdwyer/rpsquest/internal/telemetry"
)

// Reward is granted once, when a quest completes.
type Reward struct {
	Experience int
	Gold       int
	Item       string // catalogue name; empty for none
}

// Quest asks the player to defeat a named boss.
type Quest struct {
	ID          string
	Name        string
	Description string
	Target      string // boss name
	Reward      Reward
	completed   bool
}

// Completed reports whether the reward has been granted.
func (q *Quest) Completed() bool { return q.completed }

// ItemSource makes fresh reward items by name. *inventory.Catalog satisfies it.
type ItemSource interface {
	New(name string) (inventory.Item, bool)
}

// Completion reports one quest finished during Update.
type Completion struct {
	Quest        *Quest
	LevelsGained int
	Item         inventory.Item // nil if the quest grants no item
	ItemAdded    bool           // false if the item did not fit
}

// Message returns the text shown to the player.
func (c Completion) Message() string {
	msg := fmt.Sprintf("Quest completed: %s! +%d XP, +%d gold.", c.Quest.Name, c.Quest.Reward.Experience, c.Quest.Reward.Gold)
	switch {
	case c.Item != nil && c.ItemAdded:
		msg += fmt.Sprintf(" You received %s.", c.Item.Info().Name)
	case c.Item != nil:
		msg += fmt.Sprintf(" %s was left behind: no room to carry it.", c.Item.Info().Name)
	}
	return msg
}

// Book is the player's quest log.
type Book struct {
	quests []*Quest
	items  ItemSource
	tracer trace.Tracer
}

// NewBook builds a quest log from definitions. Every reward item must be
// known to items.
func NewBook(defs []gamedata.QuestDef, items ItemSource) (*Book, error) {
	b := &Book{items: items, tracer: telemetry.Tracer("quest")}
	var errs []error
	for _, d := range defs {
		if d.Reward.Item != "" {
			if _, ok := items.New(d.Reward.Item); !ok {
				errs = append(errs, fmt.Errorf("quest %q: unknown reward item %q", d.ID, d.Reward.Item))
			}
		}
		b.quests = append(b.quests, &Quest{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Target:      d.Objective.Target,
			Reward: Reward{
				Experience: d.Reward.Experience,
				Gold:       d.Reward.Gold,
				Item:       d.Reward.Item,
			},
		})
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return b, nil
}

// Quests returns every quest in definition order.
func (b *Book) Quests() []*Quest {
	out := make([]*Quest, len(b.quests))
	copy(out, b.quests)
	return out
}

// Active returns the quests not yet completed.
func (b *Book) Active() []*Quest {
	var out []*Quest
	for _, q := range b.quests {
		if !q.completed {
			out = append(out, q)
		}
	}
	return out
}

// Update completes every active quest whose target is no longer in roster
// and grants its reward to player. A quest is rewarded at most once.
func (b *Book) Update(ctx context.Context, roster *entity.Roster, player *entity.Character) []Completion {
	var done []Completion
	for _, q := range b.quests {
		if q.completed {
			continue
		}
		if roster.Find(q.Target) != nil {
			continue
		}
		done = append(done, b.complete(ctx, q, player))
	}
	return done
}

func (b *Book) complete(ctx context.Context, q *Quest, player *entity.Character) Completion {
	_, span := b.tracer.Start(ctx, "quest.complete")
	defer span.End()

	q.completed = true
	player.Inventory.Gold += q.Reward.Gold
	c := Completion{
		Quest:        q,
		LevelsGained: player.AddExperience(q.Reward.Experience),
	}
	if q.Reward.Item != "" {
		if item, ok := b.items.New(q.Reward.Item); ok {
			c.Item = item
			c.ItemAdded = player.Inventory.AddItem(item)
		}
	}

	span.SetAttributes(
		attribute.String("quest", q.ID),
		attribute.Int("experience", q.Reward.Experience),
		attribute.Int("gold", q.Reward.Gold),
		attribute.Bool("item_added", c.ItemAdded),
	)
	return c
}
