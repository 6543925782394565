package combat

import (
	"github.com/samdwyer/rpsquest/internal/entity"
	"github.com/samdwyer/rpsquest/internal/inventory"
)

// Command is the player's choice for one turn.
type Command struct {
	Action Action
	Item   *inventory.Consumable // ActionUseItem only
	Target *entity.Character     // ActionAbility only; nil targets the player
}

// Attack returns an attack command.
func Attack() Command { return Command{Action: ActionAttack} }

// UseAbility returns a special-ability command aimed at target.
func UseAbility(target *entity.Character) Command {
	return Command{Action: ActionAbility, Target: target}
}

// UseItem returns a command to consume item.
func UseItem(item *inventory.Consumable) Command {
	return Command{Action: ActionUseItem, Item: item}
}

// Flee returns a flee command.
func Flee() Command { return Command{Action: ActionFlee} }
