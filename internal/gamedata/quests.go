package gamedata

import (
	"errors"
	"fmt"
)

// ObjectiveDefeat is the only objective type: the named boss must leave the
// roster.
const ObjectiveDefeat = "defeat"

// ObjectiveDef is what a quest asks for.
type ObjectiveDef struct {
	Type   string `json:"type"`
	Target string `json:"target"` // boss name
}

// RewardDef is granted once when a quest completes.
type RewardDef struct {
	Experience int    `json:"experience"`
	Gold       int    `json:"gold"`
	Item       string `json:"item,omitempty"` // item catalogue name
}

// QuestDef defines a quest loaded from JSON.
type QuestDef struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Objective   ObjectiveDef `json:"objective"`
	Reward      RewardDef    `json:"reward"`
}

// Validate reports every problem with the definition.
func (q *QuestDef) Validate() error {
	var errs []error
	if q.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if q.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if q.Objective.Type != ObjectiveDefeat {
		errs = append(errs, fmt.Errorf("unknown objective type %q", q.Objective.Type))
	}
	if q.Objective.Target == "" {
		errs = append(errs, errors.New("objective target must not be empty"))
	}
	if q.Reward.Experience < 0 || q.Reward.Gold < 0 {
		errs = append(errs, errors.New("reward must be non-negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("quest %q: %w", q.ID, errors.Join(errs...))
	}
	return nil
}

// QuestsFile represents the structure of quests.json.
type QuestsFile struct {
	Quests []QuestDef `json:"quests"`
}

// LoadQuests loads and validates quest definitions from the embedded
// quests.json file.
func LoadQuests() ([]QuestDef, error) {
	file, err := Load[QuestsFile]("quests.json")
	if err != nil {
		return nil, err
	}
	var errs []error
	for i := range file.Quests {
		if err := file.Quests[i].Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return file.Quests, nil
}
