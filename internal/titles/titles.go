package titles

import (
	"go.uber.org/zap"

	"github.com/suzi-bot/suzi/internal/store"
)

// Title is an unlockable cosmetic reward shown on the profile card.
type Title struct {
	ID    string
	Name  string
	Emoji string
}

// rewards maps achievement ids to the title they unlock. Most achievements
// carry no title.
//
// The DOUBLE_CRIT entry has no matching achievement in the rule table; the
// tracker computes the doubleCrit flag but nothing consumes it yet. Kept as
// is pending a product decision on the missing achievement.
var rewards = map[string]Title{
	"sorte-grande": {ID: "abencoado", Name: "Abençoado pelos Dados", Emoji: "🍀"},
	"centenario":   {ID: "rolador", Name: "Rolador Incansável", Emoji: "🎲"},
	"mao-de-ferro": {ID: "lenda-dos-dados", Name: "Lenda dos Dados", Emoji: "🦾"},
	"oraculo":      {ID: "voz-da-suzi", Name: "Voz da Suzi", Emoji: "🔮"},
	"veterano":     {ID: "colecionador", Name: "Colecionador de Jogos", Emoji: "🏆"},
	"fiel":         {ID: "frequentador", Name: "Frequentador Assíduo", Emoji: "📅"},
	"DOUBLE_CRIT":  {ID: "critico-duplo", Name: "Crítico Duplo", Emoji: "⚡"},
}

// Catalog returns every title that can be unlocked.
func Catalog() []Title {
	out := make([]Title, 0, len(rewards))
	for _, t := range rewards {
		out = append(out, t)
	}
	return out
}

// Bridge grants titles for freshly unlocked achievements.
type Bridge struct {
	store  store.RecordStore
	logger *zap.Logger
}

// NewBridge creates a bridge backed by the given record store.
func NewBridge(recordStore store.RecordStore, logger *zap.Logger) *Bridge {
	return &Bridge{store: recordStore, logger: logger}
}

// Apply grants the titles mapped from the given achievement ids and returns
// the ones the user did not already hold. Re-applying is idempotent. A
// persistence failure is logged and the new titles still returned.
func (b *Bridge) Apply(scope, userID string, achievementIDs []string) ([]Title, error) {
	if len(achievementIDs) == 0 {
		return nil, nil
	}

	held, err := b.store.LoadTitles(scope, userID)
	if err != nil {
		return nil, err
	}
	heldSet := make(map[string]bool, len(held))
	for _, id := range held {
		heldSet[id] = true
	}

	var granted []Title
	for _, achID := range achievementIDs {
		title, ok := rewards[achID]
		if !ok || heldSet[title.ID] {
			continue
		}
		heldSet[title.ID] = true
		held = append(held, title.ID)
		granted = append(granted, title)
	}

	if len(granted) > 0 {
		if err := b.store.SaveTitles(scope, userID, held); err != nil {
			if b.logger != nil {
				b.logger.Error("title unlocks not persisted",
					zap.String("user", userID), zap.Error(err))
			}
		}
	}
	return granted, nil
}

// Held returns the titles a user currently holds.
func (b *Bridge) Held(scope, userID string) ([]Title, error) {
	ids, err := b.store.LoadTitles(scope, userID)
	if err != nil {
		return nil, err
	}
	var out []Title
	for _, id := range ids {
		for _, t := range rewards {
			if t.ID == id {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}
