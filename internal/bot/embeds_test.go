package bot

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/suzi-bot/suzi/internal/achievements"
	"github.com/suzi-bot/suzi/internal/dice"
	"github.com/suzi-bot/suzi/internal/store"
	"github.com/suzi-bot/suzi/internal/titles"
)

func TestFormatRollEmbed(t *testing.T) {
	bot := &Bot{}
	user := &discordgo.User{ID: "1", Username: "ana"}

	embed := bot.formatRollEmbed(user, "2d6", dice.Roll{Count: 2, Sides: 6}, []int{3, 5})

	if !strings.Contains(embed.Description, "ana") {
		t.Errorf("description %q missing username", embed.Description)
	}
	if !strings.Contains(embed.Description, "2d6") {
		t.Errorf("description %q missing expression", embed.Description)
	}
	if len(embed.Fields) != 1 || !strings.Contains(embed.Fields[0].Value, "8") {
		t.Errorf("expected total field with 8, got %+v", embed.Fields)
	}
	if embed.Color != colorBlue {
		t.Errorf("color = %#x, expected blue for a plain roll", embed.Color)
	}
}

func TestFormatRollEmbedCritGoesGold(t *testing.T) {
	bot := &Bot{}
	user := &discordgo.User{ID: "1", Username: "ana"}

	embed := bot.formatRollEmbed(user, "d20", dice.Roll{Count: 1, Sides: 20}, []int{20})
	if embed.Color != colorGold {
		t.Errorf("color = %#x, expected gold for a natural 20", embed.Color)
	}

	// A single die shows no total field.
	if len(embed.Fields) != 0 {
		t.Errorf("single die embed has %d fields, expected 0", len(embed.Fields))
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent int
		filled  int
	}{
		{0, 0},
		{50, 5},
		{99, 9},
		{100, 10},
		{150, 10},
		{-5, 0},
	}

	for _, test := range tests {
		bar := progressBar(test.percent)
		if got := strings.Count(bar, "▰"); got != test.filled {
			t.Errorf("progressBar(%d) filled %d segments, expected %d", test.percent, got, test.filled)
		}
		if total := strings.Count(bar, "▰") + strings.Count(bar, "▱"); total != 10 {
			t.Errorf("progressBar(%d) has %d segments, expected 10", test.percent, total)
		}
	}
}

func TestUnlockEmbed(t *testing.T) {
	defs := []achievements.Definition{}
	for _, id := range []string{"primeiro-dado", "sorte-grande"} {
		def, ok := achievements.Lookup(id)
		if !ok {
			t.Fatalf("missing definition %s", id)
		}
		defs = append(defs, def)
	}

	embed := unlockEmbed(defs, []string{"🍀 Abençoado pelos Dados"})

	if !strings.Contains(embed.Description, "Primeiro Dado") {
		t.Errorf("description %q missing achievement name", embed.Description)
	}
	if !strings.Contains(embed.Description, "Abençoado") {
		t.Errorf("description %q missing granted title", embed.Description)
	}
	// sorte-grande is rara, so the embed takes the rare color.
	if embed.Color != colorBlue {
		t.Errorf("color = %#x, expected rare blue", embed.Color)
	}
}

func TestAchievementsEmbedEmpty(t *testing.T) {
	user := &discordgo.User{ID: "1", Username: "ana"}
	embed := achievementsEmbed(user, store.AchievementState{})
	if embed.Description == "" {
		t.Error("empty state should produce a 'none yet' description")
	}
	if len(embed.Fields) != 0 {
		t.Errorf("empty state produced %d fields", len(embed.Fields))
	}
}

func TestAchievementsEmbedGroupsByRarity(t *testing.T) {
	user := &discordgo.User{ID: "1", Username: "ana"}
	state := store.AchievementState{
		Unlocked: []store.UnlockedAchievement{
			{ID: "primeiro-dado", UnlockedAt: 1},
			{ID: "sorte-grande", UnlockedAt: 2},
		},
	}

	embed := achievementsEmbed(user, state)
	if len(embed.Fields) != 2 {
		t.Fatalf("got %d rarity groups, expected 2", len(embed.Fields))
	}
	// Rarest group first.
	if embed.Fields[0].Name != string(achievements.RarityRara) {
		t.Errorf("first group = %s, expected rara", embed.Fields[0].Name)
	}
	if embed.Footer == nil || !strings.Contains(embed.Footer.Text, "2/") {
		t.Errorf("footer should show the unlock count, got %+v", embed.Footer)
	}
}

func TestProfileEmbedShowsTitles(t *testing.T) {
	user := &discordgo.User{ID: "1", Username: "ana"}
	held := []titles.Title{{ID: "abencoado", Name: "Abençoado pelos Dados", Emoji: "🍀"}}

	embed := profileEmbed(user, store.XPState{XP: 50, Level: 1, StreakDays: 3}, store.AchievementState{}, held)

	var titleField *discordgo.MessageEmbedField
	for _, f := range embed.Fields {
		if strings.Contains(f.Value, "Abençoado") {
			titleField = f
		}
	}
	if titleField == nil {
		t.Errorf("profile embed missing held title, fields: %+v", embed.Fields)
	}
}
