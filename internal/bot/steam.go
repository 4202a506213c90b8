package bot

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/suzi-bot/suzi/internal/i18n"
)

// handleSteamCommand handles the /steam command. Lookups are served from the
// per-user refresh cache inside its TTL window.
func (b *Bot) handleSteamCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := invokerOf(i)
	if user == nil {
		return
	}
	if !b.ack(s, i) {
		return
	}

	query := strings.TrimSpace(optionString(i.ApplicationCommandData().Options, "id", ""))
	if query == "" {
		b.sendError(s, i, i18n.T("error.validation", nil), i18n.T("steam.empty", nil))
		return
	}

	cacheKey := user.ID + "/" + query
	profile, ok := b.SteamCache.Get(cacheKey)
	if !ok {
		fetched, err := b.Steam.GetProfile(context.Background(), query)
		if err != nil {
			b.sendExternalError(s, i, i18n.T("steam.title", nil), err)
			return
		}
		b.SteamCache.Set(cacheKey, fetched)
		profile = fetched
	}

	b.editReply(s, i, steamEmbed(profile))

	// No counter maps to steam lookups; XP only.
	if award := b.awardCommandXP(scopeOf(i), user.ID, "steam"); award != nil && award.LeveledUp {
		b.followUp(s, i, levelUpEmbed(user, award.NewLevel), false)
	}
}
