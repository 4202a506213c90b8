package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/suzi-bot/suzi/internal/achievements"
	"github.com/suzi-bot/suzi/internal/i18n"
	"github.com/suzi-bot/suzi/internal/titles"
)

// handleHelpCommand handles the /ajuda command
func (b *Bot) handleHelpCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.ack(s, i) {
		return
	}

	var lines []string
	for _, cmd := range commands {
		lines = append(lines, fmt.Sprintf("**/%s** — %s", cmd.Name, cmd.Description))
	}

	b.editReply(s, i, &discordgo.MessageEmbed{
		Title:       i18n.T("help.title", nil),
		Description: strings.Join(lines, "\n"),
		Color:       colorBlue,
	})

	b.trackProgress(s, i, "ajuda", achievements.EventHelp, achievements.Event{})
}

// handleAboutCommand handles the /sobre command
func (b *Bot) handleAboutCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.ack(s, i) {
		return
	}

	b.editReply(s, i, &discordgo.MessageEmbed{
		Title:       i18n.T("about.title", nil),
		Description: i18n.T("about.body", nil),
		Color:       colorBlue,
	})

	b.trackProgress(s, i, "sobre", achievements.EventAbout, achievements.Event{})
}

// handleAchievementsCommand handles the /conquistas command
func (b *Bot) handleAchievementsCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := invokerOf(i)
	if user == nil {
		return
	}
	if !b.ack(s, i) {
		return
	}

	state, err := b.Tracker.GetState(scopeOf(i), user.ID)
	if err != nil {
		b.Logger.Error("achievements load failed", zap.Error(err))
	}

	b.editReply(s, i, achievementsEmbed(user, state))

	if award := b.awardCommandXP(scopeOf(i), user.ID, "conquistas"); award != nil && award.LeveledUp {
		b.followUp(s, i, levelUpEmbed(user, award.NewLevel), false)
	}
}

// handleTitlesCommand handles the /titulos command
func (b *Bot) handleTitlesCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := invokerOf(i)
	if user == nil {
		return
	}
	if !b.ack(s, i) {
		return
	}

	held, err := b.Titles.Held(scopeOf(i), user.ID)
	if err != nil {
		b.Logger.Error("titles load failed", zap.Error(err))
	}

	embed := &discordgo.MessageEmbed{
		Title: i18n.T("titles.title", map[string]string{"user": user.Username}),
		Color: colorGold,
	}
	if len(held) == 0 {
		embed.Description = i18n.T("titles.none", nil)
	} else {
		embed.Description = formatTitleList(held)
	}
	b.editReply(s, i, embed)

	if award := b.awardCommandXP(scopeOf(i), user.ID, "titulos"); award != nil && award.LeveledUp {
		b.followUp(s, i, levelUpEmbed(user, award.NewLevel), false)
	}
}

func formatTitleList(held []titles.Title) string {
	var lines []string
	for _, t := range held {
		lines = append(lines, t.Emoji+" **"+t.Name+"**")
	}
	return strings.Join(lines, "\n")
}
