package bot

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/suzi-bot/suzi/internal/achievements"
	"github.com/suzi-bot/suzi/internal/i18n"
	"github.com/suzi-bot/suzi/internal/xp"
)

// handleRegisterCommand handles the /registrar command
func (b *Bot) handleRegisterCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := invokerOf(i)
	if user == nil {
		return
	}
	if b.commandOnCooldown(user.ID, "registrar", 10*time.Second) {
		b.respondEphemeral(s, i, i18n.T("error.cooldown", nil))
		return
	}
	if !b.ack(s, i) {
		return
	}

	nick := optionString(i.ApplicationCommandData().Options, "nick", user.Username)

	b.editReply(s, i, &discordgo.MessageEmbed{
		Title:       i18n.T("register.title", nil),
		Description: i18n.T("register.done", map[string]string{"user": nick}),
		Color:       colorGreen,
	})

	b.trackProgress(s, i, "registrar", achievements.EventRegister, achievements.Event{})
}

// handleProfileCommand handles the /perfil command
func (b *Bot) handleProfileCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := invokerOf(i)
	if user == nil {
		return
	}
	if !b.ack(s, i) {
		return
	}

	target := optionUser(s, i.ApplicationCommandData().Options, "usuario")
	if target == nil {
		target = user
	}
	scope := scopeOf(i)

	xpState, err := b.Ledger.GetState(scope, target.ID)
	if err != nil {
		b.Logger.Error("profile xp load failed", zap.Error(err))
	}
	achState, err := b.Tracker.GetState(scope, target.ID)
	if err != nil {
		b.Logger.Error("profile achievements load failed", zap.Error(err))
	}
	held, err := b.Titles.Held(scope, target.ID)
	if err != nil {
		b.Logger.Error("profile titles load failed", zap.Error(err))
	}

	b.editReply(s, i, profileEmbed(target, xpState, achState, held))

	// Only viewing your own profile counts toward the profile achievements.
	if target.ID == user.ID {
		b.trackProgress(s, i, "perfil", achievements.EventProfile, achievements.Event{})
	}
}

// handleLevelCommand handles the /nivel command
func (b *Bot) handleLevelCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := invokerOf(i)
	if user == nil {
		return
	}
	if !b.ack(s, i) {
		return
	}

	target := optionUser(s, i.ApplicationCommandData().Options, "usuario")
	self := target == nil || target.ID == user.ID
	if target == nil {
		target = user
	}

	state, err := b.Ledger.GetState(scopeOf(i), target.ID)
	if err != nil {
		b.Logger.Error("level xp load failed", zap.Error(err))
	}
	progress := xp.ProgressOf(state)

	b.editReply(s, i, &discordgo.MessageEmbed{
		Title: i18n.T("level.title", map[string]string{"user": target.Username}),
		Description: progressBar(progress.Percent) + "\n" +
			i18n.T("level.progress", map[string]string{
				"current": itoa(progress.Current),
				"needed":  itoa(progress.Needed),
				"percent": itoa(progress.Percent),
			}),
		Color: colorGold,
		Footer: &discordgo.MessageEmbedFooter{
			Text: i18n.T("profile.level", nil) + " " + itoa(progress.Level),
		},
	})

	b.trackProgress(s, i, "nivel", achievements.EventLevel, achievements.Event{Self: self})
}
