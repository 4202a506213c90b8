package bot

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/suzi-bot/suzi/internal/apierr"
	"github.com/suzi-bot/suzi/internal/i18n"
)

// ack acknowledges the interaction with a deferred response so the handler
// has time for service calls. Returns false if the acknowledgement failed
// (typically the interaction already expired), in which case the handler
// should bail out.
func (b *Bot) ack(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		b.Logger.Warn("error acknowledging interaction", zap.Error(err))
		return false
	}
	return true
}

// editReply replaces the deferred response with an embed. An expired or
// already-acknowledged interaction degrades to a logged no-op.
func (b *Bot) editReply(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		b.Logger.Warn("reply suppressed", zap.Error(err))
	}
}

// respondEphemeral sends an immediate ephemeral reply, used before the
// deferred flow starts (rate-limit refusals).
func (b *Bot) respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		b.Logger.Warn("ephemeral reply suppressed", zap.Error(err))
	}
}

// followUp posts a follow-up message after the main reply. Ephemeral
// follow-ups are used for unlock notifications.
func (b *Bot) followUp(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, ephemeral bool) {
	params := &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
	if ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}
	if _, err := s.FollowupMessageCreate(i.Interaction, true, params); err != nil {
		b.Logger.Warn("follow-up suppressed", zap.Error(err))
	}
}

// sendError sends an error embed
func (b *Bot) sendError(s *discordgo.Session, i *discordgo.InteractionCreate, title, description string) {
	b.editReply(s, i, errorEmbed(title, description))
}

// sendExternalError converts a classified external-service failure into the
// localized user-facing message for its reason.
func (b *Bot) sendExternalError(s *discordgo.Session, i *discordgo.InteractionCreate, title string, err error) {
	reason := apierr.ReasonOf(err)
	b.Logger.Warn("external service failure",
		zap.String("reason", string(reason)), zap.Error(err))
	b.sendError(s, i, title, i18n.T("error."+string(reason), nil))
}

// commandOnCooldown applies the per-user command rate limit. Entries are
// kept for the process lifetime.
func (b *Bot) commandOnCooldown(userID, command string, window time.Duration) bool {
	now := time.Now()
	key := userID + "/" + command

	b.mu.Lock()
	defer b.mu.Unlock()
	if last, ok := b.lastUse[key]; ok && now.Sub(last) < window {
		return true
	}
	b.lastUse[key] = now
	return false
}
