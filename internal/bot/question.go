package bot

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/suzi-bot/suzi/internal/achievements"
	"github.com/suzi-bot/suzi/internal/i18n"
)

// handleQuestionCommand handles the /pergunta command
func (b *Bot) handleQuestionCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := invokerOf(i)
	if user == nil {
		return
	}
	if b.commandOnCooldown(user.ID, "pergunta", 10*time.Second) {
		b.respondEphemeral(s, i, i18n.T("error.cooldown", nil))
		return
	}
	if !b.ack(s, i) {
		return
	}

	question := strings.TrimSpace(optionString(i.ApplicationCommandData().Options, "texto", ""))
	if question == "" {
		b.sendError(s, i, i18n.T("error.validation", nil), i18n.T("question.empty", nil))
		return
	}

	answer, err := b.LLM.Answer(context.Background(), question)
	if err != nil {
		b.sendExternalError(s, i, i18n.T("question.title", nil), err)
		return
	}

	b.editReply(s, i, &discordgo.MessageEmbed{
		Title:       i18n.T("question.title", nil),
		Description: answer,
		Color:       colorGreen,
		Footer:      &discordgo.MessageEmbedFooter{Text: question},
	})

	b.trackProgress(s, i, "pergunta", achievements.EventQuestion, achievements.Event{})
}

// handleGameCommand handles the /jogo command
func (b *Bot) handleGameCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := invokerOf(i)
	if user == nil {
		return
	}
	if b.commandOnCooldown(user.ID, "jogo", 10*time.Second) {
		b.respondEphemeral(s, i, i18n.T("error.cooldown", nil))
		return
	}
	if !b.ack(s, i) {
		return
	}

	game := strings.TrimSpace(optionString(i.ApplicationCommandData().Options, "nome", ""))
	if game == "" {
		b.sendError(s, i, i18n.T("error.validation", nil), i18n.T("game.empty", nil))
		return
	}

	prompt := "Dê uma visão geral rápida do jogo \"" + game + "\": gênero, proposta e duas dicas para iniciantes."
	answer, err := b.LLM.Answer(context.Background(), prompt)
	if err != nil {
		b.sendExternalError(s, i, i18n.T("game.title", map[string]string{"game": game}), err)
		return
	}

	b.editReply(s, i, &discordgo.MessageEmbed{
		Title:       i18n.T("game.title", map[string]string{"game": game}),
		Description: answer,
		Color:       colorGreen,
	})

	b.trackProgress(s, i, "jogo", achievements.EventGame, achievements.Event{})
}
