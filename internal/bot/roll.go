package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/suzi-bot/suzi/internal/achievements"
	"github.com/suzi-bot/suzi/internal/dice"
	"github.com/suzi-bot/suzi/internal/i18n"
)

// handleRollCommand handles the /rolar command
func (b *Bot) handleRollCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := invokerOf(i)
	if user == nil {
		return
	}
	if b.commandOnCooldown(user.ID, "rolar", 3*time.Second) {
		b.respondEphemeral(s, i, i18n.T("error.cooldown", nil))
		return
	}
	if !b.ack(s, i) {
		return
	}

	expr := optionString(i.ApplicationCommandData().Options, "dados", "d20")
	roll, err := dice.Parse(expr)
	if err != nil {
		b.sendError(s, i, i18n.T("error.validation", nil),
			i18n.T("roll.invalid", map[string]string{"reason": err.Error()}))
		return
	}

	results := roll.Roll(b.rng)
	b.editReply(s, i, b.formatRollEmbed(user, expr, roll, results))

	b.trackProgress(s, i, "rolar", achievements.EventRoll, achievements.Event{
		Sides: roll.Sides,
		Rolls: results,
	})
}

// formatRollEmbed formats a batch of dice results into a Discord embed
func (b *Bot) formatRollEmbed(user *discordgo.User, expr string, roll dice.Roll, results []int) *discordgo.MessageEmbed {
	parts := make([]string, len(results))
	crit := false
	for idx, r := range results {
		parts[idx] = fmt.Sprintf("`%d`", r)
		if roll.Sides == 20 && r == 20 {
			parts[idx] = "`20` 🍀"
			crit = true
		}
	}

	color := colorBlue
	if crit {
		color = colorGold
	}

	embed := &discordgo.MessageEmbed{
		Title: i18n.T("roll.title", nil),
		Description: i18n.T("roll.result", map[string]string{
			"user":    user.Username,
			"expr":    expr,
			"results": strings.Join(parts, " "),
		}),
		Color:     color,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if len(results) > 1 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Σ",
			Value:  i18n.T("roll.total", map[string]string{"total": itoa(dice.Total(results))}),
			Inline: true,
		})
	}
	return embed
}
