package bot

import (
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/suzi-bot/suzi/internal/achievements"
	"github.com/suzi-bot/suzi/internal/i18n"
	"github.com/suzi-bot/suzi/internal/xp"
)

// trackProgress runs the gamification side of a command: fires the event
// into the achievement tracker, feeds new unlocks through the title bridge,
// awards command XP, and posts the unlock/level-up notifications. Failures
// here are logged and never abort the command's main reply.
func (b *Bot) trackProgress(s *discordgo.Session, i *discordgo.InteractionCreate, command, eventName string, payload achievements.Event) {
	scope := scopeOf(i)
	user := invokerOf(i)
	if user == nil {
		return
	}

	result, err := b.Tracker.Track(scope, user.ID, eventName, payload)
	if err != nil {
		b.Logger.Error("event not tracked",
			zap.String("event", eventName), zap.Error(err))
	}

	var newTitles []string
	if len(result.Unlocked) > 0 {
		ids := make([]string, len(result.Unlocked))
		for idx, def := range result.Unlocked {
			ids[idx] = def.ID
		}
		granted, err := b.Titles.Apply(scope, user.ID, ids)
		if err != nil {
			b.Logger.Error("titles not applied", zap.Error(err))
		}
		for _, t := range granted {
			newTitles = append(newTitles, t.Emoji+" "+t.Name)
		}
	}

	award := b.awardCommandXP(scope, user.ID, command)

	if len(result.Unlocked) > 0 {
		b.followUp(s, i, unlockEmbed(result.Unlocked, newTitles), true)
	}
	if award != nil && award.LeveledUp {
		b.followUp(s, i, levelUpEmbed(user, award.NewLevel), false)
	}
}

// awardCommandXP grants the XP configured for a command, if any.
func (b *Bot) awardCommandXP(scope, userID, command string) *xp.AwardResult {
	reward, ok := xpRewards[command]
	if !ok {
		return nil
	}
	result, err := b.Ledger.Award(scope, userID, reward.amount, xp.AwardOpts{
		Reason:   command,
		Cooldown: reward.cooldown,
	})
	if err != nil {
		b.Logger.Error("xp not awarded",
			zap.String("command", command), zap.Error(err))
		return nil
	}
	return &result
}

// levelUpEmbed announces a level-up.
func levelUpEmbed(user *discordgo.User, level int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: i18n.T("levelup", map[string]string{
			"user":  user.Username,
			"level": itoa(level),
		}),
		Color: colorGold,
	}
}
