package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/suzi-bot/suzi/internal/achievements"
	"github.com/suzi-bot/suzi/internal/i18n"
	"github.com/suzi-bot/suzi/internal/steam"
	"github.com/suzi-bot/suzi/internal/store"
	"github.com/suzi-bot/suzi/internal/titles"
	"github.com/suzi-bot/suzi/internal/xp"
)

// Embed colors
const (
	colorRed    = 0xff0000
	colorGreen  = 0x57f287
	colorBlue   = 0x5865f2
	colorGold   = 0xfee75c
	colorPurple = 0x9b59b6
)

func itoa(n int) string { return strconv.Itoa(n) }

// errorEmbed builds the standard red error embed.
func errorEmbed(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       colorRed,
	}
}

// rarityColor maps achievement rarity to embed color.
func rarityColor(r achievements.Rarity) int {
	switch r {
	case achievements.RarityEpica:
		return colorPurple
	case achievements.RarityRara:
		return colorBlue
	default:
		return colorGreen
	}
}

// unlockEmbed announces freshly unlocked achievements, plus any titles they
// granted, as one ephemeral notification.
func unlockEmbed(unlocked []achievements.Definition, newTitles []string) *discordgo.MessageEmbed {
	var lines []string
	best := achievements.RarityComum
	for _, def := range unlocked {
		lines = append(lines, fmt.Sprintf("%s **%s** — %s", def.Emoji, def.Name, def.Description))
		if def.Rarity == achievements.RarityEpica ||
			(def.Rarity == achievements.RarityRara && best == achievements.RarityComum) {
			best = def.Rarity
		}
	}
	for _, t := range newTitles {
		lines = append(lines, i18n.T("titles.granted", map[string]string{"title": t}))
	}

	return &discordgo.MessageEmbed{
		Title:       i18n.T("achievements.unlocked", nil),
		Description: strings.Join(lines, "\n"),
		Color:       rarityColor(best),
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

// progressBar renders a ten-segment XP bar.
func progressBar(percent int) string {
	filled := percent / 10
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("▰", filled) + strings.Repeat("▱", 10-filled)
}

// profileEmbed builds the profile card: level, XP progress, streak, titles
// and achievement count.
func profileEmbed(user *discordgo.User, state store.XPState, achState store.AchievementState, held []titles.Title) *discordgo.MessageEmbed {
	progress := xp.ProgressOf(state)

	titleText := i18n.T("profile.none", nil)
	if len(held) > 0 {
		var parts []string
		for _, t := range held {
			parts = append(parts, t.Emoji+" "+t.Name)
		}
		titleText = strings.Join(parts, "\n")
	}

	return &discordgo.MessageEmbed{
		Title: i18n.T("profile.title", map[string]string{"user": user.Username}),
		Color: colorBlue,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: user.AvatarURL("256"),
		},
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   i18n.T("profile.level", nil),
				Value:  fmt.Sprintf("**%d**", progress.Level),
				Inline: true,
			},
			{
				Name: i18n.T("profile.xp", nil),
				Value: fmt.Sprintf("%s\n%s", progressBar(progress.Percent),
					i18n.T("level.progress", map[string]string{
						"current": itoa(progress.Current),
						"needed":  itoa(progress.Needed),
						"percent": itoa(progress.Percent),
					})),
				Inline: true,
			},
			{
				Name:   i18n.T("profile.streak", nil),
				Value:  i18n.T("profile.days", map[string]string{"days": itoa(state.StreakDays)}),
				Inline: true,
			},
			{
				Name:   "🏅",
				Value:  fmt.Sprintf("%d/%d", len(achState.Unlocked), len(achievements.Definitions())),
				Inline: true,
			},
			{
				Name:   i18n.T("profile.titles", nil),
				Value:  titleText,
				Inline: false,
			},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// achievementsEmbed lists unlocked achievements grouped by rarity.
func achievementsEmbed(user *discordgo.User, state store.AchievementState) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: i18n.T("achievements.title", map[string]string{"user": user.Username}),
		Color: colorGold,
	}

	if len(state.Unlocked) == 0 {
		embed.Description = i18n.T("achievements.none", nil)
		return embed
	}

	groups := map[achievements.Rarity][]string{}
	for _, u := range state.Unlocked {
		def, ok := achievements.Lookup(u.ID)
		if !ok {
			continue
		}
		line := fmt.Sprintf("%s **%s** — %s", def.Emoji, def.Name, def.Description)
		groups[def.Rarity] = append(groups[def.Rarity], line)
	}

	for _, rarity := range []achievements.Rarity{achievements.RarityEpica, achievements.RarityRara, achievements.RarityComum} {
		lines := groups[rarity]
		if len(lines) == 0 {
			continue
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   string(rarity),
			Value:  strings.Join(lines, "\n"),
			Inline: false,
		})
	}

	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("%d/%d", len(state.Unlocked), len(achievements.Definitions())),
	}
	return embed
}

// steamEmbed formats a Steam profile lookup result.
func steamEmbed(profile *steam.Profile) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: i18n.T("steam.title", nil),
		Color: colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Nome", Value: profile.PersonaName, Inline: true},
			{Name: "SteamID", Value: profile.SteamID, Inline: true},
		},
		URL: profile.ProfileURL,
	}
	if profile.Avatar != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: profile.Avatar}
	}
	if profile.CountryCode != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "País", Value: profile.CountryCode, Inline: true,
		})
	}
	if profile.TimeCreated > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: "Conta criada em " + time.Unix(profile.TimeCreated, 0).Format("02/01/2006"),
		}
	}
	return embed
}
