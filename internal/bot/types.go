package bot

import (
	"math/rand"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/suzi-bot/suzi/internal/achievements"
	"github.com/suzi-bot/suzi/internal/config"
	"github.com/suzi-bot/suzi/internal/llm"
	"github.com/suzi-bot/suzi/internal/steam"
	"github.com/suzi-bot/suzi/internal/titles"
	"github.com/suzi-bot/suzi/internal/xp"
)

// Bot represents the Suzi Discord bot.
type Bot struct {
	Session *discordgo.Session
	Config  *config.Config
	Logger  *zap.Logger

	Tracker    *achievements.Tracker
	Ledger     *xp.Ledger
	Titles     *titles.Bridge
	Steam      *steam.Client
	SteamCache *steam.RefreshCache
	LLM        *llm.Client

	BotUserID       string
	GuildID         string
	Commands        []*discordgo.ApplicationCommand
	CommandHandlers map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)

	// lastUse rate-limits commands per user. Entries are never evicted;
	// the map lives for the process lifetime.
	mu      sync.Mutex
	lastUse map[string]time.Time

	rng *rand.Rand
}

// Services bundles the collaborators a Bot needs.
type Services struct {
	Tracker    *achievements.Tracker
	Ledger     *xp.Ledger
	Titles     *titles.Bridge
	Steam      *steam.Client
	SteamCache *steam.RefreshCache
	LLM        *llm.Client
}

// xpReward is the XP granted for a command, gated by a per-(user, reason)
// cooldown in the ledger.
type xpReward struct {
	amount   int
	cooldown time.Duration
}

var xpRewards = map[string]xpReward{
	"rolar":      {amount: 5, cooldown: 30 * time.Second},
	"pergunta":   {amount: 10, cooldown: time.Minute},
	"jogo":       {amount: 10, cooldown: 2 * time.Minute},
	"registrar":  {amount: 25, cooldown: 24 * time.Hour},
	"perfil":     {amount: 2, cooldown: 5 * time.Minute},
	"nivel":      {amount: 2, cooldown: 5 * time.Minute},
	"steam":      {amount: 5, cooldown: 10 * time.Minute},
	"ajuda":      {amount: 1, cooldown: 10 * time.Minute},
	"sobre":      {amount: 1, cooldown: 10 * time.Minute},
	"conquistas": {amount: 1, cooldown: 10 * time.Minute},
	"titulos":    {amount: 1, cooldown: 10 * time.Minute},
}
