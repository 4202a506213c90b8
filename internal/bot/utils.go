package bot

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/suzi-bot/suzi/internal/store"
)

// SetupCloseHandler creates a handler that will catch SIGINT and SIGTERM
// signals and gracefully close the application
func SetupCloseHandler(cleanupFunc func() error) {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("\nShutting down...")
		err := cleanupFunc()
		if err != nil {
			fmt.Printf("Error during cleanup: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
}

// scopeOf returns the record scope for an interaction: the guild id, or the
// global sentinel for DMs.
func scopeOf(i *discordgo.InteractionCreate) string {
	if i.GuildID != "" {
		return i.GuildID
	}
	return store.GlobalScope
}

// invokerOf returns the user who fired the interaction, whether it arrived
// from a guild or a DM.
func invokerOf(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// optionString returns a string option by name, or def when absent.
func optionString(options []*discordgo.ApplicationCommandInteractionDataOption, name, def string) string {
	for _, opt := range options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return def
}

// optionUser returns a user option by name, or nil when absent.
func optionUser(s *discordgo.Session, options []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.User {
	for _, opt := range options {
		if opt.Name == name {
			return opt.UserValue(s)
		}
	}
	return nil
}
