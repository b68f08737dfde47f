package discord

import (
	"log/slog"

	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/config"

	"github.com/bwmarrin/discordgo"
)

// NewSession creates a REST-only discordgo session. The gateway is never
// opened; every operation the cleaner needs is a plain HTTP call.
func NewSession(cfg *config.Config) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		slog.Error("Failed to create discord session", "error", err)
		return nil, err
	}

	// The registry owns the rate-limit wait protocol.
	session.ShouldRetryOnRateLimit = false

	return session, nil
}
