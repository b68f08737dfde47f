package discord

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

// classify maps a terminal discordgo error onto the domain taxonomy. Rate
// limits never reach this point; the waiter retries them away. For
// guild-scoped operations a 403 means the bot cannot see the guild, which
// callers treat the same as the guild not existing.
func classify(op string, scope domain.Scope, err error) error {
	var rest *discordgo.RESTError
	if errors.As(err, &rest) {
		if rest.Message != nil {
			switch rest.Message.Code {
			case discordgo.ErrCodeUnknownGuild:
				return fmt.Errorf("%s: %w", op, domain.ErrUnknownGuild)
			case discordgo.ErrCodeMissingAccess:
				if !scope.IsGlobal() {
					return fmt.Errorf("%s: %w", op, domain.ErrUnknownGuild)
				}
			}
		}
		if rest.Response != nil {
			switch rest.Response.StatusCode {
			case http.StatusUnauthorized:
				return fmt.Errorf("%s: %w", op, domain.ErrAuthFailed)
			case http.StatusForbidden:
				if !scope.IsGlobal() {
					return fmt.Errorf("%s: %w", op, domain.ErrUnknownGuild)
				}
				return fmt.Errorf("%s: %w", op, domain.ErrAuthFailed)
			}
		}
	}

	if errors.Is(err, discordgo.ErrUnauthorized) {
		return fmt.Errorf("%s: %w", op, domain.ErrAuthFailed)
	}

	return fmt.Errorf("%s: %w", op, err)
}
