package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/core/domain"
	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/metrics"

	"github.com/bwmarrin/discordgo"
)

// RestSession defines the Discord session operations the registry needs.
type RestSession interface {
	User(userID string, options ...discordgo.RequestOption) (*discordgo.User, error)
	ApplicationCommands(appID, guildID string, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID, guildID, cmdID string, options ...discordgo.RequestOption) error
}

// Registry implements ports.CommandRegistry on top of a discordgo session.
// All four operations go through the same rate-limit waiter. The resolved
// application identity is cached for the registry's lifetime and never
// re-fetched, even if the remote credentials change mid-session.
type Registry struct {
	session RestSession
	waiter  *rateLimitWaiter
	appID   string
}

func NewRegistry(session RestSession, rateLimitFallback time.Duration) *Registry {
	return &Registry{
		session: session,
		waiter:  newRateLimitWaiter(rateLimitFallback),
	}
}

func (r *Registry) ResolveIdentity(ctx context.Context) (string, error) {
	if r.appID != "" {
		return r.appID, nil
	}

	var user *discordgo.User
	err := r.waiter.do("resolve_identity", func() error {
		var err error
		user, err = r.session.User("@me", requestOpts(ctx)...)
		return err
	})
	if err != nil {
		return "", classify("resolve identity", domain.GlobalScope(), err)
	}

	r.appID = user.ID
	slog.Info("Resolved application identity", "app_id", r.appID, "username", user.Username)
	return r.appID, nil
}

func (r *Registry) ListCommands(ctx context.Context, scope domain.Scope) ([]domain.Command, error) {
	appID, err := r.ResolveIdentity(ctx)
	if err != nil {
		return nil, err
	}

	var cmds []*discordgo.ApplicationCommand
	err = r.waiter.do("list_commands", func() error {
		var err error
		cmds, err = r.session.ApplicationCommands(appID, scope.GuildID, requestOpts(ctx)...)
		return err
	})
	if err != nil {
		return nil, classify(fmt.Sprintf("list %s commands", scope), scope, err)
	}

	result := make([]domain.Command, 0, len(cmds))
	for _, cmd := range cmds {
		result = append(result, domain.Command{
			ID:          cmd.ID,
			Name:        cmd.Name,
			Description: cmd.Description,
		})
	}
	return result, nil
}

// DeleteCommand is fail-soft: a batch caller must be able to keep going
// past one failed deletion, so every non-rate-limit failure is logged and
// reported as false instead of raised.
func (r *Registry) DeleteCommand(ctx context.Context, scope domain.Scope, commandID string) bool {
	appID, err := r.ResolveIdentity(ctx)
	if err != nil {
		slog.Error("Cannot delete command without identity", "scope", scope.String(), "command_id", commandID, "error", err)
		metrics.CommandsDeleted.WithLabelValues("failure").Inc()
		return false
	}

	err = r.waiter.do("delete_command", func() error {
		return r.session.ApplicationCommandDelete(appID, scope.GuildID, commandID, requestOpts(ctx)...)
	})
	if err != nil {
		slog.Error("Failed to delete command", "scope", scope.String(), "command_id", commandID, "error", err)
		metrics.CommandsDeleted.WithLabelValues("failure").Inc()
		return false
	}

	metrics.CommandsDeleted.WithLabelValues("success").Inc()
	return true
}

func requestOpts(ctx context.Context) []discordgo.RequestOption {
	return []discordgo.RequestOption{
		discordgo.WithContext(ctx),
		discordgo.WithRetryOnRatelimit(false),
	}
}
