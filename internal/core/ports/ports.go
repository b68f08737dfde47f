package ports

import (
	"context"

	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/core/domain"
)

// CommandRegistry exposes the four remote operations against Discord's
// application-command API. Implementations retry transparently on rate
// limits, so callers only ever see terminal results.
type CommandRegistry interface {
	// ResolveIdentity returns the application's user ID. The result is
	// cached for the lifetime of the registry; the remote call happens at
	// most once per process.
	ResolveIdentity(ctx context.Context) (string, error)

	// ListCommands returns the commands registered at the given scope, in
	// the order Discord reports them.
	ListCommands(ctx context.Context, scope domain.Scope) ([]domain.Command, error)

	// DeleteCommand removes one command at the given scope. It is
	// fail-soft: any non-rate-limit failure is logged and reported as
	// false so a batch caller can keep going.
	DeleteCommand(ctx context.Context, scope domain.Scope, commandID string) bool
}
