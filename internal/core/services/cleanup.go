package services

import (
	"context"
	"log/slog"

	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/core/domain"
	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/core/ports"
)

// ProgressFunc is called after each delete attempt during a batch pass.
type ProgressFunc func(cmd domain.Command, ok bool)

// CleanupService orchestrates listing and batch deletion over a scope.
type CleanupService struct {
	registry ports.CommandRegistry
}

func NewCleanupService(registry ports.CommandRegistry) *CleanupService {
	return &CleanupService{registry: registry}
}

func (s *CleanupService) List(ctx context.Context, scope domain.Scope) ([]domain.Command, error) {
	return s.registry.ListCommands(ctx, scope)
}

// DeleteAll lists the scope's commands and deletes them one by one. A
// listing failure aborts with zero processed; individual delete failures
// are tallied and the pass continues.
func (s *CleanupService) DeleteAll(ctx context.Context, scope domain.Scope, progress ProgressFunc) (domain.BatchResult, error) {
	cmds, err := s.registry.ListCommands(ctx, scope)
	if err != nil {
		return domain.BatchResult{}, err
	}

	result := domain.BatchResult{Total: len(cmds)}
	for _, cmd := range cmds {
		ok := s.registry.DeleteCommand(ctx, scope, cmd.ID)
		if ok {
			result.Deleted++
		} else {
			result.Failed = append(result.Failed, cmd.Name)
		}
		if progress != nil {
			progress(cmd, ok)
		}
	}

	slog.Info("Batch delete finished", "scope", scope.String(), "total", result.Total, "deleted", result.Deleted, "failed", len(result.Failed))
	return result, nil
}
