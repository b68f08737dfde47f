package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/core/domain"
	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/core/services"
)

type scriptedReader struct {
	lines   []string
	idx     int
	prompts []string
}

func (r *scriptedReader) ReadLine(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if r.idx >= len(r.lines) {
		return "", io.EOF
	}
	line := r.lines[r.idx]
	r.idx++
	return line, nil
}

func (r *scriptedReader) Close() error { return nil }

type mockCleanup struct {
	listFunc      func(ctx context.Context, scope domain.Scope) ([]domain.Command, error)
	deleteAllFunc func(ctx context.Context, scope domain.Scope, progress services.ProgressFunc) (domain.BatchResult, error)

	listScopes      []domain.Scope
	deleteAllScopes []domain.Scope
}

func (m *mockCleanup) List(ctx context.Context, scope domain.Scope) ([]domain.Command, error) {
	m.listScopes = append(m.listScopes, scope)
	if m.listFunc != nil {
		return m.listFunc(ctx, scope)
	}
	return nil, nil
}

func (m *mockCleanup) DeleteAll(ctx context.Context, scope domain.Scope, progress services.ProgressFunc) (domain.BatchResult, error) {
	m.deleteAllScopes = append(m.deleteAllScopes, scope)
	if m.deleteAllFunc != nil {
		return m.deleteAllFunc(ctx, scope, progress)
	}
	return domain.BatchResult{}, nil
}

func runShell(t *testing.T, service CleanupService, defaultGuildID string, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	sh := New(service, &scriptedReader{lines: lines}, &out, defaultGuildID)
	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String()
}

func TestShell_ListGlobal(t *testing.T) {
	service := &mockCleanup{
		listFunc: func(ctx context.Context, scope domain.Scope) ([]domain.Command, error) {
			return []domain.Command{
				{ID: "1", Name: "ping"},
				{ID: "2", Name: "ban", Description: "Ban a user"},
			}, nil
		},
	}

	out := runShell(t, service, "", "1", "5")

	if len(service.listScopes) != 1 || !service.listScopes[0].IsGlobal() {
		t.Fatalf("expected one global listing, got %v", service.listScopes)
	}

	pingIdx := strings.Index(out, "ping")
	banIdx := strings.Index(out, "ban")
	if pingIdx == -1 || banIdx == -1 {
		t.Fatalf("expected both rows in output:\n%s", out)
	}
	if pingIdx > banIdx {
		t.Error("rows rendered out of input order")
	}
	if !strings.Contains(out, "Ban a user") {
		t.Errorf("expected description in output:\n%s", out)
	}
}

func TestShell_ListEmpty(t *testing.T) {
	service := &mockCleanup{}

	out := runShell(t, service, "", "1", "5")

	if !strings.Contains(out, MsgNoCommands) {
		t.Errorf("expected no-commands notice:\n%s", out)
	}
}

func TestShell_DeleteAllGlobal_Confirmed(t *testing.T) {
	service := &mockCleanup{
		deleteAllFunc: func(ctx context.Context, scope domain.Scope, progress services.ProgressFunc) (domain.BatchResult, error) {
			cmds := []domain.Command{
				{ID: "1", Name: "ping"},
				{ID: "2", Name: "ban"},
				{ID: "3", Name: "kick"},
			}
			result := domain.BatchResult{Total: 3}
			for i, cmd := range cmds {
				ok := i != 1
				if ok {
					result.Deleted++
				} else {
					result.Failed = append(result.Failed, cmd.Name)
				}
				progress(cmd, ok)
			}
			return result, nil
		},
	}

	out := runShell(t, service, "", "2", "y", "5")

	if len(service.deleteAllScopes) != 1 || !service.deleteAllScopes[0].IsGlobal() {
		t.Fatalf("expected one global delete-all, got %v", service.deleteAllScopes)
	}
	if !strings.Contains(out, "2/3 deleted") {
		t.Errorf("expected 2/3 summary:\n%s", out)
	}
	if !strings.Contains(out, "ban") {
		t.Errorf("expected the failure to be named:\n%s", out)
	}
	if strings.Count(out, "Deleting") != 3 {
		t.Errorf("expected 3 progress lines:\n%s", out)
	}
}

func TestShell_DeleteAll_Declined(t *testing.T) {
	service := &mockCleanup{}

	out := runShell(t, service, "", "2", "n", "5")

	if len(service.deleteAllScopes) != 0 {
		t.Fatal("expected no delete-all call after declining")
	}
	if !strings.Contains(out, MsgDeleteCancelled) {
		t.Errorf("expected cancel notice:\n%s", out)
	}
}

func TestShell_DeleteAll_EmptyScope(t *testing.T) {
	service := &mockCleanup{}

	out := runShell(t, service, "", "2", "y", "5")

	if len(service.deleteAllScopes) != 1 {
		t.Fatal("expected the delete-all pass to run")
	}
	if !strings.Contains(out, MsgNoCommands) {
		t.Errorf("expected no-commands notice for empty scope:\n%s", out)
	}
}

func TestShell_GuildPromptRevalidates(t *testing.T) {
	service := &mockCleanup{}

	out := runShell(t, service, "", "3", "abc", "123456", "5")

	if len(service.listScopes) != 1 {
		t.Fatalf("expected one listing, got %d", len(service.listScopes))
	}
	if service.listScopes[0].GuildID != "123456" {
		t.Errorf("expected guild 123456, got %q", service.listScopes[0].GuildID)
	}
	if !strings.Contains(out, MsgInvalidGuildID) {
		t.Errorf("expected invalid-guild notice:\n%s", out)
	}
}

func TestShell_GuildDefaultUsed(t *testing.T) {
	service := &mockCleanup{}

	runShell(t, service, "999888777", "3", "", "5")

	if len(service.listScopes) != 1 || service.listScopes[0].GuildID != "999888777" {
		t.Fatalf("expected default guild to be used, got %v", service.listScopes)
	}
}

func TestShell_UnknownGuildHint(t *testing.T) {
	service := &mockCleanup{
		listFunc: func(ctx context.Context, scope domain.Scope) ([]domain.Command, error) {
			return nil, fmt.Errorf("list %s commands: %w", scope, domain.ErrUnknownGuild)
		},
	}

	out := runShell(t, service, "", "3", "123456", "5")

	if !strings.Contains(out, MsgUnknownGuild) {
		t.Errorf("expected unknown-guild hint:\n%s", out)
	}
	if !strings.Contains(out, MsgGoodbye) {
		t.Error("expected the menu loop to resume and exit cleanly")
	}
}

func TestShell_InvalidChoice(t *testing.T) {
	out := runShell(t, &mockCleanup{}, "", "9", "5")

	if !strings.Contains(out, MsgInvalidChoice) {
		t.Errorf("expected invalid-choice notice:\n%s", out)
	}
}

func TestShell_EOFExitsCleanly(t *testing.T) {
	out := runShell(t, &mockCleanup{}, "")

	if !strings.Contains(out, MsgGoodbye) {
		t.Errorf("expected goodbye on EOF:\n%s", out)
	}
}

func TestShell_PanicInActionRecovered(t *testing.T) {
	service := &mockCleanup{
		listFunc: func(ctx context.Context, scope domain.Scope) ([]domain.Command, error) {
			panic("remote blew up")
		},
	}

	out := runShell(t, service, "", "1", "5")

	if !strings.Contains(out, "unexpected failure") {
		t.Errorf("expected recovered-panic notice:\n%s", out)
	}
	if !strings.Contains(out, MsgGoodbye) {
		t.Error("expected the menu loop to survive the panic")
	}
}
