package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/core/domain"
	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/core/services"
)

// CleanupService is the slice of the service layer the shell consumes.
type CleanupService interface {
	List(ctx context.Context, scope domain.Scope) ([]domain.Command, error)
	DeleteAll(ctx context.Context, scope domain.Scope, progress services.ProgressFunc) (domain.BatchResult, error)
}

// Shell runs the interactive five-option menu. All remote work happens
// sequentially on the calling goroutine; the only suspension points are
// remote calls, rate-limit waits and operator input.
type Shell struct {
	service        CleanupService
	reader         LineReader
	out            io.Writer
	defaultGuildID string
}

func New(service CleanupService, reader LineReader, out io.Writer, defaultGuildID string) *Shell {
	return &Shell{
		service:        service,
		reader:         reader,
		out:            out,
		defaultGuildID: defaultGuildID,
	}
}

// Run loops over the menu until the operator exits. It only returns a
// non-nil error for reader failures that are not a plain end of input.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, titleStyle.Render("Slash Command Cleaner"))

	for {
		s.printMenu()

		line, err := s.reader.ReadLine("> ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out, MsgGoodbye)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read menu choice: %w", err)
		}

		switch strings.TrimSpace(line) {
		case "1":
			s.runAction(ctx, func(ctx context.Context) error {
				return s.listScope(ctx, domain.GlobalScope())
			})
		case "2":
			s.runAction(ctx, func(ctx context.Context) error {
				return s.deleteAllScope(ctx, domain.GlobalScope())
			})
		case "3":
			s.runGuildAction(ctx, s.listScope)
		case "4":
			s.runGuildAction(ctx, s.deleteAllScope)
		case "5", "q", "quit", "exit":
			fmt.Fprintln(s.out, MsgGoodbye)
			return nil
		default:
			fmt.Fprintln(s.out, RenderError(MsgInvalidChoice))
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, " 1) List global commands")
	fmt.Fprintln(s.out, " 2) Delete all global commands")
	fmt.Fprintln(s.out, " 3) List guild commands")
	fmt.Fprintln(s.out, " 4) Delete all guild commands")
	fmt.Fprintln(s.out, " 5) Exit")
}

// runAction executes one menu action, reporting failures and recovered
// panics to the operator and returning control to the menu either way.
func (s *Shell) runAction(ctx context.Context, fn func(context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Recovered from panic in menu action", "panic", r)
			fmt.Fprintln(s.out, RenderError(fmt.Sprintf("unexpected failure: %v", r)))
		}
	}()

	err := fn(ctx)
	if err == nil {
		return
	}

	if errors.Is(err, domain.ErrUnknownGuild) {
		fmt.Fprintln(s.out, RenderError(MsgUnknownGuild))
		return
	}
	fmt.Fprintln(s.out, RenderError(err.Error()))
}

func (s *Shell) runGuildAction(ctx context.Context, fn func(context.Context, domain.Scope) error) {
	guildID, err := s.promptGuildID()
	if err != nil {
		return
	}

	s.runAction(ctx, func(ctx context.Context) error {
		return fn(ctx, domain.GuildScope(guildID))
	})
}

func (s *Shell) listScope(ctx context.Context, scope domain.Scope) error {
	cmds, err := s.service.List(ctx, scope)
	if err != nil {
		return err
	}

	if len(cmds) == 0 {
		fmt.Fprintln(s.out, RenderHint(MsgNoCommands))
		return nil
	}

	fmt.Fprint(s.out, RenderCommandTable(cmds))
	return nil
}

func (s *Shell) deleteAllScope(ctx context.Context, scope domain.Scope) error {
	if !Confirm(s.reader, fmt.Sprintf("Delete ALL %s commands?", scope)) {
		fmt.Fprintln(s.out, RenderHint(MsgDeleteCancelled))
		return nil
	}

	result, err := s.service.DeleteAll(ctx, scope, func(cmd domain.Command, ok bool) {
		fmt.Fprintln(s.out, RenderProgress(cmd, ok))
	})
	if err != nil {
		return err
	}

	if result.Total == 0 {
		fmt.Fprintln(s.out, RenderHint(MsgNoCommands))
		return nil
	}

	fmt.Fprintln(s.out, RenderSummary(result))
	return nil
}
