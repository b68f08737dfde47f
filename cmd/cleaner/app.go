package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/adapters/discord"
	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/config"
	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/core/domain"
	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/core/services"
	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/shell"

	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	config        *config.Config
	session       *discordgo.Session
	service       *services.CleanupService
	metricsServer *http.Server
}

func NewApp(metricsAddr string) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return nil, err
	}
	if metricsAddr != "" {
		cfg.MetricsAddr = metricsAddr
	}

	session, err := discord.NewSession(cfg)
	if err != nil {
		return nil, err
	}

	registry := discord.NewRegistry(session, cfg.RateLimitFallback)

	app := &App{
		config:  cfg,
		session: session,
		service: services.NewCleanupService(registry),
	}

	if cfg.MetricsAddr != "" {
		app.startMetricsServer()
	}

	return app, nil
}

func (a *App) startMetricsServer() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	a.metricsServer = &http.Server{
		Addr:    a.config.MetricsAddr,
		Handler: mux,
	}

	go func() {
		if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Metrics server failed", "error", err)
		}
	}()

	slog.Info("Serving metrics", "addr", a.config.MetricsAddr)
}

// RunInteractive starts the menu loop on the operator's terminal.
func (a *App) RunInteractive(ctx context.Context) error {
	reader, err := shell.NewReadlineReader()
	if err != nil {
		slog.Warn("Readline unavailable, falling back to plain stdin", "error", err)
		return shell.New(a.service, shell.NewStdinReader(), os.Stdout, a.config.DefaultGuildID).Run(ctx)
	}
	defer reader.Close()

	return shell.New(a.service, reader, os.Stdout, a.config.DefaultGuildID).Run(ctx)
}

// RunList is the non-interactive `cleaner list` path.
func (a *App) RunList(ctx context.Context, guildID string) error {
	cmds, err := a.service.List(ctx, scopeFor(guildID))
	if err != nil {
		return err
	}

	if len(cmds) == 0 {
		fmt.Println(shell.RenderHint(shell.MsgNoCommands))
		return nil
	}

	fmt.Print(shell.RenderCommandTable(cmds))
	return nil
}

// RunClean is the non-interactive `cleaner clean` path.
func (a *App) RunClean(ctx context.Context, guildID string, skipConfirm bool) error {
	scope := scopeFor(guildID)

	if !skipConfirm {
		if !shell.Confirm(shell.NewStdinReader(), fmt.Sprintf("Delete ALL %s commands?", scope)) {
			fmt.Println(shell.RenderHint(shell.MsgDeleteCancelled))
			return nil
		}
	}

	result, err := a.service.DeleteAll(ctx, scope, func(cmd domain.Command, ok bool) {
		fmt.Println(shell.RenderProgress(cmd, ok))
	})
	if err != nil {
		return err
	}

	if result.Total == 0 {
		fmt.Println(shell.RenderHint(shell.MsgNoCommands))
		return nil
	}

	fmt.Println(shell.RenderSummary(result))
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}

func scopeFor(guildID string) domain.Scope {
	if guildID == "" {
		return domain.GlobalScope()
	}
	return domain.GuildScope(guildID)
}
