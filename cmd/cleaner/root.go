package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/CrownedYT777/Discord-bot-slash-commands-cleaner/internal/config"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var metricsAddr string

	root := &cobra.Command{
		Use:   "cleaner",
		Short: "List and delete Discord slash-command registrations",
		Long: `cleaner inspects and removes the slash commands a bot has registered
with Discord, either globally or for a single guild.

Run it without arguments for the interactive menu, or use the list and
clean subcommands for scripted one-shot runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(metricsAddr)
			if err != nil {
				return err
			}
			defer shutdownApp(app)

			return app.RunInteractive(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :2112)")

	var listGuildID string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered commands without entering the menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateGuildFlag(listGuildID); err != nil {
				return err
			}

			app, err := NewApp(metricsAddr)
			if err != nil {
				return err
			}
			defer shutdownApp(app)

			return app.RunList(cmd.Context(), listGuildID)
		},
	}
	listCmd.Flags().StringVar(&listGuildID, "guild", "", "guild ID (omit for global commands)")

	var cleanGuildID string
	var skipConfirm bool
	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete every registered command at a scope",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateGuildFlag(cleanGuildID); err != nil {
				return err
			}

			app, err := NewApp(metricsAddr)
			if err != nil {
				return err
			}
			defer shutdownApp(app)

			return app.RunClean(cmd.Context(), cleanGuildID, skipConfirm)
		},
	}
	cleanCmd.Flags().StringVar(&cleanGuildID, "guild", "", "guild ID (omit for global commands)")
	cleanCmd.Flags().BoolVar(&skipConfirm, "yes", false, "skip the confirmation prompt")

	root.AddCommand(listCmd, cleanCmd)
	return root
}

func validateGuildFlag(id string) error {
	if id != "" && !config.IsGuildID(id) {
		return fmt.Errorf("--guild must be an all-digits guild ID, got %q", id)
	}
	return nil
}

func shutdownApp(app *App) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.Shutdown(ctx); err != nil {
		slog.Error("Shutdown error", "error", err)
	}
}
