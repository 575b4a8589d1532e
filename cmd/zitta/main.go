package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"zitta/config"
	"zitta/internal/app"
	"zitta/pkg/log"
)

var (
	// Global flags
	verbose   bool
	offline   bool
	sessionID string
	workDir   string
)

var rootCmd = &cobra.Command{
	Use:   "zitta",
	Short: "ZiTTA - personal assistant in the terminal",
	Long: `ZiTTA manages todos and memos, browses files and chats through an LLM.

Run without arguments to start an interactive session. Type /clear to forget
the conversation and /exit to quit.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			return newREPL(a.Assistant, sessionID, workDir).Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		})
	},
}

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Send a single message and print the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			return newREPL(a.Assistant, sessionID, workDir).Ask(ctx, cmd.OutOrStdout(), joinArgs(args))
		})
	},
}

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List loaded plugins in dispatch order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			printPlugins(cmd.OutOrStdout(), a.Plugins.List())
			return nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "Use the rule-based responder instead of an LLM")
	rootCmd.PersistentFlags().StringVarP(&sessionID, "session", "s", "", "Conversation id (default: a new one)")
	rootCmd.PersistentFlags().StringVarP(&workDir, "dir", "d", "", "Directory used for file commands (default: current)")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(pluginsCmd)
}

// withApp loads configuration, builds the components and runs fn.
func withApp(ctx context.Context, fn func(ctx context.Context, a *app.App) error) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if offline {
		cfg.LLM.OfflineMode = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := log.LevelWarn
	if verbose {
		level = log.LevelDebug
	}
	logger := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close(context.WithoutCancel(ctx))

	return fn(ctx, a)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
