package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"christoffel-menu/bot"
	"christoffel-menu/config"
	"christoffel-menu/logging"
	"christoffel-menu/models"
	"christoffel-menu/services"
	"christoffel-menu/tui"
)

var (
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "christoffel",
	Short: "Menu-item entry screen",
	Long: `Add dishes to an in-memory menu: name, description, price and one of
12 courses. Entries last as long as the process.

Run without arguments to open the terminal screen.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		logger, err = logging.New(cfg.Log)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runScreen,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the menu screen in the terminal",
	RunE:  runScreen,
}

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Serve the menu screen as a Telegram bot (needs TOKEN)",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bot.NewAdderBot(cfg, logger)
		if err != nil {
			return fmt.Errorf("bot: %w", err)
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return b.Start(ctx)
	},
}

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the courses a dish can be filed under",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, c := range models.Courses() {
			fmt.Fprintf(out, "%2d  %-20s %s\n", c.ID, c.Name, c.Type)
		}
		return nil
	},
}

func runScreen(cmd *cobra.Command, args []string) error {
	// The screen owns the terminal, so logs only go to a file.
	if cfg.Log.File == "" {
		logger = zap.NewNop()
	}
	return tui.Run(services.NewMenuForm(), cfg.Screen, logger)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.AddCommand(tuiCmd, botCmd, coursesCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
