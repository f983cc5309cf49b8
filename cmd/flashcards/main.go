package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitrone/flashcards/cli/internal/cards"
	"github.com/gravitrone/flashcards/cli/internal/cmd"
	"github.com/gravitrone/flashcards/cli/internal/config"
	"github.com/gravitrone/flashcards/cli/internal/locale"
	"github.com/gravitrone/flashcards/cli/internal/logging"
	"github.com/gravitrone/flashcards/cli/internal/ui"
)

type rootFlags struct {
	mode    string
	locale  string
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	root := &cobra.Command{
		Use:   "flashcards",
		Short: "Flashcards - a smarter notebook",
		Long:  "Flashcards: create study cards with a title, description, type, priority and tags.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVar(&flags.mode, "mode", "", "submission mode: gallery, alert or log")
	root.Flags().StringVar(&flags.locale, "locale", "", "interface language: fa or en")
	root.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(cmd.InitCmd())
	root.AddCommand(cmd.AddCmd())
	return root
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

// resolveConfig applies flag overrides on top of the config file.
func resolveConfig(flags rootFlags) (*config.Config, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, err
	}
	if flags.mode != "" {
		cfg.Mode = flags.mode
	}
	if flags.locale != "" {
		cfg.Locale = flags.locale
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTUI(flags rootFlags) error {
	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}
	loc, err := locale.New(cfg.Locale)
	if err != nil {
		return fmt.Errorf("config locale: %w", err)
	}
	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return fmt.Errorf("flashcards needs an interactive terminal; use 'flashcards add' in scripts")
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogPath())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	delay, _ := cfg.Delay()
	ctrl := cards.NewController(cards.Options{
		Mode:        cfg.ControllerMode(),
		SubmitDelay: delay,
		Logger:      log,
	})
	log.Info("session started",
		zap.String("mode", string(ctrl.Mode())),
		zap.String("locale", loc.Tag().String()),
		zap.Duration("submit_delay", delay),
	)

	app := ui.NewApp(ctrl, loc, cfg, log)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	log.Info("session ended", zap.Int("cards", ctrl.Deck().Len()))
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
