package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/flashcards/cli/internal/config"
	"github.com/gravitrone/flashcards/cli/internal/locale"
)

// RunInteractiveInit prompts for mode and locale, then persists the config.
// Empty answers keep the values already in cfg.
func RunInteractiveInit(in io.Reader, out io.Writer, cfg *config.Config) error {
	reader := bufio.NewReader(in)

	fmt.Fprintf(out, "mode (gallery, alert, log) [%s]: ", cfg.Mode)
	if answer := readAnswer(reader); answer != "" {
		cfg.Mode = answer
	}

	fmt.Fprintf(out, "locale (fa, en) [%s]: ", cfg.Locale)
	if answer := readAnswer(reader); answer != "" {
		cfg.Locale = answer
	}

	return saveConfig(out, cfg)
}

func readAnswer(r *bufio.Reader) string {
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}

func saveConfig(out io.Writer, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := locale.New(cfg.Locale); err != nil {
		return fmt.Errorf("config locale: %w", err)
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Fprintf(out, "config saved to %s\n", config.Path())
	return nil
}

// InitCmd returns the `flashcards init` command. Settings already on disk
// are kept unless a flag or an answer replaces them.
func InitCmd() *cobra.Command {
	var (
		mode    string
		loc     string
		delay   string
		vimKeys bool
		yes     bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := config.LoadOrDefault()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if c.Flags().Changed("mode") {
				cfg.Mode = mode
			}
			if c.Flags().Changed("locale") {
				cfg.Locale = loc
			}
			if c.Flags().Changed("submit-delay") {
				cfg.SubmitDelay = delay
			}
			if c.Flags().Changed("vim-keys") {
				cfg.VimKeys = vimKeys
			}

			if yes {
				return saveConfig(c.OutOrStdout(), cfg)
			}
			return RunInteractiveInit(c.InOrStdin(), c.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "submission mode: gallery, alert or log")
	cmd.Flags().StringVar(&loc, "locale", "", "interface language: fa or en")
	cmd.Flags().StringVar(&delay, "submit-delay", "", "simulated submission latency, e.g. 1s")
	cmd.Flags().BoolVar(&vimKeys, "vim-keys", false, "enable j/k navigation in the gallery")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip prompts and write the flags as given")
	return cmd
}
