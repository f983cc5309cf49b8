package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gravitrone/flashcards/cli/internal/cards"
	"github.com/gravitrone/flashcards/cli/internal/config"
	"github.com/gravitrone/flashcards/cli/internal/logging"
)

// AddInput is the field set accepted by `flashcards add`.
type AddInput struct {
	Title       string
	Description string
	Type        string
	Priority    int
	Tags        []string
}

// RunAdd creates one card through a controller and writes it as YAML.
// Tags the draft rejects are reported on errOut and skipped.
func RunAdd(out, errOut io.Writer, in AddInput, log *zap.Logger) (cards.Card, error) {
	ctrl := cards.NewController(cards.Options{Mode: cards.ModeLog, Logger: log})
	draft := ctrl.Draft()

	fields := []struct{ name, value string }{
		{cards.FieldTitle, in.Title},
		{cards.FieldDescription, in.Description},
		{cards.FieldType, strings.ToLower(strings.TrimSpace(in.Type))},
	}
	if in.Priority != 0 {
		fields = append(fields, struct{ name, value string }{cards.FieldPriority, strconv.Itoa(in.Priority)})
	}
	for _, f := range fields {
		if err := draft.UpdateField(f.name, f.value); err != nil {
			return cards.Card{}, err
		}
	}

	for _, tag := range in.Tags {
		if !draft.AddTag(tag) {
			fmt.Fprintf(errOut, "tag %q skipped\n", tag)
		}
	}

	if !ctrl.Submit() {
		return cards.Card{}, fmt.Errorf("incomplete card: missing %s", strings.Join(draft.Missing(), ", "))
	}
	card, ok := ctrl.Complete(time.Now())
	if !ok {
		return cards.Card{}, fmt.Errorf("submission did not complete")
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(card); err != nil {
		return cards.Card{}, fmt.Errorf("encode card: %w", err)
	}
	if err := enc.Close(); err != nil {
		return cards.Card{}, fmt.Errorf("encode card: %w", err)
	}
	return card, nil
}

// AddCmd returns the `flashcards add` command.
func AddCmd() *cobra.Command {
	var in AddInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a card without the form",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := config.LoadOrDefault()
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel, cfg.LogPath())
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			_, err = RunAdd(c.OutOrStdout(), c.ErrOrStderr(), in, log)
			return err
		},
	}
	cmd.Flags().StringVarP(&in.Title, "title", "t", "", "card title")
	cmd.Flags().StringVarP(&in.Description, "description", "d", "", "card description")
	cmd.Flags().StringVar(&in.Type, "type", "", "education, reminder, exercise or fun")
	cmd.Flags().IntVarP(&in.Priority, "priority", "p", 0, "priority from 1 to 5")
	cmd.Flags().StringArrayVar(&in.Tags, "tag", nil, "tag (repeatable, up to 7)")
	return cmd
}
