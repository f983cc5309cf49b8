package cards

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// --- Modes & States ---

// Mode selects what happens after a successful submission.
type Mode string

const (
	// ModeGallery switches to the card gallery.
	ModeGallery Mode = "gallery"
	// ModeAlert acknowledges the card and keeps the form open.
	ModeAlert Mode = "alert"
	// ModeLog logs the card and silently resets the form.
	ModeLog Mode = "log"
)

// ParseMode validates a mode name. Empty selects ModeGallery.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ModeGallery:
		return ModeGallery, nil
	case ModeAlert:
		return ModeAlert, nil
	case ModeLog:
		return ModeLog, nil
	}
	return "", fmt.Errorf("unknown mode %q (want gallery, alert or log)", raw)
}

// State is the controller view state.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateViewing
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateViewing:
		return "viewing"
	}
	return "unknown"
}

// DefaultSubmitDelay is the simulated submission latency.
const DefaultSubmitDelay = time.Second

// Confirmer asks the user to accept or decline a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// --- Controller ---

// Options configures a Controller.
type Options struct {
	Mode        Mode
	SubmitDelay time.Duration
	Logger      *zap.Logger
	IDs         *IDSource
}

// Controller owns the draft, the deck and the view state machine.
// It is driven from a single event loop and is not safe for concurrent use.
type Controller struct {
	mode  Mode
	delay time.Duration
	log   *zap.Logger
	ids   *IDSource
	state State
	draft Draft
	deck  Deck
}

// NewController builds a controller in the Editing state.
func NewController(opts Options) *Controller {
	if opts.Mode == "" {
		opts.Mode = ModeGallery
	}
	if opts.SubmitDelay < 0 {
		opts.SubmitDelay = 0
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.IDs == nil {
		opts.IDs = NewIDSource()
	}
	return &Controller{
		mode:  opts.Mode,
		delay: opts.SubmitDelay,
		log:   opts.Logger,
		ids:   opts.IDs,
		state: StateEditing,
	}
}

func (c *Controller) Mode() Mode                 { return c.mode }
func (c *Controller) State() State               { return c.state }
func (c *Controller) SubmitDelay() time.Duration { return c.delay }
func (c *Controller) Draft() *Draft              { return &c.draft }
func (c *Controller) Deck() *Deck                { return &c.deck }

// Submitting reports whether a submission is in flight.
func (c *Controller) Submitting() bool { return c.state == StateSubmitting }

// CanSubmit reports whether Submit would start a submission.
func (c *Controller) CanSubmit() bool {
	return c.state == StateEditing && c.draft.IsValid()
}

// Submit enters Submitting when the draft is valid. The caller waits
// SubmitDelay and then calls Complete.
func (c *Controller) Submit() bool {
	if !c.CanSubmit() {
		if c.state == StateSubmitting {
			c.log.Debug("submit ignored while submitting")
		}
		return false
	}
	c.state = StateSubmitting
	c.log.Debug("submission started", zap.Duration("delay", c.delay))
	return true
}

// Complete finishes an in-flight submission and returns the new card.
func (c *Controller) Complete(now time.Time) (Card, bool) {
	if c.state != StateSubmitting {
		return Card{}, false
	}
	card := c.draft.toCard(c.ids.Next(now), now)
	c.deck.Add(card)
	c.draft.Reset()

	if c.mode == ModeGallery {
		c.state = StateViewing
	} else {
		c.state = StateEditing
	}

	c.log.Info("card created",
		zap.String("id", card.ID),
		zap.String("mode", string(c.mode)),
		zap.String("type", string(card.Type)),
		zap.Int("priority", card.Priority),
		zap.Int("tags", len(card.Tags)),
		zap.Int("deck_size", c.deck.Len()),
	)
	if c.mode == ModeLog {
		c.log.Info("card submitted",
			zap.String("title", card.Title),
			zap.String("description", card.Description),
			zap.Strings("tag_list", card.Tags),
			zap.Time("created_at", card.CreatedAt),
		)
	}
	return card, true
}

// DeleteCard removes a card after the confirmer accepts.
func (c *Controller) DeleteCard(id string, confirm Confirmer) bool {
	card, ok := c.deck.Get(id)
	if !ok {
		return false
	}
	if confirm == nil || !confirm.Confirm(card.Title) {
		c.log.Info("card deletion declined", zap.String("id", id))
		return false
	}
	c.deck.Delete(id)
	c.log.Info("card deleted", zap.String("id", id), zap.Int("deck_size", c.deck.Len()))
	return true
}

// ShowGallery switches from Editing to Viewing when there is something to show.
func (c *Controller) ShowGallery() bool {
	if c.mode != ModeGallery || c.state != StateEditing || c.deck.Len() == 0 {
		return false
	}
	c.state = StateViewing
	return true
}

// Back returns from the gallery to the form without touching the deck.
func (c *Controller) Back() bool {
	if c.state != StateViewing {
		return false
	}
	c.state = StateEditing
	return true
}
