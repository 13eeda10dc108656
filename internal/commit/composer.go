package commit

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/thatcatcamp/workbench/internal/clipboard"
	"github.com/thatcatcamp/workbench/internal/logging"
	"github.com/thatcatcamp/workbench/internal/notify"
	"github.com/thatcatcamp/workbench/internal/storage"
	"go.uber.org/zap"
)

var (
	// ErrEmptyMessage is returned when saving or copying a blank message
	ErrEmptyMessage = errors.New("commit message is empty")
	// ErrNotFound is returned for an unknown saved message id
	ErrNotFound = errors.New("commit message not found")
)

// SavedMessage is a stored snapshot of the form and its rendered message
type SavedMessage struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Form
}

// NewID returns a time-ordered id: base-36 milliseconds followed by a
// base-36 random suffix. Collisions are possible but unlikely.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + strconv.FormatUint(rand.Uint64(), 36)
}

// Composer is the interactive commit message editor
type Composer struct {
	mu           sync.Mutex
	form         Form
	nextFooterID int
	saved        []SavedMessage

	store    storage.Store
	notifier *notify.Notifier
	logger   *zap.Logger
	newID    func() string
}

// NewComposer returns a composer with an empty form. Call LoadSaved to
// read previously saved messages.
func NewComposer(store storage.Store, notifier *notify.Notifier, logger *zap.Logger) *Composer {
	if store == nil {
		store = storage.Disabled{}
	}
	if notifier == nil {
		notifier = notify.New(notify.DefaultTimeout)
	}
	return &Composer{
		form:     NewForm(),
		saved:    []SavedMessage{},
		store:    store,
		notifier: notifier,
		logger:   logging.OrNop(logger).Named("commit"),
		newID:    NewID,
	}
}

// Notifier returns the composer's message channel
func (c *Composer) Notifier() *notify.Notifier {
	return c.notifier
}

// Form returns a copy of the current form
func (c *Composer) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Clone()
}

// SetForm replaces the form. Footer ids continue after the highest id in f.
func (c *Composer) SetForm(f Form) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = f.Clone()
	c.nextFooterID = nextID(c.form.Footers)
}

// Update edits the form in place through fn
func (c *Composer) Update(fn func(f *Form)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.form)
}

// Preview renders the current form
func (c *Composer) Preview() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Message()
}

// AddFooter appends an empty footer and returns its id
func (c *Composer) AddFooter() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextFooterID
	c.form.Footers = append(c.form.Footers, Footer{ID: id})
	c.nextFooterID++
	return id
}

// RemoveFooter drops the footer with the given id
func (c *Composer) RemoveFooter(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.form.Footers[:0:0]
	for _, f := range c.form.Footers {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	c.form.Footers = kept
}

// UpdateFooterToken sets the token of the footer with the given id
func (c *Composer) UpdateFooterToken(id int, token string) {
	c.updateFooter(id, func(f *Footer) { f.Token = token })
}

// UpdateFooterValue sets the value of the footer with the given id
func (c *Composer) UpdateFooterValue(id int, value string) {
	c.updateFooter(id, func(f *Footer) { f.Value = value })
}

func (c *Composer) updateFooter(id int, fn func(f *Footer)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.form.Footers {
		if c.form.Footers[i].ID == id {
			fn(&c.form.Footers[i])
		}
	}
}

// Clear resets every field to its default
func (c *Composer) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = NewForm()
	c.nextFooterID = 0
	c.notifier.Show("Form cleared.", notify.Success)
}

// Saved returns the saved messages in save order
func (c *Composer) Saved() []SavedMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]SavedMessage, len(c.saved))
	for i, m := range c.saved {
		m.Form = m.Form.Clone()
		out[i] = m
	}
	return out
}

// LoadSaved reads saved messages from the store. Corrupt data is logged
// and leaves the list unchanged.
func (c *Composer) LoadSaved() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var messages []SavedMessage
	ok, err := storage.GetJSON(c.store, storage.KeyCommitMessages, &messages)
	if err != nil {
		c.logger.Error("failed to load saved commit messages", zap.Error(err))
		c.notifier.Show("Could not load saved messages.", notify.Error)
		return err
	}
	if ok {
		if messages == nil {
			messages = []SavedMessage{}
		}
		c.saved = messages
	}
	return nil
}

// Save stores the current form as a new saved message
func (c *Composer) Save() (SavedMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveLocked()
}

// SaveForm replaces the form with f and saves it in one step, so
// concurrent callers never save each other's form
func (c *Composer) SaveForm(f Form) (SavedMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = f.Clone()
	c.nextFooterID = nextID(c.form.Footers)
	return c.saveLocked()
}

func (c *Composer) saveLocked() (SavedMessage, error) {
	msg := SavedMessage{
		ID:      c.newID(),
		Message: c.form.Message(),
		Form:    c.form.Clone(),
	}
	if strings.TrimSpace(msg.Message) == "" {
		c.notifier.Show("The commit message is empty and cannot be saved.", notify.Error)
		return SavedMessage{}, ErrEmptyMessage
	}

	updated := append(append([]SavedMessage{}, c.saved...), msg)
	if err := c.persistLocked(updated); err != nil {
		return SavedMessage{}, err
	}
	c.notifier.Show("Commit message saved.", notify.Success)
	return msg, nil
}

// Get returns the saved message with the given id
func (c *Composer) Get(id string) (SavedMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.saved {
		if m.ID == id {
			m.Form = m.Form.Clone()
			return m, nil
		}
	}
	return SavedMessage{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// LoadMessage copies a saved message back into the form
func (c *Composer) LoadMessage(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, m := range c.saved {
		if m.ID != id {
			continue
		}
		c.form = m.Form.Clone()
		c.nextFooterID = nextID(c.form.Footers)
		c.notifier.Show("Commit message loaded into the editor.", notify.Success)
		return nil
	}
	c.notifier.Show("Commit message not found.", notify.Error)
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// RemoveSaved deletes a saved message. Unknown ids are a no-op.
func (c *Composer) RemoveSaved(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	updated := make([]SavedMessage, 0, len(c.saved))
	for _, m := range c.saved {
		if m.ID != id {
			updated = append(updated, m)
		}
	}
	if err := c.persistLocked(updated); err != nil {
		return err
	}
	c.notifier.Show("Commit message deleted.", notify.Success)
	return nil
}

func (c *Composer) persistLocked(messages []SavedMessage) error {
	if err := storage.SetJSON(c.store, storage.KeyCommitMessages, messages); err != nil {
		c.logger.Error("failed to store commit messages", zap.Error(err))
		c.notifier.Show("Could not store commit messages.", notify.Error)
		return err
	}
	c.saved = messages
	return nil
}

// Copy puts the preview on the clipboard
func (c *Composer) Copy(w clipboard.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	text := c.form.Message()
	if text == "" {
		c.notifier.Show("Nothing to copy!", notify.Error)
		return ErrEmptyMessage
	}
	if w == nil {
		w = clipboard.Unavailable{}
	}
	if err := w.WriteText(text); err != nil {
		c.logger.Error("failed to copy commit message", zap.Error(err))
		c.notifier.Show("Could not copy the message.", notify.Error)
		return err
	}
	c.notifier.Show("Commit message copied.", notify.Success)
	return nil
}

// nextID is one past the highest footer id, or 0 with no footers
func nextID(footers []Footer) int {
	highest := -1
	for _, f := range footers {
		if f.ID > highest {
			highest = f.ID
		}
	}
	return highest + 1
}
