// Package chat holds the transcript controller, the client-side state machine
// behind the conversation: message history, session continuity, the pending
// promotion state, and the side effects a backend reply can trigger.
package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ElaineMBarros/promoterm/internal/api"
	"github.com/ElaineMBarros/promoterm/internal/logger"
	"github.com/ElaineMBarros/promoterm/internal/session"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Message is one transcript entry. Immutable once appended.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp string
}

// Completion phrases are the deprecated fallback signal that a promotion was
// submitted or saved; newer backends report it through the status field.
// Substring match on agent-authored text, so strictly best-effort.
var completionPhrases = []string{
	"Promoção enviada com sucesso",
	"Promoção salva no sistema",
}

// Downloader lands an exported spreadsheet on disk. Implemented by
// artifact.Saver; faked in tests.
type Downloader interface {
	Download(b64, filename string) (string, bool)
}

// Effects is what a reply caused beyond the transcript itself. The UI layer
// reacts to these: it re-reads the recents list and schedules the delayed
// history refresh.
type Effects struct {
	// SavedPath is where the exported spreadsheet landed, if one arrived.
	SavedPath string
	// RecentsChanged reports a new entry in the recent-promotions cache.
	RecentsChanged bool
	// RefreshHistory asks for a (delayed) reload of the promotion history.
	RefreshHistory bool
}

// Controller is single-threaded: every method runs on the UI goroutine.
// States: idle or sending, with exactly one request in flight while sending.
type Controller struct {
	sessions *session.Store
	recents  *session.Recents
	saver    Downloader

	sessionID string
	state     api.State
	messages  []Message
	sending   bool

	now   func() time.Time
	newID func() string
}

// NewController restores the persisted session id, or mints and persists a
// fresh one on first run.
func NewController(sessions *session.Store, recents *session.Recents, saver Downloader) *Controller {
	c := &Controller{
		sessions: sessions,
		recents:  recents,
		saver:    saver,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	if id, ok := sessions.Get(); ok {
		c.sessionID = id
	} else {
		c.sessionID = c.newID()
		if err := sessions.Set(c.sessionID); err != nil {
			logger.Warn("persist session id", "error", err)
		}
	}
	return c
}

// Submit appends a user message and enters the sending state, handing the
// request payload to the transport layer. Returns false without any state
// change for blank input, and for re-entrant calls while a request is in
// flight (dropped, not queued).
func (c *Controller) Submit(text string) (api.ChatRequest, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || c.sending {
		return api.ChatRequest{}, false
	}

	c.messages = append(c.messages, Message{
		ID:        c.newID(),
		Role:      RoleUser,
		Content:   trimmed,
		Timestamp: c.now().Format(time.RFC3339),
	})
	c.sending = true

	return api.ChatRequest{
		Message:   trimmed,
		SessionID: c.sessionID,
		State:     c.state,
	}, true
}

// Apply folds a successful reply into the transcript and runs its side
// effects: session-id adoption, pending-state replacement, spreadsheet
// download, recents recording, and completion detection.
func (c *Controller) Apply(resp *api.ChatResponse) Effects {
	c.sending = false

	ts := resp.Timestamp
	if ts == "" {
		ts = c.now().Format(time.RFC3339)
	}
	c.messages = append(c.messages, Message{
		ID:        c.newID(),
		Role:      RoleAgent,
		Content:   resp.Response,
		Timestamp: ts,
	})

	if resp.SessionID != "" && resp.SessionID != c.sessionID {
		c.sessionID = resp.SessionID
		if err := c.sessions.Set(c.sessionID); err != nil {
			logger.Warn("persist server session id", "error", err)
		}
	}

	var eff Effects
	if !resp.State.Empty() {
		c.state = resp.State

		if art, ok := c.state.Artifact(); ok {
			if path, saved := c.saver.Download(art.Base64, art.Filename); saved {
				eff.SavedPath = path
				// Clear immediately so a later state echo cannot offer the
				// same file again.
				c.state = c.state.WithoutArtifact()
			}
		}

		if title := c.state.Title(); title != "" {
			if err := c.recents.Record(title); err != nil {
				logger.Warn("record recent promotion", "error", err)
			} else {
				eff.RecentsChanged = true
			}
		}
	}

	eff.RefreshHistory = isCompletion(resp)
	return eff
}

// Fail exits the sending state and leaves the transcript as it stands: the
// user message stays visible and nothing is retried.
func (c *Controller) Fail(err error) {
	c.sending = false
	logger.Error("chat request failed", "error", err)
}

// Reset is the hard boundary between promotion sessions: empty transcript,
// empty pending state, fresh session id persisted on the spot.
func (c *Controller) Reset() {
	c.messages = nil
	c.state = api.State{}
	c.sending = false
	c.sessionID = c.newID()
	if err := c.sessions.Set(c.sessionID); err != nil {
		logger.Warn("persist session id on reset", "error", err)
	}
}

func (c *Controller) Messages() []Message { return c.messages }
func (c *Controller) SessionID() string   { return c.sessionID }
func (c *Controller) Sending() bool       { return c.sending }
func (c *Controller) State() api.State    { return c.state }

func isCompletion(resp *api.ChatResponse) bool {
	switch resp.Status {
	case "sent", "saved":
		return true
	}
	switch resp.State.Status() {
	case "sent", "saved":
		return true
	}
	for _, phrase := range completionPhrases {
		if strings.Contains(resp.Response, phrase) {
			return true
		}
	}
	return false
}
