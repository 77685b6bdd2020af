package chat

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ElaineMBarros/promoterm/internal/api"
	"github.com/ElaineMBarros/promoterm/internal/localstore"
	"github.com/ElaineMBarros/promoterm/internal/session"
)

type fakeSaver struct {
	calls []string
	fail  bool
}

func (f *fakeSaver) Download(b64, filename string) (string, bool) {
	f.calls = append(f.calls, filename)
	if f.fail {
		return "", false
	}
	return "/downloads/" + filename, true
}

func newTestController(t *testing.T) (*Controller, *session.Store, *session.Recents, *fakeSaver) {
	t.Helper()
	kv := localstore.NewMemStore()
	sessions := session.NewStore(kv)
	recents := session.NewRecents(kv)
	saver := &fakeSaver{}

	c := NewController(sessions, recents, saver)
	n := 0
	c.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	c.now = func() time.Time {
		return time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	}
	return c, sessions, recents, saver
}

func TestSubmitAppendsOneUserMessage(t *testing.T) {
	c, _, _, _ := newTestController(t)

	req, ok := c.Submit("  quero uma promoção de pontos  ")
	if !ok {
		t.Fatal("submit should be accepted")
	}
	if req.Message != "quero uma promoção de pontos" {
		t.Errorf("request message = %q, want trimmed text", req.Message)
	}
	if req.SessionID != c.SessionID() {
		t.Errorf("request session = %q, controller session = %q", req.SessionID, c.SessionID())
	}
	msgs := c.Messages()
	if len(msgs) != 1 {
		t.Fatalf("len(messages) = %d, want 1", len(msgs))
	}
	if msgs[0].Role != RoleUser || msgs[0].Content != "quero uma promoção de pontos" {
		t.Errorf("message = %+v", msgs[0])
	}
	if !c.Sending() {
		t.Error("controller should be sending")
	}
}

func TestSubmitBlankIsNoOp(t *testing.T) {
	c, _, _, _ := newTestController(t)

	for _, input := range []string{"", "   ", "\n\t"} {
		if _, ok := c.Submit(input); ok {
			t.Errorf("Submit(%q) accepted, want no-op", input)
		}
	}
	if len(c.Messages()) != 0 {
		t.Error("transcript should be unchanged")
	}
	if c.Sending() {
		t.Error("should remain idle")
	}
}

func TestSubmitWhileSendingIsDropped(t *testing.T) {
	c, _, _, _ := newTestController(t)

	if _, ok := c.Submit("primeira"); !ok {
		t.Fatal("first submit should pass")
	}
	if _, ok := c.Submit("segunda"); ok {
		t.Error("re-entrant submit should be dropped")
	}
	if len(c.Messages()) != 1 {
		t.Errorf("len(messages) = %d, want 1", len(c.Messages()))
	}
}

func TestApplyAppendsAgentMessage(t *testing.T) {
	c, _, _, _ := newTestController(t)
	c.Submit("oi")

	eff := c.Apply(&api.ChatResponse{
		Response:  "Olá! Vamos criar sua promoção.",
		SessionID: c.SessionID(),
		Timestamp: "2025-01-10T12:00:05",
	})

	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("len(messages) = %d, want 2", len(msgs))
	}
	if msgs[1].Role != RoleAgent || msgs[1].Timestamp != "2025-01-10T12:00:05" {
		t.Errorf("agent message = %+v", msgs[1])
	}
	if c.Sending() {
		t.Error("should be idle after apply")
	}
	if eff.RefreshHistory || eff.RecentsChanged || eff.SavedPath != "" {
		t.Errorf("unexpected effects: %+v", eff)
	}
}

func TestApplyAdoptsServerSessionID(t *testing.T) {
	c, sessions, _, _ := newTestController(t)
	c.Submit("oi")

	c.Apply(&api.ChatResponse{Response: "olá", SessionID: "server-issued"})

	if c.SessionID() != "server-issued" {
		t.Errorf("session = %q, want server-issued", c.SessionID())
	}
	persisted, _ := sessions.Get()
	if persisted != "server-issued" {
		t.Errorf("persisted = %q, want server-issued", persisted)
	}
}

func TestApplyStateEffects(t *testing.T) {
	c, _, recents, saver := newTestController(t)
	c.Submit("gerar excel")

	state := api.StateFromJSON([]byte(`{
		"status": "ready",
		"data": {
			"titulo": "Campanha de Verão",
			"excel_base64": "UEsDBA==",
			"excel_filename": "promo.xlsx"
		}
	}`))
	eff := c.Apply(&api.ChatResponse{Response: "✅ Excel gerado!", State: state})

	if eff.SavedPath != "/downloads/promo.xlsx" {
		t.Errorf("saved path = %q", eff.SavedPath)
	}
	if len(saver.calls) != 1 {
		t.Fatalf("downloader calls = %d, want 1", len(saver.calls))
	}
	if !eff.RecentsChanged {
		t.Error("recents should have changed")
	}
	list := recents.List()
	if len(list) != 1 || list[0].Title != "Campanha de Verão" {
		t.Errorf("recents = %+v", list)
	}

	// Artifact must be cleared from the retained state.
	if _, ok := c.State().Artifact(); ok {
		t.Error("artifact still present after handoff")
	}
	if c.State().Title() != "Campanha de Verão" {
		t.Error("other state fields should survive artifact clearing")
	}
}

func TestApplyFailedDownloadKeepsArtifact(t *testing.T) {
	c, _, _, saver := newTestController(t)
	saver.fail = true
	c.Submit("gerar excel")

	state := api.StateFromJSON([]byte(`{"data": {"excel_base64": "!!!", "excel_filename": "promo.xlsx"}}`))
	eff := c.Apply(&api.ChatResponse{Response: "ok", State: state})

	if eff.SavedPath != "" {
		t.Errorf("saved path = %q, want empty", eff.SavedPath)
	}
	// Not cleared: the next state update may retry the export.
	if _, ok := c.State().Artifact(); !ok {
		t.Error("artifact should remain when the handoff failed")
	}
}

func TestApplyCompletionDetection(t *testing.T) {
	tests := []struct {
		name string
		resp api.ChatResponse
		want bool
	}{
		{"status sent", api.ChatResponse{Response: "ok", Status: "sent"}, true},
		{"status saved", api.ChatResponse{Response: "ok", Status: "saved"}, true},
		{"state status sent", api.ChatResponse{Response: "ok", State: api.StateFromJSON([]byte(`{"status":"sent"}`))}, true},
		{"phrase enviada", api.ChatResponse{Response: "🎉 Promoção enviada com sucesso para o time!"}, true},
		{"phrase salva", api.ChatResponse{Response: "Pronto. Promoção salva no sistema."}, true},
		{"ordinary reply", api.ChatResponse{Response: "Qual o período da promoção?"}, false},
		{"case sensitive", api.ChatResponse{Response: "promoção enviada com sucesso"}, false},
		{"status ready only", api.ChatResponse{Response: "ok", Status: "ready"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _, _ := newTestController(t)
			c.Submit("oi")
			eff := c.Apply(&tt.resp)
			if eff.RefreshHistory != tt.want {
				t.Errorf("RefreshHistory = %v, want %v", eff.RefreshHistory, tt.want)
			}
		})
	}
}

func TestFailKeepsTranscript(t *testing.T) {
	c, _, _, _ := newTestController(t)
	c.Submit("oi")

	c.Fail(errors.New("connection refused"))

	if c.Sending() {
		t.Error("should be idle after failure")
	}
	msgs := c.Messages()
	if len(msgs) != 1 || msgs[0].Role != RoleUser {
		t.Errorf("messages = %+v; user message must survive", msgs)
	}
}

func TestResetStartsFreshSession(t *testing.T) {
	c, sessions, _, _ := newTestController(t)
	before := c.SessionID()

	c.Submit("oi")
	c.Apply(&api.ChatResponse{Response: "olá", State: api.StateFromJSON([]byte(`{"status":"gathering"}`))})

	c.Reset()

	if len(c.Messages()) != 0 {
		t.Error("transcript should be empty")
	}
	if !c.State().Empty() {
		t.Error("pending state should be empty")
	}
	if c.SessionID() == before {
		t.Error("session id should change")
	}
	persisted, _ := sessions.Get()
	if persisted != c.SessionID() {
		t.Errorf("persisted = %q, controller = %q", persisted, c.SessionID())
	}
}

func TestFirstRunCreatesAndPersistsSession(t *testing.T) {
	kv := localstore.NewMemStore()
	sessions := session.NewStore(kv)
	c := NewController(sessions, session.NewRecents(kv), &fakeSaver{})

	if c.SessionID() == "" {
		t.Fatal("expected a session id on first run")
	}
	persisted, ok := sessions.Get()
	if !ok || persisted != c.SessionID() {
		t.Errorf("persisted = %q, %v", persisted, ok)
	}

	// A second controller over the same store resumes the same session.
	c2 := NewController(sessions, session.NewRecents(kv), &fakeSaver{})
	if c2.SessionID() != c.SessionID() {
		t.Errorf("resumed session = %q, want %q", c2.SessionID(), c.SessionID())
	}
}
