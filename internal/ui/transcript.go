package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ElaineMBarros/promoterm/internal/chat"
)

const welcomeText = "Bem-vindo ao PromoAgente! Descreva a promoção que você quer criar."

type TranscriptModel struct {
	viewport viewport.Model
	messages []chat.Message
	theme    Theme
}

func NewTranscriptModel() TranscriptModel {
	vp := viewport.New(0, 0)
	vp.SetContent(welcomeText)

	return TranscriptModel{
		viewport: vp,
		theme:    DefaultTheme(),
	}
}

func (m TranscriptModel) Init() tea.Cmd {
	return nil
}

func (m TranscriptModel) Update(msg tea.Msg) (TranscriptModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m TranscriptModel) View() string {
	return m.viewport.View()
}

func (m *TranscriptModel) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.updateContent()
}

// SetMessages replaces the rendered transcript. The controller owns the
// message list; this model only displays it.
func (m *TranscriptModel) SetMessages(messages []chat.Message) {
	m.messages = messages
	m.updateContent()
}

func (m *TranscriptModel) updateContent() {
	if len(m.messages) == 0 {
		m.viewport.SetContent(m.theme.SystemMessage.Render(welcomeText))
		return
	}

	var lines []string
	for _, msg := range m.messages {
		switch msg.Role {
		case chat.RoleUser:
			lines = append(lines, m.theme.UserLabel.Render("Você:"))
			lines = append(lines, m.theme.UserContent.Render(msg.Content))
		case chat.RoleAgent:
			lines = append(lines, m.theme.AgentLabel.Render("PromoAgente:"))
			lines = append(lines, m.renderAgentContent(msg.Content)...)
		}
		lines = append(lines, m.theme.MessageMeta.Render(formatTimestamp(msg.Timestamp)))
		lines = append(lines, "")
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoBottom()
}

// renderAgentContent gives structured field lines their own visual row and
// leaves prose as-is.
func (m *TranscriptModel) renderAgentContent(content string) []string {
	var lines []string
	for _, seg := range chat.ParseSegments(content) {
		switch seg.Kind {
		case chat.SegmentText:
			lines = append(lines, m.theme.AgentContent.Render(strings.TrimRight(seg.Text, "\n")))
		case chat.SegmentField:
			row := m.theme.FieldIcon.Render(seg.Icon) + " " +
				m.theme.FieldLabel.Render(seg.Label+":") + " " +
				m.theme.FieldValue.Render(seg.Value)
			lines = append(lines, row)
		}
	}
	return lines
}

// formatTimestamp renders a backend or local timestamp in pt-BR form,
// falling back to the raw string when it cannot be parsed.
func formatTimestamp(ts string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format("02/01/2006 15:04:05")
		}
	}
	return ts
}
