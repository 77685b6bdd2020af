// Package ui composes the terminal interface: status bar, sidebar with
// promotion history, chat transcript, and input. All state changes funnel
// through the bubbletea update loop, so the transcript controller only ever
// runs on one goroutine.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ElaineMBarros/promoterm/internal/api"
	"github.com/ElaineMBarros/promoterm/internal/archive"
	"github.com/ElaineMBarros/promoterm/internal/chat"
	"github.com/ElaineMBarros/promoterm/internal/logger"
	"github.com/ElaineMBarros/promoterm/internal/session"
)

const (
	sidebarWidth = 34

	// Delay before reloading history after a completion signal, giving the
	// backend time to finish its write. Best-effort by design.
	historyRefreshDelay = 500 * time.Millisecond
)

type statusLoadedMsg struct {
	status *api.SystemStatus
	err    error
}

type historyLoadedMsg struct {
	records []api.PromotionRecord
	err     error
}

type chatReplyMsg struct {
	// forSession is the session the request was sent under; replies for a
	// session that has since been reset are dropped.
	forSession string
	resp       *api.ChatResponse
	err        error
}

type refreshHistoryMsg struct{}

type Model struct {
	client     *api.Client
	controller *chat.Controller
	recents    *session.Recents
	archives   *archive.Store // nil when the archive could not be opened

	transcript TranscriptModel
	input      InputModel
	sidebar    SidebarModel
	statusbar  StatusBarModel
	spinner    spinner.Model
	theme      Theme

	width  int
	height int
	notice string
}

func NewModel(client *api.Client, controller *chat.Controller, recents *session.Recents, archives *archive.Store) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		client:     client,
		controller: controller,
		recents:    recents,
		archives:   archives,
		transcript: NewTranscriptModel(),
		input:      NewInputModel(),
		sidebar:    NewSidebarModel(),
		statusbar:  NewStatusBarModel(),
		spinner:    sp,
		theme:      DefaultTheme(),
	}
	m.sidebar.SetRecents(recents.List())
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.input.Init(),
		m.loadStatus(),
		m.loadHistory(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		mainWidth := msg.Width - sidebarWidth
		mainHeight := msg.Height - 8 // status bar, input box, help line
		m.statusbar.SetWidth(msg.Width)
		m.sidebar.SetSize(sidebarWidth, mainHeight)
		m.transcript.SetSize(mainWidth, mainHeight)
		m.input.SetWidth(mainWidth)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+n":
			m.startNewPromotion()
			return m, nil
		case "enter":
			req, ok := m.controller.Submit(m.input.Value())
			if !ok {
				return m, nil
			}
			m.input.Reset()
			m.notice = ""
			m.transcript.SetMessages(m.controller.Messages())
			cmds = append(cmds, m.sendChat(req), m.spinner.Tick)
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case chatReplyMsg:
		// Drop replies that arrived after a reset; the session they belong
		// to no longer exists on screen.
		if !m.controller.Sending() || msg.forSession != m.controller.SessionID() {
			logger.Debug("dropping stale chat reply", "session", msg.forSession)
			return m, nil
		}
		if msg.err != nil {
			m.controller.Fail(msg.err)
			m.notice = m.theme.ErrorMessage.Render("Não foi possível falar com o agente. Tente novamente.")
			return m, nil
		}
		eff := m.controller.Apply(msg.resp)
		m.transcript.SetMessages(m.controller.Messages())
		if eff.SavedPath != "" {
			m.notice = m.theme.SystemMessage.Render("📥 Planilha salva em " + eff.SavedPath)
		}
		if eff.RecentsChanged {
			m.sidebar.SetRecents(m.recents.List())
		}
		if eff.RefreshHistory {
			cmds = append(cmds, tea.Tick(historyRefreshDelay, func(time.Time) tea.Msg {
				return refreshHistoryMsg{}
			}))
		}
		return m, tea.Batch(cmds...)

	case refreshHistoryMsg:
		return m, m.loadHistory()

	case statusLoadedMsg:
		if msg.err != nil {
			logger.Warn("status load failed", "error", msg.err)
			return m, nil
		}
		m.statusbar.SetStatus(msg.status)
		return m, nil

	case historyLoadedMsg:
		if msg.err != nil {
			logger.Warn("history load failed", "error", msg.err)
			return m, nil
		}
		m.sidebar.SetRecords(msg.records)
		return m, nil

	case spinner.TickMsg:
		if m.controller.Sending() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.transcript, cmd = m.transcript.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	help := "enter: enviar  •  ctrl+n: nova promoção  •  ctrl+c: sair"
	if m.controller.Sending() {
		help = m.spinner.View() + " enviando..."
	}

	bottom := m.notice
	if bottom != "" {
		bottom += "\n"
	}
	bottom += m.theme.InputBorder.Render(m.input.View()) + "\n" + m.theme.HelpLine.Render(help)

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.sidebar.View(),
		lipgloss.JoinVertical(lipgloss.Left, m.transcript.View(), bottom),
	)

	return lipgloss.JoinVertical(lipgloss.Left, m.statusbar.View(), main)
}

// startNewPromotion archives the finished transcript and resets the
// controller to a fresh session. Archiving is best-effort.
func (m *Model) startNewPromotion() {
	if m.archives != nil {
		msgs := m.controller.Messages()
		if len(msgs) > 0 {
			title := m.controller.State().Title()
			if err := m.archives.ArchiveSession(m.controller.SessionID(), title, msgs); err != nil {
				logger.Warn("archive session", "error", err)
			}
		}
	}
	m.controller.Reset()
	m.transcript.SetMessages(nil)
	m.notice = m.theme.SystemMessage.Render("✨ Nova promoção iniciada")
}

func (m Model) loadStatus() tea.Cmd {
	return func() tea.Msg {
		status, err := m.client.Status(context.Background())
		return statusLoadedMsg{status: status, err: err}
	}
}

func (m Model) loadHistory() tea.Cmd {
	return func() tea.Msg {
		records, err := m.client.Promotions(context.Background())
		return historyLoadedMsg{records: records, err: err}
	}
}

func (m Model) sendChat(req api.ChatRequest) tea.Cmd {
	forSession := req.SessionID
	return func() tea.Msg {
		resp, err := m.client.Send(context.Background(), req)
		return chatReplyMsg{forSession: forSession, resp: resp, err: err}
	}
}
