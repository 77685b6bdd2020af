package ui

import (
	"fmt"
	"strings"

	"github.com/ElaineMBarros/promoterm/internal/api"
)

// StatusBarModel renders the backend health snapshot fetched once at
// startup. Absent status (fetch failed) renders a quiet placeholder.
type StatusBarModel struct {
	status *api.SystemStatus
	width  int
	theme  Theme
}

func NewStatusBarModel() StatusBarModel {
	return StatusBarModel{theme: DefaultTheme()}
}

func (m *StatusBarModel) SetWidth(width int) {
	m.width = width
}

func (m *StatusBarModel) SetStatus(status *api.SystemStatus) {
	m.status = status
}

func (m StatusBarModel) View() string {
	return m.theme.StatusBar.Width(m.width).Render(m.line())
}

func (m StatusBarModel) line() string {
	if m.status == nil {
		return "PromoAgente • status indisponível"
	}
	s := m.status

	ready := m.theme.StatusBad.Render("●") + " sistema indisponível"
	if s.SystemReady {
		ready = m.theme.StatusOK.Render("●") + " sistema pronto"
	}

	parts := []string{
		"PromoAgente",
		ready,
		flag("OpenAI", s.OpenAI),
		flag("Agno", s.AgnoFramework),
		flag("Orquestrador", s.Orchestrator),
		fmt.Sprintf("promoções: %d", s.PromotionsCount),
		fmt.Sprintf("mensagens: %d", s.MessagesStored),
	}
	if s.Environment != "" {
		parts = append(parts, s.Environment)
	}
	return strings.Join(parts, " │ ")
}

func flag(name string, ok bool) string {
	if ok {
		return name + " ✓"
	}
	return name + " ✗"
}
