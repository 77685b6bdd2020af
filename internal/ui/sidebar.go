package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ElaineMBarros/promoterm/internal/api"
	"github.com/ElaineMBarros/promoterm/internal/session"
)

// SidebarModel renders the recent-promotions quick list and the promotion
// history fetched from the backend. Read-only: data arrives from outside.
type SidebarModel struct {
	recents []session.RecentPromotion
	records []api.PromotionRecord
	width   int
	height  int
	theme   Theme
}

func NewSidebarModel() SidebarModel {
	return SidebarModel{theme: DefaultTheme()}
}

func (m *SidebarModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *SidebarModel) SetRecents(recents []session.RecentPromotion) {
	m.recents = recents
}

func (m *SidebarModel) SetRecords(records []api.PromotionRecord) {
	m.records = records
}

func (m SidebarModel) View() string {
	var sections []string

	if len(m.recents) > 0 {
		lines := []string{m.theme.SidebarTitle.Render("Sessões recentes")}
		for _, r := range m.recents {
			lines = append(lines,
				m.theme.CardTitle.Render(r.Title),
				m.theme.CardMeta.Render(r.Date),
				"")
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(m.records) == 0 {
		sections = append(sections,
			m.theme.SidebarTitle.Render("Promoções recentes")+"\n"+
				m.theme.EmptyState.Render("Ainda não enviamos promoções.\nInicie uma conversa no chat\ne acompanhe por aqui."))
	} else {
		lines := []string{m.theme.SidebarTitle.Render(fmt.Sprintf("Promoções recentes (%d)", len(m.records)))}
		for _, rec := range m.records {
			lines = append(lines, m.renderRecord(rec), "")
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	content := strings.Join(sections, "\n\n")
	return m.theme.Sidebar.Width(m.width).Height(m.height).Render(content)
}

// renderRecord is one history card, with the same placeholder fallbacks the
// promotion cards always had.
func (m SidebarModel) renderRecord(rec api.PromotionRecord) string {
	title := rec.Titulo
	if title == "" {
		title = "Promoção sem título"
	}

	var meta string
	if rec.Mecanica != "" {
		meta = "📊 " + rec.Mecanica + " • "
	}
	if rec.Segmentacao != "" {
		meta += rec.Segmentacao
	} else {
		meta += "Público geral"
	}

	period := "Período não especificado"
	if rec.PeriodoInicio != "" && rec.PeriodoFim != "" {
		period = rec.PeriodoInicio + " até " + rec.PeriodoFim
	}

	var stamp string
	if rec.SentAt != "" {
		stamp = "✅ Enviada: " + formatRecordTime(rec.SentAt)
	} else {
		stamp = "💾 Criada: " + formatRecordTime(rec.CreatedAt)
	}

	return strings.Join([]string{
		m.theme.CardTitle.Render(title),
		m.theme.CardMeta.Render(meta),
		m.theme.CardMeta.Render("📅 " + period),
		m.theme.CardMeta.Render(stamp),
	}, "\n")
}

func formatRecordTime(ts string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format("02/01/2006 15:04")
		}
	}
	return ts
}
