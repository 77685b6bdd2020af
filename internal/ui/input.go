package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

type InputModel struct {
	textarea textarea.Model
}

func NewInputModel() InputModel {
	ta := textarea.New()
	ta.Placeholder = "Descreva a promoção ou peça uma sugestão ao agente"
	ta.Focus()
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	return InputModel{
		textarea: ta,
	}
}

func (m InputModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m InputModel) Update(msg tea.Msg) (InputModel, tea.Cmd) {
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m InputModel) View() string {
	return m.textarea.View()
}

func (m InputModel) Value() string {
	return m.textarea.Value()
}

func (m *InputModel) Reset() {
	m.textarea.Reset()
}

func (m *InputModel) SetWidth(width int) {
	m.textarea.SetWidth(width - 4) // Account for border
}

func (m *InputModel) Focus() tea.Cmd {
	return m.textarea.Focus()
}

func (m *InputModel) Blur() {
	m.textarea.Blur()
}
