// Package ui holds small bubbletea models shared by the TUI states.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NotificationLifetime is how long a notification stays on screen.
const NotificationLifetime = 3 * time.Second

// Model shows a short lived notification under the main content.
type Model struct {
	notification string
	id           int
}

type notificationMsg struct {
	text string
}

type clearNotificationMsg struct {
	id int
}

var notificationStyle = lipgloss.NewStyle().Faint(true)

// Notify returns a command that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return notificationMsg{text: text}
	}
}

// Update handles notification messages and reports whether msg was one.
func (m *Model) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case notificationMsg:
		m.notification = msg.text
		m.id++
		id := m.id
		return tea.Tick(NotificationLifetime, func(time.Time) tea.Msg {
			return clearNotificationMsg{id: id}
		}), true
	case clearNotificationMsg:
		// a newer notification replaced this one
		if msg.id == m.id {
			m.notification = ""
		}
		return nil, true
	}
	return nil, false
}

// Notification is the text currently shown, "" when none.
func (m *Model) Notification() string {
	return m.notification
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}
	return content + "  " + notificationStyle.Render(m.notification)
}
