package tui

import (
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eventhub-cli/notify"
)

// notifyCmd shows n and schedules its removal after the center's TTL.
func (m appModel) notifyCmd(n notify.Notification) tea.Cmd {
	id := m.toasts.Push(n, m.now())
	return tea.Tick(m.toasts.TTL(), func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m appModel) toastView() string {
	active := m.toasts.Active(m.now())
	if len(active) == 0 {
		return ""
	}
	info := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1)
	failure := info.BorderForeground(lipgloss.Color("1"))

	boxes := make([]string, 0, len(active))
	for _, toast := range active {
		style := info
		if toast.Message.Severity == notify.Error {
			style = failure
		}
		text := lipgloss.NewStyle().Bold(true).Render(toast.Message.Title)
		if toast.Message.Description != "" {
			text += "\n" + toast.Message.Description
		}
		boxes = append(boxes, style.Render(text))
	}
	return strings.Join(boxes, "\n")
}

func logEvent(module string, action string, msg string) {
	log.Printf("[%s] action=%s %s", module, action, msg)
}

func shortOrderID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
