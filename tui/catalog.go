package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eventhub-cli/booking"
	"eventhub-cli/model"
)

type eventItem struct {
	event  model.Event
	recent bool
}

func (e eventItem) Title() string {
	if e.recent {
		return e.event.Title + " • недавно"
	}
	return e.event.Title
}

func (e eventItem) Description() string {
	parts := []string{e.event.Category}
	when := strings.TrimSpace(e.event.Date + " " + e.event.Time)
	if when != "" {
		parts = append(parts, when)
	}
	if e.event.Venue != "" {
		parts = append(parts, e.event.Venue)
	}
	parts = append(parts, "от "+booking.FormatRub(e.event.Price))
	parts = append(parts, fmt.Sprintf("%d %s", e.event.AvailableSeats, booking.SeatsWord(e.event.AvailableSeats)))
	return strings.Join(parts, " • ")
}

func (e eventItem) FilterValue() string {
	return strings.ToLower(e.event.Title + " " + e.event.Category + " " + e.event.Venue)
}

func buildEventItems(events []model.Event, recent map[string]bool) []list.Item {
	items := make([]list.Item, 0, len(events))
	for _, event := range events {
		items = append(items, eventItem{event: event, recent: recent[event.ID]})
	}
	return items
}

func (m appModel) currentTabKey() string {
	if len(m.site.Tabs) == 0 {
		return ""
	}
	return m.site.Tabs[m.tab%len(m.site.Tabs)].Key
}

// refreshEvents rebuilds the catalog list for the active tab.
func (m *appModel) refreshEvents() {
	events := m.site.Filter(m.booking.Events(), m.currentTabKey())
	m.eventList.SetItems(buildEventItems(events, m.recent))
}

func (m appModel) switchTab(step int) appModel {
	n := len(m.site.Tabs)
	if n == 0 {
		return m
	}
	m.tab = ((m.tab+step)%n + n) % n
	m.refreshEvents()
	m.eventList.Select(0)
	return m
}

func (m appModel) handleCatalogKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "left":
		return m.switchTab(-1), nil, true
	case "right", "tab":
		return m.switchTab(1), nil, true
	case "enter":
		item, ok := m.eventList.SelectedItem().(eventItem)
		if !ok {
			return m, nil, true
		}
		if _, err := m.booking.Open(item.event.ID); err != nil {
			return m, errCmd(err), true
		}
		m.cursorRow, m.cursorSeat = 1, 1
		m.recent[item.event.ID] = true
		m.refreshEvents()
		m.state = stateSeatMap
		logEvent("catalog", "open", fmt.Sprintf("site=%s event=%s", m.site.Variant, item.event.ID))
		return m, rememberEventCmd(string(m.site.Variant), item.event), true
	}
	return m, nil, false
}

func (m appModel) catalogView() string {
	labels := make([]string, 0, len(m.site.Tabs))
	for _, tab := range m.site.Tabs {
		labels = append(labels, tab.Label)
	}
	bar := tabBar(labels, m.tab)

	body := m.eventList.View()
	if len(m.eventList.Items()) == 0 {
		body = hint("В этой категории пока нет событий.")
	}
	return hint(m.site.Subheading) + "\n\n" + bar + "\n\n" + body
}

func tabBar(labels []string, current int) string {
	if len(labels) == 0 {
		return ""
	}
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("63")).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().Faint(true).Padding(0, 1)

	tabs := make([]string, 0, len(labels))
	for i, label := range labels {
		if i == current%len(labels) {
			tabs = append(tabs, active.Render(label))
			continue
		}
		tabs = append(tabs, inactive.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
