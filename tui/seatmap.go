package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eventhub-cli/booking"
	"eventhub-cli/model"
)

func (m appModel) handleSeatMapKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1, 0)
		return m, nil, true
	case "down", "j":
		m.moveCursor(1, 0)
		return m, nil, true
	case "left", "h":
		m.moveCursor(0, -1)
		return m, nil, true
	case "right", "l":
		m.moveCursor(0, 1)
		return m, nil, true
	case " ", "enter":
		if _, err := m.booking.Toggle(model.SeatID(m.cursorRow, m.cursorSeat)); err != nil {
			return m, errCmd(err), true
		}
		return m, nil, true
	case "a":
		return m, m.notifyCmd(m.booking.AddSelected()), true
	}
	return m, nil, false
}

// moveCursor keeps the cursor inside the grid of the open layout.
func (m *appModel) moveCursor(dRow int, dSeat int) {
	layout := m.booking.Layout()
	m.cursorRow = clamp(m.cursorRow+dRow, 1, layout.Rows)
	m.cursorSeat = clamp(m.cursorSeat+dSeat, 1, layout.SeatsPerRow)
}

func clamp(v int, lo int, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

func (m appModel) renderSeatMap() string {
	layout := m.booking.Layout()
	if layout.Rows == 0 || layout.SeatsPerRow == 0 {
		return "Нет схемы зала."
	}
	event, _ := m.booking.OpenEvent()

	cellWidth := max(2, len(strconv.Itoa(layout.SeatsPerRow)))
	rowWidth := max(2, len(strconv.Itoa(layout.Rows)))
	gridWidth := layout.SeatsPerRow*(cellWidth+1) - 1

	seatStyleAvailable := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatStyleSelected := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("5"))
	seatStyleBooked := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle := lipgloss.NewStyle().Reverse(true)

	stageStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214"))
	stageBorderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Background(lipgloss.Color("236"))
	stage := screenBarBlock(gridWidth, m.site.StageLabel)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(event.Title))
	b.WriteString("\n")
	b.WriteString(hint(strings.TrimSpace(fmt.Sprintf("%s %s • %s", event.Date, event.Time, event.Venue))))
	b.WriteString("\n\n")
	indent := strings.Repeat(" ", rowWidth+1)
	b.WriteString(indent + stageBorderStyle.Render(stage.top) + "\n")
	b.WriteString(indent + stageStyle.Render(stage.mid) + "\n")
	b.WriteString(indent + stageBorderStyle.Render(stage.bot) + "\n\n")

	for row := 1; row <= layout.Rows; row++ {
		label := strconv.Itoa(row)
		b.WriteString(fmt.Sprintf("%*s ", rowWidth, label))
		for _, seat := range layout.Row(row) {
			rendered := padCell(strconv.Itoa(seat.Number), cellWidth)
			switch seat.Status {
			case model.SeatSelected:
				rendered = seatStyleSelected.Render(rendered)
			case model.SeatBooked:
				rendered = seatStyleBooked.Render(padCell("XX", cellWidth))
			default:
				rendered = seatStyleAvailable.Render(rendered)
			}
			if seat.Row == m.cursorRow && seat.Number == m.cursorSeat {
				rendered = cursorStyle.Render(rendered)
			}
			b.WriteString(rendered)
			if seat.Number < layout.SeatsPerRow {
				b.WriteString(" ")
			}
		}
		b.WriteString(fmt.Sprintf(" %*s\n", rowWidth, label))
	}
	b.WriteString("\n")

	if seat, ok := layout.At(m.cursorRow, m.cursorSeat); ok {
		b.WriteString(fmt.Sprintf("Ряд %d, Место %d • %s • %s\n", seat.Row, seat.Number, booking.FormatRub(seat.Price), seatStatusLabel(seat.Status)))
	}

	selected := layout.Selected()
	summary := "Выберите места на схеме"
	if len(selected) > 0 {
		summary = fmt.Sprintf("Выбрано: %d %s • %s", len(selected), booking.SeatsWord(len(selected)), booking.FormatRub(layout.SelectedTotal()))
		summary = lipgloss.NewStyle().Bold(true).Render(summary) + "  " + hint("a добавить в корзину")
	}
	b.WriteString(summary + "\n\n")

	counts := layout.Counts()
	legend := "Обозначения: цифры свободно • выделено выбрано • XX занято"
	stats := fmt.Sprintf("Свободно: %d • Выбрано: %d • Занято: %d", counts[model.SeatAvailable], counts[model.SeatSelected], counts[model.SeatBooked])
	return b.String() + hint(legend) + "\n" + hint(stats)
}

func seatStatusLabel(status model.SeatStatus) string {
	switch status {
	case model.SeatSelected:
		return "выбрано"
	case model.SeatBooked:
		return "занято"
	default:
		return "свободно"
	}
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

type screenBlock struct {
	top string
	mid string
	bot string
}

// screenBarBlock draws the stage bar. label may hold multi-byte runes, so
// widths are measured in cells.
func screenBarBlock(width int, label string) screenBlock {
	labelWidth := lipgloss.Width(label)
	if width < labelWidth+4 {
		width = labelWidth + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - (labelWidth + 2) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}
