package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eventhub-cli/booking"
	"eventhub-cli/model"
)

type cartLine struct {
	eventID string
	seat    model.Seat
}

func cartLines(items []model.CartItem) []cartLine {
	var lines []cartLine
	for _, item := range items {
		for _, seat := range item.Seats {
			lines = append(lines, cartLine{eventID: item.EventID, seat: seat})
		}
	}
	return lines
}

func (m appModel) handleCartKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	lines := cartLines(m.booking.Cart().Items())
	switch msg.String() {
	case "up", "k":
		m.cartCursor = clamp(m.cartCursor-1, 0, len(lines)-1)
		return m, nil, true
	case "down", "j":
		m.cartCursor = clamp(m.cartCursor+1, 0, len(lines)-1)
		return m, nil, true
	case "d", "x", "delete", "backspace":
		if len(lines) == 0 {
			return m, nil, true
		}
		line := lines[clamp(m.cartCursor, 0, len(lines)-1)]
		n, ok := m.booking.RemoveFromCart(line.eventID, line.seat.ID)
		if !ok {
			return m, nil, true
		}
		m.cartCursor = clamp(m.cartCursor, 0, len(lines)-2)
		return m, m.notifyCmd(n), true
	case "enter":
		if m.booking.Cart().IsEmpty() {
			return m, nil, true
		}
		receipt, n := m.booking.Checkout()
		m.lastOrder = receipt.OrderID
		m.cartCursor = 0
		next, _ := m.goBack()
		return next, next.notifyCmd(n), true
	}
	return m, nil, false
}

func (m appModel) cartView() string {
	cart := m.booking.Cart()
	title := lipgloss.NewStyle().Bold(true).Render("Корзина")
	if cart.IsEmpty() {
		return title + "\n\n" + hint("Корзина пуста. Выберите места на схеме зала и нажмите a.")
	}

	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	var b strings.Builder
	b.WriteString(title + "\n\n")
	index := 0
	for _, item := range cart.Items() {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(item.EventTitle))
		b.WriteString(hint(fmt.Sprintf("  %d %s • %s", len(item.Seats), booking.SeatsWord(len(item.Seats)), booking.FormatRub(item.Total()))))
		b.WriteString("\n")
		for _, seat := range item.Seats {
			line := fmt.Sprintf("Ряд %d, Место %d", seat.Row, seat.Number)
			price := booking.FormatRub(seat.Price)
			if index == m.cartCursor {
				b.WriteString(cursorStyle.Render(fmt.Sprintf("> %-22s %s", line, price)))
			} else {
				b.WriteString(fmt.Sprintf("  %-22s %s", line, price))
			}
			b.WriteString("\n")
			index++
		}
		b.WriteString("\n")
	}

	total := fmt.Sprintf("Итого: %d %s • %s", cart.TotalSeats(), booking.SeatsWord(cart.TotalSeats()), booking.FormatRub(cart.TotalPrice()))
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(total))
	b.WriteString("\n" + hint("enter оформить заказ"))
	return b.String()
}
