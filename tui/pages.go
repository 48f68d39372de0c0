package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eventhub-cli/booking"
	"eventhub-cli/content"
	"eventhub-cli/model"
)

var viewStates = map[string]appState{
	"home":     stateCatalog,
	"about":    stateAbout,
	"register": stateRegister,
	"faq":      stateFAQ,
	"contacts": stateContacts,
	"account":  stateAccount,
}

// Views lists the names accepted as a start view, in menu order.
func Views() []string {
	return []string{"home", "about", "register", "faq", "contacts", "account"}
}

func ValidView(name string) bool {
	_, ok := viewStates[name]
	return ok
}

type navItem struct {
	label string
	desc  string
	state appState
}

func (n navItem) Title() string       { return n.label }
func (n navItem) Description() string { return n.desc }
func (n navItem) FilterValue() string { return strings.ToLower(n.label) }

func buildNavItems() []list.Item {
	return []list.Item{
		navItem{label: "Главная", desc: "Афиша и выбор мест", state: stateCatalog},
		navItem{label: "О нас", desc: "История, команда и партнёры", state: stateAbout},
		navItem{label: "Регистрация", desc: "Создать аккаунт", state: stateRegister},
		navItem{label: "FAQ", desc: "Частые вопросы", state: stateFAQ},
		navItem{label: "Контакты", desc: "Связаться с поддержкой", state: stateContacts},
		navItem{label: "Кабинет", desc: "Профиль и выход", state: stateAccount},
	}
}

func (m appModel) pageWidth() int {
	if m.width > 20 {
		return min(m.width-4, 90)
	}
	return 80
}

func (m appModel) aboutView() string {
	page := content.AboutPage(m.site.Name)
	bold := lipgloss.NewStyle().Bold(true)
	para := lipgloss.NewStyle().Width(m.pageWidth())

	var b strings.Builder
	b.WriteString(bold.Render(page.Heading) + "\n" + hint(page.Tagline) + "\n\n")
	b.WriteString(bold.Render("Наша история") + "\n")
	for _, p := range page.Story {
		b.WriteString(para.Render(p) + "\n\n")
	}
	b.WriteString(bold.Render("Команда") + "\n")
	for _, member := range page.Team {
		b.WriteString(fmt.Sprintf("  %s %s\n", member.Name, hint(member.Role)))
	}
	b.WriteString("\n" + bold.Render("Партнёры") + "\n")
	for _, partner := range page.Partners {
		b.WriteString(fmt.Sprintf("  %s %s\n", partner.Name, hint(partner.Category)))
	}
	return b.String()
}

func (m appModel) handleFAQKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	count := len(content.FAQs())
	switch msg.String() {
	case "up", "k":
		m.faqCursor = clamp(m.faqCursor-1, 0, count-1)
		return m, nil, true
	case "down", "j":
		m.faqCursor = clamp(m.faqCursor+1, 0, count-1)
		return m, nil, true
	case "enter", " ":
		if m.faqOpen == m.faqCursor {
			m.faqOpen = -1
		} else {
			m.faqOpen = m.faqCursor
		}
		return m, nil, true
	case "s":
		next, cmd := m.goTo(stateContacts)
		return next, cmd, true
	}
	return m, nil, false
}

func (m appModel) faqView() string {
	bold := lipgloss.NewStyle().Bold(true)
	focus := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	answer := lipgloss.NewStyle().Width(m.pageWidth()).PaddingLeft(4)

	var b strings.Builder
	b.WriteString(bold.Render("Частые вопросы") + "\n" + hint("Ответы на самые популярные вопросы") + "\n\n")
	for i, faq := range content.FAQs() {
		marker := "+"
		if i == m.faqOpen {
			marker = "-"
		}
		line := fmt.Sprintf("%s %s", marker, faq.Question)
		if i == m.faqCursor {
			line = focus.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
		if i == m.faqOpen {
			b.WriteString(answer.Render(faq.Answer) + "\n")
		}
	}
	b.WriteString("\n" + bold.Render("Не нашли ответ?") + "\n")
	b.WriteString(hint("Наша служба поддержки готова помочь вам 24/7 • s написать в поддержку"))
	return b.String()
}

func (m appModel) contactsView() string {
	bold := lipgloss.NewStyle().Bold(true)

	var b strings.Builder
	b.WriteString(bold.Render("Контакты") + "\n" + hint("Свяжитесь с нами удобным способом") + "\n\n")
	for _, channel := range content.Channels() {
		b.WriteString(fmt.Sprintf("%s: %s\n%s\n", bold.Render(channel.Label), channel.Value, hint(channel.Note)))
	}
	b.WriteString("\n" + bold.Render("Форма обратной связи") + "\n\n")
	b.WriteString(m.contact.view())
	return b.String()
}

const (
	accountProfile = iota
	accountEvents
	accountTickets
)

var accountTabs = []string{"Профиль", "Мои мероприятия", "Билеты"}

func (m appModel) handleAccountKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	if !m.userLoaded {
		return m, nil, false
	}
	switch msg.String() {
	case "left", "right", "tab":
		if !m.hasUser {
			return m, nil, false
		}
		step := 1
		if msg.String() == "left" {
			step = -1
		}
		n := len(accountTabs)
		m.accountTab = ((m.accountTab+step)%n + n) % n
		return m, nil, true
	case "l":
		if m.hasUser {
			return m, m.logoutCmd(), true
		}
	case "enter":
		if !m.hasUser {
			next, cmd := m.goTo(stateRegister)
			return next, cmd, true
		}
	case "f":
		next, cmd := m.goTo(stateFAQ)
		return next, cmd, true
	case "s":
		next, cmd := m.goTo(stateContacts)
		return next, cmd, true
	}
	return m, nil, false
}

func (m appModel) accountView() string {
	bold := lipgloss.NewStyle().Bold(true)
	if !m.userLoaded {
		return fmt.Sprintf("%s Загрузка профиля", m.spinner.View())
	}
	if !m.hasUser {
		return bold.Render("Войдите в аккаунт") + "\n" +
			hint("Для доступа к личному кабинету необходима регистрация") + "\n\n" +
			hint("enter зарегистрироваться")
	}

	var b strings.Builder
	b.WriteString(bold.Render("Личный кабинет") + "\n" + hint("Управляйте своими мероприятиями и билетами") + "\n\n")
	b.WriteString(tabBar(accountTabs, m.accountTab) + "\n\n")
	switch m.accountTab {
	case accountEvents:
		b.WriteString(m.ordersView())
	case accountTickets:
		b.WriteString(m.ticketsView())
	default:
		b.WriteString(m.profileView())
	}
	return b.String()
}

func (m appModel) profileView() string {
	bold := lipgloss.NewStyle().Bold(true)
	rows := [][2]string{
		{"ФИО", m.user.FullName},
		{"Email", m.user.Email},
		{"Телефон", m.user.Phone},
	}
	if m.user.Company != "" {
		rows = append(rows, [2]string{"Компания", m.user.Company})
	}

	var b strings.Builder
	b.WriteString(bold.Render("Личные данные") + "\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s\n  %s\n", hint(row[0]), row[1]))
	}
	if !m.user.RegisteredAt.IsZero() {
		b.WriteString("\n" + hint("Дата регистрации: "+m.user.RegisteredAt.Local().Format("02.01.2006")) + "\n")
	}

	seats, spent := 0, 0
	for _, order := range m.booking.Orders() {
		seats += order.TotalSeats
		spent += order.TotalPrice
	}
	b.WriteString("\n" + bold.Render("Статистика") + "\n")
	b.WriteString(fmt.Sprintf("  %s %d\n  %s %s\n", hint("Билетов куплено:"), seats, hint("Потрачено:"), booking.FormatRub(spent)))

	b.WriteString("\n" + bold.Render("Нужна помощь?") + "\n")
	b.WriteString(hint("Обратитесь в службу поддержки или посетите раздел FAQ"))
	return b.String()
}

// bookedItem is one event of a past checkout.
type bookedItem struct {
	model.CartItem
	date string
}

func (m appModel) bookedItems() []bookedItem {
	var items []bookedItem
	for _, order := range m.booking.Orders() {
		for _, item := range order.Items {
			date := order.PlacedAt.Local().Format("02.01.2006")
			if event, ok := m.booking.Event(item.EventID); ok && event.Date != "" {
				date = event.Date
			}
			items = append(items, bookedItem{CartItem: item, date: date})
		}
	}
	return items
}

func (m appModel) ordersView() string {
	items := m.bookedItems()
	if len(items) == 0 {
		return hint("У вас пока нет бронирований. Выберите места в афише и оформите заказ.")
	}
	bold := lipgloss.NewStyle().Bold(true)
	confirmed := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	var b strings.Builder
	for _, item := range items {
		b.WriteString(bold.Render(item.EventTitle) + "  " + confirmed.Render("Подтверждено") + "\n")
		b.WriteString(hint(item.date) + "\n")
		b.WriteString(fmt.Sprintf("Мест: %d • %s\n\n", len(item.Seats), booking.FormatRub(item.Total())))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m appModel) ticketsView() string {
	items := m.bookedItems()
	if len(items) == 0 {
		return hint("Билетов пока нет.")
	}
	bold := lipgloss.NewStyle().Bold(true)

	var b strings.Builder
	for _, item := range items {
		b.WriteString(bold.Render(item.EventTitle) + "\n" + hint(item.date) + "\n")
		for _, seat := range item.Seats {
			b.WriteString(fmt.Sprintf("  Ряд %d, Место %d\n", seat.Row, seat.Number))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
