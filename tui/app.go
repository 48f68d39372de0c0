package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eventhub-cli/account"
	"eventhub-cli/booking"
	"eventhub-cli/catalog"
	"eventhub-cli/model"
	"eventhub-cli/notify"
	"eventhub-cli/service"
	"eventhub-cli/store"
)

type appState int

const (
	stateLoadingCatalog appState = iota
	stateCatalog
	stateSeatMap
	stateCart
	stateNav
	stateRegister
	stateAccount
	stateAbout
	stateFAQ
	stateContacts
	stateError
)

const ioTimeout = 10 * time.Second

// Options wires the program to its environment. Client may be nil, in which
// case the built-in catalog of Site is used.
type Options struct {
	Site       catalog.Site
	Sessions   account.SessionStore
	Client     *service.Client
	CatalogTTL time.Duration
	ToastTTL   time.Duration
	StartView  string
}

type appModel struct {
	site       catalog.Site
	booking    *booking.Session
	toasts     *notify.Center
	sessions   account.SessionStore
	client     *service.Client
	catalogTTL time.Duration
	now        func() time.Time

	state       appState
	lastState   appState
	returnState appState
	startState  appState
	err         error

	width  int
	height int

	tab       int
	recent    map[string]bool
	eventList list.Model
	navList   list.Model

	cursorRow  int
	cursorSeat int
	cartCursor int
	lastOrder  string

	register inputForm
	contact  inputForm

	user       model.User
	hasUser    bool
	userLoaded bool

	faqCursor  int
	faqOpen    int
	accountTab int

	spinner spinner.Model
}

type errMsg struct {
	err            error
	returnState    appState
	returnStateSet bool
}

type catalogMsg struct {
	events []model.Event
	cached bool
	err    error
}

type recentMsg struct {
	ids map[string]bool
}

type accountMsg struct {
	user model.User
	ok   bool
	err  error
}

type registeredMsg struct {
	user model.User
	err  error
}

type loggedOutMsg struct {
	err error
}

type toastExpiredMsg struct {
	id int
}

func New(opts Options) tea.Model {
	m := appModel{
		site:       opts.Site,
		booking:    booking.NewSession(opts.Site.Events, opts.Site.Layout),
		toasts:     notify.NewCenter(opts.ToastTTL),
		sessions:   opts.Sessions,
		client:     opts.Client,
		catalogTTL: opts.CatalogTTL,
		now:        time.Now,
		recent:     map[string]bool{},
		faqOpen:    -1,
	}

	m.eventList = newList(opts.Site.Heading)
	m.navList = newList("Меню")
	m.navList.SetItems(buildNavItems())
	m.refreshEvents()

	m.register = newRegisterForm()
	m.contact = newContactForm()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	m.startState = stateCatalog
	if state, ok := viewStates[opts.StartView]; ok {
		m.startState = state
	}
	m.state = m.startState
	m.returnState = stateCatalog
	if m.client != nil {
		m.state = stateLoadingCatalog
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadRecentCmd()}
	switch m.state {
	case stateLoadingCatalog:
		cmds = append(cmds, m.fetchCatalogCmd(), m.spinner.Tick)
	case stateAccount:
		cmds = append(cmds, m.loadAccountCmd(), m.spinner.Tick)
	case stateRegister, stateContacts:
		cmds = append(cmds, textinputBlink())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.handleFilterInput(msg) {
			return m, nil
		}
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}
		m = next
		// fallthrough to component update
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() {
			return m, cmd
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		if msg.returnStateSet {
			m.lastState = msg.returnState
		} else {
			m.lastState = recoverStateFrom(m.state)
		}
		m.state = stateError
		return m, nil

	case toastExpiredMsg:
		m.toasts.Dismiss(msg.id)
		return m, nil

	case catalogMsg:
		next, cmd := m.goTo(m.startState)
		if msg.err != nil {
			logEvent("catalog", "fallback", fmt.Sprintf("site=%s err=%v", next.site.Variant, msg.err))
			return next, tea.Batch(cmd, next.notifyCmd(notify.Errorf("Не удалось загрузить афишу", "Показано встроенное расписание")))
		}
		next.booking.SetEvents(msg.events)
		next.refreshEvents()
		logEvent("catalog", "loaded", fmt.Sprintf("site=%s events=%d cached=%t", next.site.Variant, len(msg.events), msg.cached))
		return next, cmd

	case recentMsg:
		m.recent = msg.ids
		m.refreshEvents()
		return m, nil

	case accountMsg:
		if msg.err != nil {
			return m, errWithStateCmd(msg.err, stateCatalog)
		}
		m.user = msg.user
		m.hasUser = msg.ok
		m.userLoaded = true
		return m, nil

	case registeredMsg:
		var fieldErrs account.FieldErrors
		if errors.As(msg.err, &fieldErrs) {
			m.register.errors = fieldErrs
			return m, nil
		}
		if msg.err != nil {
			return m, errWithStateCmd(msg.err, stateRegister)
		}
		m.user = msg.user
		m.hasUser = true
		m.userLoaded = true
		m.register.reset()
		m.state = stateAccount
		m.accountTab = accountProfile
		return m, m.notifyCmd(notify.Infof("Регистрация успешна!", "Добро пожаловать в "+m.site.Name))

	case loggedOutMsg:
		if msg.err != nil {
			return m, errWithStateCmd(msg.err, stateAccount)
		}
		m.user = model.User{}
		m.hasUser = false
		next, cmd := m.goTo(stateRegister)
		return next, tea.Batch(cmd, next.notifyCmd(notify.Infof("Вы вышли из аккаунта", "Будем рады видеть вас снова")))
	}

	var cmd tea.Cmd
	switch m.state {
	case stateCatalog:
		m.eventList, cmd = m.eventList.Update(msg)
	case stateNav:
		m.navList, cmd = m.navList.Update(msg)
	case stateRegister:
		cmd = m.register.update(msg)
	case stateContacts:
		cmd = m.contact.update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	body := ""
	switch m.state {
	case stateLoadingCatalog:
		body = m.loadingView()
	case stateCatalog:
		body = m.catalogView()
	case stateSeatMap:
		body = m.renderSeatMap()
	case stateCart:
		body = m.cartView()
	case stateNav:
		body = m.navList.View()
	case stateRegister:
		body = m.registerView()
	case stateAccount:
		body = m.accountView()
	case stateAbout:
		body = m.aboutView()
	case stateFAQ:
		body = m.faqView()
	case stateContacts:
		body = m.contactsView()
	case stateError:
		body = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()) + "\n\n" + hint("Нажмите esc, чтобы вернуться, или ctrl+c для выхода.")
	}
	view := header + "\n\n" + body
	if toasts := m.toastView(); toasts != "" {
		view += "\n\n" + toasts
	}
	return view
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render(m.site.Name)
	sub := []string{m.site.Tagline}
	if seats := m.booking.Cart().TotalSeats(); seats > 0 {
		sub = append(sub, fmt.Sprintf("Корзина: %d", seats))
	}
	if m.hasUser {
		sub = append(sub, m.user.FullName)
	}
	if m.state == stateSeatMap {
		if event, ok := m.booking.OpenEvent(); ok {
			sub = append(sub, event.Title)
		}
	}
	if m.lastOrder != "" && m.state == stateCatalog {
		sub = append(sub, "Последний заказ: "+shortOrderID(m.lastOrder))
	}
	meta := "\n" + lipgloss.NewStyle().Faint(true).Render(strings.Join(sub, " • "))

	hints := "ctrl+c выход • ctrl+o меню • ctrl+k корзина • esc назад"
	switch m.state {
	case stateCatalog:
		hints = "ctrl+c выход • ctrl+o меню • ctrl+k корзина • ←/→ категория • type to filter • enter выбрать места"
	case stateSeatMap:
		hints = "ctrl+c выход • esc назад • ←↑↓→/hjkl место • space выбрать • a в корзину • ctrl+k корзина"
	case stateCart:
		hints = "ctrl+c выход • esc назад • ↑/↓ место • d удалить • enter оформить заказ"
	case stateNav:
		hints = "ctrl+c выход • esc назад • enter перейти"
	case stateRegister, stateContacts:
		hints = "ctrl+c выход • esc назад • tab/↑/↓ поле • enter отправить"
	case stateAccount:
		hints = "ctrl+c выход • esc назад • ←/→ вкладка • l выйти • f FAQ • s поддержка"
	case stateFAQ:
		hints = "ctrl+c выход • esc назад • ↑/↓ вопрос • enter открыть"
	}
	filterLine := ""
	if listPtr := m.activeList(); listPtr != nil {
		if filter := listPtr.FilterValue(); filter != "" {
			filterLine = "\n" + hint(fmt.Sprintf("Фильтр: %s", filter))
		}
	}
	return title + meta + filterLine + "\n" + hint(hints)
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "q":
		if !m.isTextState() {
			return m, tea.Quit, true
		}
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		next, cmd := m.goBack()
		return next, cmd, true
	case "ctrl+o":
		if m.state != stateLoadingCatalog && m.state != stateNav {
			if m.state != stateCart {
				m.returnState = m.state
			}
			m.state = stateNav
		}
		return m, nil, true
	case "ctrl+k":
		if m.state != stateLoadingCatalog && m.state != stateCart {
			if m.state != stateNav {
				m.returnState = m.state
			}
			m.state = stateCart
			m.cartCursor = 0
		}
		return m, nil, true
	}

	switch m.state {
	case stateCatalog:
		return m.handleCatalogKey(msg)
	case stateSeatMap:
		return m.handleSeatMapKey(msg)
	case stateCart:
		return m.handleCartKey(msg)
	case stateNav:
		if msg.Type == tea.KeyEnter {
			item, ok := m.navList.SelectedItem().(navItem)
			if !ok {
				return m, nil, true
			}
			next, cmd := m.goTo(item.state)
			return next, cmd, true
		}
	case stateRegister:
		return m.handleRegisterKey(msg)
	case stateContacts:
		return m.handleContactsKey(msg)
	case stateAccount:
		return m.handleAccountKey(msg)
	case stateFAQ:
		return m.handleFAQKey(msg)
	}
	return m, nil, false
}

// goTo switches to one of the named views and starts whatever it needs.
func (m appModel) goTo(state appState) (appModel, tea.Cmd) {
	leaving := m.state == stateSeatMap || (m.state == stateNav && m.returnState == stateSeatMap)
	if leaving && state != stateSeatMap {
		m.booking.Close()
	}
	m.state = state
	switch state {
	case stateAccount:
		m.userLoaded = false
		m.accountTab = accountProfile
		return m, tea.Batch(m.loadAccountCmd(), m.spinner.Tick)
	case stateRegister:
		return m, m.register.focusField(0)
	case stateContacts:
		return m, m.contact.focusField(0)
	case stateFAQ:
		m.faqCursor = 0
		m.faqOpen = -1
	}
	return m, nil
}

func (m appModel) goBack() (appModel, tea.Cmd) {
	switch m.state {
	case stateSeatMap:
		m.booking.Close()
		m.state = stateCatalog
	case stateCart, stateNav:
		m.state = m.returnState
		if m.state == stateSeatMap {
			if _, ok := m.booking.OpenEvent(); !ok {
				m.state = stateCatalog
			}
		}
	case stateRegister, stateAccount, stateAbout, stateFAQ, stateContacts:
		m.state = stateCatalog
	case stateError:
		m.state = m.lastState
	default:
		return m, nil
	}
	return m, nil
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	listPtr.SetFilterText(listPtr.FilterValue() + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := trimLastRune(listPtr.FilterValue())
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateCatalog:
		return &m.eventList
	case stateNav:
		return &m.navList
	default:
		return nil
	}
}

// isTextState reports whether plain runes are typed into an input.
func (m appModel) isTextState() bool {
	return m.state == stateRegister || m.state == stateContacts || m.activeList() != nil
}

func (m appModel) isLoadingState() bool {
	return m.state == stateLoadingCatalog || (m.state == stateAccount && !m.userLoaded)
}

func (m appModel) loadingView() string {
	return fmt.Sprintf("%s Загрузка афиши\n\n%s", m.spinner.View(), hint("Получаем расписание..."))
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 8
	if h < 6 {
		h = 6
	}
	m.eventList.SetSize(m.width, h)
	m.navList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err}
	}
}

func errWithStateCmd(err error, returnState appState) tea.Cmd {
	return func() tea.Msg {
		return errMsg{
			err:            err,
			returnState:    returnState,
			returnStateSet: true,
		}
	}
}

func recoverStateFrom(state appState) appState {
	switch state {
	case stateLoadingCatalog, stateError:
		return stateCatalog
	default:
		return state
	}
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func (m appModel) fetchCatalogCmd() tea.Cmd {
	client := m.client
	site := string(m.site.Variant)
	ttl := m.catalogTTL
	return func() tea.Msg {
		if cached, fresh, err := store.LoadCatalogCache(site, ttl); err == nil && fresh && len(cached) > 0 {
			return catalogMsg{events: cached, cached: true}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		events, err := client.GetEvents(ctx, site)
		if err != nil {
			return catalogMsg{err: err}
		}
		if err := store.SaveCatalogCache(site, events); err != nil {
			logEvent("catalog", "cache_failed", err.Error())
		}
		return catalogMsg{events: events}
	}
}

func (m appModel) loadRecentCmd() tea.Cmd {
	site := string(m.site.Variant)
	return func() tea.Msg {
		return recentMsg{ids: store.RecentEventIDs(site)}
	}
}

func rememberEventCmd(site string, event model.Event) tea.Cmd {
	return func() tea.Msg {
		if err := store.RememberEvent(site, event); err != nil {
			logEvent("catalog", "remember_failed", fmt.Sprintf("event=%s err=%v", event.ID, err))
		}
		return nil
	}
}

func (m appModel) loadAccountCmd() tea.Cmd {
	sessions := m.sessions
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
		defer cancel()
		user, ok, err := account.Current(ctx, sessions)
		return accountMsg{user: user, ok: ok, err: err}
	}
}

func (m appModel) registerCmd(form account.Form) tea.Cmd {
	sessions := m.sessions
	now := m.now()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
		defer cancel()
		user, err := account.Register(ctx, sessions, form, now)
		return registeredMsg{user: user, err: err}
	}
}

func (m appModel) logoutCmd() tea.Cmd {
	sessions := m.sessions
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
		defer cancel()
		return loggedOutMsg{err: account.Logout(ctx, sessions)}
	}
}
