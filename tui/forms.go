package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"eventhub-cli/account"
	"eventhub-cli/content"
	"eventhub-cli/notify"
)

type formField struct {
	key   string
	label string
	input textinput.Model
}

// inputForm is a column of text inputs with an optional trailing checkbox.
// The checkbox, when present, takes the last focus slot.
type inputForm struct {
	fields     []formField
	focus      int
	checkKey   string
	checkLabel string
	checked    bool
	errors     account.FieldErrors
}

func newField(key string, label string, placeholder string) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "› "
	in.CharLimit = 120
	in.Width = 40
	return formField{key: key, label: label, input: in}
}

func newRegisterForm() inputForm {
	f := inputForm{
		fields: []formField{
			newField(account.FieldFullName, "ФИО", "Иван Иванов"),
			newField(account.FieldEmail, "Email", "example@mail.com"),
			newField(account.FieldPhone, "Телефон", "+7 (999) 123-45-67"),
			newField("company", "Компания (необязательно)", "Название компании"),
		},
		checkKey:   account.FieldAgreeToTerms,
		checkLabel: "Я согласен на обработку персональных данных",
		errors:     account.FieldErrors{},
	}
	f.focusField(0)
	return f
}

func newContactForm() inputForm {
	f := inputForm{
		fields: []formField{
			newField(content.FieldName, "Имя", "Ваше имя"),
			newField(account.FieldEmail, "Email", "example@mail.com"),
			newField(content.FieldMessage, "Сообщение", "Ваше сообщение..."),
		},
		errors: account.FieldErrors{},
	}
	f.fields[2].input.CharLimit = 1000
	f.focusField(0)
	return f
}

func textinputBlink() tea.Cmd {
	return textinput.Blink
}

func (f *inputForm) slots() int {
	if f.checkKey != "" {
		return len(f.fields) + 1
	}
	return len(f.fields)
}

func (f *inputForm) onCheckbox() bool {
	return f.checkKey != "" && f.focus == len(f.fields)
}

func (f *inputForm) focusField(i int) tea.Cmd {
	if n := f.slots(); n > 0 {
		f.focus = ((i % n) + n) % n
	}
	var cmd tea.Cmd
	for j := range f.fields {
		if j == f.focus {
			cmd = f.fields[j].input.Focus()
			continue
		}
		f.fields[j].input.Blur()
	}
	return cmd
}

func (f *inputForm) value(key string) string {
	for _, field := range f.fields {
		if field.key == key {
			return field.input.Value()
		}
	}
	return ""
}

func (f *inputForm) toggleCheck() {
	f.checked = !f.checked
	f.errors.Clear(f.checkKey)
}

// update feeds msg to the focused input and drops the field's error once its
// value changes.
func (f *inputForm) update(msg tea.Msg) tea.Cmd {
	if f.onCheckbox() || f.focus >= len(f.fields) {
		return nil
	}
	field := &f.fields[f.focus]
	before := field.input.Value()
	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)
	if field.input.Value() != before {
		f.errors.Clear(field.key)
	}
	return cmd
}

func (f *inputForm) reset() {
	for i := range f.fields {
		f.fields[i].input.SetValue("")
	}
	f.checked = false
	f.errors = account.FieldErrors{}
	f.focusField(0)
}

// navigate handles the keys shared by every form. It reports false for keys
// that belong to the focused input.
func (f *inputForm) navigate(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "down":
		return f.focusField(f.focus + 1), true
	case "shift+tab", "up":
		return f.focusField(f.focus - 1), true
	case " ":
		if f.onCheckbox() {
			f.toggleCheck()
			return nil, true
		}
	}
	return nil, false
}

func (f inputForm) view() string {
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	labelStyle := lipgloss.NewStyle().Bold(true)
	focusStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))

	var b strings.Builder
	for i, field := range f.fields {
		label := labelStyle.Render(field.label)
		if i == f.focus {
			label = focusStyle.Render(field.label)
		}
		b.WriteString(label + "\n" + field.input.View() + "\n")
		if msg, ok := f.errors[field.key]; ok {
			b.WriteString(errStyle.Render(msg) + "\n")
		}
		b.WriteString("\n")
	}
	if f.checkKey != "" {
		box := "[ ]"
		if f.checked {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, f.checkLabel)
		if f.focus == len(f.fields) {
			line = focusStyle.Render(line)
		}
		b.WriteString(line + "\n")
		if msg, ok := f.errors[f.checkKey]; ok {
			b.WriteString(errStyle.Render(msg) + "\n")
		}
	}
	return b.String()
}

func (f inputForm) accountForm() account.Form {
	return account.Form{
		FullName:     strings.TrimSpace(f.value(account.FieldFullName)),
		Email:        strings.TrimSpace(f.value(account.FieldEmail)),
		Phone:        strings.TrimSpace(f.value(account.FieldPhone)),
		Company:      strings.TrimSpace(f.value("company")),
		AgreeToTerms: f.checked,
	}
}

func (f inputForm) contactForm() content.ContactForm {
	return content.ContactForm{
		Name:    f.value(content.FieldName),
		Email:   strings.TrimSpace(f.value(account.FieldEmail)),
		Message: f.value(content.FieldMessage),
	}
}

func (m appModel) handleRegisterKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	if cmd, ok := m.register.navigate(msg); ok {
		return m, cmd, true
	}
	if msg.Type != tea.KeyEnter {
		return m, nil, false
	}
	form := m.register.accountForm()
	if errs := form.Validate(); len(errs) > 0 {
		m.register.errors = errs
		return m, nil, true
	}
	return m, m.registerCmd(form), true
}

func (m appModel) handleContactsKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	if cmd, ok := m.contact.navigate(msg); ok {
		return m, cmd, true
	}
	if msg.Type != tea.KeyEnter {
		return m, nil, false
	}
	if errs := m.contact.contactForm().Validate(); len(errs) > 0 {
		m.contact.errors = errs
		return m, nil, true
	}
	logEvent("contacts", "send", "email="+m.contact.contactForm().Email)
	m.contact.reset()
	return m, m.notifyCmd(notify.Infof("Сообщение отправлено!", "Мы свяжемся с вами в ближайшее время")), true
}

func (m appModel) registerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Регистрация")
	sub := hint("Создайте аккаунт, чтобы управлять бронированиями")
	return title + "\n" + sub + "\n\n" + m.register.view()
}
