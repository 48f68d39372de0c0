// Package content holds the static pages of the site: about, FAQ and
// contacts.
package content

import (
	"strings"

	"eventhub-cli/account"
)

type Member struct {
	Name string
	Role string
}

type Partner struct {
	Name     string
	Category string
}

type About struct {
	Heading  string
	Tagline  string
	Story    []string
	Team     []Member
	Partners []Partner
}

type FAQ struct {
	Question string
	Answer   string
}

type Channel struct {
	Label string
	Value string
	Note  string
}

// AboutPage builds the about page for a site brand.
func AboutPage(brand string) About {
	return About{
		Heading: "О нас",
		Tagline: "Создаём незабываемые события и объединяем людей",
		Story: []string{
			brand + " начал свою работу в 2020 году с миссией сделать мероприятия доступными и удобными для каждого. " +
				"Мы верим, что качественные события способны вдохновлять, обучать и объединять людей.",
			"За годы работы мы организовали более 500 мероприятий, собрав аудиторию более 100 000 человек. " +
				"Наша платформа упрощает процесс бронирования билетов и делает участие в событиях максимально комфортным.",
		},
		Team: []Member{
			{Name: "Анна Петрова", Role: "Директор мероприятий"},
			{Name: "Иван Сидоров", Role: "Технический директор"},
			{Name: "Мария Козлова", Role: "PR-менеджер"},
			{Name: "Дмитрий Волков", Role: "Event-координатор"},
		},
		Partners: []Partner{
			{Name: "TechCorp", Category: "Генеральный партнёр"},
			{Name: "DigitalHub", Category: "Технологический партнёр"},
			{Name: "EventSpace", Category: "Партнёр по площадкам"},
			{Name: "MediaGroup", Category: "Информационный партнёр"},
		},
	}
}

var faqs = []FAQ{
	{"Как забронировать билет?", "Выберите мероприятие на главной странице, выберите нужные места в зале, добавьте их в корзину и оформите заказ. После оплаты билеты придут на ваш email."},
	{"Можно ли вернуть билет?", "Да, возврат билетов возможен не позднее чем за 7 дней до начала мероприятия. Средства возвращаются в течение 5-10 рабочих дней на карту, с которой была произведена оплата."},
	{"Какие способы оплаты доступны?", "Мы принимаем оплату банковскими картами (Visa, MasterCard, МИР), электронными кошельками (ЮMoney, QIWI) и через систему быстрых платежей (СБП)."},
	{"Как получить билеты?", "После оплаты электронные билеты автоматически отправляются на указанный email. Также вы можете скачать их в личном кабинете. На входе достаточно показать QR-код с билета."},
	{"Можно ли изменить данные после регистрации?", "Да, вы можете изменить свои данные в разделе \"Профиль\" личного кабинета. Обратите внимание, что email используется для входа и его смена требует подтверждения."},
	{"Что делать, если потерял билет?", "Не переживайте! Войдите в личный кабинет и скачайте билеты повторно. Также мы отправим дубликат на ваш email по запросу в службу поддержки."},
	{"Есть ли скидки для студентов и пенсионеров?", "Да, на многие мероприятия действуют специальные тарифы. Информация о скидках указана в описании каждого события. При входе необходимо предъявить подтверждающий документ."},
	{"Можно ли купить билеты на группу?", "Конечно! Вы можете выбрать несколько мест одновременно. Для групп от 10 человек возможны дополнительные скидки, обратитесь в службу поддержки."},
	{"Что делать, если мероприятие отменили?", "В случае отмены мероприятия мы оповестим всех участников по email и SMS. Средства будут автоматически возвращены в течение 5 рабочих дней, либо вы можете выбрать другое мероприятие."},
	{"Как связаться с поддержкой?", "Вы можете написать нам через форму обратной связи в разделе \"Контакты\", позвонить по телефону +7 (999) 123-45-67 или написать на email: support@eventhub.ru"},
}

func FAQs() []FAQ {
	out := make([]FAQ, len(faqs))
	copy(out, faqs)
	return out
}

func Channels() []Channel {
	return []Channel{
		{Label: "Телефон", Value: "+7 (999) 123-45-67", Note: "Круглосуточно, без выходных"},
		{Label: "Email", Value: "support@eventhub.ru", Note: "Ответим в течение 24 часов"},
		{Label: "Адрес", Value: "г. Москва, ул. Примерная, д. 123", Note: "БЦ \"Событие\", офис 456"},
	}
}

const (
	FieldName    = "name"
	FieldMessage = "message"
)

// ContactForm is the feedback form on the contacts page. Nothing is sent
// anywhere; a valid form only produces a confirmation.
type ContactForm struct {
	Name    string
	Email   string
	Message string
}

func (f ContactForm) Validate() account.FieldErrors {
	errs := account.FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs[FieldName] = "Введите имя"
	}
	switch email := strings.TrimSpace(f.Email); {
	case email == "":
		errs[account.FieldEmail] = "Введите email"
	case !account.ValidEmail(email):
		errs[account.FieldEmail] = "Некорректный email"
	}
	if strings.TrimSpace(f.Message) == "" {
		errs[FieldMessage] = "Введите сообщение"
	}
	return errs
}
