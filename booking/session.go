package booking

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"eventhub-cli/model"
	"eventhub-cli/notify"
)

var (
	ErrUnknownEvent = errors.New("unknown event")
	ErrNoOpenEvent  = errors.New("no event is open")
)

// Receipt confirms a checkout. The session keeps its receipts in memory for
// the account view; nothing is written to disk.
type Receipt struct {
	OrderID    string
	Items      []model.CartItem
	TotalSeats int
	TotalPrice int
	PlacedAt   time.Time
}

// Session is the visitor's state: the open event with its seat grid, and
// the cart collected across events.
type Session struct {
	events []model.Event
	spec   LayoutSpec

	open   model.Event
	isOpen bool
	layout Layout

	cart   Cart
	orders []Receipt
	now    func() time.Time
}

func NewSession(events []model.Event, spec LayoutSpec) *Session {
	return &Session{
		events: append([]model.Event(nil), events...),
		spec:   spec,
		now:    time.Now,
	}
}

func (s *Session) Events() []model.Event {
	return append([]model.Event(nil), s.events...)
}

// SetEvents swaps the catalog, for example after a remote refresh. The open
// event and the cart are left alone.
func (s *Session) SetEvents(events []model.Event) {
	s.events = append([]model.Event(nil), events...)
}

func (s *Session) Event(eventID string) (model.Event, bool) {
	for _, event := range s.events {
		if event.ID == eventID {
			return event, true
		}
	}
	return model.Event{}, false
}

// Open regenerates the seat grid of eventID and makes it the open event.
func (s *Session) Open(eventID string) (Layout, error) {
	event, ok := s.Event(eventID)
	if !ok {
		return Layout{}, fmt.Errorf("open %s: %w", eventID, ErrUnknownEvent)
	}
	s.open = event
	s.isOpen = true
	s.layout = GenerateLayout(event.ID, s.spec)
	return s.layout, nil
}

func (s *Session) Close() {
	s.open = model.Event{}
	s.isOpen = false
	s.layout = Layout{}
}

func (s *Session) OpenEvent() (model.Event, bool) {
	return s.open, s.isOpen
}

func (s *Session) Layout() Layout {
	return s.layout
}

func (s *Session) Toggle(seatID string) (model.SeatStatus, error) {
	if !s.isOpen {
		return "", ErrNoOpenEvent
	}
	return s.layout.Toggle(seatID)
}

// AddSelected moves the selected seats of the open event into the cart and
// marks them booked in the grid.
func (s *Session) AddSelected() notify.Notification {
	if !s.isOpen {
		return notify.Errorf("Выберите мероприятие", "Сначала откройте мероприятие")
	}
	selected := s.layout.Selected()
	if len(selected) == 0 {
		return notify.Errorf("Выберите места", "Пожалуйста, выберите хотя бы одно место")
	}

	s.cart.Add(s.open, selected)
	s.layout.markBooked(selected)
	log.Printf("[cart] action=add event=%s seats=%d", s.open.ID, len(selected))
	return notify.Infof(
		"Добавлено в корзину",
		fmt.Sprintf("%d %s добавлено", len(selected), SeatsWord(len(selected))),
	)
}

// RemoveFromCart drops one seat from the cart. When the seat belongs to the
// open event it becomes available again in the grid.
func (s *Session) RemoveFromCart(eventID string, seatID string) (notify.Notification, bool) {
	if !s.cart.Remove(eventID, seatID) {
		return notify.Notification{}, false
	}
	if s.isOpen && s.layout.EventID == eventID {
		s.layout.release(seatID)
	}
	log.Printf("[cart] action=remove event=%s seat=%s", eventID, seatID)
	return notify.Infof("Удалено из корзины", "Место освобождено"), true
}

func (s *Session) Cart() Cart {
	return Cart{items: s.cart.Items()}
}

// Checkout empties the cart. It cannot fail.
func (s *Session) Checkout() (Receipt, notify.Notification) {
	receipt := Receipt{
		OrderID:    uuid.NewString(),
		Items:      s.cart.Items(),
		TotalSeats: s.cart.TotalSeats(),
		TotalPrice: s.cart.TotalPrice(),
		PlacedAt:   s.now(),
	}
	s.cart.Clear()
	if receipt.TotalSeats > 0 {
		s.orders = append(s.orders, receipt)
	}
	log.Printf("[checkout] action=confirm order=%s seats=%d total=%d", receipt.OrderID, receipt.TotalSeats, receipt.TotalPrice)
	return receipt, notify.Infof(
		"Заказ оформлен!",
		fmt.Sprintf("Вы забронировали %d мест на сумму %s", receipt.TotalSeats, FormatRub(receipt.TotalPrice)),
	)
}

// Orders returns the receipts of this session, oldest first.
func (s *Session) Orders() []Receipt {
	out := make([]Receipt, len(s.orders))
	for i, order := range s.orders {
		out[i] = order
		out[i].Items = make([]model.CartItem, len(order.Items))
		for j, item := range order.Items {
			out[i].Items[j] = item
			out[i].Items[j].Seats = append([]model.Seat(nil), item.Seats...)
		}
	}
	return out
}
