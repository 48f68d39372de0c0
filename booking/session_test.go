package booking

import (
	"errors"
	"strings"
	"testing"

	"eventhub-cli/model"
	"eventhub-cli/notify"
)

func newTestSession() *Session {
	return NewSession([]model.Event{
		{ID: "1", Title: "Hip-Hop для начинающих", Price: 1200},
		{ID: "2", Title: "Contemporary для продолжающих", Price: 1500},
	}, testSpec)
}

func seatStatus(t *testing.T, s *Session, id string) model.SeatStatus {
	t.Helper()
	seat, ok := s.Layout().Seat(id)
	if !ok {
		t.Fatalf("seat %s not found", id)
	}
	return seat.Status
}

func TestSession_AddToCartScenario(t *testing.T) {
	s := newTestSession()
	layout, err := s.Open("1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(layout.Seats) != 20 {
		t.Fatalf("expected 20 seats, got %d", len(layout.Seats))
	}

	for _, id := range []string{"1-1", "1-3"} {
		if _, err := s.Toggle(id); err != nil {
			t.Fatalf("toggle %s: %v", id, err)
		}
	}
	n := s.AddSelected()
	if n.Severity != notify.Info || !strings.Contains(n.Description, "2 мест") {
		t.Fatalf("unexpected notification: %+v", n)
	}

	cart := s.Cart()
	if cart.TotalSeats() != 2 || cart.TotalPrice() != 3000 {
		t.Fatalf("expected 2 seats for 3000, got %d for %d", cart.TotalSeats(), cart.TotalPrice())
	}
	for _, id := range []string{"1-1", "1-3"} {
		if got := seatStatus(t, s, id); got != model.SeatBooked {
			t.Fatalf("expected %s booked after add, got %s", id, got)
		}
	}
}

func TestSession_AddWithoutSelection(t *testing.T) {
	s := newTestSession()
	_, _ = s.Open("1")

	n := s.AddSelected()
	if n.Severity != notify.Error || n.Title != "Выберите места" {
		t.Fatalf("expected validation notification, got %+v", n)
	}
	if !s.Cart().IsEmpty() {
		t.Fatal("expected cart to stay empty")
	}
	if got := s.Layout().Counts()[model.SeatBooked]; got != 2 {
		t.Fatalf("expected layout untouched, got %d booked", got)
	}
}

func TestSession_SingleSeatMessage(t *testing.T) {
	s := newTestSession()
	_, _ = s.Open("1")
	_, _ = s.Toggle("4-1")

	n := s.AddSelected()
	if n.Description != "1 место добавлено" {
		t.Fatalf("unexpected description: %q", n.Description)
	}
}

func TestSession_ReopenDiscardsSelection(t *testing.T) {
	s := newTestSession()
	_, _ = s.Open("1")
	_, _ = s.Toggle("3-3")

	_, _ = s.Open("1")
	if got := seatStatus(t, s, "3-3"); got != model.SeatAvailable {
		t.Fatalf("expected regenerated layout, got %s", got)
	}
}

func TestSession_RemoveReleasesSeatInOpenLayout(t *testing.T) {
	s := newTestSession()
	_, _ = s.Open("1")
	_, _ = s.Toggle("1-1")
	_, _ = s.Toggle("1-3")
	s.AddSelected()

	n, ok := s.RemoveFromCart("1", "1-1")
	if !ok || n.Title != "Удалено из корзины" {
		t.Fatalf("unexpected remove result: %+v %v", n, ok)
	}
	if got := seatStatus(t, s, "1-1"); got != model.SeatAvailable {
		t.Fatalf("expected released seat to be available, got %s", got)
	}
	if got := seatStatus(t, s, "1-3"); got != model.SeatBooked {
		t.Fatalf("expected other cart seat to stay booked, got %s", got)
	}

	_, _ = s.RemoveFromCart("1", "1-3")
	if !s.Cart().IsEmpty() {
		t.Fatalf("expected cart item to disappear with its last seat, got %+v", s.Cart().Items())
	}
	if _, ok := s.RemoveFromCart("1", "1-3"); ok {
		t.Fatal("expected second removal to report false")
	}
}

func TestSession_RemoveOtherEventKeepsLayout(t *testing.T) {
	s := newTestSession()
	_, _ = s.Open("1")
	_, _ = s.Toggle("1-1")
	s.AddSelected()

	_, _ = s.Open("2")
	_, _ = s.RemoveFromCart("1", "1-1")
	if got := seatStatus(t, s, "1-1"); got != model.SeatAvailable {
		t.Fatalf("expected event 2 layout untouched, got %s", got)
	}
}

func TestSession_MergesAcrossOpens(t *testing.T) {
	s := newTestSession()
	_, _ = s.Open("1")
	_, _ = s.Toggle("1-1")
	_, _ = s.Toggle("1-3")
	s.AddSelected()
	_, _ = s.Open("2")
	_, _ = s.Toggle("2-2")
	s.AddSelected()
	_, _ = s.Open("1")
	_, _ = s.Toggle("4-4")
	s.AddSelected()

	items := s.Cart().Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 cart items, got %d", len(items))
	}
	if got := seatIDs(items[0]); len(got) != 3 || got[2] != "4-4" {
		t.Fatalf("expected event 1 seats appended, got %v", got)
	}
}

func TestSession_Checkout(t *testing.T) {
	s := newTestSession()
	_, _ = s.Open("1")
	_, _ = s.Toggle("1-1")
	_, _ = s.Toggle("1-3")
	s.AddSelected()

	receipt, n := s.Checkout()
	if receipt.OrderID == "" {
		t.Fatal("expected order id")
	}
	if receipt.TotalSeats != 2 || receipt.TotalPrice != 3000 || len(receipt.Items) != 1 {
		t.Fatalf("unexpected receipt: %+v", receipt)
	}
	if n.Description != "Вы забронировали 2 мест на сумму 3 000 ₽" {
		t.Fatalf("unexpected confirmation: %q", n.Description)
	}
	if !s.Cart().IsEmpty() {
		t.Fatal("expected cart to be empty after checkout")
	}
}

func TestSession_OrdersKeepReceipts(t *testing.T) {
	s := newTestSession()
	s.Checkout()
	if len(s.Orders()) != 0 {
		t.Fatalf("expected an empty checkout to record nothing, got %d", len(s.Orders()))
	}

	_, _ = s.Open("1")
	_, _ = s.Toggle("1-1")
	s.AddSelected()
	first, _ := s.Checkout()

	_, _ = s.Open("1")
	_, _ = s.Toggle("3-3")
	s.AddSelected()
	second, _ := s.Checkout()

	orders := s.Orders()
	if len(orders) != 2 || orders[0].OrderID != first.OrderID || orders[1].OrderID != second.OrderID {
		t.Fatalf("expected both receipts oldest first, got %+v", orders)
	}

	orders[0].Items[0].Seats[0].ID = "changed"
	if s.Orders()[0].Items[0].Seats[0].ID != "1-1" {
		t.Fatal("expected Orders to return a copy")
	}
}

func TestSession_Errors(t *testing.T) {
	s := newTestSession()
	if _, err := s.Open("missing"); !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("expected ErrUnknownEvent, got %v", err)
	}
	if _, err := s.Toggle("1-1"); !errors.Is(err, ErrNoOpenEvent) {
		t.Fatalf("expected ErrNoOpenEvent, got %v", err)
	}
	if n := s.AddSelected(); n.Severity != notify.Error {
		t.Fatalf("expected error notification without open event, got %+v", n)
	}

	_, _ = s.Open("1")
	s.Close()
	if _, ok := s.OpenEvent(); ok {
		t.Fatal("expected no open event after close")
	}
}
