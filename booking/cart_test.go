package booking

import (
	"testing"

	"eventhub-cli/model"
)

func seats(price int, ids ...string) []model.Seat {
	out := make([]model.Seat, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Seat{ID: id, Status: model.SeatSelected, Price: price})
	}
	return out
}

func seatIDs(item model.CartItem) []string {
	ids := make([]string, 0, len(item.Seats))
	for _, seat := range item.Seats {
		ids = append(ids, seat.ID)
	}
	return ids
}

func TestCartAdd_MergesSameEvent(t *testing.T) {
	var cart Cart
	event := model.Event{ID: "1", Title: "Hip-Hop"}

	cart.Add(event, seats(1500, "A", "B"))
	cart.Add(event, seats(1500, "C"))

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected a single cart item, got %d", len(items))
	}
	got := seatIDs(items[0])
	if len(got) != 3 || got[0] != "A" || got[1] != "B" || got[2] != "C" {
		t.Fatalf("expected seats [A B C] in insertion order, got %v", got)
	}
	if items[0].EventTitle != "Hip-Hop" {
		t.Fatalf("unexpected title snapshot: %q", items[0].EventTitle)
	}
}

func TestCartAdd_SkipsSeatsAlreadyHeld(t *testing.T) {
	var cart Cart
	event := model.Event{ID: "1"}

	cart.Add(event, seats(1500, "A"))
	cart.Add(event, seats(1500, "A", "B"))

	if got := seatIDs(cart.Items()[0]); len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Fatalf("expected seats [A B], got %v", got)
	}
	if cart.TotalPrice() != 3000 {
		t.Fatalf("expected total 3000, got %d", cart.TotalPrice())
	}
}

func TestCartAdd_EmptyIsNoop(t *testing.T) {
	var cart Cart
	cart.Add(model.Event{ID: "1"}, nil)
	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart, got %+v", cart.Items())
	}
}

func TestCartRemove(t *testing.T) {
	var cart Cart
	cart.Add(model.Event{ID: "1"}, seats(1500, "A", "B"))
	cart.Add(model.Event{ID: "2"}, seats(2000, "X"))

	if !cart.Remove("1", "A") {
		t.Fatal("expected seat A to be removed")
	}
	items := cart.Items()
	if len(items) != 2 || len(items[0].Seats) != 1 || items[0].Seats[0].ID != "B" {
		t.Fatalf("expected event 1 to keep seat B, got %+v", items)
	}

	if !cart.Remove("2", "X") {
		t.Fatal("expected seat X to be removed")
	}
	items = cart.Items()
	if len(items) != 1 || items[0].EventID != "1" {
		t.Fatalf("expected event 2 item to disappear with its last seat, got %+v", items)
	}

	if cart.Remove("1", "nope") || cart.Remove("3", "B") {
		t.Fatal("expected unknown seat or event removal to report false")
	}
	if cart.TotalSeats() != 1 {
		t.Fatalf("expected 1 seat left, got %d", cart.TotalSeats())
	}
}

func TestCartTotals_MatchRecompute(t *testing.T) {
	var cart Cart
	cart.Add(model.Event{ID: "1"}, seats(1500, "1-1", "1-3"))
	cart.Add(model.Event{ID: "2"}, seats(3500, "1-1"))
	cart.Add(model.Event{ID: "1"}, seats(1500, "4-4"))
	cart.Remove("1", "1-3")

	wantSeats, wantPrice := 0, 0
	for _, item := range cart.Items() {
		wantSeats += len(item.Seats)
		for _, seat := range item.Seats {
			wantPrice += seat.Price
		}
	}
	if cart.TotalSeats() != wantSeats || cart.TotalSeats() != 3 {
		t.Fatalf("expected %d seats, got %d", wantSeats, cart.TotalSeats())
	}
	if cart.TotalPrice() != wantPrice || cart.TotalPrice() != 6500 {
		t.Fatalf("expected price %d, got %d", wantPrice, cart.TotalPrice())
	}
}

func TestCartItems_ReturnsCopy(t *testing.T) {
	var cart Cart
	cart.Add(model.Event{ID: "1"}, seats(1500, "A"))

	items := cart.Items()
	items[0].Seats[0].ID = "mutated"

	if cart.Items()[0].Seats[0].ID != "A" {
		t.Fatal("expected cart contents to be isolated from callers")
	}
}
