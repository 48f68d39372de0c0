package booking

import (
	"errors"
	"reflect"
	"testing"

	"eventhub-cli/model"
)

var testSpec = LayoutSpec{
	Rows:        4,
	SeatsPerRow: 5,
	Booked:      []string{"1-2", "2-3"},
	BasePrice:   1500,
}

func TestGenerateLayout_Grid(t *testing.T) {
	layout := GenerateLayout("1", testSpec)

	if len(layout.Seats) != 20 {
		t.Fatalf("expected 20 seats, got %d", len(layout.Seats))
	}
	for i, seat := range layout.Seats {
		wantRow := i/5 + 1
		wantNumber := i%5 + 1
		if seat.Row != wantRow || seat.Number != wantNumber {
			t.Fatalf("seat %d out of row-major order: %+v", i, seat)
		}
		if seat.ID != model.SeatID(wantRow, wantNumber) {
			t.Fatalf("unexpected seat id %q at %d", seat.ID, i)
		}
		if seat.Price != 1500 {
			t.Fatalf("expected price 1500, got %d", seat.Price)
		}
		wantBooked := seat.ID == "1-2" || seat.ID == "2-3"
		if (seat.Status == model.SeatBooked) != wantBooked {
			t.Fatalf("unexpected status for %s: %s", seat.ID, seat.Status)
		}
	}
}

func TestGenerateLayout_Deterministic(t *testing.T) {
	for _, id := range []string{"1", "2", "42", ""} {
		a := GenerateLayout(id, testSpec)
		b := GenerateLayout(id, testSpec)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("layout for %q differs between calls", id)
		}
		if !reflect.DeepEqual(a.Seats, GenerateLayout("other", testSpec).Seats) {
			t.Fatalf("layout shape for %q depends on event id", id)
		}
	}
}

func TestGenerateLayout_TieredPrices(t *testing.T) {
	spec := LayoutSpec{
		Rows:        4,
		SeatsPerRow: 2,
		BasePrice:   1000,
		Tiers: []PriceTier{
			{FromRow: 1, ToRow: 2, Price: 3000},
			{FromRow: 3, ToRow: 3, Price: 2000},
		},
	}
	layout := GenerateLayout("x", spec)

	want := map[int]int{1: 3000, 2: 3000, 3: 2000, 4: 1000}
	for row, price := range want {
		for _, seat := range layout.Row(row) {
			if seat.Price != price {
				t.Fatalf("row %d: expected price %d, got %d", row, price, seat.Price)
			}
		}
	}
}

func TestLayoutToggle(t *testing.T) {
	layout := GenerateLayout("1", testSpec)

	status, err := layout.Toggle("1-1")
	if err != nil || status != model.SeatSelected {
		t.Fatalf("expected selected, got %s (%v)", status, err)
	}
	status, _ = layout.Toggle("1-1")
	if status != model.SeatAvailable {
		t.Fatalf("expected toggle to be its own inverse, got %s", status)
	}

	for i := 0; i < 3; i++ {
		status, err = layout.Toggle("1-2")
		if err != nil || status != model.SeatBooked {
			t.Fatalf("expected booked seat to stay booked, got %s (%v)", status, err)
		}
	}

	if _, err := layout.Toggle("9-9"); !errors.Is(err, ErrUnknownSeat) {
		t.Fatalf("expected ErrUnknownSeat, got %v", err)
	}
}

func TestLayoutSelectedTotal(t *testing.T) {
	layout := GenerateLayout("1", testSpec)
	_, _ = layout.Toggle("3-1")
	_, _ = layout.Toggle("4-5")

	if got := len(layout.Selected()); got != 2 {
		t.Fatalf("expected 2 selected seats, got %d", got)
	}
	if got := layout.SelectedTotal(); got != 3000 {
		t.Fatalf("expected total 3000, got %d", got)
	}
	counts := layout.Counts()
	if counts[model.SeatAvailable] != 16 || counts[model.SeatSelected] != 2 || counts[model.SeatBooked] != 2 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestLayoutAt(t *testing.T) {
	layout := GenerateLayout("1", testSpec)

	seat, ok := layout.At(2, 3)
	if !ok || seat.ID != "2-3" {
		t.Fatalf("expected seat 2-3, got %+v", seat)
	}
	if _, ok := layout.At(5, 1); ok {
		t.Fatal("expected no seat outside the grid")
	}
	if row := layout.Row(0); row != nil {
		t.Fatalf("expected nil row, got %+v", row)
	}
}

func TestFormatRub(t *testing.T) {
	cases := map[int]string{
		0:       "0 ₽",
		900:     "900 ₽",
		1500:    "1 500 ₽",
		13500:   "13 500 ₽",
		1234567: "1 234 567 ₽",
	}
	for in, want := range cases {
		if got := FormatRub(in); got != want {
			t.Fatalf("FormatRub(%d): expected %q, got %q", in, want, got)
		}
	}
}
