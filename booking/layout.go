// Package booking holds the seat-selection and cart state of one browsing
// session. Nothing here is safe for concurrent use; the TUI drives it from
// its single update loop.
package booking

import (
	"errors"
	"fmt"

	"eventhub-cli/model"
)

var ErrUnknownSeat = errors.New("unknown seat")

// PriceTier overrides the base price for rows FromRow..ToRow inclusive.
type PriceTier struct {
	FromRow int
	ToRow   int
	Price   int
}

// LayoutSpec describes the hall every event of a site is seated in.
type LayoutSpec struct {
	Rows        int
	SeatsPerRow int
	Booked      []string
	BasePrice   int
	Tiers       []PriceTier
}

func (s LayoutSpec) PriceForRow(row int) int {
	for _, tier := range s.Tiers {
		if row >= tier.FromRow && row <= tier.ToRow {
			return tier.Price
		}
	}
	return s.BasePrice
}

// Layout is the seat grid of one opened event, in row-major order.
type Layout struct {
	EventID     string
	Rows        int
	SeatsPerRow int
	Seats       []model.Seat
}

// GenerateLayout builds the grid for eventID. The result depends only on
// spec, so reopening an event always yields the same grid and drops any
// in-session selection.
func GenerateLayout(eventID string, spec LayoutSpec) Layout {
	booked := make(map[string]bool, len(spec.Booked))
	for _, id := range spec.Booked {
		booked[id] = true
	}

	rows := max(0, spec.Rows)
	perRow := max(0, spec.SeatsPerRow)
	seats := make([]model.Seat, 0, rows*perRow)
	for row := 1; row <= rows; row++ {
		price := spec.PriceForRow(row)
		for number := 1; number <= perRow; number++ {
			id := model.SeatID(row, number)
			status := model.SeatAvailable
			if booked[id] {
				status = model.SeatBooked
			}
			seats = append(seats, model.Seat{
				ID:     id,
				Row:    row,
				Number: number,
				Status: status,
				Price:  price,
			})
		}
	}
	return Layout{EventID: eventID, Rows: rows, SeatsPerRow: perRow, Seats: seats}
}

func (l *Layout) index(seatID string) int {
	for i := range l.Seats {
		if l.Seats[i].ID == seatID {
			return i
		}
	}
	return -1
}

func (l Layout) Seat(seatID string) (model.Seat, bool) {
	i := l.index(seatID)
	if i < 0 {
		return model.Seat{}, false
	}
	return l.Seats[i], true
}

// At returns the seat at 1-based row and number.
func (l Layout) At(row int, number int) (model.Seat, bool) {
	if row < 1 || row > l.Rows || number < 1 || number > l.SeatsPerRow {
		return model.Seat{}, false
	}
	return l.Seats[(row-1)*l.SeatsPerRow+number-1], true
}

func (l Layout) Row(row int) []model.Seat {
	if row < 1 || row > l.Rows {
		return nil
	}
	start := (row - 1) * l.SeatsPerRow
	return l.Seats[start : start+l.SeatsPerRow]
}

// Toggle flips a seat between available and selected. Booked seats are
// left untouched. It returns the seat's status after the call.
func (l *Layout) Toggle(seatID string) (model.SeatStatus, error) {
	i := l.index(seatID)
	if i < 0 {
		return "", fmt.Errorf("toggle %s: %w", seatID, ErrUnknownSeat)
	}
	seat := &l.Seats[i]
	switch seat.Status {
	case model.SeatAvailable:
		seat.Status = model.SeatSelected
	case model.SeatSelected:
		seat.Status = model.SeatAvailable
	}
	return seat.Status, nil
}

func (l Layout) Selected() []model.Seat {
	var out []model.Seat
	for _, seat := range l.Seats {
		if seat.Status == model.SeatSelected {
			out = append(out, seat)
		}
	}
	return out
}

func (l Layout) SelectedTotal() int {
	total := 0
	for _, seat := range l.Selected() {
		total += seat.Price
	}
	return total
}

// Counts returns how many seats are in each status.
func (l Layout) Counts() map[model.SeatStatus]int {
	counts := map[model.SeatStatus]int{}
	for _, seat := range l.Seats {
		counts[seat.Status]++
	}
	return counts
}

func (l *Layout) markBooked(seats []model.Seat) {
	for _, seat := range seats {
		if i := l.index(seat.ID); i >= 0 {
			l.Seats[i].Status = model.SeatBooked
		}
	}
}

// release returns a seat booked in this session to available.
func (l *Layout) release(seatID string) {
	if i := l.index(seatID); i >= 0 && l.Seats[i].Status == model.SeatBooked {
		l.Seats[i].Status = model.SeatAvailable
	}
}
