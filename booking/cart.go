package booking

import "eventhub-cli/model"

// Cart holds at most one item per event and never keeps an empty item. A
// seat ID appears at most once per item.
type Cart struct {
	items []model.CartItem
}

func (c *Cart) Add(event model.Event, seats []model.Seat) {
	if len(seats) == 0 {
		return
	}
	added := make([]model.Seat, len(seats))
	copy(added, seats)

	for i := range c.items {
		if c.items[i].EventID != event.ID {
			continue
		}
		held := make(map[string]bool, len(c.items[i].Seats))
		for _, seat := range c.items[i].Seats {
			held[seat.ID] = true
		}
		for _, seat := range added {
			if !held[seat.ID] {
				c.items[i].Seats = append(c.items[i].Seats, seat)
			}
		}
		return
	}
	c.items = append(c.items, model.CartItem{
		EventID:    event.ID,
		EventTitle: event.Title,
		Seats:      added,
	})
}

// Remove drops one seat. The item goes away with its last seat. It reports
// whether anything was removed.
func (c *Cart) Remove(eventID string, seatID string) bool {
	for i := range c.items {
		if c.items[i].EventID != eventID {
			continue
		}
		seats := c.items[i].Seats
		for j := range seats {
			if seats[j].ID != seatID {
				continue
			}
			remaining := make([]model.Seat, 0, len(seats)-1)
			remaining = append(remaining, seats[:j]...)
			remaining = append(remaining, seats[j+1:]...)
			if len(remaining) == 0 {
				c.items = append(c.items[:i:i], c.items[i+1:]...)
			} else {
				c.items[i].Seats = remaining
			}
			return true
		}
		return false
	}
	return false
}

// Items returns a copy of the cart contents.
func (c Cart) Items() []model.CartItem {
	out := make([]model.CartItem, len(c.items))
	for i, item := range c.items {
		out[i] = item
		out[i].Seats = append([]model.Seat(nil), item.Seats...)
	}
	return out
}

func (c Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c Cart) TotalSeats() int {
	total := 0
	for _, item := range c.items {
		total += len(item.Seats)
	}
	return total
}

func (c Cart) TotalPrice() int {
	total := 0
	for _, item := range c.items {
		total += item.Total()
	}
	return total
}

func (c *Cart) Clear() {
	c.items = nil
}
