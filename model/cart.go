package model

// CartItem groups the seats picked for one event. EventTitle is a snapshot
// taken when the first seat was added.
type CartItem struct {
	EventID    string `json:"eventId"`
	EventTitle string `json:"eventTitle"`
	Seats      []Seat `json:"seats"`
}

func (c CartItem) Total() int {
	total := 0
	for _, seat := range c.Seats {
		total += seat.Price
	}
	return total
}
