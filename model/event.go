package model

// Event is a bookable catalog entry: a class, concert or show.
type Event struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Venue          string `json:"venue"`
	Price          int    `json:"price"`
	Category       string `json:"category"`
	AvailableSeats int    `json:"availableSeats"`
}
