package model

import "fmt"

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatSelected  SeatStatus = "selected"
	SeatBooked    SeatStatus = "booked"
)

type Seat struct {
	ID     string     `json:"id"`
	Row    int        `json:"row"`
	Number int        `json:"number"`
	Status SeatStatus `json:"status"`
	Price  int        `json:"price"`
}

// SeatID builds the layout-unique identifier of a seat.
func SeatID(row int, number int) string {
	return fmt.Sprintf("%d-%d", row, number)
}
