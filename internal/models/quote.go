package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingType string

const (
	BookingFlight         BookingType = "flight"
	BookingHotel          BookingType = "hotel"
	BookingVacationRental BookingType = "vacation_rental"
)

// Objective selects the comparison metric: raw cash out of pocket, or cash net
// of the value of points earned back.
type Objective string

const (
	ObjectiveCheapestCash Objective = "cheapest_cash"
	ObjectiveMaxValue     Objective = "max_value"
)

// FlightItinerary describes the captured flight search, for display and audit only.
type FlightItinerary struct {
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
	DepartDate  string `json:"depart_date,omitempty"`
	ReturnDate  string `json:"return_date,omitempty"`
	Cabin       string `json:"cabin,omitempty"`
}

// StayItinerary describes the captured hotel or vacation-rental search.
type StayItinerary struct {
	Property     string `json:"property,omitempty"`
	CheckInDate  string `json:"check_in_date,omitempty"`
	CheckOutDate string `json:"check_out_date,omitempty"`
	Room         string `json:"room,omitempty"`
}

// PriceQuote is a captured price for one booking path. Quotes are immutable;
// a re-capture produces a new quote that supersedes the old one.
type PriceQuote struct {
	ID         uuid.UUID        `json:"id"`
	Price      Money            `json:"price"`
	Flight     *FlightItinerary `json:"flight,omitempty"`
	Stay       *StayItinerary   `json:"stay,omitempty"`
	CapturedAt time.Time        `json:"captured_at"`
}
