package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Date is a calendar date marshaled as YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return errors.Wrap(err, "date must be YYYY-MM-DD")
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) Scan(src any) error {
	t, ok := src.(time.Time)
	if !ok {
		return errors.Errorf("date scan: unexpected type %T", src)
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

type Hotel struct {
	ID   int    `json:"id" db:"id"`
	City string `json:"city" db:"city"`
}

type RoomType struct {
	ID    int     `json:"id" db:"id"`
	Label string  `json:"label" db:"label"`
	Rate  float64 `json:"rate" db:"rate"`
}

type Client struct {
	ID         int    `json:"id" db:"id"`
	FullName   string `json:"fullName" db:"full_name"`
	Address    string `json:"address" db:"address"`
	City       string `json:"city" db:"city"`
	PostalCode int    `json:"postalCode" db:"postal_code"`
	Email      string `json:"email" db:"email"`
	Phone      string `json:"phone" db:"phone"`
}

type Room struct {
	ID         int  `json:"id" db:"id"`
	Number     int  `json:"number" db:"number"`
	Floor      int  `json:"floor" db:"floor"`
	Smoking    bool `json:"smoking" db:"smoking"`
	HotelID    int  `json:"hotelId" db:"hotel_id"`
	RoomTypeID int  `json:"roomTypeId" db:"room_type_id"`
}

// AvailableRoom is a room enriched with hotel city and room type for display.
type AvailableRoom struct {
	ID      int     `json:"id" db:"id"`
	Number  int     `json:"number" db:"number"`
	Floor   int     `json:"floor" db:"floor"`
	Smoking bool    `json:"smoking" db:"smoking"`
	City    string  `json:"city" db:"city"`
	Label   string  `json:"roomType" db:"label"`
	Rate    float64 `json:"rate" db:"rate"`
}

type Reservation struct {
	ID             int    `json:"id" db:"id"`
	ReservationUid string `json:"reservationUid" db:"reservation_uid"`
	ArrivalDate    Date   `json:"arrivalDate" db:"arrival_date"`
	DepartureDate  Date   `json:"departureDate" db:"departure_date"`
	ClientID       int    `json:"clientId" db:"client_id"`
}

// ReservationInfo is the list view row: reservation joined with client and hotel.
type ReservationInfo struct {
	ID            int    `json:"id" db:"id"`
	FullName      string `json:"client" db:"full_name"`
	City          string `json:"city" db:"city"`
	ArrivalDate   Date   `json:"arrivalDate" db:"arrival_date"`
	DepartureDate Date   `json:"departureDate" db:"departure_date"`
}

type Review struct {
	ID       int    `json:"id" db:"id"`
	Date     Date   `json:"date" db:"date"`
	Rating   int    `json:"rating" db:"rating"`
	Comment  string `json:"comment" db:"comment"`
	ClientID int    `json:"clientId" db:"client_id"`
}

type CreateClientRequest struct {
	FullName   string `json:"fullName" validate:"required"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode int    `json:"postalCode"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
}

type CreateReservationRequest struct {
	ClientID      int   `json:"clientId" validate:"required"`
	ArrivalDate   Date  `json:"arrivalDate" validate:"required"`
	DepartureDate Date  `json:"departureDate" validate:"required"`
	RoomIDs       []int `json:"roomIds" validate:"required,min=1"`
}

type CreateReviewRequest struct {
	ClientID int    `json:"clientId" validate:"required"`
	Date     Date   `json:"date" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment"`
}
