package entity

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type ReservationStatus string

const (
	StatusPending   ReservationStatus = "Pending"
	StatusCancelled ReservationStatus = "Cancelled"
	StatusCompleted ReservationStatus = "Completed"
)

type UserStatus string

const (
	UserStatusGood UserStatus = "Good"
	UserStatusBad  UserStatus = "Bad"
)

var validate = validator.New()

func (s ReservationStatus) Valid() bool {
	return validate.Var(s, "oneof=Pending Cancelled Completed") == nil
}

func (s UserStatus) Valid() bool {
	return validate.Var(s, "oneof=Good Bad") == nil
}

// Reservation is a booking for a visit. Games holds free-text game names,
// not Game document references. BookingDate and BookingHour are stored as
// plain text; no calendar or overlap validation is applied, so two
// reservations may claim the same slot.
type Reservation struct {
	ID          string            `json:"id" firestore:"id"`
	AdultName   string            `json:"adultName" firestore:"adultName"`
	KidName     string            `json:"kidName" firestore:"kidName"`
	Phone       string            `json:"phone" firestore:"phone"`
	AdultAge    int               `json:"adultAge" firestore:"adultAge"`
	KidAge      int               `json:"kidAge" firestore:"kidAge"`
	BookingDate string            `json:"bookingDate" firestore:"bookingDate"`
	BookingHour string            `json:"bookingHour" firestore:"bookingHour"`
	Duration    int               `json:"duration" firestore:"duration"`
	Games       []string          `json:"games" firestore:"games"`
	Status      ReservationStatus `json:"status" firestore:"status" validate:"oneof=Pending Cancelled Completed"`
	Review      string            `json:"review" firestore:"review"`
	UserStatus  UserStatus        `json:"userStatus" firestore:"userStatus" validate:"oneof=Good Bad"`
	Price       float64           `json:"price" firestore:"price"`
	CreatedAt   time.Time         `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time         `json:"updated_at" firestore:"updatedAt"`
}

// Validate enforces the enumerated fields. Repositories call it before every
// write so the constraint holds regardless of the store backing the data.
func (r *Reservation) Validate() error {
	return validate.Struct(r)
}
