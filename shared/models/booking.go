package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entity is anything stored with an id
type Entity interface {
	GetID() uuid.UUID
}

// Role of a user account
type Role string

const (
	RolePassenger Role = "Passenger"
	RoleManager   Role = "Manager"
)

// User represents a passenger or manager account
type User struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Role     Role      `json:"role"`
}

// NewUser creates a user with a fresh id
func NewUser(name, email, password string, role Role) User {
	return User{ID: uuid.New(), Name: name, Email: email, Password: password, Role: role}
}

func (u User) GetID() uuid.UUID { return u.ID }

func (u User) String() string {
	return fmt.Sprintf("Id: %s, Name: %s, Email: %s, Role: %s", u.ID, u.Name, u.Email, u.Role)
}

// Booking represents a passenger's seat on a flight
type Booking struct {
	ID          uuid.UUID       `json:"id"`
	Passenger   User            `json:"passenger"`
	Flight      Flight          `json:"flight"`
	FlightClass ClassType       `json:"flightClass"`
	BookingDate time.Time       `json:"bookingDate"`
	Price       decimal.Decimal `json:"price"`
}

// NewBooking creates a booking dated now (UTC) and priced from the flight's class
func NewBooking(passenger User, flight Flight, class ClassType) Booking {
	return Booking{
		ID:          uuid.New(),
		Passenger:   passenger,
		Flight:      flight.Clone(),
		FlightClass: class,
		BookingDate: time.Now().UTC(),
		Price:       flight.PriceFor(class),
	}
}

func (b Booking) GetID() uuid.UUID { return b.ID }

// Equal compares bookings by id
func (b Booking) Equal(other Booking) bool { return b.ID == other.ID }

// Clone returns a copy whose flight shares no slices with b
func (b Booking) Clone() Booking {
	b.Flight = b.Flight.Clone()
	return b
}

func (b Booking) String() string {
	return fmt.Sprintf(`Booking {
    Id           : %s
    PassengerName  : %s
    FlightId    : %s
    FlightClass  : %s
    Price        : %s
    BookingDate  : %s (UTC)
}`, b.ID, b.Passenger.Name, b.Flight.ID, b.FlightClass, b.Price.StringFixed(2), b.BookingDate.UTC().Format("2006-01-02 15:04:05"))
}
