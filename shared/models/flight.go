package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DateLayout is the departure date format used by CSV imports and console output
const DateLayout = "2006-01-02 15:04"

// ClassType is a flight cabin class
type ClassType string

const (
	ClassEconomy    ClassType = "Economy"
	ClassBusiness   ClassType = "Business"
	ClassFirstClass ClassType = "FirstClass"
)

// ClassTypes lists every cabin class in menu order
var ClassTypes = []ClassType{ClassEconomy, ClassBusiness, ClassFirstClass}

// ParseClassType parses an exact class name
func ParseClassType(s string) (ClassType, bool) {
	for _, c := range ClassTypes {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Country represents a country served by flights
type Country struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Code string    `json:"code"`
}

// NewCountry creates a country with a fresh id
func NewCountry(name, code string) Country {
	return Country{ID: uuid.New(), Name: name, Code: code}
}

func (c Country) GetID() uuid.UUID { return c.ID }

// Equal compares countries by id
func (c Country) Equal(other Country) bool { return c.ID == other.ID }

func (c Country) String() string {
	return fmt.Sprintf("%s (%s) - Id: %s", c.Name, c.Code, c.ID)
}

// Airport represents an airport within a country
type Airport struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Country Country   `json:"country"`
}

// NewAirport creates an airport with a fresh id
func NewAirport(name string, country Country) Airport {
	return Airport{ID: uuid.New(), Name: name, Country: country}
}

func (a Airport) GetID() uuid.UUID { return a.ID }

// Equal compares airports by id
func (a Airport) Equal(other Airport) bool { return a.ID == other.ID }

func (a Airport) String() string {
	return fmt.Sprintf("Airport: %s - Id: %s", a.Name, a.ID)
}

// FlightClassInfo holds seats and price of one class on a flight
type FlightClassInfo struct {
	ClassType      ClassType       `json:"classType"`
	AvailableSeats int             `json:"availableSeats"`
	Price          decimal.Decimal `json:"price"`
}

func (c FlightClassInfo) String() string {
	return fmt.Sprintf("%s (Seats: %d, Price: %s)", c.ClassType, c.AvailableSeats, c.Price.StringFixed(2))
}

// Flight represents a scheduled flight
type Flight struct {
	ID               uuid.UUID         `json:"id"`
	BasePrice        decimal.Decimal   `json:"basePrice"`
	Departure        Country           `json:"departure"`
	Destination      Country           `json:"destination"`
	DepartureAirport Airport           `json:"departureAirport"`
	ArrivalAirport   Airport           `json:"arrivalAirport"`
	DepartureDate    time.Time         `json:"departureDate"`
	AvailableClasses []FlightClassInfo `json:"availableClasses"`
}

// NewFlight creates a flight with a fresh id. BasePrice is the Economy price, or zero.
func NewFlight(departure, destination Country, departureAirport, arrivalAirport Airport, departureDate time.Time, classes []FlightClassInfo) Flight {
	f := Flight{
		ID:               uuid.New(),
		Departure:        departure,
		Destination:      destination,
		DepartureAirport: departureAirport,
		ArrivalAirport:   arrivalAirport,
		DepartureDate:    departureDate,
		AvailableClasses: classes,
	}
	if economy, ok := f.ClassInfo(ClassEconomy); ok {
		f.BasePrice = economy.Price
	}
	return f
}

func (f Flight) GetID() uuid.UUID { return f.ID }

// TotalAvailableSeats sums the seats of every class
func (f Flight) TotalAvailableSeats() int {
	return lo.SumBy(f.AvailableClasses, func(c FlightClassInfo) int { return c.AvailableSeats })
}

// ClassInfo returns the entry for the given class
func (f Flight) ClassInfo(class ClassType) (FlightClassInfo, bool) {
	return lo.Find(f.AvailableClasses, func(c FlightClassInfo) bool { return c.ClassType == class })
}

// PriceFor sums the prices of every entry matching class
func (f Flight) PriceFor(class ClassType) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range f.AvailableClasses {
		if c.ClassType == class {
			sum = sum.Add(c.Price)
		}
	}
	return sum
}

// Clone returns a copy that shares no slices with f
func (f Flight) Clone() Flight {
	f.AvailableClasses = append([]FlightClassInfo(nil), f.AvailableClasses...)
	return f
}

func (f Flight) String() string {
	classes := lo.Map(f.AvailableClasses, func(c FlightClassInfo, _ int) string { return c.String() })

	var b strings.Builder
	fmt.Fprintf(&b, "Flight ID: %s\n", f.ID)
	fmt.Fprintf(&b, "Base Price: $%s\n", f.BasePrice.StringFixed(2))
	fmt.Fprintf(&b, "From: %s - %s\n", f.Departure, f.DepartureAirport)
	fmt.Fprintf(&b, "To: %s - %s\n", f.Destination, f.ArrivalAirport)
	fmt.Fprintf(&b, "Departure Date: %s\n", f.DepartureDate.Format(DateLayout))
	fmt.Fprintf(&b, "Total Available Seats: %d\n", f.TotalAvailableSeats())
	fmt.Fprintf(&b, "Available Classes: %s", strings.Join(classes, ", "))
	return b.String()
}
