package rules

import (
	"fmt"
	"strings"
)

// Entity names accepted by For
const (
	User    = "user"
	Flight  = "flight"
	Booking = "booking"
)

const (
	required = "Required"
	future   = "Allowed Range (today -> future)."
)

// Constraint lists the validation rules of one field
type Constraint struct {
	Property    string
	Type        string
	Constraints []string
}

func (c Constraint) String() string {
	return fmt.Sprintf("%s:\nType: %s\nConstraints: %s\n", c.Property, c.Type, strings.Join(c.Constraints, ", "))
}

var table = map[string][]Constraint{
	User: {
		{Property: "Id", Type: "UUID", Constraints: []string{required}},
		{Property: "Name", Type: "String", Constraints: []string{required}},
		{Property: "Email", Type: "String", Constraints: []string{required, "Unique (case-insensitive)"}},
		{Property: "Password", Type: "String", Constraints: []string{required}},
		{Property: "Role", Type: "Role", Constraints: []string{required, "Passenger or Manager"}},
	},
	Flight: {
		{Property: "Id", Type: "UUID", Constraints: []string{required, "Unique"}},
		{Property: "BasePrice", Type: "Decimal", Constraints: []string{"Economy class price, 0 when not offered"}},
		{Property: "Departure", Type: "Country", Constraints: []string{required}},
		{Property: "Destination", Type: "Country", Constraints: []string{required}},
		{Property: "DepartureAirport", Type: "Airport", Constraints: []string{required}},
		{Property: "ArrivalAirport", Type: "Airport", Constraints: []string{required}},
		{Property: "DepartureDate", Type: "DateTime", Constraints: []string{required, future, "Format yyyy-MM-dd HH:mm"}},
		{Property: "AvailableClasses", Type: "List<FlightClassInfo>", Constraints: []string{
			required,
			"ClassType:Seats:Price entries separated by ';'",
			"Seats must be greater than 0",
			"Price must be greater than 0",
		}},
	},
	Booking: {
		{Property: "Id", Type: "UUID", Constraints: []string{required}},
		{Property: "Passenger", Type: "User", Constraints: []string{required, "One booking per passenger and flight"}},
		{Property: "Flight", Type: "Flight", Constraints: []string{required}},
		{Property: "FlightClass", Type: "ClassType", Constraints: []string{required, "Offered by the flight"}},
		{Property: "BookingDate", Type: "DateTime", Constraints: []string{required, future}},
		{Property: "Price", Type: "Decimal", Constraints: []string{required, "Must be greater than 0"}},
	},
}

// Entities returns the entity names with a rule table
func Entities() []string {
	return []string{User, Flight, Booking}
}

// For returns the rules of an entity, matched case-insensitively
func For(entity string) ([]Constraint, bool) {
	rows, ok := table[strings.ToLower(strings.TrimSpace(entity))]
	return rows, ok
}

// Format renders rules one block per field
func Format(rows []Constraint) string {
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(r.String())
	}
	return b.String()
}
