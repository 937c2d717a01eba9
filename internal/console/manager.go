package console

import (
	"context"
	"strings"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/filter"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/importer"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/rules"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/shared/models"
)

func (c *Console) managerMenu() menu {
	return menu{
		{key: "1", label: "Import from CSV", handle: c.importFlights},
		{key: "2", label: "View Validations Rules", handle: c.showRules},
		{key: "3", label: "Filter Bookings", handle: c.filterBookings},
		{key: "4", label: "List flights", handle: c.listFlights},
		{key: "5", label: "Exit", handle: exit},
	}
}

func (c *Console) importFlights(ctx context.Context) error {
	c.println("Import from CSV")
	path, err := c.prompt("Enter your file path: ")
	if err != nil {
		return err
	}

	flights, err := importer.ImportFlights(ctx, c.importer, c.flights, path)
	if err != nil {
		c.printError(err)
		return nil
	}
	c.printf("Import successful (%d flights)\n", len(flights))
	return nil
}

func (c *Console) showRules(ctx context.Context) error {
	c.println("Validation rules of available classes")

	show := func(entity string) func(context.Context) error {
		return func(context.Context) error {
			rows, _ := rules.For(entity)
			c.printf("%s", rules.Format(rows))
			return nil
		}
	}
	return c.choose(ctx, menu{
		{key: "1", label: "User", handle: show(rules.User)},
		{key: "2", label: "Flight", handle: show(rules.Flight)},
		{key: "3", label: "Booking", handle: show(rules.Booking)},
	})
}

// filterBookings runs one filter over every booking; text criteria ignore case
func (c *Console) filterBookings(ctx context.Context) error {
	c.println("Filter Bookings")

	byID := func(label, field string, value func(models.Booking) string) func(context.Context) error {
		return func(ctx context.Context) error {
			id, ok, err := c.promptID(label)
			if err != nil {
				return err
			}
			if !ok {
				c.printf("%s is invalid.\n", field)
				return nil
			}
			return c.showMatchingBookings(ctx, func(b models.Booking) bool { return value(b) == id.String() })
		}
	}
	byText := func(label, field string, value func(models.Booking) string) func(context.Context) error {
		return func(ctx context.Context) error {
			want, ok, err := c.promptRequired(label, field)
			if err != nil || !ok {
				return err
			}
			return c.showMatchingBookings(ctx, func(b models.Booking) bool { return strings.EqualFold(value(b), want) })
		}
	}

	return c.choose(ctx, menu{
		{key: "1", label: "By Flight", handle: byID("Enter flight id: ", "Flight id",
			func(b models.Booking) string { return b.Flight.ID.String() })},
		{key: "2", label: "By Passenger", handle: byID("Enter user id: ", "User id",
			func(b models.Booking) string { return b.Passenger.ID.String() })},
		{key: "3", label: "By Departure Country", handle: byText("Enter country name: ", "Departure country",
			func(b models.Booking) string { return b.Flight.Departure.Name })},
		{key: "4", label: "By Destination Country", handle: byText("Enter the country name: ", "Destination country",
			func(b models.Booking) string { return b.Flight.Destination.Name })},
		{key: "5", label: "By Departure Airport", handle: byText("Enter the airport name: ", "Departure airport",
			func(b models.Booking) string { return b.Flight.DepartureAirport.Name })},
		{key: "6", label: "By Destination Airport", handle: byText("Enter the airport name: ", "Destination airport",
			func(b models.Booking) string { return b.Flight.ArrivalAirport.Name })},
		{key: "7", label: "By Flight Class Type", handle: func(ctx context.Context) error {
			name, ok, err := c.promptRequired("Enter the flight class name: ", "Flight class")
			if err != nil || !ok {
				return err
			}
			class, ok := models.ParseClassType(name)
			if !ok {
				c.println("Invalid class type")
				return nil
			}
			return c.showMatchingBookings(ctx, func(b models.Booking) bool { return b.FlightClass == class })
		}},
		{key: "8", label: "Back", handle: func(context.Context) error { return nil }},
	})
}

func (c *Console) showMatchingBookings(ctx context.Context, match filter.Predicate[models.Booking]) error {
	bookings, err := c.bookings.Filter(ctx, []filter.Predicate[models.Booking]{match})
	if err != nil {
		c.printError(err)
		return nil
	}
	if len(bookings) == 0 {
		c.println("No bookings found matching your criteria.")
		return nil
	}
	c.printBookings(bookings)
	return nil
}

func (c *Console) listFlights(ctx context.Context) error {
	flights, err := c.flights.GetAllFlights(ctx)
	if err != nil {
		c.printError(err)
		return nil
	}
	if len(flights) == 0 {
		c.println("No flights available.")
		return nil
	}
	c.printFlights(flights)
	return nil
}
