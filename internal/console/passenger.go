package console

import (
	"context"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/filter"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/shared/models"
)

func (c *Console) passengerMenu(user models.User) menu {
	return menu{
		{key: "1", label: "Search for available flights", handle: c.searchFlights},
		{key: "2", label: "Book a flight", handle: func(ctx context.Context) error { return c.bookFlight(ctx, user) }},
		{key: "3", label: "Cancel a booking", handle: func(ctx context.Context) error { return c.cancelBooking(ctx, user) }},
		{key: "4", label: "View my bookings", handle: func(ctx context.Context) error { return c.viewBookings(ctx, user) }},
		{key: "5", label: "Edit my booking", handle: func(ctx context.Context) error { return c.editBooking(ctx, user) }},
		{key: "6", label: "Exit", handle: exit},
	}
}

// searchFlights narrows the flight list with every criterion entered so far
func (c *Console) searchFlights(ctx context.Context) error {
	var criteria []filter.Predicate[models.Flight]

	text := func(label, field string, value func(models.Flight) string) func(context.Context) error {
		return func(ctx context.Context) error {
			want, ok, err := c.promptRequired(label, field)
			if err != nil || !ok {
				return err
			}
			criteria = append(criteria, func(f models.Flight) bool { return value(f) == want })
			return c.showMatchingFlights(ctx, criteria)
		}
	}

	return c.serve(ctx, menu{
		{key: "1", label: "By Price", handle: func(ctx context.Context) error {
			price, ok, err := c.promptPrice("Enter the price: ")
			if err != nil || !ok {
				return err
			}
			criteria = append(criteria, func(f models.Flight) bool { return f.BasePrice.Equal(price) })
			return c.showMatchingFlights(ctx, criteria)
		}},
		{key: "2", label: "By Departure Country", handle: text("Enter the country: ", "Departure country",
			func(f models.Flight) string { return f.Departure.Name })},
		{key: "3", label: "By Destination Country", handle: text("Enter the country: ", "Destination country",
			func(f models.Flight) string { return f.Destination.Name })},
		{key: "4", label: "By Departure Airport", handle: text("Enter the airport: ", "Departure airport",
			func(f models.Flight) string { return f.DepartureAirport.Name })},
		{key: "5", label: "By Arrival Airport", handle: text("Enter the airport: ", "Arrival airport",
			func(f models.Flight) string { return f.ArrivalAirport.Name })},
		{key: "6", label: "By Class", handle: func(ctx context.Context) error {
			name, ok, err := c.promptRequired("Enter the class: ", "Class")
			if err != nil || !ok {
				return err
			}
			class, ok := models.ParseClassType(name)
			if !ok {
				c.println("Invalid class type")
				return nil
			}
			criteria = append(criteria, func(f models.Flight) bool {
				_, offered := f.ClassInfo(class)
				return offered
			})
			return c.showMatchingFlights(ctx, criteria)
		}},
		{key: "7", label: "Back", handle: back},
	})
}

func (c *Console) showMatchingFlights(ctx context.Context, criteria []filter.Predicate[models.Flight]) error {
	flights, err := c.flights.SearchFlight(ctx, criteria)
	if err != nil {
		c.printError(err)
		return nil
	}
	if len(flights) == 0 {
		c.println("No flights found matching your criteria.")
		return nil
	}
	c.printFlights(flights)
	return nil
}

func (c *Console) bookFlight(ctx context.Context, user models.User) error {
	c.println("Book a flight")

	flights, err := c.flights.GetAllFlights(ctx)
	if err != nil {
		c.printError(err)
		return nil
	}
	c.printFlights(flights)

	flightID, ok, err := c.promptID("Enter flight id: ")
	if err != nil {
		return err
	}
	if !ok || !lo.ContainsBy(flights, func(f models.Flight) bool { return f.ID == flightID }) {
		c.println("Invalid flight id")
		return nil
	}

	class, ok, err := c.promptClass()
	if err != nil || !ok {
		return err
	}

	if _, err := c.inventory.Book(ctx, user, flightID, class); err != nil {
		c.printError(err)
		return nil
	}
	c.println("Booking successful")
	return nil
}

func (c *Console) myBookings(ctx context.Context, user models.User) ([]models.Booking, error) {
	return c.bookings.Filter(ctx, []filter.Predicate[models.Booking]{
		func(b models.Booking) bool { return b.Passenger.ID == user.ID },
	})
}

// promptMyBooking reads a booking id that must belong to user
func (c *Console) promptMyBooking(ctx context.Context, user models.User) (models.Booking, bool, error) {
	mine, err := c.myBookings(ctx, user)
	if err != nil {
		c.printError(err)
		return models.Booking{}, false, nil
	}

	id, ok, err := c.promptID("Enter booking id: ")
	if err != nil {
		return models.Booking{}, false, err
	}
	booking, found := lo.Find(mine, func(b models.Booking) bool { return b.ID == id })
	if !ok || !found {
		c.println("Invalid booking id")
		return models.Booking{}, false, nil
	}
	return booking, true, nil
}

func (c *Console) cancelBooking(ctx context.Context, user models.User) error {
	c.println("Cancel my booking")

	booking, ok, err := c.promptMyBooking(ctx, user)
	if err != nil || !ok {
		return err
	}
	if _, err := c.inventory.Cancel(ctx, booking.ID); err != nil {
		c.printError(err)
		return nil
	}
	c.println("Booking cancelled")
	return nil
}

func (c *Console) viewBookings(ctx context.Context, user models.User) error {
	c.println("View my bookings")

	mine, err := c.myBookings(ctx, user)
	if err != nil {
		c.printError(err)
		return nil
	}
	if len(mine) == 0 {
		c.println("You have no bookings.")
		return nil
	}
	c.printBookings(mine)
	c.printf("Total: $%s\n", lo.Reduce(mine, func(sum decimal.Decimal, b models.Booking, _ int) decimal.Decimal {
		return sum.Add(b.Price)
	}, decimal.Zero).StringFixed(2))
	return nil
}

func (c *Console) editBooking(ctx context.Context, user models.User) error {
	c.println("Edit my booking")

	booking, ok, err := c.promptMyBooking(ctx, user)
	if err != nil || !ok {
		return err
	}

	field, err := c.prompt("1. Flight Class\nEnter what you want to update: ")
	if err != nil {
		return err
	}
	if field != "1" {
		c.println("Invalid input")
		return nil
	}

	class, ok, err := c.promptClass()
	if err != nil || !ok {
		return err
	}
	if _, err := c.inventory.ChangeClass(ctx, booking.ID, class); err != nil {
		c.printError(err)
		return nil
	}
	c.println("Booking updated successfully")
	return nil
}

