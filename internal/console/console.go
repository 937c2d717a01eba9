package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/importer"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/inventory"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/service"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/shared/models"
)

const separator = "**********************"

// Deps are the services the menus call into
type Deps struct {
	Auth      service.AuthService
	Flights   service.FlightService
	Bookings  service.BookingService
	Inventory *inventory.Inventory
	Importer  *importer.FlightImporter
	Log       logrus.FieldLogger
}

// Console runs the line-oriented menus
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	auth      service.AuthService
	flights   service.FlightService
	bookings  service.BookingService
	inventory *inventory.Inventory
	importer  *importer.FlightImporter
	log       logrus.FieldLogger
}

// New creates a Console reading choices from in and writing to out
func New(in io.Reader, out io.Writer, deps Deps) *Console {
	return &Console{
		in:        bufio.NewScanner(in),
		out:       out,
		auth:      deps.Auth,
		flights:   deps.Flights,
		bookings:  deps.Bookings,
		inventory: deps.Inventory,
		importer:  deps.Importer,
		log:       deps.Log,
	}
}

// Run shows the start menu until the user exits or input ends
func (c *Console) Run(ctx context.Context) error {
	err := c.serve(ctx, c.appMenu())
	if errors.Is(err, errExit) {
		return nil
	}
	return err
}

// readLine returns the next trimmed input line; end of input ends the session
func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errExit
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	return c.readLine()
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// printError shows a failed operation to the user
func (c *Console) printError(err error) {
	c.println(err.Error())
}

func (c *Console) promptID(label string) (uuid.UUID, bool, error) {
	input, err := c.prompt(label)
	if err != nil {
		return uuid.Nil, false, err
	}
	id, parseErr := uuid.Parse(input)
	return id, parseErr == nil, nil
}

// promptRequired reads a non-blank value, printing "<field> is invalid." otherwise
func (c *Console) promptRequired(label, field string) (string, bool, error) {
	input, err := c.prompt(label)
	if err != nil {
		return "", false, err
	}
	if input == "" {
		c.printf("%s is invalid.\n", field)
		return "", false, nil
	}
	return input, true, nil
}

func (c *Console) promptPrice(label string) (decimal.Decimal, bool, error) {
	input, err := c.prompt(label)
	if err != nil {
		return decimal.Zero, false, err
	}
	price, parseErr := decimal.NewFromString(input)
	if parseErr != nil {
		c.println("Invalid input")
		return decimal.Zero, false, nil
	}
	return price, true, nil
}

// promptClass reads a class by menu number
func (c *Console) promptClass() (models.ClassType, bool, error) {
	c.println("Select Class")
	for i, class := range models.ClassTypes {
		c.printf("%d. %s\n", i+1, class)
	}
	input, err := c.readLine()
	if err != nil {
		return "", false, err
	}
	for i, class := range models.ClassTypes {
		if input == fmt.Sprint(i+1) {
			return class, true, nil
		}
	}
	c.println("Invalid class selection")
	return "", false, nil
}

func (c *Console) printFlights(flights []models.Flight) {
	for _, f := range flights {
		c.println(f)
		c.println(separator)
	}
}

func (c *Console) printBookings(bookings []models.Booking) {
	for _, b := range bookings {
		c.println(b)
	}
}
