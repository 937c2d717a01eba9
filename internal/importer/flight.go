package importer

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/shared/models"
)

// now is replaced in tests
var now = time.Now

// ValidateFlightRow checks one row of a flight import file
func ValidateFlightRow(row models.FlightCSVRow, rowNumber int) []models.CSVValidationError {
	var errs []models.CSVValidationError
	add := func(property, format string, args ...any) {
		errs = append(errs, models.CSVValidationError{
			RowNumber:    rowNumber,
			PropertyName: property,
			Message:      fmt.Sprintf(format, args...),
		})
	}

	if _, err := uuid.Parse(strings.TrimSpace(row.ID)); err != nil {
		add("Id", "Invalid or missing Id.")
	}

	required := []struct{ name, value string }{
		{"DepartureCountry", row.DepartureCountry},
		{"DepartureAirport", row.DepartureAirport},
		{"DestinationCountry", row.DestinationCountry},
		{"ArrivalAirport", row.ArrivalAirport},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			add(field.name, "%s is required.", field.name)
		}
	}

	departure, err := time.ParseInLocation(models.DateLayout, row.DepartureDate, time.Local)
	switch {
	case err != nil:
		add("DepartureDate", "Invalid DepartureDate format.")
	case departure.Before(now()):
		add("DepartureDate", "DepartureDate cannot be in the past.")
	}

	if strings.TrimSpace(row.AvailableClasses) == "" {
		add("AvailableClasses", "AvailableClasses is required.")
		return errs
	}
	for _, entry := range strings.Split(row.AvailableClasses, ";") {
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			add("AvailableClasses", "Invalid format: '%s'. Expected: ClassType:Seats:Price", entry)
			continue
		}
		if _, ok := models.ParseClassType(strings.TrimSpace(parts[0])); !ok {
			add("AvailableClasses", "Invalid class type: '%s'", parts[0])
		}
		if seats, err := strconv.Atoi(strings.TrimSpace(parts[1])); err != nil || seats < 0 {
			add("AvailableClasses", "Invalid seat count: '%s'. Must be non-negative.", parts[1])
		}
		if price, err := parsePrice(parts[2]); err != nil || !price.IsPositive() {
			add("AvailableClasses", "Invalid price: '%s'. Must be a positive decimal.", parts[2])
		}
	}

	return errs
}

// FlightFromRow maps a row that passed ValidateFlightRow
func FlightFromRow(row models.FlightCSVRow) (models.Flight, error) {
	id, err := uuid.Parse(strings.TrimSpace(row.ID))
	if err != nil {
		return models.Flight{}, fmt.Errorf("invalid flight id: %w", err)
	}
	departureDate, err := time.ParseInLocation(models.DateLayout, row.DepartureDate, time.Local)
	if err != nil {
		return models.Flight{}, fmt.Errorf("invalid departure date: %w", err)
	}
	classes, err := ParseFlightClasses(row.AvailableClasses)
	if err != nil {
		return models.Flight{}, err
	}

	departure := models.Country{ID: uuid.New(), Name: row.DepartureCountry}
	destination := models.Country{ID: uuid.New(), Name: row.DestinationCountry}

	basePrice := decimal.Zero
	for _, c := range classes {
		if c.ClassType == models.ClassEconomy {
			basePrice = basePrice.Add(c.Price)
		}
	}

	return models.Flight{
		ID:               id,
		BasePrice:        basePrice,
		Departure:        departure,
		Destination:      destination,
		DepartureAirport: models.Airport{ID: uuid.New(), Name: row.DepartureAirport, Country: departure},
		ArrivalAirport:   models.Airport{ID: uuid.New(), Name: row.ArrivalAirport, Country: destination},
		DepartureDate:    departureDate,
		AvailableClasses: classes,
	}, nil
}

// ParseFlightClasses parses "ClassType:Seats:Price" entries separated by ';', skipping empty entries
func ParseFlightClasses(s string) ([]models.FlightClassInfo, error) {
	classes := []models.FlightClassInfo{}
	for _, entry := range strings.Split(s, ";") {
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid flight class format: '%s'", entry)
		}
		class, ok := models.ParseClassType(strings.TrimSpace(parts[0]))
		if !ok {
			return nil, fmt.Errorf("invalid class type: '%s'", parts[0])
		}
		seats, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid seat count '%s': %w", parts[1], err)
		}
		price, err := parsePrice(parts[2])
		if err != nil {
			return nil, err
		}
		classes = append(classes, models.FlightClassInfo{ClassType: class, AvailableSeats: seats, Price: price})
	}
	return classes, nil
}

// parsePrice accepts digits with at most one decimal point, no sign or exponent
func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" || strings.Count(s, ".") > 1 || strings.Trim(s, "0123456789.") != "" || s == "." {
		return decimal.Zero, fmt.Errorf("invalid price '%s'", s)
	}
	return decimal.NewFromString(s)
}

// FlightImporter imports flight rows into flight storage
type FlightImporter = Importer[models.FlightCSVRow, models.Flight]

// NewFlightImporter creates an importer reading flight CSV files
func NewFlightImporter(log logrus.FieldLogger) *FlightImporter {
	return NewImporter[models.FlightCSVRow, models.Flight](NewCSVReader[models.FlightCSVRow, models.Flight](), log)
}

// ImportFlights validates and maps the flight file at path and adds the flights in row order
func ImportFlights(ctx context.Context, imp *FlightImporter, flights Adder[models.Flight], path string) ([]models.Flight, error) {
	return imp.Import(ctx, path, FlightFromRow, flights, ValidateFlightRow)
}
