package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/apperr"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/service"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/shared/models"
)

// Inventory keeps flight seat counts in step with bookings
type Inventory struct {
	flights  service.FlightService
	bookings service.BookingService
	log      logrus.FieldLogger
}

// New creates an Inventory over the flight and booking services
func New(flights service.FlightService, bookings service.BookingService, log logrus.FieldLogger) *Inventory {
	return &Inventory{flights: flights, bookings: bookings, log: log}
}

// Book creates a booking and takes one seat of the class
func (inv *Inventory) Book(ctx context.Context, passenger models.User, flightID uuid.UUID, class models.ClassType) (models.Booking, error) {
	flight, err := inv.flights.GetFlightByID(ctx, flightID)
	if err != nil {
		return models.Booking{}, err
	}
	info, ok := flight.ClassInfo(class)
	if !ok {
		return models.Booking{}, apperr.FlightClassNotOffered
	}
	if info.AvailableSeats <= 0 {
		return models.Booking{}, apperr.FlightNoSeats
	}

	booking := models.NewBooking(passenger, flight, class)
	// dated by the booking service as it is stored
	booking.BookingDate = time.Time{}
	uow := newUnitOfWork(inv.log.WithField("booking_id", booking.ID))

	err = uow.do(ctx, "add booking",
		func(ctx context.Context) error {
			stored, err := inv.bookings.AddBooking(ctx, booking)
			if err == nil {
				booking = stored
			}
			return err
		},
		func(ctx context.Context) error {
			_, err := inv.bookings.CancelBooking(ctx, booking.ID)
			return err
		})
	if err != nil {
		return models.Booking{}, err
	}

	err = uow.do(ctx, "take seat",
		func(ctx context.Context) error { return inv.Adjust(ctx, flightID, class, -1) },
		nil)
	if err != nil {
		return models.Booking{}, err
	}

	return booking, nil
}

// Cancel removes a booking and releases its seat
func (inv *Inventory) Cancel(ctx context.Context, bookingID uuid.UUID) (models.Booking, error) {
	var cancelled models.Booking
	uow := newUnitOfWork(inv.log.WithField("booking_id", bookingID))

	err := uow.do(ctx, "cancel booking",
		func(ctx context.Context) error {
			var err error
			cancelled, err = inv.bookings.CancelBooking(ctx, bookingID)
			return err
		},
		func(ctx context.Context) error { return inv.bookings.RestoreBooking(ctx, cancelled) })
	if err != nil {
		return models.Booking{}, err
	}

	err = uow.do(ctx, "release seat",
		func(ctx context.Context) error {
			return inv.Adjust(ctx, cancelled.Flight.ID, cancelled.FlightClass, 1)
		},
		nil)
	if err != nil {
		return models.Booking{}, err
	}

	return cancelled, nil
}

// ChangeClass moves a booking to another class of the same flight and reprices it
func (inv *Inventory) ChangeClass(ctx context.Context, bookingID uuid.UUID, class models.ClassType) (models.Booking, error) {
	booking, err := inv.bookings.GetBookingByID(ctx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if booking.FlightClass == class {
		return booking, nil
	}

	flightID := booking.Flight.ID
	flight, err := inv.flights.GetFlightByID(ctx, flightID)
	if errors.Is(err, apperr.FlightNotFound) {
		return models.Booking{}, apperr.InventoryInconsistent.Wrap(err)
	}
	if err != nil {
		return models.Booking{}, err
	}
	info, ok := flight.ClassInfo(class)
	if !ok {
		return models.Booking{}, apperr.FlightClassNotOffered
	}
	if info.AvailableSeats <= 0 {
		return models.Booking{}, apperr.FlightNoSeats
	}

	oldClass := booking.FlightClass
	uow := newUnitOfWork(inv.log.WithFields(logrus.Fields{"booking_id": bookingID, "flight_id": flightID}))

	err = uow.do(ctx, "release old seat",
		func(ctx context.Context) error { return inv.Adjust(ctx, flightID, oldClass, 1) },
		func(ctx context.Context) error { return inv.Adjust(ctx, flightID, oldClass, -1) })
	if err != nil {
		return models.Booking{}, err
	}

	err = uow.do(ctx, "take new seat",
		func(ctx context.Context) error { return inv.Adjust(ctx, flightID, class, -1) },
		func(ctx context.Context) error { return inv.Adjust(ctx, flightID, class, 1) })
	if err != nil {
		return models.Booking{}, err
	}

	booking.FlightClass = class
	booking.Price = flight.PriceFor(class)
	var updated models.Booking
	err = uow.do(ctx, "update booking",
		func(ctx context.Context) error {
			var err error
			updated, err = inv.bookings.ModifyBooking(ctx, bookingID, booking)
			return err
		},
		nil)
	if err != nil {
		return models.Booking{}, err
	}

	return updated, nil
}

// Adjust adds delta to the seats of one class and stores the flight.
// A missing flight or class means bookings and flights disagree.
func (inv *Inventory) Adjust(ctx context.Context, flightID uuid.UUID, class models.ClassType, delta int) error {
	flight, err := inv.flights.GetFlightByID(ctx, flightID)
	if errors.Is(err, apperr.FlightNotFound) {
		return apperr.InventoryInconsistent.Wrap(err)
	}
	if err != nil {
		return err
	}

	i := -1
	for j, c := range flight.AvailableClasses {
		if c.ClassType == class {
			i = j
			break
		}
	}
	if i < 0 {
		return apperr.InventoryInconsistent.Wrap(apperr.FlightClassNotOffered)
	}

	seats := flight.AvailableClasses[i].AvailableSeats + delta
	if seats < 0 {
		return apperr.FlightNoSeats
	}
	flight.AvailableClasses[i].AvailableSeats = seats

	if _, err := inv.flights.ModifyFlight(ctx, flightID, flight); err != nil {
		return err
	}

	inv.log.WithFields(logrus.Fields{
		"flight_id": flightID,
		"class":     class,
		"delta":     delta,
		"seats":     seats,
	}).Debug("seats adjusted")
	return nil
}
