package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/apperr"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/database"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/filter"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/shared/models"
)

// BookingService defines the booking service interface
type BookingService interface {
	GetAllBookings(ctx context.Context) ([]models.Booking, error)
	AddBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	CancelBooking(ctx context.Context, id uuid.UUID) (models.Booking, error)
	ModifyBooking(ctx context.Context, id uuid.UUID, booking models.Booking) (models.Booking, error)
	GetBookingByID(ctx context.Context, id uuid.UUID) (models.Booking, error)
	Filter(ctx context.Context, predicates []filter.Predicate[models.Booking]) ([]models.Booking, error)
	RestoreBooking(ctx context.Context, booking models.Booking) error
	Add(ctx context.Context, booking models.Booking) (models.Booking, error)
}

// bookingServiceImpl implements BookingService. Not safe for concurrent use.
type bookingServiceImpl struct {
	bookings *cachedList[models.Booking]
	log      logrus.FieldLogger
	now      func() time.Time
}

// NewBookingService creates a new BookingService
func NewBookingService(repo database.Repository[models.Booking], log logrus.FieldLogger) BookingService {
	return &bookingServiceImpl{
		bookings: newCachedList(repo, "bookings", models.Booking.Clone),
		log:      log,
		now:      time.Now,
	}
}

func (s *bookingServiceImpl) GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	return s.bookings.snapshot(ctx)
}

// AddBooking allows one booking per passenger and flight, dated no earlier than now.
// A booking with a zero BookingDate is dated now.
func (s *bookingServiceImpl) AddBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	bookings, err := s.bookings.working(ctx)
	if err != nil {
		return models.Booking{}, err
	}

	duplicate := lo.ContainsBy(bookings, func(b models.Booking) bool {
		return b.Passenger.ID == booking.Passenger.ID && b.Flight.ID == booking.Flight.ID
	})
	if duplicate {
		return models.Booking{}, apperr.BookingAlreadyExists
	}
	now := s.now().UTC()
	if booking.BookingDate.IsZero() {
		booking.BookingDate = now
	}
	if booking.BookingDate.Before(now) {
		return models.Booking{}, apperr.BookingNotValid
	}

	bookings = append(bookings, booking)
	if err := s.bookings.commit(ctx, bookings); err != nil {
		return models.Booking{}, err
	}

	s.log.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"flight_id":  booking.Flight.ID,
		"user_id":    booking.Passenger.ID,
		"class":      booking.FlightClass,
	}).Info("booking added")
	return booking.Clone(), nil
}

// CancelBooking removes a booking and returns it. Seats are not released here.
func (s *bookingServiceImpl) CancelBooking(ctx context.Context, id uuid.UUID) (models.Booking, error) {
	bookings, err := s.bookings.working(ctx)
	if err != nil {
		return models.Booking{}, err
	}
	i := indexByID(bookings, id)
	if i < 0 {
		return models.Booking{}, apperr.BookingNotFound
	}

	cancelled := bookings[i].Clone()
	bookings = append(bookings[:i], bookings[i+1:]...)
	if err := s.bookings.commit(ctx, bookings); err != nil {
		return models.Booking{}, err
	}

	s.log.WithFields(logrus.Fields{"booking_id": id, "flight_id": cancelled.Flight.ID}).Info("booking cancelled")
	return cancelled, nil
}

// ModifyBooking checks that id exists and then replaces the booking whose id equals booking.ID.
// When booking.ID names no stored booking the call fails with Booking.NotFound.
func (s *bookingServiceImpl) ModifyBooking(ctx context.Context, id uuid.UUID, booking models.Booking) (models.Booking, error) {
	bookings, err := s.bookings.working(ctx)
	if err != nil {
		return models.Booking{}, err
	}
	if indexByID(bookings, id) < 0 {
		return models.Booking{}, apperr.BookingNotFound
	}
	i := indexByID(bookings, booking.ID)
	if i < 0 {
		return models.Booking{}, apperr.BookingNotFound
	}

	bookings[i] = booking
	if err := s.bookings.commit(ctx, bookings); err != nil {
		return models.Booking{}, err
	}

	s.log.WithFields(logrus.Fields{"booking_id": booking.ID, "class": booking.FlightClass}).Info("booking modified")
	return booking.Clone(), nil
}

func (s *bookingServiceImpl) GetBookingByID(ctx context.Context, id uuid.UUID) (models.Booking, error) {
	bookings, err := s.bookings.current(ctx)
	if err != nil {
		return models.Booking{}, err
	}
	i := indexByID(bookings, id)
	if i < 0 {
		return models.Booking{}, apperr.BookingNotFound
	}
	return bookings[i].Clone(), nil
}

func (s *bookingServiceImpl) Filter(ctx context.Context, predicates []filter.Predicate[models.Booking]) ([]models.Booking, error) {
	bookings, err := s.bookings.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(bookings, predicates)
}

// RestoreBooking puts back a cancelled booking without the add-time checks
func (s *bookingServiceImpl) RestoreBooking(ctx context.Context, booking models.Booking) error {
	bookings, err := s.bookings.working(ctx)
	if err != nil {
		return err
	}
	if indexByID(bookings, booking.ID) >= 0 {
		return apperr.BookingAlreadyExists
	}

	bookings = append(bookings, booking)
	if err := s.bookings.commit(ctx, bookings); err != nil {
		return err
	}

	s.log.WithField("booking_id", booking.ID).Warn("booking restored")
	return nil
}

func (s *bookingServiceImpl) Add(ctx context.Context, booking models.Booking) (models.Booking, error) {
	return s.AddBooking(ctx, booking)
}
