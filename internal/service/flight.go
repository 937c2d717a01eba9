package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/apperr"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/database"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/filter"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/shared/models"
)

// FlightService defines the flight service interface
type FlightService interface {
	GetAllFlights(ctx context.Context) ([]models.Flight, error)
	AddFlight(ctx context.Context, flight models.Flight) (models.Flight, error)
	DeleteFlight(ctx context.Context, id uuid.UUID) error
	ModifyFlight(ctx context.Context, id uuid.UUID, flight models.Flight) (models.Flight, error)
	GetFlightByID(ctx context.Context, id uuid.UUID) (models.Flight, error)
	SearchFlight(ctx context.Context, predicates []filter.Predicate[models.Flight]) ([]models.Flight, error)
	Add(ctx context.Context, flight models.Flight) (models.Flight, error)
}

// flightServiceImpl implements FlightService. Not safe for concurrent use.
type flightServiceImpl struct {
	flights *cachedList[models.Flight]
	log     logrus.FieldLogger
}

// NewFlightService creates a new FlightService
func NewFlightService(repo database.Repository[models.Flight], log logrus.FieldLogger) FlightService {
	return &flightServiceImpl{
		flights: newCachedList(repo, "flights", models.Flight.Clone),
		log:     log,
	}
}

func (s *flightServiceImpl) GetAllFlights(ctx context.Context) ([]models.Flight, error) {
	return s.flights.snapshot(ctx)
}

// AddFlight rejects only an id collision
func (s *flightServiceImpl) AddFlight(ctx context.Context, flight models.Flight) (models.Flight, error) {
	flights, err := s.flights.working(ctx)
	if err != nil {
		return models.Flight{}, err
	}
	if lo.ContainsBy(flights, func(f models.Flight) bool { return f.ID == flight.ID }) {
		return models.Flight{}, apperr.FlightAlreadyExists
	}

	flights = append(flights, flight)
	if err := s.flights.commit(ctx, flights); err != nil {
		return models.Flight{}, err
	}

	s.log.WithField("flight_id", flight.ID).Info("flight added")
	return flight.Clone(), nil
}

func (s *flightServiceImpl) DeleteFlight(ctx context.Context, id uuid.UUID) error {
	flights, err := s.flights.working(ctx)
	if err != nil {
		return err
	}
	i := indexByID(flights, id)
	if i < 0 {
		return apperr.FlightNotFound
	}

	flights = append(flights[:i], flights[i+1:]...)
	if err := s.flights.commit(ctx, flights); err != nil {
		return err
	}

	s.log.WithField("flight_id", id).Info("flight deleted")
	return nil
}

// ModifyFlight replaces the flight stored under id
func (s *flightServiceImpl) ModifyFlight(ctx context.Context, id uuid.UUID, flight models.Flight) (models.Flight, error) {
	flights, err := s.flights.working(ctx)
	if err != nil {
		return models.Flight{}, err
	}
	i := indexByID(flights, id)
	if i < 0 {
		return models.Flight{}, apperr.FlightNotFound
	}

	flights[i] = flight
	if err := s.flights.commit(ctx, flights); err != nil {
		return models.Flight{}, err
	}

	s.log.WithField("flight_id", id).Debug("flight modified")
	return flight.Clone(), nil
}

func (s *flightServiceImpl) GetFlightByID(ctx context.Context, id uuid.UUID) (models.Flight, error) {
	flights, err := s.flights.current(ctx)
	if err != nil {
		return models.Flight{}, err
	}
	i := indexByID(flights, id)
	if i < 0 {
		return models.Flight{}, apperr.FlightNotFound
	}
	return flights[i].Clone(), nil
}

func (s *flightServiceImpl) SearchFlight(ctx context.Context, predicates []filter.Predicate[models.Flight]) ([]models.Flight, error) {
	flights, err := s.flights.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(flights, predicates)
}

func (s *flightServiceImpl) Add(ctx context.Context, flight models.Flight) (models.Flight, error) {
	return s.AddFlight(ctx, flight)
}
