package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/apperr"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/filter"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/service/mocks"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/shared/models"
)

func newBookingService(stored ...models.Booking) (BookingService, *mocks.MockRepository[models.Booking]) {
	repo := new(mocks.MockRepository[models.Booking])
	repo.On("ReadAll", mock.Anything).Return(append([]models.Booking{}, stored...), nil)
	return NewBookingService(repo, nullLogger()), repo
}

func TestBookingService_GetAllBookings(t *testing.T) {
	booking := buildBooking()
	svc, repo := newBookingService(booking)
	ctx := context.Background()

	first, err := svc.GetAllBookings(ctx)
	require.NoError(t, err)
	second, err := svc.GetAllBookings(ctx)
	require.NoError(t, err)

	require.Len(t, first, 1)
	assert.Equal(t, booking.ID, first[0].ID)
	assert.Equal(t, booking.ID, second[0].ID)
	repo.AssertNumberOfCalls(t, "ReadAll", 1)
}

func TestBookingService_GetAllBookings_ReturnsCopies(t *testing.T) {
	svc, _ := newBookingService(buildBooking())
	ctx := context.Background()

	got, err := svc.GetAllBookings(ctx)
	require.NoError(t, err)
	got[0].FlightClass = models.ClassFirstClass
	got[0].Flight.AvailableClasses[0].AvailableSeats = -1

	again, err := svc.GetAllBookings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ClassEconomy, again[0].FlightClass)
	assert.Equal(t, 100, again[0].Flight.AvailableClasses[0].AvailableSeats)
}

func TestBookingService_AddBooking(t *testing.T) {
	existing := buildBooking()

	pastDated := buildBooking()
	pastDated.BookingDate = time.Now().UTC().AddDate(0, 0, -2)

	samePair := buildBooking()
	samePair.Passenger = existing.Passenger
	samePair.Flight = existing.Flight

	tests := []struct {
		name    string
		booking models.Booking
		wantErr error
	}{
		{
			name:    "new booking",
			booking: buildBooking(),
		},
		{
			name:    "same passenger and flight",
			booking: samePair,
			wantErr: apperr.BookingAlreadyExists,
		},
		{
			name:    "booking date in the past",
			booking: pastDated,
			wantErr: apperr.BookingNotValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newBookingService(existing)
			repo.On("WriteAll", mock.Anything, mock.Anything).Return(nil)

			got, err := svc.AddBooking(context.Background(), tt.booking)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "WriteAll", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.booking.ID, got.ID)
			repo.AssertCalled(t, "WriteAll", mock.Anything, mock.MatchedBy(func(items []models.Booking) bool {
				return len(items) == 2 && items[1].ID == tt.booking.ID
			}))
		})
	}
}

func TestBookingService_AddBooking_BookingDate(t *testing.T) {
	now := time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		want    time.Time
		wantErr error
	}{
		{name: "undated is dated now", date: time.Time{}, want: now},
		{name: "exactly now", date: now, want: now},
		{name: "later today", date: now.Add(time.Hour), want: now.Add(time.Hour)},
		{name: "half a second ago", date: now.Add(-500 * time.Millisecond), wantErr: apperr.BookingNotValid},
		{name: "one nanosecond ago", date: now.Add(-time.Nanosecond), wantErr: apperr.BookingNotValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newBookingService()
			svc.(*bookingServiceImpl).now = func() time.Time { return now }
			repo.On("WriteAll", mock.Anything, mock.Anything).Return(nil)
			booking := buildBooking()
			booking.BookingDate = tt.date

			got, err := svc.AddBooking(context.Background(), booking)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "WriteAll", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.BookingDate), got.BookingDate)
			stored, err := svc.GetBookingByID(context.Background(), booking.ID)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(stored.BookingDate))
		})
	}
}

func TestBookingService_AddBooking_KindOfErrors(t *testing.T) {
	booking := buildBooking()
	svc, _ := newBookingService(booking)

	_, err := svc.AddBooking(context.Background(), booking)

	assert.True(t, errors.Is(err, apperr.ErrAlreadyExists))
}

func TestBookingService_AddBooking_RefreshesCache(t *testing.T) {
	svc, repo := newBookingService()
	repo.On("WriteAll", mock.Anything, mock.Anything).Return(nil)
	ctx := context.Background()
	booking := buildBooking()

	_, err := svc.AddBooking(ctx, booking)
	require.NoError(t, err)

	got, err := svc.GetAllBookings(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, booking.ID, got[0].ID)
	repo.AssertNumberOfCalls(t, "ReadAll", 1)
}

func TestBookingService_WriteFailureKeepsCache(t *testing.T) {
	existing := buildBooking()
	svc, repo := newBookingService(existing)
	boom := errors.New("disk full")
	repo.On("WriteAll", mock.Anything, mock.Anything).Return(boom)
	ctx := context.Background()

	_, err := svc.AddBooking(ctx, buildBooking())
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "failed to write bookings")

	got, err := svc.GetAllBookings(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, existing.ID, got[0].ID)
}

func TestBookingService_CancelBooking(t *testing.T) {
	t.Run("missing booking", func(t *testing.T) {
		svc, _ := newBookingService(buildBooking())

		_, err := svc.CancelBooking(context.Background(), uuid.New())

		assert.ErrorIs(t, err, apperr.BookingNotFound)
	})

	t.Run("existing booking", func(t *testing.T) {
		keep := buildBooking()
		cancel := buildBooking()
		svc, repo := newBookingService(keep, cancel)
		repo.On("WriteAll", mock.Anything, mock.Anything).Return(nil)
		ctx := context.Background()

		cancelled, err := svc.CancelBooking(ctx, cancel.ID)
		require.NoError(t, err)
		assert.Equal(t, cancel.ID, cancelled.ID)

		got, err := svc.GetAllBookings(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, keep.ID, got[0].ID)
	})
}

func TestBookingService_ModifyBooking(t *testing.T) {
	first := buildBooking()
	second := buildBooking()

	t.Run("same id", func(t *testing.T) {
		svc, repo := newBookingService(first, second)
		repo.On("WriteAll", mock.Anything, mock.Anything).Return(nil)
		ctx := context.Background()

		changed := first
		changed.FlightClass = models.ClassBusiness
		_, err := svc.ModifyBooking(ctx, first.ID, changed)
		require.NoError(t, err)

		got, err := svc.GetBookingByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ClassBusiness, got.FlightClass)
	})

	t.Run("new booking carries another stored id", func(t *testing.T) {
		svc, repo := newBookingService(first, second)
		repo.On("WriteAll", mock.Anything, mock.Anything).Return(nil)
		ctx := context.Background()

		replacement := second
		replacement.FlightClass = models.ClassFirstClass
		_, err := svc.ModifyBooking(ctx, first.ID, replacement)
		require.NoError(t, err)

		gotFirst, err := svc.GetBookingByID(ctx, first.ID)
		require.NoError(t, err)
		gotSecond, err := svc.GetBookingByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ClassEconomy, gotFirst.FlightClass)
		assert.Equal(t, models.ClassFirstClass, gotSecond.FlightClass)
	})

	t.Run("new booking carries unknown id", func(t *testing.T) {
		svc, repo := newBookingService(first, second)

		_, err := svc.ModifyBooking(context.Background(), first.ID, buildBooking())

		assert.ErrorIs(t, err, apperr.BookingNotFound)
		repo.AssertNotCalled(t, "WriteAll", mock.Anything, mock.Anything)
	})

	t.Run("path id unknown", func(t *testing.T) {
		svc, _ := newBookingService(first)

		_, err := svc.ModifyBooking(context.Background(), uuid.New(), first)

		assert.ErrorIs(t, err, apperr.BookingNotFound)
	})
}

func TestBookingService_Filter(t *testing.T) {
	economy := buildBooking()
	business := models.NewBooking(buildUser("b@example.com"), buildFlight(), models.ClassBusiness)
	svc, _ := newBookingService(economy, business)
	ctx := context.Background()

	got, err := svc.Filter(ctx, []filter.Predicate[models.Booking]{
		func(b models.Booking) bool { return b.FlightClass == models.ClassBusiness },
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, business.ID, got[0].ID)

	_, err = svc.Filter(ctx, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestBookingService_RestoreBooking(t *testing.T) {
	old := buildBooking()
	old.BookingDate = time.Now().UTC().AddDate(0, -1, 0)
	svc, repo := newBookingService()
	repo.On("WriteAll", mock.Anything, mock.Anything).Return(nil)
	ctx := context.Background()

	require.NoError(t, svc.RestoreBooking(ctx, old))
	assert.ErrorIs(t, svc.RestoreBooking(ctx, old), apperr.BookingAlreadyExists)

	got, err := svc.GetBookingByID(ctx, old.ID)
	require.NoError(t, err)
	assert.Equal(t, old.ID, got.ID)
}
