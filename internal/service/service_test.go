package service

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/shared/models"
)

func nullLogger() logrus.FieldLogger {
	log, _ := test.NewNullLogger()
	return log
}

func buildFlight() models.Flight {
	from := models.NewCountry("Jordan", "JO")
	to := models.NewCountry("Turkey", "TR")
	return models.NewFlight(
		from, to,
		models.NewAirport("Queen Alia", from), models.NewAirport("Istanbul", to),
		time.Now().Add(96*time.Hour).Truncate(time.Minute),
		[]models.FlightClassInfo{
			{ClassType: models.ClassEconomy, AvailableSeats: 100, Price: decimal.NewFromInt(100)},
			{ClassType: models.ClassBusiness, AvailableSeats: 10, Price: decimal.NewFromInt(350)},
		},
	)
}

func buildUser(email string) models.User {
	return models.NewUser("Passenger", email, "pass", models.RolePassenger)
}

// buildBooking returns an undated booking; AddBooking dates it
func buildBooking() models.Booking {
	b := models.NewBooking(buildUser("p@example.com"), buildFlight(), models.ClassEconomy)
	b.BookingDate = time.Time{}
	return b
}
