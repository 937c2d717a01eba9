package models

import "fmt"

// FlightCSVRow is one row of a flight import file
type FlightCSVRow struct {
	ID                 string `csv:"Id"`
	DepartureCountry   string `csv:"DepartureCountry"`
	DepartureAirport   string `csv:"DepartureAirport"`
	DestinationCountry string `csv:"DestinationCountry"`
	ArrivalAirport     string `csv:"ArrivalAirport"`
	DepartureDate      string `csv:"DepartureDate"`
	AvailableClasses   string `csv:"AvailableClasses"`
}

// CSVValidationError describes one invalid field of an imported row
type CSVValidationError struct {
	RowNumber    int
	PropertyName string
	Message      string
}

func (e CSVValidationError) String() string {
	return fmt.Sprintf("Row %d %s: %s", e.RowNumber, e.PropertyName, e.Message)
}
