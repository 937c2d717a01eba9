package apperr

// User errors
var (
	UserNotFound      = New("Users.NotFound", "The user doesn't exist", ErrNotFound)
	UserAlreadyExists = New("Users.AlreadyExists", "There is a user with same email exists", ErrAlreadyExists)
)

// Flight errors
var (
	FlightNotFound        = New("Flight.NotFound", "The Flight doesn't exist", ErrNotFound)
	FlightAlreadyExists   = New("Flight.AlreadyExists", "The flight is already exists", ErrAlreadyExists)
	FlightClassNotOffered = New("Flight.ClassNotOffered", "The flight doesn't contain this class", ErrNotValid)
	FlightNoSeats         = New("Flight.NoSeats", "There's no available seats for this class", ErrNotValid)
)

// Booking errors
var (
	BookingAlreadyExists = New("Booking.AlreadyExists", "The booking is already exists", ErrAlreadyExists)
	BookingNotFound      = New("Booking.NotFound", "The booking doesn't exist", ErrNotFound)
	BookingNotValid      = New("Booking.NotValid", "The Booking is not valid", ErrNotValid)
)

// Auth errors
var (
	Unauthorized = New("Auth.Unauthorized", "Invalid credentials", ErrUnauthorized)
	AuthNotValid = New("Auth.NotValid", "The input is invalid, nothing should be empty or null", ErrNotValid)
)

// Filter errors
var (
	FilterNilPredicates = New("Filter.InvalidArgument", "Predicates must not be nil", ErrInvalidArgument)
	FilterNilPredicate  = New("Filter.InvalidArgument", "Predicates array contains a null element", ErrInvalidArgument)
)

// CSV import errors. Only the code is fixed for ReadError and ValidationError,
// the description is built per import.
var (
	CSVFilePath        = New("Csv.FilePath", "File path cannot be empty.", ErrInvalidArgument)
	CSVReadError       = New("Csv.ReadError", "Failed to read or parse the CSV file", ErrNotValid)
	CSVValidationError = New("Csv.ValidationError", "The CSV file contains invalid rows", ErrNotValid)
)

// InventoryInconsistent means a booking references a flight or class that is gone.
var InventoryInconsistent = New("Inventory.Inconsistent", "Booking and flight records are inconsistent", ErrNotValid)
