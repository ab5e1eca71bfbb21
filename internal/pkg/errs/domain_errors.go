package errs

import "errors"

// Sentinel errors shared by the command and query layers
var (
	// Item errors
	ErrItemNotFound = errors.New("item not found")

	// Reservation errors
	ErrReservationNotFound    = errors.New("reservation not found")
	ErrDateConflict           = errors.New("date already reserved")
	ErrRenterNotAuthenticated = errors.New("renter not authenticated")

	// Idempotency errors
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyKeyReused   = errors.New("idempotency key reused with different request")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
