package booking

import "fmt"

// BookingError carries a stable code the handlers map onto HTTP statuses.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrSessionNotFound = &BookingError{Code: "sessionNotFound", Message: "quote session not found or expired"}
	ErrEmptyCart       = &BookingError{Code: "emptyCart", Message: "cart is empty; add at least one item before booking"}
	ErrIncomplete      = &BookingError{Code: "incompleteSession", Message: "session is missing date, slot or service tier"}
	ErrSlotUnavailable = &BookingError{Code: "slotUnavailable", Message: "selected date and time slot is no longer available"}
)
