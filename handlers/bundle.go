// File: handlers/bundle.go
package handlers

import (
	"wellspring/services/booking"
	"wellspring/services/client"
	"wellspring/services/professional"
)

// HandlerBundle carries every service the HTTP layer needs.
type HandlerBundle struct {
	BookingService      booking.BookingService
	ClientService       client.ClientService
	ProfessionalService professional.ProfessionalService
}
