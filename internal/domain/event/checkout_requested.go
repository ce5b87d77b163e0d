package event

import (
	"time"

	"redlenic/storefront/internal/domain"
)

type CheckoutRequestedEvent struct {
	VisitorID   string             `json:"visitor_id"`
	Entries     []domain.CartEntry `json:"entries"`
	Total       int                `json:"total"`
	Message     string             `json:"message"` // Text handed to WhatsApp
	RequestedAt time.Time          `json:"requested_at"`
}

func (e *CheckoutRequestedEvent) EventType() string {
	return "CheckoutRequested"
}

func (e *CheckoutRequestedEvent) EventValue() ([]byte, error) {
	return DefaultEventValue(e)
}
