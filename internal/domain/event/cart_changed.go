package event

type CartChangedEvent struct {
	VisitorID string `json:"visitor_id"`
	Action    string `json:"action"` // add, remove, quantity
	ProductID int    `json:"product_id"`
	Quantity  int    `json:"quantity"`   // Quantity after the change, 0 when removed
	CartCount int    `json:"cart_count"` // Sum of quantities after the change
	CartTotal int    `json:"cart_total"`
}

func (e *CartChangedEvent) EventType() string {
	return "CartChanged"
}

func (e *CartChangedEvent) EventValue() ([]byte, error) {
	return DefaultEventValue(e)
}
