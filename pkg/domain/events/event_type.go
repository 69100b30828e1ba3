package events

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	// Customer events
	EventTypeCustomerRegistered EventType = "Customer.Registered"
	EventTypeCustomerUpdated    EventType = "Customer.Updated"

	// Product lifecycle
	EventTypeProductOpened EventType = "Product.Opened"

	// Balance movements
	EventTypeDeposited          EventType = "Product.Deposited"
	EventTypeWithdrawn          EventType = "Product.Withdrawn"
	EventTypeWithdrawalDeclined EventType = "Product.WithdrawalDeclined"
	EventTypeTransferred        EventType = "Product.Transferred"

	// Interest
	EventTypeInterestAccrued EventType = "Product.InterestAccrued"

	// Credit card
	EventTypeCharged EventType = "Card.Charged"
	EventTypePaid    EventType = "Card.Paid"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}
