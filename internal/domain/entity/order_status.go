package entity

import "strconv"

// OrderStatus is the lifecycle state of an order. The numeric values are part
// of the wire format consumed by clients and must not be renumbered.
type OrderStatus int

const (
	// StatusPlaced is the initial state of every order.
	StatusPlaced OrderStatus = iota + 1
	// StatusProcessing means the owner accepted the order and is preparing it.
	StatusProcessing
	// StatusInRoute means the order left the restaurant.
	StatusInRoute
	// StatusDelivered means the order arrived at the customer.
	StatusDelivered
	// StatusReceived means the customer confirmed receipt. Terminal.
	StatusReceived
	// StatusCanceled means the customer canceled before processing. Terminal.
	StatusCanceled
)

// String returns a human-readable name for the status.
func (s OrderStatus) String() string {
	switch s {
	case StatusPlaced:
		return "placed"
	case StatusProcessing:
		return "processing"
	case StatusInRoute:
		return "in route"
	case StatusDelivered:
		return "delivered"
	case StatusReceived:
		return "received"
	case StatusCanceled:
		return "canceled"
	default:
		return "unknown(" + strconv.Itoa(int(s)) + ")"
	}
}

// IsValid checks if the status is one of the defined lifecycle states.
func (s OrderStatus) IsValid() bool {
	return s >= StatusPlaced && s <= StatusCanceled
}

// IsTerminal reports whether no transition leaves this status for any role.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusReceived || s == StatusCanceled
}
