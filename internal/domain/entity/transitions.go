package entity

// statusTransitions is the authoritative order state machine, keyed by the
// acting role and the order's current status. Legality is a single lookup;
// there is deliberately no entry for the admin role, which has no order
// privileges. Only the owner advances fulfillment and only the customer may
// cancel or confirm receipt.
var statusTransitions = map[Role]map[OrderStatus][]OrderStatus{
	RoleOwner: {
		StatusPlaced:     {StatusProcessing},
		StatusProcessing: {StatusInRoute},
		StatusInRoute:    {StatusDelivered},
		StatusDelivered:  {},
		StatusReceived:   {},
		StatusCanceled:   {},
	},
	RoleUser: {
		StatusPlaced:     {StatusCanceled},
		StatusProcessing: {},
		StatusInRoute:    {},
		StatusDelivered:  {StatusReceived},
		StatusReceived:   {},
		StatusCanceled:   {},
	},
}

// AllowedTransitions returns the statuses the given role may move an order to
// from the given current status. The result is a copy; mutating it does not
// affect the table.
func AllowedTransitions(role Role, from OrderStatus) []OrderStatus {
	byStatus, ok := statusTransitions[role]
	if !ok {
		return nil
	}

	targets := byStatus[from]
	out := make([]OrderStatus, len(targets))
	copy(out, targets)

	return out
}

// CanTransition reports whether the given role may move an order from one
// status to another. Requesting the current status again, skipping steps and
// reverting are all rejected by construction of the table.
func CanTransition(role Role, from, to OrderStatus) bool {
	byStatus, ok := statusTransitions[role]
	if !ok {
		return false
	}

	for _, allowed := range byStatus[from] {
		if allowed == to {
			return true
		}
	}

	return false
}
