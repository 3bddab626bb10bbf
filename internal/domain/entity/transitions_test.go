package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_OwnerFulfillmentPath(t *testing.T) {
	assert.True(t, CanTransition(RoleOwner, StatusPlaced, StatusProcessing))
	assert.True(t, CanTransition(RoleOwner, StatusProcessing, StatusInRoute))
	assert.True(t, CanTransition(RoleOwner, StatusInRoute, StatusDelivered))
}

func TestCanTransition_UserCancelAndReceive(t *testing.T) {
	assert.True(t, CanTransition(RoleUser, StatusPlaced, StatusCanceled))
	assert.True(t, CanTransition(RoleUser, StatusDelivered, StatusReceived))
}

func TestCanTransition_OwnerNeverCancelsOrReceives(t *testing.T) {
	for from := StatusPlaced; from <= StatusCanceled; from++ {
		assert.False(t, CanTransition(RoleOwner, from, StatusCanceled),
			"owner must not cancel from %s", from)
		assert.False(t, CanTransition(RoleOwner, from, StatusReceived),
			"owner must not receive from %s", from)
	}
}

func TestCanTransition_UserNeverAdvancesFulfillment(t *testing.T) {
	for from := StatusPlaced; from <= StatusCanceled; from++ {
		for _, to := range []OrderStatus{StatusProcessing, StatusInRoute, StatusDelivered} {
			assert.False(t, CanTransition(RoleUser, from, to),
				"user must not move %s to %s", from, to)
		}
	}
}

// Everything outside the transition table is rejected: self-transitions,
// multi-step jumps, reverts and any admin attempt.
func TestCanTransition_RejectsEverythingOutsideTable(t *testing.T) {
	allowed := map[Role]map[OrderStatus]OrderStatus{
		RoleOwner: {
			StatusPlaced:     StatusProcessing,
			StatusProcessing: StatusInRoute,
			StatusInRoute:    StatusDelivered,
		},
		RoleUser: {
			StatusPlaced:    StatusCanceled,
			StatusDelivered: StatusReceived,
		},
	}

	for _, role := range []Role{RoleAdmin, RoleOwner, RoleUser} {
		for from := StatusPlaced; from <= StatusCanceled; from++ {
			for to := StatusPlaced; to <= StatusCanceled; to++ {
				want := allowed[role][from] == to
				assert.Equal(t, want, CanTransition(role, from, to),
					"role=%s from=%s to=%s", role, from, to)
			}
		}
	}
}

func TestCanTransition_TerminalStatesHaveNoExits(t *testing.T) {
	for _, role := range []Role{RoleOwner, RoleUser} {
		for to := StatusPlaced; to <= StatusCanceled; to++ {
			assert.False(t, CanTransition(role, StatusReceived, to))
			assert.False(t, CanTransition(role, StatusCanceled, to))
		}
	}
}

func TestAllowedTransitions(t *testing.T) {
	assert.Equal(t, []OrderStatus{StatusProcessing}, AllowedTransitions(RoleOwner, StatusPlaced))
	assert.Equal(t, []OrderStatus{StatusCanceled}, AllowedTransitions(RoleUser, StatusPlaced))
	assert.Empty(t, AllowedTransitions(RoleUser, StatusProcessing))
	assert.Nil(t, AllowedTransitions(RoleAdmin, StatusPlaced))
}

func TestAllowedTransitions_ReturnsCopy(t *testing.T) {
	got := AllowedTransitions(RoleOwner, StatusPlaced)
	got[0] = StatusCanceled

	assert.Equal(t, []OrderStatus{StatusProcessing}, AllowedTransitions(RoleOwner, StatusPlaced))
}

func TestOrderStatus_Terminality(t *testing.T) {
	assert.True(t, StatusReceived.IsTerminal())
	assert.True(t, StatusCanceled.IsTerminal())
	assert.False(t, StatusPlaced.IsTerminal())
	assert.False(t, StatusDelivered.IsTerminal())
}

func TestOrderStatus_IsValid(t *testing.T) {
	for s := StatusPlaced; s <= StatusCanceled; s++ {
		assert.True(t, s.IsValid())
	}
	assert.False(t, OrderStatus(0).IsValid())
	assert.False(t, OrderStatus(7).IsValid())
}
