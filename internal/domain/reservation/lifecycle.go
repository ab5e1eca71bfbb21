package reservation

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotAuthorized     = errors.New("actor not authorized for transition")
)

// InvalidTransitionError names the current and requested status.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// Role is the relation between the acting account and a reservation.
type Role int

const (
	RoleStranger Role = iota
	RoleRenter
	RoleOwner
)

func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleRenter:
		return "renter"
	default:
		return "stranger"
	}
}

// ResolveRole decides how actorID relates to a reservation. An owner
// renting their own item acts as owner.
func ResolveRole(actorID, ownerID, renterID uuid.UUID) Role {
	switch {
	case actorID == uuid.Nil:
		return RoleStranger
	case actorID == ownerID:
		return RoleOwner
	case actorID == renterID:
		return RoleRenter
	default:
		return RoleStranger
	}
}

type edge struct {
	from Status
	to   Status
}

// transitions is the only place status changes are decided.
var transitions = map[edge][]Role{
	{StatusPending, StatusConfirmed}:    {RoleOwner},
	{StatusPending, StatusCancelled}:    {RoleOwner, RoleRenter},
	{StatusConfirmed, StatusInProgress}: {RoleOwner},
	{StatusConfirmed, StatusCancelled}:  {RoleOwner},
	{StatusInProgress, StatusCompleted}: {RoleOwner},
}

// CheckTransition validates a requested edge for an actor role.
// Strangers are refused before the edge is inspected so that the
// current status is not disclosed to them.
func CheckTransition(from, to Status, role Role) error {
	if role == RoleStranger {
		return ErrNotAuthorized
	}
	allowed, ok := transitions[edge{from: from, to: to}]
	if !ok {
		return &InvalidTransitionError{From: from, To: to}
	}
	for _, r := range allowed {
		if r == role {
			return nil
		}
	}
	return ErrNotAuthorized
}

// AllowedTargets lists the statuses role may move a reservation to from.
func AllowedTargets(from Status, role Role) []Status {
	var out []Status
	for _, to := range allStatuses {
		if CheckTransition(from, to, role) == nil {
			out = append(out, to)
		}
	}
	return out
}
