package access

import (
	"errors"

	"github.com/marcvaillant/checklist-api-go/pkg/models"
)

// Validation errors for delegation records.
var (
	ErrMissingDelegate = errors.New("delegation requires a delegate user id")
	ErrMissingDates    = errors.New("delegation requires both start and end dates")
	ErrInvalidRange    = errors.New("delegation end date is before its start date")
)

// Decision layers reported by CanActOn.
const (
	ViaAdmin      = "admin"
	ViaAssignment = "assignment"
	ViaDelegation = "delegation"
)

// ActiveDelegate returns the delegate user id of the first delegation for
// the task whose inclusive date range contains refDate. Overlapping
// delegations are tolerated; the first match wins and the ambiguity is not
// an error. Dates are YYYY-MM-DD, so a lexical compare is enough. An
// inverted range simply never matches.
func ActiveDelegate(taskID int, delegations []models.Delegation, refDate string) (int, bool) {
	if refDate == "" {
		return 0, false
	}
	for _, d := range delegations {
		if d.TaskID != taskID {
			continue
		}
		if d.StartDate == "" || d.EndDate == "" {
			continue
		}
		if d.StartDate <= refDate && refDate <= d.EndDate {
			return d.DelegateUserID, true
		}
	}
	return 0, false
}

// CanActOn combines the base assignment with the delegation overlay for the
// reference date. Delegation is additive: it grants the delegate action
// rights on top of whoever the assignment already authorizes, and it never
// revokes anything. The returned layer names what granted access; it is
// empty when access is denied.
func CanActOn(actor *models.Actor, t *models.Task, delegations []models.Delegation, refDate string) (bool, string) {
	if actor == nil {
		return false, ""
	}
	if actor.IsAdmin {
		return true, ViaAdmin
	}
	if CanAct(actor, ResolveAssignment(t)) {
		return true, ViaAssignment
	}
	if t != nil {
		if delegate, ok := ActiveDelegate(t.ID, delegations, refDate); ok && delegate == actor.ID {
			return true, ViaDelegation
		}
	}
	return false, ""
}

// ValidateDelegation checks a delegation record at creation time. Removal
// needs no validation: it is an unconditional delete by id.
func ValidateDelegation(d models.Delegation) error {
	if d.DelegateUserID == 0 {
		return ErrMissingDelegate
	}
	if d.StartDate == "" || d.EndDate == "" {
		return ErrMissingDates
	}
	if d.EndDate < d.StartDate {
		return ErrInvalidRange
	}
	return nil
}
