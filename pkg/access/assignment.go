package access

import (
	"github.com/marcvaillant/checklist-api-go/pkg/models"
)

// AssignmentKind tags who a resolved assignment applies to.
type AssignmentKind string

const (
	Everyone AssignmentKind = "everyone"
	ByGroups AssignmentKind = "groups"
	ByUsers  AssignmentKind = "users"
)

// AssignmentSet is the resolved form of a task's assignment descriptor.
// Stored tasks may carry stale legacy fields next to newer ones; resolving
// once into a tagged variant keeps every caller on the same interpretation.
type AssignmentSet struct {
	Kind   AssignmentKind `json:"kind"`
	Groups []string       `json:"groups,omitempty"`
	Users  []int          `json:"users,omitempty"`
}

// ResolveAssignment computes the authorized-actor set for a task.
// Precedence when several descriptor fields are populated at once:
// groups array, then the legacy single group, then user ids, then everyone.
// A legacy value of "all" means unrestricted.
func ResolveAssignment(t *models.Task) AssignmentSet {
	if t == nil {
		return AssignmentSet{Kind: Everyone}
	}
	if len(t.AssignedGroups) > 0 {
		return AssignmentSet{Kind: ByGroups, Groups: t.AssignedGroups}
	}
	if t.AssignedGroup != "" {
		if t.AssignedGroup == "all" {
			return AssignmentSet{Kind: Everyone}
		}
		return AssignmentSet{Kind: ByGroups, Groups: []string{t.AssignedGroup}}
	}
	if len(t.AssignedUserIDs) > 0 {
		return AssignmentSet{Kind: ByUsers, Users: t.AssignedUserIDs}
	}
	return AssignmentSet{Kind: Everyone}
}

// CanAct reports whether the actor may act on a task with the given resolved
// assignment. An unknown actor is denied outright, never granted by default.
func CanAct(actor *models.Actor, set AssignmentSet) bool {
	if actor == nil {
		return false
	}
	if actor.IsAdmin {
		return true
	}
	switch set.Kind {
	case Everyone:
		return true
	case ByGroups:
		for _, g := range set.Groups {
			for _, ag := range actor.Groups {
				if g == ag {
					return true
				}
			}
		}
		return false
	case ByUsers:
		for _, id := range set.Users {
			if id == actor.ID {
				return true
			}
		}
		return false
	}
	return false
}
