package access

import (
	"testing"

	"github.com/marcvaillant/checklist-api-go/pkg/models"
)

func TestResolveAssignment_Precedence(t *testing.T) {
	// Both a group array and user ids populated: groups win.
	task := &models.Task{
		AssignedGroups:  []string{"NightTeam"},
		AssignedUserIDs: []int{3},
	}

	set := ResolveAssignment(task)
	if set.Kind != ByGroups {
		t.Fatalf("Expected ByGroups, got %s", set.Kind)
	}
	if len(set.Groups) != 1 || set.Groups[0] != "NightTeam" {
		t.Errorf("Expected group set {NightTeam}, got %v", set.Groups)
	}

	// User 3 is not in NightTeam: denied despite the stale user-id field.
	actor := &models.Actor{ID: 3}
	if CanAct(actor, set) {
		t.Errorf("Expected user 3 outside NightTeam to be denied")
	}
}

func TestResolveAssignment_LegacySingleGroup(t *testing.T) {
	set := ResolveAssignment(&models.Task{AssignedGroup: "Maintenance"})
	if set.Kind != ByGroups || len(set.Groups) != 1 || set.Groups[0] != "Maintenance" {
		t.Errorf("Expected legacy group wrapped as singleton, got %+v", set)
	}

	set = ResolveAssignment(&models.Task{AssignedGroup: "all"})
	if set.Kind != Everyone {
		t.Errorf("Expected legacy 'all' to mean everyone, got %s", set.Kind)
	}
}

func TestResolveAssignment_Users(t *testing.T) {
	set := ResolveAssignment(&models.Task{AssignedUserIDs: []int{3, 7}})
	if set.Kind != ByUsers {
		t.Fatalf("Expected ByUsers, got %s", set.Kind)
	}

	if !CanAct(&models.Actor{ID: 7}, set) {
		t.Errorf("Expected listed user to be allowed")
	}
	if CanAct(&models.Actor{ID: 8}, set) {
		t.Errorf("Expected unlisted user to be denied")
	}
}

func TestResolveAssignment_Empty(t *testing.T) {
	hnoGroup := 5
	task := &models.Task{
		Periodicity: models.PeriodHNO,
		HNOGroupID:  &hnoGroup,
	}

	set := ResolveAssignment(task)
	if set.Kind != Everyone {
		t.Fatalf("Expected everyone for empty descriptor, got %s", set.Kind)
	}
	// A non-admin actor with no recorded groups or ids may still act.
	if !CanAct(&models.Actor{ID: 42}, set) {
		t.Errorf("Expected everyone variant to allow any actor")
	}
}

func TestCanAct_GroupIntersection(t *testing.T) {
	set := AssignmentSet{Kind: ByGroups, Groups: []string{"NightTeam", "Ops"}}

	if !CanAct(&models.Actor{ID: 1, Groups: []string{"Ops", "QA"}}, set) {
		t.Errorf("Expected overlapping groups to allow")
	}
	if CanAct(&models.Actor{ID: 1, Groups: []string{"QA"}}, set) {
		t.Errorf("Expected disjoint groups to deny")
	}
}

func TestCanAct_AdminBypass(t *testing.T) {
	set := AssignmentSet{Kind: ByUsers, Users: []int{3}}
	if !CanAct(&models.Actor{ID: 99, IsAdmin: true}, set) {
		t.Errorf("Expected admin to bypass assignment checks")
	}
}

func TestCanAct_UnknownActorFailsClosed(t *testing.T) {
	if CanAct(nil, AssignmentSet{Kind: Everyone}) {
		t.Errorf("Expected nil actor to be denied even for everyone")
	}
	if CanAct(nil, AssignmentSet{Kind: ByGroups, Groups: []string{"Ops"}}) {
		t.Errorf("Expected nil actor to be denied")
	}
}
