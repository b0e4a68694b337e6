package access

import (
	"errors"
	"testing"

	"github.com/marcvaillant/checklist-api-go/pkg/models"
)

func TestActiveDelegate(t *testing.T) {
	delegations := []models.Delegation{
		{ID: 1, TaskID: 10, DelegateUserID: 5, StartDate: "2024-05-01", EndDate: "2024-05-10"},
		{ID: 2, TaskID: 11, DelegateUserID: 6, StartDate: "2024-05-01", EndDate: "2024-05-31"},
	}

	id, ok := ActiveDelegate(10, delegations, "2024-05-05")
	if !ok || id != 5 {
		t.Errorf("Expected delegate 5 active on 2024-05-05, got %d (%v)", id, ok)
	}

	// Inclusive bounds.
	if _, ok := ActiveDelegate(10, delegations, "2024-05-01"); !ok {
		t.Errorf("Expected start date to be inclusive")
	}
	if _, ok := ActiveDelegate(10, delegations, "2024-05-10"); !ok {
		t.Errorf("Expected end date to be inclusive")
	}
	if _, ok := ActiveDelegate(10, delegations, "2024-05-11"); ok {
		t.Errorf("Expected no active delegate after the range")
	}
}

func TestActiveDelegate_OverlappingFirstWins(t *testing.T) {
	delegations := []models.Delegation{
		{ID: 1, TaskID: 10, DelegateUserID: 5, StartDate: "2024-05-01", EndDate: "2024-05-10"},
		{ID: 2, TaskID: 10, DelegateUserID: 6, StartDate: "2024-05-05", EndDate: "2024-05-15"},
	}

	id, ok := ActiveDelegate(10, delegations, "2024-05-07")
	if !ok || id != 5 {
		t.Errorf("Expected first matching delegation to win, got %d", id)
	}
}

func TestActiveDelegate_InvertedRangeNeverMatches(t *testing.T) {
	delegations := []models.Delegation{
		{ID: 1, TaskID: 10, DelegateUserID: 5, StartDate: "2024-05-10", EndDate: "2024-05-01"},
	}
	if _, ok := ActiveDelegate(10, delegations, "2024-05-05"); ok {
		t.Errorf("Expected inverted range to never be active")
	}
}

func TestCanActOn_DelegationIsAdditive(t *testing.T) {
	task := &models.Task{ID: 10, AssignedGroups: []string{"NightTeam"}}
	delegations := []models.Delegation{
		{ID: 1, TaskID: 10, DelegateUserID: 5, StartDate: "2024-05-01", EndDate: "2024-05-10"},
	}

	assignee := &models.Actor{ID: 2, Groups: []string{"NightTeam"}}
	delegate := &models.Actor{ID: 5}
	outsider := &models.Actor{ID: 6}

	// The base assignee keeps access whether or not a delegation is active.
	if ok, via := CanActOn(assignee, task, nil, "2024-05-05"); !ok || via != ViaAssignment {
		t.Errorf("Expected assignee allowed via assignment, got %v/%s", ok, via)
	}
	if ok, via := CanActOn(assignee, task, delegations, "2024-05-05"); !ok || via != ViaAssignment {
		t.Errorf("Expected delegation to leave assignee rights untouched, got %v/%s", ok, via)
	}

	// The delegate gains access only inside the range.
	if ok, via := CanActOn(delegate, task, delegations, "2024-05-05"); !ok || via != ViaDelegation {
		t.Errorf("Expected delegate allowed via delegation, got %v/%s", ok, via)
	}
	if ok, _ := CanActOn(delegate, task, delegations, "2024-05-11"); ok {
		t.Errorf("Expected delegate denied outside the range")
	}

	// Everyone else stays denied.
	if ok, _ := CanActOn(outsider, task, delegations, "2024-05-05"); ok {
		t.Errorf("Expected outsider to stay denied")
	}
}

func TestCanActOn_AdminAndUnknown(t *testing.T) {
	task := &models.Task{ID: 10, AssignedUserIDs: []int{3}}

	if ok, via := CanActOn(&models.Actor{ID: 1, IsAdmin: true}, task, nil, "2024-05-05"); !ok || via != ViaAdmin {
		t.Errorf("Expected admin allowed via admin, got %v/%s", ok, via)
	}
	if ok, _ := CanActOn(nil, task, nil, "2024-05-05"); ok {
		t.Errorf("Expected unknown actor denied")
	}
}

func TestValidateDelegation(t *testing.T) {
	valid := models.Delegation{TaskID: 10, DelegateUserID: 5, StartDate: "2024-05-01", EndDate: "2024-05-10"}
	if err := ValidateDelegation(valid); err != nil {
		t.Errorf("Expected valid delegation to pass, got %v", err)
	}

	cases := []struct {
		name string
		d    models.Delegation
		want error
	}{
		{"missing delegate", models.Delegation{StartDate: "2024-05-01", EndDate: "2024-05-10"}, ErrMissingDelegate},
		{"missing start", models.Delegation{DelegateUserID: 5, EndDate: "2024-05-10"}, ErrMissingDates},
		{"missing end", models.Delegation{DelegateUserID: 5, StartDate: "2024-05-01"}, ErrMissingDates},
		{"inverted range", models.Delegation{DelegateUserID: 5, StartDate: "2024-05-10", EndDate: "2024-05-01"}, ErrInvalidRange},
	}
	for _, c := range cases {
		if err := ValidateDelegation(c.d); !errors.Is(err, c.want) {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, err)
		}
	}
}
