package tasklist

import (
	"testing"

	"github.com/marcvaillant/checklist-api-go/pkg/models"
)

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: 1, Description: "Backup verification", Periodicity: models.PeriodYearly, AssignedGroups: []string{"Ops"}},
		{ID: 2, Description: "Server room check", Periodicity: models.PeriodDaily, AssignedUserIDs: []int{3}},
		{ID: 3, Description: "Fire extinguisher audit", Periodicity: models.PeriodMonthly},
		{ID: 4, Description: "Night round", Periodicity: models.PeriodHNO, AssignedGroups: []string{"NightTeam"}},
		{ID: 5, Description: "Weekly report", Periodicity: models.PeriodWeekly, AssignedUserIDs: []int{7, 3}},
	}
}

func sampleUsers() []models.User {
	return []models.User{
		{ID: 3, Username: "mbernard", FullName: "Marie Bernard"},
		{ID: 7, Username: "jdupont", FullName: "Jean Dupont"},
	}
}

func ids(tasks []models.Task) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func equalIDs(a []int, b ...int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApply_AllFiltersOffKeepsMembership(t *testing.T) {
	tasks := sampleTasks()
	out := Apply(tasks, sampleUsers(), Filter{Periodicity: FilterAll, Group: FilterAll, User: FilterAll})

	if !equalIDs(ids(out), 1, 2, 3, 4, 5) {
		t.Errorf("Expected input unchanged with no filters, got %v", ids(out))
	}
	// The input slice must not be mutated.
	if tasks[0].ID != 1 || tasks[4].ID != 5 {
		t.Errorf("Expected input slice untouched")
	}
}

func TestApply_SearchDescription(t *testing.T) {
	out := Apply(sampleTasks(), sampleUsers(), Filter{Search: "SERVER"})
	if !equalIDs(ids(out), 2) {
		t.Errorf("Expected case-insensitive description match, got %v", ids(out))
	}
}

func TestApply_SearchGroupName(t *testing.T) {
	out := Apply(sampleTasks(), sampleUsers(), Filter{Search: "nightteam"})
	if !equalIDs(ids(out), 4) {
		t.Errorf("Expected group-name match, got %v", ids(out))
	}
}

func TestApply_SearchAssignedUserName(t *testing.T) {
	// "bernard" matches user 3, assigned on tasks 2 and 5.
	out := Apply(sampleTasks(), sampleUsers(), Filter{Search: "bernard"})
	if !equalIDs(ids(out), 2, 5) {
		t.Errorf("Expected tasks assigned to Marie Bernard, got %v", ids(out))
	}
}

func TestApply_PredicatesAndCombined(t *testing.T) {
	out := Apply(sampleTasks(), sampleUsers(), Filter{Search: "bernard", Periodicity: models.PeriodWeekly})
	if !equalIDs(ids(out), 5) {
		t.Errorf("Expected AND of search and periodicity, got %v", ids(out))
	}

	out = Apply(sampleTasks(), sampleUsers(), Filter{Group: "Ops", User: "3"})
	if len(out) != 0 {
		t.Errorf("Expected empty result for conflicting filters, got %v", ids(out))
	}
}

func TestApply_UserFilter(t *testing.T) {
	out := Apply(sampleTasks(), sampleUsers(), Filter{User: "3"})
	if !equalIDs(ids(out), 2, 5) {
		t.Errorf("Expected tasks with user 3, got %v", ids(out))
	}

	out = Apply(sampleTasks(), sampleUsers(), Filter{User: "nope"})
	if len(out) != 0 {
		t.Errorf("Expected non-numeric user filter to match nothing, got %v", ids(out))
	}
}

func TestApply_SortByPeriodicity(t *testing.T) {
	out := Apply(sampleTasks(), sampleUsers(), Filter{SortBy: "periodicity"})
	// daily < weekly < monthly < yearly, hno ranks last.
	if !equalIDs(ids(out), 2, 5, 3, 1, 4) {
		t.Errorf("Expected periodicity order, got %v", ids(out))
	}
}

func TestApply_SortByUser(t *testing.T) {
	out := Apply(sampleTasks(), sampleUsers(), Filter{SortBy: "user"})
	// Task 2 (user 3) < task 5 (user 7) < the rest in original order.
	if !equalIDs(ids(out), 2, 5, 1, 3, 4) {
		t.Errorf("Expected user order with unassigned last, got %v", ids(out))
	}
}

func TestApply_SortByGroup(t *testing.T) {
	out := Apply(sampleTasks(), sampleUsers(), Filter{SortBy: "group"})
	// NightTeam < Ops, tasks with no group collate after real names.
	if !equalIDs(ids(out), 4, 1, 2, 3, 5) {
		t.Errorf("Expected group order with unassigned last, got %v", ids(out))
	}
}

func TestApply_SortIsStableAndIdempotent(t *testing.T) {
	once := Apply(sampleTasks(), sampleUsers(), Filter{SortBy: "periodicity"})
	twice := Apply(once, sampleUsers(), Filter{SortBy: "periodicity"})
	if !equalIDs(ids(twice), ids(once)...) {
		t.Errorf("Expected sorting twice to be idempotent: %v vs %v", ids(once), ids(twice))
	}
}
