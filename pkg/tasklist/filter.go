// Package tasklist implements the task-list presentation reducer: a pure
// function from (tasks, filter state) to a filtered, deterministically
// sorted list. Filter state is a plain serializable struct so the reducer
// can be unit tested without any UI in the loop.
package tasklist

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/marcvaillant/checklist-api-go/pkg/access"
	"github.com/marcvaillant/checklist-api-go/pkg/models"
)

// FilterAll disables an individual filter field.
const FilterAll = "all"

// Sentinels pushing tasks without the sorted attribute to the end of the
// list. The group sentinel is a documented placeholder that collates after
// real group names, not a real group.
const (
	noUserSentinel  = 999999
	noGroupSentinel = "zzzz"
	unknownRank     = 99
)

// Filter is the serializable selection state of the task list.
type Filter struct {
	Search      string `json:"search,omitempty"`
	Periodicity string `json:"periodicity,omitempty"`
	Group       string `json:"group,omitempty"`
	User        string `json:"user,omitempty"` // "all" or a decimal user id
	SortBy      string `json:"sort_by,omitempty"`
}

var periodicityRank = map[string]int{
	models.PeriodDaily:   1,
	models.PeriodWeekly:  2,
	models.PeriodMonthly: 3,
	models.PeriodYearly:  4,
}

// groupCollator gives the locale-aware ordering used for the group sort.
// Collators are not safe for concurrent use, so CompareString calls are
// funneled through sortTasks on a fresh instance per call.
func groupCollator() *collate.Collator {
	return collate.New(language.French)
}

// Apply filters tasks by the AND of all populated filter fields, then sorts
// by the filter's sort key. The input slice is never mutated; ties keep
// their original relative order. An empty result is valid.
func Apply(tasks []models.Task, users []models.User, f Filter) []models.Task {
	byID := make(map[int]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if matches(&t, byID, f) {
			out = append(out, t)
		}
	}
	sortTasks(out, f.SortBy)
	return out
}

func matches(t *models.Task, users map[int]models.User, f Filter) bool {
	set := access.ResolveAssignment(t)

	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !matchesSearch(t, set, users, q) {
			return false
		}
	}
	if f.Periodicity != "" && f.Periodicity != FilterAll && t.Periodicity != f.Periodicity {
		return false
	}
	if f.Group != "" && f.Group != FilterAll && !containsString(resolvedGroups(set), f.Group) {
		return false
	}
	if f.User != "" && f.User != FilterAll {
		id, err := strconv.Atoi(f.User)
		if err != nil || !containsInt(resolvedUsers(set), id) {
			return false
		}
	}
	return true
}

func matchesSearch(t *models.Task, set access.AssignmentSet, users map[int]models.User, q string) bool {
	if strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, g := range resolvedGroups(set) {
		if strings.Contains(strings.ToLower(g), q) {
			return true
		}
	}
	for _, id := range resolvedUsers(set) {
		u, ok := users[id]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(u.Username), q) ||
			strings.Contains(strings.ToLower(u.FullName), q) {
			return true
		}
	}
	return false
}

func resolvedGroups(set access.AssignmentSet) []string {
	if set.Kind == access.ByGroups {
		return set.Groups
	}
	return nil
}

func resolvedUsers(set access.AssignmentSet) []int {
	if set.Kind == access.ByUsers {
		return set.Users
	}
	return nil
}

func sortTasks(tasks []models.Task, sortBy string) {
	switch sortBy {
	case "periodicity":
		sort.SliceStable(tasks, func(i, j int) bool {
			return rankOf(tasks[i].Periodicity) < rankOf(tasks[j].Periodicity)
		})
	case "user":
		sort.SliceStable(tasks, func(i, j int) bool {
			return firstUser(&tasks[i]) < firstUser(&tasks[j])
		})
	case "group":
		c := groupCollator()
		sort.SliceStable(tasks, func(i, j int) bool {
			return c.CompareString(firstGroup(&tasks[i]), firstGroup(&tasks[j])) < 0
		})
	}
}

func rankOf(periodicity string) int {
	if r, ok := periodicityRank[periodicity]; ok {
		return r
	}
	return unknownRank
}

func firstUser(t *models.Task) int {
	if set := access.ResolveAssignment(t); set.Kind == access.ByUsers && len(set.Users) > 0 {
		return set.Users[0]
	}
	return noUserSentinel
}

func firstGroup(t *models.Task) string {
	if set := access.ResolveAssignment(t); set.Kind == access.ByGroups && len(set.Groups) > 0 {
		return set.Groups[0]
	}
	return noGroupSentinel
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsInt(list []int, n int) bool {
	for _, v := range list {
		if v == n {
			return true
		}
	}
	return false
}
