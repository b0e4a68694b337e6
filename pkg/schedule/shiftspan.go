package schedule

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/marcvaillant/checklist-api-go/pkg/models"
)

// DayFormat is the calendar-date layout used throughout: dates are naive,
// never shifted by a timezone offset.
const DayFormat = "2006-01-02"

var dayNames = map[int]string{
	1: "Monday",
	2: "Tuesday",
	3: "Wednesday",
	4: "Thursday",
	5: "Friday",
	6: "Saturday",
	7: "Sunday",
}

// ParseDay parses a naive YYYY-MM-DD calendar date.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

// DayOrderIndex remaps a stored weekday code ("0".."6", "0" = Sunday) onto a
// Monday-first 1..7 ordering. The remap matters: a group spanning
// Saturday-Sunday-Monday would compute a wrong span with raw codes, since
// Sunday's raw 0 sorts before everything. Unknown codes map to 0 and are
// ignored by callers.
func DayOrderIndex(code string) int {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil || n < 0 || n > 6 {
		return 0
	}
	if n == 0 {
		return 7
	}
	return n
}

// ShiftEndDate returns the calendar end date of a shift group span starting
// at start. The span is max-min over the group's Monday-first day indices:
// a non-contiguous set like {Mon, Wed, Fri} still spans Monday through
// Friday. That is the defined semantic, not literal occurrence dates.
func ShiftEndDate(start time.Time, g *models.ShiftGroup) time.Time {
	if g == nil {
		return start
	}
	span := daySpan(g.Days)
	if span <= 0 {
		return start
	}
	return start.AddDate(0, 0, span)
}

func daySpan(days []string) int {
	min, max := 0, 0
	for _, d := range days {
		idx := DayOrderIndex(d)
		if idx == 0 {
			continue
		}
		if min == 0 || idx < min {
			min = idx
		}
		if idx > max {
			max = idx
		}
	}
	if min == 0 {
		return 0
	}
	return max - min
}

// TaskEndDate returns the authoritative end date for an hno task:
// active_until when explicitly set, else the computed shift end date, else
// the task's own start date when the group cannot be resolved.
func TaskEndDate(t *models.Task, g *models.ShiftGroup) string {
	if t == nil {
		return ""
	}
	if t.ActiveUntil != "" {
		return t.ActiveUntil
	}
	start, err := ParseDay(t.StartDate)
	if err != nil || g == nil {
		return t.StartDate
	}
	return ShiftEndDate(start, g).Format(DayFormat)
}

// BoundaryLabels returns the weekday names of the group's first and last
// selected days in Monday-first order. An empty or unresolvable day set
// yields the "-" sentinel pair.
func BoundaryLabels(g *models.ShiftGroup) (string, string) {
	if g == nil {
		return models.NoWindow, models.NoWindow
	}
	var idx []int
	for _, d := range g.Days {
		if i := DayOrderIndex(d); i > 0 {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return models.NoWindow, models.NoWindow
	}
	sort.Ints(idx)
	return dayNames[idx[0]], dayNames[idx[len(idx)-1]]
}

// CrossesMidnight reports whether a shift's HH:MM end time falls on the
// calendar day after its start. Used for shift-preview text only: a
// cross-midnight single shift ends the day after its first selected day,
// which is independent from the group's multi-day span.
func CrossesMidnight(startTime, endTime string) bool {
	sh, sm, ok := parseClock(startTime)
	if !ok {
		return false
	}
	eh, em, ok := parseClock(endTime)
	if !ok {
		return false
	}
	return eh < sh || (eh == sh && em < sm)
}

func parseClock(s string) (hour, minute int, ok bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}
