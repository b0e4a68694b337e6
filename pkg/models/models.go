package models

// Periodicity values a task may carry. HNO tasks follow a shift group
// instead of a plain daily/weekly/monthly/yearly window.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
	PeriodHNO     = "hno"
)

// NoWindow is the sentinel returned when a window cannot be resolved,
// e.g. an hno task whose shift group is unknown.
const NoWindow = "-"

// Task is a recurring-task definition. Occurrences are generated upstream;
// this service only resolves windows and action rights for them.
type Task struct {
	ID           int    `json:"id"`
	Description  string `json:"description"`
	Periodicity  string `json:"periodicity"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date,omitempty"`
	ActiveUntil  string `json:"active_until,omitempty"`
	SkipWeekends bool   `json:"skip_weekends"`
	SkipHolidays bool   `json:"skip_holidays"`
	HNOGroupID   *int   `json:"hno_group_id,omitempty"`

	// Assignment descriptor. Upstream data may still carry the legacy
	// single-group field alongside the newer ones; resolution applies a
	// strict precedence (groups > legacy group > user ids > everyone).
	AssignedGroups  []string `json:"assigned_groups,omitempty"`
	AssignedGroup   string   `json:"assigned_group,omitempty"` // legacy; "all" means unrestricted
	AssignedUserIDs []int    `json:"assigned_user_ids,omitempty"`
}

// ShiftGroup is a named off-hours coverage shift: a set of weekday codes
// ("0".."6", "0" = Sunday) plus HH:MM start/end times. End before start
// expresses a cross-midnight shift.
type ShiftGroup struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Days      []string `json:"days"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
}

// Window is a resolved display window for a task occurrence.
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PeriodWindow is one window entry of a ScheduleConfig. Either field may be
// empty; resolution fills in the documented defaults per field.
type PeriodWindow struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// ScheduleConfig is the two-level window configuration: one global window,
// or an independent window per periodicity. Any entry may be missing.
type ScheduleConfig struct {
	Mode    string        `json:"mode"` // "global" or "specific"
	Global  *PeriodWindow `json:"global,omitempty"`
	Daily   *PeriodWindow `json:"daily,omitempty"`
	Weekly  *PeriodWindow `json:"weekly,omitempty"`
	Monthly *PeriodWindow `json:"monthly,omitempty"`
	Yearly  *PeriodWindow `json:"yearly,omitempty"`
}

// Delegation grants a substitute user action rights on one task for an
// inclusive calendar date range. It adds to the base assignment, it never
// revokes anything.
type Delegation struct {
	ID             int    `json:"id"`
	TaskID         int    `json:"task_id"`
	DelegateUserID int    `json:"delegate_user_id"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
}

// Actor is the identity attempting an action on a task occurrence.
type Actor struct {
	ID      int      `json:"id"`
	Groups  []string `json:"groups,omitempty"`
	IsAdmin bool     `json:"is_admin"`
}

// User is a directory record used for search and user-filter resolution.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	Group    string `json:"group,omitempty"`
}

// ResolveInput is the payload for the window-resolution endpoint.
type ResolveInput struct {
	Config      *ScheduleConfig `json:"config"`
	Periodicity string          `json:"periodicity"`
	HNOGroup    *ShiftGroup     `json:"hno_group,omitempty"`
}

// ShiftSpanInput is the payload for the shift-span endpoint.
type ShiftSpanInput struct {
	StartDate string      `json:"start_date"`
	Group     *ShiftGroup `json:"group,omitempty"`
	Task      *Task       `json:"task,omitempty"`
}

// ShiftSpanResponse describes one shift group span.
type ShiftSpanResponse struct {
	EndDate         string `json:"end_date"`
	TaskEndDate     string `json:"task_end_date,omitempty"`
	StartLabel      string `json:"start_label"`
	EndLabel        string `json:"end_label"`
	CrossesMidnight bool   `json:"crosses_midnight"`
}

// CanActInput is the payload for the action-permission endpoint.
type CanActInput struct {
	Actor       *Actor       `json:"actor,omitempty"`
	Task        *Task        `json:"task"`
	Delegations []Delegation `json:"delegations,omitempty"`
	Date        string       `json:"date"` // reference date, YYYY-MM-DD
}

// CanActResponse reports the permission decision and which layer granted it.
type CanActResponse struct {
	Allowed bool   `json:"allowed"`
	Via     string `json:"via,omitempty"` // admin, assignment or delegation
}

// FilterInput is the payload for the task list filter endpoint.
type FilterInput struct {
	Tasks []Task `json:"tasks"`
	Users []User `json:"users,omitempty"`
	// Filter fields are inlined so the payload mirrors the UI filter state.
	Search      string `json:"search,omitempty"`
	Periodicity string `json:"periodicity,omitempty"`
	Group       string `json:"group,omitempty"`
	User        string `json:"user,omitempty"`
	SortBy      string `json:"sort_by,omitempty"`
}

// ValidateInput is the payload for the structural validation endpoint.
type ValidateInput struct {
	Tasks       []Task       `json:"tasks,omitempty"`
	Groups      []ShiftGroup `json:"groups,omitempty"`
	Delegations []Delegation `json:"delegations,omitempty"`
}
