package schedule

import (
	"github.com/marcvaillant/checklist-api-go/pkg/models"
)

// Default window bounds applied whenever a config entry is missing a field.
const (
	DefaultStart = "08:00"
	DefaultEnd   = "19:00"
)

// ResolveWindow returns the display window for a task of the given
// periodicity. HNO tasks take their window from the shift group verbatim,
// or the "-" sentinel when the group is unknown. Everything else comes from
// the config: the global window in global mode, the per-periodicity window
// otherwise, with each missing field defaulting independently. A nil or
// partial config is not an error.
func ResolveWindow(cfg *models.ScheduleConfig, periodicity string, hnoGroup *models.ShiftGroup) models.Window {
	if periodicity == models.PeriodHNO {
		if hnoGroup == nil {
			return models.Window{Start: models.NoWindow, End: models.NoWindow}
		}
		return models.Window{Start: hnoGroup.StartTime, End: hnoGroup.EndTime}
	}

	if cfg == nil {
		return models.Window{Start: DefaultStart, End: DefaultEnd}
	}

	if cfg.Mode == "global" {
		return windowFrom(cfg.Global)
	}
	return windowFrom(periodEntry(cfg, periodicity))
}

func periodEntry(cfg *models.ScheduleConfig, periodicity string) *models.PeriodWindow {
	switch periodicity {
	case models.PeriodDaily:
		return cfg.Daily
	case models.PeriodWeekly:
		return cfg.Weekly
	case models.PeriodMonthly:
		return cfg.Monthly
	case models.PeriodYearly:
		return cfg.Yearly
	}
	return nil
}

func windowFrom(entry *models.PeriodWindow) models.Window {
	w := models.Window{Start: DefaultStart, End: DefaultEnd}
	if entry == nil {
		return w
	}
	if entry.Start != "" {
		w.Start = entry.Start
	}
	if entry.End != "" {
		w.End = entry.End
	}
	return w
}
