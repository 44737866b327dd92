package tracker

import (
	"time"

	"github.com/shush-app/shush/internal/services"
	"github.com/shush-app/shush/internal/store"
)

// DayCell is one slot of the 7-column calendar grid. Leading pad cells carry
// InMonth=false and a zero Day.
type DayCell struct {
	Day     int    `json:"day"`
	DateKey string `json:"date_key,omitempty"`
	InMonth bool   `json:"in_month"`
	Logged  bool   `json:"logged"`
	Today   bool   `json:"today"`
}

// MonthView is the rendered state of the currently browsed month.
type MonthView struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Label string     `json:"label"`
	Cells []DayCell  `json:"cells"`
}

// Controller orchestrates one user's tracker view. The month offset is
// ephemeral view state; it is never persisted and never feeds the status
// computation, which always runs against the real current date.
type Controller struct {
	logStore    *store.CycleLogStore
	userID      string
	monthOffset int

	// Now supplies the current time; overridable in tests.
	Now func() time.Time
}

func NewController(logStore *store.CycleLogStore, userID string) *Controller {
	return &Controller{logStore: logStore, userID: userID, Now: time.Now}
}

// ChangeMonth shifts the browsed month. Only the displayed grid changes.
func (controller *Controller) ChangeMonth(offset int) {
	controller.monthOffset += offset
}

func (controller *Controller) MonthOffset() int {
	return controller.monthOffset
}

// Status re-reads the log and recomputes the cycle status from scratch.
func (controller *Controller) Status() (services.CycleStatus, bool, error) {
	user, found, err := controller.logStore.FindByID(controller.userID)
	if err != nil || !found {
		return services.CycleStatus{}, found, err
	}
	status := services.InferCycleStatus(controller.Now(), user.Logs, user.CycleLength, user.PeriodLength)
	return status, true, nil
}

// ToggleDate flips one logged day, then recomputes the status from the
// refreshed log.
func (controller *Controller) ToggleDate(dateKey string) ([]string, services.CycleStatus, bool, error) {
	logs, applied, err := controller.logStore.ToggleLoggedDate(controller.userID, dateKey)
	if err != nil || !applied {
		return logs, services.CycleStatus{}, applied, err
	}
	status, _, err := controller.Status()
	return logs, status, true, err
}

// UpdateSettings stores new lengths and recomputes the status against them.
func (controller *Controller) UpdateSettings(cycleLength int, periodLength int) (services.CycleStatus, bool, error) {
	applied, err := controller.logStore.UpdateSettings(controller.userID, cycleLength, periodLength)
	if err != nil || !applied {
		return services.CycleStatus{}, applied, err
	}
	return controller.Status()
}

// MonthGrid builds the browsed month's padded grid with logged/today flags.
func (controller *Controller) MonthGrid() (MonthView, bool, error) {
	user, found, err := controller.logStore.FindByID(controller.userID)
	if err != nil || !found {
		return MonthView{}, found, err
	}

	now := controller.Now()
	monthStart := time.Date(now.Year(), now.Month()+time.Month(controller.monthOffset), 1, 0, 0, 0, 0, now.Location())
	year, month := monthStart.Year(), monthStart.Month()

	logged := make(map[string]bool, len(user.Logs))
	for _, key := range user.Logs {
		logged[key] = true
	}

	padding := services.FirstWeekdayOfMonth(year, month)
	totalDays := services.DaysInMonth(year, month)

	cells := make([]DayCell, 0, padding+totalDays)
	for slot := 0; slot < padding; slot++ {
		cells = append(cells, DayCell{})
	}
	for day := 1; day <= totalDays; day++ {
		key := services.ToDateKey(year, month, day)
		cells = append(cells, DayCell{
			Day:     day,
			DateKey: key,
			InMonth: true,
			Logged:  logged[key],
			Today:   services.IsSameCalendarDay(now, time.Date(year, month, day, 0, 0, 0, 0, now.Location())),
		})
	}

	view := MonthView{
		Year:  year,
		Month: month,
		Label: monthStart.Format("January 2006"),
		Cells: cells,
	}
	return view, true, nil
}
