package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shush-app/shush/internal/services"
	"github.com/shush-app/shush/internal/tracker"
)

type settingsInput struct {
	CycleLength  int `json:"cycle_length"`
	PeriodLength int `json:"period_length"`
}

// TrackerStatus recomputes and returns the cycle status for the session
// user. Always derived fresh from the stored log.
func (handler *Handler) TrackerStatus(c *fiber.Ctx) error {
	controller := tracker.NewController(handler.logStore, currentUser(c).ID)
	status, found, err := controller.Status()
	if err != nil {
		return internalError(c, err)
	}
	if !found {
		return unauthorized(c)
	}
	return c.JSON(status)
}

// TrackerCalendar renders the browsed month's grid. The offset query moves
// the view only; the status basis stays the real current date.
func (handler *Handler) TrackerCalendar(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)

	controller := tracker.NewController(handler.logStore, currentUser(c).ID)
	controller.ChangeMonth(offset)

	view, found, err := controller.MonthGrid()
	if err != nil {
		return internalError(c, err)
	}
	if !found {
		return unauthorized(c)
	}
	return c.JSON(view)
}

// TrackerToggleDay flips one logged date and returns the refreshed log
// together with the recomputed status.
func (handler *Handler) TrackerToggleDay(c *fiber.Ctx) error {
	dateKey := c.Params("date")
	if _, err := services.ParseDateKey(dateKey); err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}

	controller := tracker.NewController(handler.logStore, currentUser(c).ID)
	logs, status, applied, err := controller.ToggleDate(dateKey)
	if err != nil {
		return internalError(c, err)
	}
	if !applied {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}
	return c.JSON(fiber.Map{"logs": logs, "status": status})
}

// TrackerUpdateSettings clamps and stores the configured lengths, then
// returns the recomputed status.
func (handler *Handler) TrackerUpdateSettings(c *fiber.Ctx) error {
	var input settingsInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	cycleLength := clampInt(input.CycleLength, minCycleLength, maxCycleLength)
	periodLength := clampInt(input.PeriodLength, minPeriodLength, maxPeriodLength)

	controller := tracker.NewController(handler.logStore, currentUser(c).ID)
	status, applied, err := controller.UpdateSettings(cycleLength, periodLength)
	if err != nil {
		return internalError(c, err)
	}
	if !applied {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}
	return c.JSON(fiber.Map{
		"cycle_length":  cycleLength,
		"period_length": periodLength,
		"status":        status,
	})
}

func clampInt(value int, low int, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
