// Package goal exposes the savings goal lifecycle over HTTP.
package goal

import (
	"strings"

	"github.com/fintrackhq/fintrack/pkg/middleware"
	goalsvc "github.com/fintrackhq/fintrack/pkg/service/goal"
	"github.com/fintrackhq/fintrack/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

// Routes registers the goal endpoints behind the access gate.
func Routes(
	app *fiber.App,
	goalSvc *goalsvc.Service,
	store *session.Store,
) {
	gate := middleware.SessionProtected(store)
	app.Get("/goals", gate, ListGoals(goalSvc))
	app.Post("/goals", gate, CreateGoal(goalSvc))
	app.Patch("/goals/:id", gate, UpdateGoal(goalSvc))
}

// ListGoals returns the user's goals, optionally filtered by a
// comma-separated status query. One bad value fails the whole request.
func ListGoals(goalSvc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)

		var statuses []string
		if raw := c.Query("status"); raw != "" {
			for _, s := range strings.Split(raw, ",") {
				statuses = append(statuses, strings.TrimSpace(s))
			}
		}

		goals, err := goalSvc.List(c.Context(), userID, statuses)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(goals)
	}
}

// CreateGoal opens a new active goal for the user.
func CreateGoal(goalSvc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewGoal](c)
		if input == nil {
			return err
		}
		userID, _ := middleware.UserID(c)

		created, err := goalSvc.Create(c.Context(), userID, *input.TargetAmount)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// UpdateGoal transitions an owned goal to completed or cancelled.
func UpdateGoal(goalSvc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateGoalInput](c)
		if input == nil {
			return err
		}
		userID, _ := middleware.UserID(c)

		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "goal not found",
			})
		}
		updated, err := goalSvc.UpdateStatus(c.Context(), userID, id, input.Status)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(updated)
	}
}
