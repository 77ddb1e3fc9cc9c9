// Package investment exposes the investment ledger over HTTP.
package investment

import (
	"fmt"
	"time"

	"github.com/fintrackhq/fintrack/pkg/middleware"
	investmentsvc "github.com/fintrackhq/fintrack/pkg/service/investment"
	"github.com/fintrackhq/fintrack/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

// Routes registers the investment endpoints behind the access gate.
func Routes(
	app *fiber.App,
	investmentSvc *investmentsvc.Service,
	store *session.Store,
) {
	gate := middleware.SessionProtected(store)
	app.Get("/investments", gate, ListInvestments(investmentSvc))
	app.Post("/investments", gate, CreateInvestment(investmentSvc))
	app.Delete("/investments/:id", gate, DeleteInvestment(investmentSvc))
}

// ListInvestments returns the user's ledger, newest date first.
func ListInvestments(investmentSvc *investmentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)
		investments, err := investmentSvc.List(c.Context(), userID)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(investments)
	}
}

// CreateInvestment records a new ledger entry.
func CreateInvestment(investmentSvc *investmentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewInvestment](c)
		if input == nil {
			return err
		}
		userID, _ := middleware.UserID(c)

		date, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		created, err := investmentSvc.Create(c.Context(), userID, investmentsvc.CreateInput{
			Date:       date,
			Type:       input.Type,
			Amount:     *input.Amount,
			Rate:       input.Rate,
			ActualCost: input.ActualCost,
		})
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// DeleteInvestment removes an owned ledger entry. A malformed or
// foreign id gets the same not-found response as a missing one.
func DeleteInvestment(investmentSvc *investmentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := middleware.UserID(c)
		idParam := c.Params("id")
		id, err := uuid.Parse(idParam)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("investment with id %s not found", idParam),
			})
		}
		if err := investmentSvc.Delete(c.Context(), userID, id); err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(fiber.Map{
			"message": fmt.Sprintf("Investment with id %s deleted successfully", id),
		})
	}
}
