package controller

import (
	"errors"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// errorStatus maps service and engine errors onto HTTP statuses.
func errorStatus(err error) int {
	var moveErr *model.MoveError
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &moveErr):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

func sendError(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (gc *GameController) CurrentGame(c *fiber.Ctx) error {
	return c.JSON(gc.gameService.CurrentGame())
}

func (gc *GameController) RestartGame(c *fiber.Ctx) error {
	return c.JSON(gc.gameService.RestartGame())
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Locals("gameID").(string)

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	gameID := c.Locals("gameID").(string)
	from := model.Position{Row: c.QueryInt("row", -1), Col: c.QueryInt("col", -1)}

	moves, err := gc.gameService.LegalMoves(gameID, from)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{
		"from":  from,
		"moves": moves,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Locals("gameID").(string)

	var move model.Move
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}

	gameState, err := gc.gameService.HandleMove(gameID, move)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(gameState)
}
