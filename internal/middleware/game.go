package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ValidateGameID rejects requests whose :gameId parameter is not a uuid and
// stores the normalised id in Locals("gameID").
func ValidateGameID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("gameId"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "game ID must be a uuid",
			})
		}

		c.Locals("gameID", id.String())
		return c.Next()
	}
}
