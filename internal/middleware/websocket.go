package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade ensures that requests to WebSocket endpoints are valid WebSocket connection attempts.
// It runs after ValidateGameID, so the game id is already in Locals.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// First, check if this is a WebSocket upgrade request
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		// Store the id under the key the connection handler reads after the upgrade
		c.Locals("wsGameID", c.Locals("gameID"))

		// Allow the upgrade to proceed
		return c.Next()
	}
}
