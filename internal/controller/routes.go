package controller

import (
	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes mounts the REST and WebSocket endpoints on app.
func RegisterRoutes(app *fiber.App, gameService *service.GameService, wsConfig websocket.Config) {
	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)

	// Set up WebSocket routes
	app.Get("/ws/game/:gameId",
		middleware.ValidateGameID(),
		middleware.WebSocketUpgrade(),
		websocket.New(wsController.HandleConnection, wsConfig),
	)

	// Set up REST routes
	gameRoutes := app.Group("/api/game")
	gameRoutes.Get("/", gameController.CurrentGame)
	gameRoutes.Post("/restart", gameController.RestartGame)

	gameRoutes.Get("/:gameId", middleware.ValidateGameID(), gameController.GetGameState)
	gameRoutes.Get("/:gameId/moves", middleware.ValidateGameID(), gameController.LegalMoves)
	gameRoutes.Post("/:gameId/move", middleware.ValidateGameID(), gameController.MakeMove)
}
