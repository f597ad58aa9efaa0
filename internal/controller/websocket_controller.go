package controller

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

// wsMove is a move message. GameID may be left empty to act on whichever
// game is active, which is the game the hub keeps the socket updated on.
type wsMove struct {
	GameID string `json:"gameId"`
	model.Move
}

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals("wsGameID").(string)
	connID := fmt.Sprintf("%p", c)

	// Register this connection with the game
	if err := wsc.gameService.RegisterConnection(gameID, connID, c); err != nil {
		log.Warnf("failed to register connection %s: %v", connID, err)
		closeMsg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error())
		if werr := c.WriteMessage(websocket.CloseMessage, closeMsg); werr != nil {
			log.Debugf("close message to %s failed: %v", connID, werr)
		}
		if cerr := c.Close(); cerr != nil {
			log.Debugf("close of %s failed: %v", connID, cerr)
		}
		return
	}
	// Clean up when connection closes
	defer wsc.gameService.UnregisterConnection(connID)

	// Start message handling loop
	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("read error on %s: %v", connID, err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(c, fmt.Sprintf("parse error: %v", err))
			continue
		}
		if err := wsc.handleMessage(msg); err != nil {
			wsc.sendError(c, err.Error())
		}
	}
}

// Handle different types of incoming messages. Successful moves and restarts
// reach every observer through the broadcast.
func (wsc *WebSocketController) handleMessage(msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move wsMove
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return fmt.Errorf("invalid move payload: %w", err)
		}
		gameID := move.GameID
		if gameID == "" {
			gameID = wsc.gameService.ActiveGameID()
		}
		_, err := wsc.gameService.HandleMove(gameID, move.Move)
		return err

	case ws.MessageTypeRestart:
		wsc.gameService.RestartGame()
		return nil

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, reason string) {
	if err := wsc.gameService.SendError(c, reason); err != nil {
		log.Warnf("failed to send error: %v", err)
	}
}
