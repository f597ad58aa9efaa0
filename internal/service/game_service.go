package service

import (
	"fmt"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CurrentGame() model.GameState {
	return gs.gameManager.CurrentGameState()
}

// ActiveGameID is the id of the game every connection is observing.
func (gs *GameService) ActiveGameID() string {
	return gs.gameManager.GameID()
}

func (gs *GameService) RestartGame() model.GameState {
	return gs.gameManager.Restart()
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) LegalMoves(gameID string, from model.Position) ([]model.Move, error) {
	if !from.InBounds() {
		return []model.Move{}, nil
	}
	return gs.gameManager.LegalMoves(gameID, from)
}

func (gs *GameService) HandleMove(gameID string, move model.Move) (model.GameState, error) {
	state, err := gs.gameManager.MakeMove(gameID, move)
	if err != nil {
		log.Debugf("game %s rejected %s: %v", gameID, move, err)
		return model.GameState{}, fmt.Errorf("failed to make move: %w", err)
	}
	log.Infof("game %s: %s played %s", gameID, state.ToMove.Opposite(), move)
	if state.Resolve != nil {
		log.Infof("game %s over: %s", gameID, state.Status)
	}
	return state, nil
}

func (gs *GameService) RegisterConnection(gameID, key string, conn Conn) error {
	log.Debugf("registering connection %s for game %s", key, gameID)
	return gs.gameManager.RegisterConnection(gameID, key, conn)
}

func (gs *GameService) UnregisterConnection(key string) {
	log.Debugf("unregistering connection %s", key)
	gs.gameManager.UnregisterConnection(key)
}

// SendError tells one connection why its request failed.
func (gs *GameService) SendError(conn Conn, reason string) error {
	msg, err := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: reason})
	if err != nil {
		return err
	}
	return gs.gameManager.Send(conn, msg)
}
