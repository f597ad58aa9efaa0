// service/game_manager.go
package service

import (
	"errors"
	"sync"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

var ErrGameNotFound = errors.New("game not found")

// GameManager owns the single active game. Every access to the game goes
// through mu, so the engine only ever sees one caller at a time.
// broadcastMu is taken before mu is released, so observers receive states
// in the order they were taken. Lock order is mu, then broadcastMu.
type GameManager struct {
	gameID      string
	game        *model.Game
	hub         *Hub
	newID       func() string
	mu          sync.Mutex
	broadcastMu sync.Mutex
}

func NewGameManager() *GameManager {
	return newGameManager(func() string { return uuid.New().String() })
}

func newGameManager(newID func() string) *GameManager {
	gm := &GameManager{
		hub:   NewHub(),
		newID: newID,
	}
	gm.gameID = newID()
	gm.game = model.NewGame()
	return gm
}

func (gm *GameManager) GameID() string {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.gameID
}

// lookup returns the active game if gameID names it. Callers hold mu.
func (gm *GameManager) lookup(gameID string) (*model.Game, error) {
	if gameID != gm.gameID {
		return nil, ErrGameNotFound
	}
	return gm.game, nil
}

func (gm *GameManager) snapshot() model.GameState {
	state := gm.game.Snapshot()
	state.ID = gm.gameID
	return state
}

// CurrentGameState returns the state of whichever game is active.
func (gm *GameManager) CurrentGameState() model.GameState {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	return gm.snapshot()
}

// Restart replaces the active game with a new one under a new id and tells
// every observer.
func (gm *GameManager) Restart() model.GameState {
	gm.mu.Lock()
	oldID := gm.gameID
	gm.gameID = gm.newID()
	gm.game = model.NewGame()
	state := gm.snapshot()
	gm.broadcastMu.Lock()
	gm.mu.Unlock()
	defer gm.broadcastMu.Unlock()

	log.Infof("game %s replaced by %s", oldID, state.ID)
	gm.broadcast(state)
	return state
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, err := gm.lookup(gameID); err != nil {
		return model.GameState{}, err
	}
	return gm.snapshot(), nil
}

func (gm *GameManager) LegalMoves(gameID string, from model.Position) ([]model.Move, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	game, err := gm.lookup(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalMovesFrom(from), nil
}

// MakeMove plays move in the game named gameID and broadcasts the result.
func (gm *GameManager) MakeMove(gameID string, move model.Move) (model.GameState, error) {
	gm.mu.Lock()
	game, err := gm.lookup(gameID)
	if err != nil {
		gm.mu.Unlock()
		return model.GameState{}, err
	}
	if err := game.MakeMove(move); err != nil {
		gm.mu.Unlock()
		return model.GameState{}, err
	}
	state := gm.snapshot()
	gm.broadcastMu.Lock()
	gm.mu.Unlock()
	defer gm.broadcastMu.Unlock()

	gm.broadcast(state)
	return state, nil
}

// RegisterConnection adds an observer of gameID and sends it the current
// state ahead of any later broadcast.
func (gm *GameManager) RegisterConnection(gameID, key string, conn Conn) error {
	gm.mu.Lock()
	if _, err := gm.lookup(gameID); err != nil {
		gm.mu.Unlock()
		return err
	}
	state := gm.snapshot()
	gm.broadcastMu.Lock()
	gm.mu.Unlock()
	defer gm.broadcastMu.Unlock()

	if !gm.hub.Register(key, conn) {
		return errors.New("connection already exists")
	}

	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		return err
	}
	return gm.hub.Send(conn, msg)
}

// Send writes msg to a single connection, serialized with broadcasts.
func (gm *GameManager) Send(conn Conn, msg ws.Message) error {
	return gm.hub.Send(conn, msg)
}

func (gm *GameManager) UnregisterConnection(key string) {
	gm.hub.Unregister(key)
}

func (gm *GameManager) broadcast(state model.GameState) {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		log.Errorf("failed to marshal state of game %s: %v", state.ID, err)
		return
	}
	gm.hub.Broadcast(msg)
}
