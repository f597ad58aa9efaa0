package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

type stateBody struct {
	GameID      string       `json:"gameId"`
	ToMove      model.Color  `json:"toMove"`
	MoveHistory []model.Move `json:"moveHistory"`
	Status      string       `json:"status"`
}

func newTestServer(t *testing.T) (*fiber.App, *service.GameService) {
	t.Helper()
	gameService := service.NewGameService(service.NewGameManager())
	app := fiber.New()
	RegisterRoutes(app, gameService, websocket.Config{})
	return app, gameService
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp.StatusCode, data
}

func decodeState(t *testing.T, data []byte) stateBody {
	t.Helper()
	var state stateBody
	if err := json.Unmarshal(data, &state); err != nil {
		t.Fatalf("decoding %s: %v", data, err)
	}
	return state
}

func TestCurrentGame(t *testing.T) {
	app, gameService := newTestServer(t)

	status, data := doRequest(t, app, http.MethodGet, "/api/game", "")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200: %s", status, data)
	}
	state := decodeState(t, data)
	if state.GameID != gameService.CurrentGame().ID {
		t.Errorf("gameId = %q, want %q", state.GameID, gameService.CurrentGame().ID)
	}
	if state.ToMove != model.White || state.Status != "White to move" {
		t.Errorf("state = %+v, want white to move", state)
	}
}

func TestLegalMovesEndpoint(t *testing.T) {
	app, gameService := newTestServer(t)
	id := gameService.CurrentGame().ID

	tests := []struct {
		name  string
		query string
		want  []model.Move
	}{
		{"pawn on e2", "row=6&col=4", []model.Move{model.NewMove(6, 4, 5, 4), model.NewMove(6, 4, 4, 4)}},
		{"empty square", "row=4&col=4", []model.Move{}},
		{"missing coordinates", "", []model.Move{}},
		{"black piece is not turn gated", "row=1&col=0", []model.Move{model.NewMove(1, 0, 2, 0), model.NewMove(1, 0, 3, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, data := doRequest(t, app, http.MethodGet, "/api/game/"+id+"/moves?"+tt.query, "")
			if status != fiber.StatusOK {
				t.Fatalf("status = %d, want 200: %s", status, data)
			}
			var body struct {
				Moves []model.Move `json:"moves"`
			}
			if err := json.Unmarshal(data, &body); err != nil {
				t.Fatalf("decoding %s: %v", data, err)
			}
			if diff := cmp.Diff(tt.want, body.Moves); diff != "" {
				t.Errorf("moves mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMakeMoveEndpoint(t *testing.T) {
	app, gameService := newTestServer(t)
	id := gameService.CurrentGame().ID
	path := "/api/game/" + id + "/move"

	status, data := doRequest(t, app, http.MethodPost, path, `{"from":{"row":6,"col":4},"to":{"row":4,"col":4}}`)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200: %s", status, data)
	}
	state := decodeState(t, data)
	if state.ToMove != model.Black || len(state.MoveHistory) != 1 {
		t.Errorf("state = %+v, want black to move after one move", state)
	}

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"wrong turn", path, `{"from":{"row":6,"col":3},"to":{"row":4,"col":3}}`, fiber.StatusUnprocessableEntity, "not your turn"},
		{"illegal pattern", path, `{"from":{"row":1,"col":4},"to":{"row":4,"col":4}}`, fiber.StatusUnprocessableEntity, "illegal move"},
		{"malformed body", path, `{"from":`, fiber.StatusBadRequest, "invalid move body"},
		{"unknown game", "/api/game/" + uuid.NewString() + "/move", `{"from":{"row":1,"col":4},"to":{"row":3,"col":4}}`, fiber.StatusNotFound, "game not found"},
		{"bad game id", "/api/game/not-a-uuid/move", `{}`, fiber.StatusBadRequest, "game ID must be a uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, data := doRequest(t, app, http.MethodPost, tt.path, tt.body)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d: %s", status, tt.wantStatus, data)
			}
			if !strings.Contains(string(data), tt.wantError) {
				t.Errorf("body %s does not contain %q", data, tt.wantError)
			}
		})
	}

	if got := gameService.CurrentGame(); len(got.MoveHistory) != 1 || got.ToMove != model.Black {
		t.Errorf("rejected requests changed the game: %+v", got)
	}
}

func TestRestartEndpoint(t *testing.T) {
	app, gameService := newTestServer(t)
	oldID := gameService.CurrentGame().ID
	if _, err := gameService.HandleMove(oldID, model.NewMove(6, 4, 4, 4)); err != nil {
		t.Fatalf("HandleMove error: %v", err)
	}

	status, data := doRequest(t, app, http.MethodPost, "/api/game/restart", "")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200: %s", status, data)
	}
	state := decodeState(t, data)
	if state.GameID == oldID || len(state.MoveHistory) != 0 {
		t.Errorf("restart state = %+v, want a fresh game with a new id", state)
	}

	status, _ = doRequest(t, app, http.MethodGet, "/api/game/"+oldID, "")
	if status != fiber.StatusNotFound {
		t.Errorf("old game status = %d, want 404", status)
	}
	status, _ = doRequest(t, app, http.MethodGet, "/api/game/"+state.GameID, "")
	if status != fiber.StatusOK {
		t.Errorf("new game status = %d, want 200", status)
	}
}

func TestHandleMessage(t *testing.T) {
	_, gameService := newTestServer(t)
	wsc := NewWebSocketController(gameService)
	oldID := gameService.ActiveGameID()

	e2e4, err := ws.NewMessage(ws.MessageTypeMove, model.NewMove(6, 4, 4, 4))
	if err != nil {
		t.Fatalf("NewMessage error: %v", err)
	}
	if err := wsc.handleMessage(e2e4); err != nil {
		t.Fatalf("move message error: %v", err)
	}

	if err := wsc.handleMessage(ws.Message{Type: ws.MessageTypeRestart}); err != nil {
		t.Fatalf("restart message error: %v", err)
	}
	newID := gameService.ActiveGameID()
	if newID == oldID {
		t.Fatal("restart kept the old game id")
	}

	// without a gameId the move goes to the game that replaced the old one
	if err := wsc.handleMessage(e2e4); err != nil {
		t.Errorf("move after restart error: %v", err)
	}
	if got := gameService.CurrentGame(); got.ID != newID || len(got.MoveHistory) != 1 {
		t.Errorf("state after move = %+v, want one move in %s", got, newID)
	}

	d7d5, err := ws.NewMessage(ws.MessageTypeMove, map[string]interface{}{
		"gameId": newID,
		"from":   model.Position{Row: 1, Col: 3},
		"to":     model.Position{Row: 3, Col: 3},
	})
	if err != nil {
		t.Fatalf("NewMessage error: %v", err)
	}
	if err := wsc.handleMessage(d7d5); err != nil {
		t.Errorf("move with explicit gameId error: %v", err)
	}

	stale, err := ws.NewMessage(ws.MessageTypeMove, map[string]interface{}{
		"gameId": oldID,
		"from":   model.Position{Row: 6, Col: 3},
		"to":     model.Position{Row: 4, Col: 3},
	})
	if err != nil {
		t.Fatalf("NewMessage error: %v", err)
	}
	if err := wsc.handleMessage(stale); !errors.Is(err, service.ErrGameNotFound) {
		t.Errorf("move naming the replaced game error = %v, want ErrGameNotFound", err)
	}

	if err := wsc.handleMessage(ws.Message{Type: "resign"}); err == nil {
		t.Error("unknown message type should fail")
	}
	if err := wsc.handleMessage(ws.Message{Type: ws.MessageTypeMove, Payload: []byte(`"e2e4"`)}); err == nil {
		t.Error("malformed move payload should fail")
	}
}
