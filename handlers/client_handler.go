package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gorilla/websocket"

	"cavern-realm/server/messages"
	"cavern-realm/server/models"
	"cavern-realm/server/monitoring"
	"cavern-realm/server/network"
	"cavern-realm/server/services"
)

// ClientHandler manages a single client connection
type ClientHandler struct {
	conn          *network.Connection
	playerService *services.PlayerService
	worldService  *services.WorldService
	clientManager *ClientManager
	player        *models.Player
}

// HandleClientConnection serves one websocket client until it disconnects.
func HandleClientConnection(wsConn *websocket.Conn, sendQueue int, playerService *services.PlayerService, worldService *services.WorldService, clientManager *ClientManager) {
	conn := network.NewConnection(wsConn, sendQueue)
	monitoring.Logf("New connection from %s", conn.RemoteAddr())

	handler := &ClientHandler{
		conn:          conn,
		playerService: playerService,
		worldService:  worldService,
		clientManager: clientManager,
	}

	go conn.WritePump()
	conn.ReadPump(handler)
	conn.Close()

	// A replaced connection must not tear down the session that replaced it.
	if player := handler.player; player != nil {
		clientManager.RemoveClient(player.ID, handler, func() {
			worldService.RemovePlayer(player.ID)
			monitoring.Logf("Player %s disconnected and removed from world", player.Username)
		})
	}
}

// HandleMessage handles incoming messages from the client
func (h *ClientHandler) HandleMessage(conn *network.Connection, message []byte) {
	var inbound messages.InboundMessage
	if err := json.Unmarshal(message, &inbound); err != nil {
		monitoring.Logf("Error unmarshaling message: %v", err)
		h.sendError(messages.CodeBadPayload, "message is not valid JSON")
		return
	}

	if inbound.Type == messages.MessageTypeLogin {
		h.handleLogin(inbound.Payload)
		return
	}

	if h.player == nil {
		h.sendError(messages.CodeNoSession, "log in first")
		return
	}

	switch inbound.Type {
	case messages.MessageTypeNewWorld:
		h.handleNewWorld(inbound.Payload)
	case messages.MessageTypeMove:
		h.handleMove(inbound.Payload)
	case messages.MessageTypeSave:
		h.handleSave()
	case messages.MessageTypeLoad:
		h.handleLoad()
	case messages.MessageTypeDescribe:
		h.handleDescribe(inbound.Payload)
	default:
		monitoring.Logf("Unknown message type: %s", inbound.Type)
		h.sendError(messages.CodeUnknownMessageType, "Unknown message type received")
	}
}

// handleLogin identifies the player and resumes their saved game.
func (h *ClientHandler) handleLogin(payload json.RawMessage) {
	var loginMsg messages.LoginMessage
	if !h.decode(payload, &loginMsg) {
		return
	}

	player, err := h.playerService.GetOrCreatePlayer(loginMsg.Username)
	if err != nil {
		monitoring.Logf("Error getting/creating player: %v", err)
		h.sendError(messages.CodeLoginFailed, "Failed to log in")
		return
	}

	if current := h.player; current != nil && current.ID != player.ID {
		h.clientManager.RemoveClient(current.ID, h, func() {
			h.worldService.RemovePlayer(current.ID)
		})
	}

	var update *messages.UpdateMessage
	previous, err := h.clientManager.AddClient(player.ID, h, func() error {
		var err error
		update, err = h.worldService.Resume(player.ID)
		return err
	})
	if err != nil {
		monitoring.Logf("Error resuming world for %s: %v", player.Username, err)
		h.sendError(messages.CodeLoginFailed, "Failed to load world")
		return
	}
	h.player = player
	if previous != nil && previous != h {
		monitoring.Logf("Player %s logged in again, closing the older connection", player.Username)
		previous.conn.Disconnect()
	}

	h.send(messages.BaseMessage{
		Type: messages.MessageTypeLoginSuccess,
		Payload: messages.LoginSuccessMessage{
			PlayerID: player.ID,
			Message:  "Login successful",
		},
	})
	h.sendUpdate(update)
}

func (h *ClientHandler) handleNewWorld(payload json.RawMessage) {
	var req messages.NewWorldMessage
	if len(payload) > 0 && !h.decode(payload, &req) {
		return
	}

	if req.Seed != nil {
		h.sendUpdate(h.worldService.StartWorld(h.player.ID, *req.Seed))
		return
	}
	h.sendUpdate(h.worldService.NewWorld(h.player.ID))
}

// handleMove handles player movement requests
func (h *ClientHandler) handleMove(payload json.RawMessage) {
	var moveMsg messages.MoveMessage
	if !h.decode(payload, &moveMsg) {
		return
	}

	update, err := h.worldService.MovePlayer(h.player.ID, moveMsg.Direction)
	if err != nil {
		code := messages.CodeMoveFailed
		if errors.Is(err, services.ErrNoSession) {
			code = messages.CodeNoSession
		}
		h.sendError(code, err.Error())
		return
	}
	h.sendUpdate(update)
}

func (h *ClientHandler) handleSave() {
	state, err := h.worldService.SaveGame(h.player.ID)
	if err != nil {
		monitoring.Logf("Error saving game for %s: %v", h.player.Username, err)
		code := messages.CodeSaveFailed
		if errors.Is(err, services.ErrNoSession) {
			code = messages.CodeNoSession
		}
		h.sendError(code, err.Error())
		return
	}
	if err := h.playerService.Touch(h.player.ID); err != nil {
		monitoring.Logf("Error updating player %s: %v", h.player.Username, err)
	}

	h.send(messages.BaseMessage{
		Type:    messages.MessageTypeSaved,
		Payload: messages.SavedMessage{Seed: state.Seed, X: state.X, Y: state.Y},
	})
}

func (h *ClientHandler) handleLoad() {
	update, err := h.worldService.Resume(h.player.ID)
	if err != nil {
		monitoring.Logf("Error loading game for %s: %v", h.player.Username, err)
		h.sendError(messages.CodeNoSession, err.Error())
		return
	}
	h.sendUpdate(update)
}

func (h *ClientHandler) handleDescribe(payload json.RawMessage) {
	var req messages.DescribeMessage
	if !h.decode(payload, &req) {
		return
	}

	description, err := h.worldService.Describe(h.player.ID, req.X, req.Y)
	if err != nil {
		h.sendError(messages.CodeNoSession, err.Error())
		return
	}
	h.send(messages.BaseMessage{Type: messages.MessageTypeDescription, Payload: description})
}

// decode unmarshals a payload, replying BAD_PAYLOAD on failure.
func (h *ClientHandler) decode(payload json.RawMessage, v interface{}) bool {
	if err := json.Unmarshal(payload, v); err != nil {
		monitoring.Logf("Error unmarshaling payload: %v", err)
		h.sendError(messages.CodeBadPayload, "payload could not be decoded")
		return false
	}
	return true
}

func (h *ClientHandler) sendUpdate(update *messages.UpdateMessage) {
	h.send(messages.BaseMessage{Type: messages.MessageTypeUpdate, Payload: update})
}

func (h *ClientHandler) sendError(code, message string) {
	h.send(messages.NewError(code, message))
}

func (h *ClientHandler) send(msg messages.BaseMessage) {
	if err := h.conn.SendMessage(msg); err != nil {
		monitoring.Logf("Error sending %s: %v", msg.Type, err)
	}
}
