package messages

import (
	"encoding/json"

	"cavern-realm/server/generation"
	"cavern-realm/server/models"
)

// MessageType defines the type of message being sent
type MessageType string

const (
	MessageTypeLogin        MessageType = "login"
	MessageTypeLoginSuccess MessageType = "login_success"
	MessageTypeNewWorld     MessageType = "new_world"
	MessageTypeMove         MessageType = "move"
	MessageTypeSave         MessageType = "save"
	MessageTypeSaved        MessageType = "saved"
	MessageTypeLoad         MessageType = "load"
	MessageTypeDescribe     MessageType = "describe"
	MessageTypeDescription  MessageType = "description"
	MessageTypeUpdate       MessageType = "update"
	MessageTypeError        MessageType = "error"
)

// Error codes carried in ErrorMessage.
const (
	CodeLoginFailed        = "LOGIN_FAILED"
	CodeMoveFailed         = "MOVE_FAILED"
	CodeNoSession          = "NO_SESSION"
	CodeSaveFailed         = "SAVE_FAILED"
	CodeUnknownMessageType = "UNKNOWN_MESSAGE_TYPE"
	CodeBadPayload         = "BAD_PAYLOAD"
)

// BaseMessage is the envelope for everything the server sends.
type BaseMessage struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// InboundMessage is the envelope for client messages. The payload is decoded
// once the type is known.
type InboundMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// LoginMessage represents a login request
type LoginMessage struct {
	Username string `json:"username"`
}

// LoginSuccessMessage represents a successful login response
type LoginSuccessMessage struct {
	PlayerID string `json:"player_id"`
	Message  string `json:"message"`
}

// NewWorldMessage asks for a fresh world. A nil Seed picks one at random.
type NewWorldMessage struct {
	Seed *int64 `json:"seed,omitempty"`
}

// MoveMessage represents a player movement request
type MoveMessage struct {
	Direction string `json:"direction"` // north, south, east, west
}

// DescribeMessage asks what occupies a world tile.
type DescribeMessage struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DescriptionMessage answers a DescribeMessage.
type DescriptionMessage struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Tile string `json:"tile"`
}

// SavedMessage confirms what was written by a save.
type SavedMessage struct {
	Seed int64 `json:"seed"`
	X    int   `json:"x"`
	Y    int   `json:"y"`
}

// UpdateMessage is the client's view of its session: the camera window with
// the avatar drawn in.
type UpdateMessage struct {
	Seed     int64               `json:"seed"`
	Avatar   generation.Position `json:"avatar"`
	Viewport models.Viewport     `json:"viewport"`
}

// ErrorMessage represents an error response
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewError builds an error envelope.
func NewError(code, message string) BaseMessage {
	return BaseMessage{
		Type:    MessageTypeError,
		Payload: ErrorMessage{Code: code, Message: message},
	}
}
