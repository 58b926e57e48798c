package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/portfolio-site/internal/entity"
)

const (
	actionGameState   = "game:state"
	actionGameChoose  = "game:choose"
	actionGameNew     = "game:new"
	actionScoresReset = "game:scores:reset"
	actionUnknown     = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ChoosePayload struct {
	Cell *int `json:"cell"`
}

type ResponsePayload struct {
	Game  *entity.Game `json:"game,omitempty"`
	Error string       `json:"error,omitempty"`
}
