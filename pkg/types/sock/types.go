package sock

import "encoding/json"

// WebSocketMessage: 릴레이가 브라우저로 내려보내는 프레임
type WebSocketMessage struct {
	Channel string          `json:"channel"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}
