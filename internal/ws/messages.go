package ws

import "github.com/osse101/StormSheet_Go/internal/domain"

// clientMessage is every frame a client may send
type clientMessage struct {
	Type    string `json:"type"`
	Kind    string `json:"kind"`
	GrantID string `json:"grant_id,omitempty"`
}

// serverMessage is every frame the server sends. Type is "connected", "acked",
// "error" or "<kind>-granted".
type serverMessage struct {
	Type        string           `json:"type"`
	CharacterID string           `json:"character_id,omitempty"`
	Kind        domain.GrantKind `json:"kind,omitempty"`
	GrantID     string           `json:"grant_id,omitempty"`
	Grant       *domain.Grant    `json:"grant,omitempty"`
	Error       string           `json:"error,omitempty"`
}
