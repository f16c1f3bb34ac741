package main

import (
	"encoding/json"
	"fmt"
)

// Wire protocol shared with the web client. Every frame in either direction
// is a JSON object {type, payload}; inbound frames decode into one typed
// payload struct per message kind so handlers never inspect raw JSON.

type clientEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type playerInfo struct {
	Name string `json:"name"`
}

type createRoomPayload struct {
	Player   playerInfo `json:"player"`
	Password string     `json:"password"`
}

type joinRoomPayload struct {
	Player   playerInfo `json:"player"`
	RoomID   string     `json:"roomId"`
	Password string     `json:"password"`
}

type leaveRoomPayload struct {
	PlayerID string `json:"playerId"`
	RoomID   string `json:"roomId"`
}

type startGamePayload struct {
	RoomID string `json:"roomId"`
}

type votePayload struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
	Mode     string `json:"mode"`
	GameMode string `json:"gameMode"`
}

type answerPayload struct {
	RoomID    string  `json:"roomId"`
	PlayerID  string  `json:"playerId"`
	Answer    string  `json:"answer"`
	TimeSpent float64 `json:"timeSpent"`
}

// decodeClientMessage parses an inbound frame into its typed payload.
// The returned value is one of the *Payload structs above.
func decodeClientMessage(data []byte) (any, error) {
	var env clientEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("invalid message envelope: %w", err)
	}

	switch env.Type {
	case "create_room":
		var p createRoomPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("invalid create_room payload: %w", err)
		}
		return p, nil
	case "join_room":
		var p joinRoomPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("invalid join_room payload: %w", err)
		}
		return p, nil
	case "leave_room":
		var p leaveRoomPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("invalid leave_room payload: %w", err)
		}
		return p, nil
	case "start_game":
		var p startGamePayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("invalid start_game payload: %w", err)
		}
		return p, nil
	case "vote":
		var p votePayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("invalid vote payload: %w", err)
		}
		return p, nil
	case "answer":
		var p answerPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("invalid answer payload: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown message type %q", env.Type)
	}
}

// Outbound messages.

type serverMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type gameStatePayload struct {
	Room *roomSnapshot `json:"room"`
}

type errorPayload struct {
	Message string `json:"message"`
}

func gameStateMessage(snap *roomSnapshot) serverMessage {
	return serverMessage{Type: "game_state", Payload: gameStatePayload{Room: snap}}
}

func errorMessage(text string) serverMessage {
	return serverMessage{Type: "error", Payload: errorPayload{Message: text}}
}

// Snapshot types: the serialized projection of Room state. Connection
// handles are never part of a snapshot.

type playerSnapshot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Score       int    `json:"score"`
	IsHost      bool   `json:"isHost"`
	HasAnswered bool   `json:"hasAnswered"`
}

type votePair struct {
	Mode     string `json:"mode"`
	GameMode string `json:"gameMode"`
}

type votingSnapshot struct {
	Mode     string              `json:"mode"`
	GameMode string              `json:"gameMode"`
	Votes    map[string]votePair `json:"votes"`
}

type gameSettings struct {
	Mode            string `json:"mode"`
	GameMode        string `json:"gameMode"`
	TimePerQuestion int    `json:"timePerQuestion"`
	TotalQuestions  int    `json:"totalQuestions"`
}

type roomSnapshot struct {
	ID              string           `json:"id"`
	Password        string           `json:"password"`
	Players         []playerSnapshot `json:"players"`
	GameState       string           `json:"gameState"`
	VotingState     *votingSnapshot  `json:"votingState,omitempty"`
	GameSettings    *gameSettings    `json:"gameSettings,omitempty"`
	CurrentQuestion int              `json:"currentQuestion"`
	Questions       []*question      `json:"questions,omitempty"`
	TimeRemaining   int              `json:"timeRemaining"`
}
