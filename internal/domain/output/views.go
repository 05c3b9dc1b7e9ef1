package output

import (
	"time"

	"github.com/google/uuid"
)

type RoomSummary struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Category     string    `json:"category" db:"category"`
	HasPassword  bool      `json:"has_password" db:"has_password"`
	MaxPlayers   int       `json:"max_players" db:"max_players"`
	PlayersCount int       `json:"players_count" db:"players_count"`
}

type MemberView struct {
	UserID   uuid.UUID `json:"user_id" db:"user_id"`
	Username string    `json:"username" db:"username"`
	Color    string    `json:"color" db:"color"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
}

// ClaimResult — ответ на попытку занять клетку. WinType заполняется только
// при завершении игры.
type ClaimResult struct {
	GameFinished   bool       `json:"game_finished"`
	WinType        string     `json:"win_type,omitempty"`
	WinnerID       *uuid.UUID `json:"winner_id,omitempty"`
	WinnerUsername string     `json:"winner_username,omitempty"`
	WinnerTiles    int        `json:"winner_tiles,omitempty"`
	DrawUsernames  []string   `json:"draw_usernames,omitempty"`
	DrawTiles      int        `json:"draw_tiles,omitempty"`
}

type ProfileView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	GamesPlayed int       `json:"games_played"`
	GamesWon    int       `json:"games_won"`
	Winrate     float64   `json:"winrate"`
}

type MessageView struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
