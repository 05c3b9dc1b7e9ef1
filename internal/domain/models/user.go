package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`

	GamesPlayed int `json:"games_played" db:"games_played"`
	GamesWon    int `json:"games_won" db:"games_won"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func NewUser(email, username string) *User {
	return &User{
		ID:        uuid.New(),
		Email:     email,
		Username:  username,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// Winrate — доля выигранных игр, 0 если игр ещё не было.
func (u *User) Winrate() float64 {
	if u.GamesPlayed == 0 {
		return 0
	}
	return float64(u.GamesWon) / float64(u.GamesPlayed)
}
