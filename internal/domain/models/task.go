package models

import "github.com/google/uuid"

// Категории задач. Комната выбирается в одной категории и берёт доску из неё.
const (
	CategoryScience = "science"
	CategorySport   = "sport"
)

// Task — элемент статического каталога, сеется один раз при старте.
type Task struct {
	ID          int    `json:"id" db:"id"`
	Description string `json:"description" db:"description"`
	Category    string `json:"category" db:"category"`
}

// TileAssignment — одна из 25 клеток доски. Position идёт row-major по сетке 5x5.
type TileAssignment struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	RoomID    uuid.UUID  `json:"room_id" db:"room_id"`
	TaskID    int        `json:"task_id" db:"task_id"`
	Position  int        `json:"position" db:"position"`
	ClaimedBy *uuid.UUID `json:"claimed_by" db:"claimed_by"`
}

// BoardTile — клетка доски для отдачи клиенту: описание задачи и цвет
// занявшего игрока вместо сырого id.
type BoardTile struct {
	AssignmentID uuid.UUID  `json:"assignment_id" db:"assignment_id"`
	Position     int        `json:"position" db:"position"`
	Description  string     `json:"description" db:"description"`
	FinishedBy   *uuid.UUID `json:"finished_by" db:"finished_by"`
	Color        *string    `json:"color" db:"color"`
}
