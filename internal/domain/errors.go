package domain

import "errors"

// Ожидаемые ошибки бизнес-логики. Транспортный слой маппит их на HTTP статусы.
var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomFull           = errors.New("room is full")
	ErrInvalidPassword    = errors.New("invalid room password")
	ErrNotAMember         = errors.New("not a member of this room")
	ErrTileAlreadyClaimed = errors.New("tile already claimed")
	ErrGameFinished       = errors.New("game is already finished")
	ErrInsufficientTasks  = errors.New("not enough tasks in category")
	ErrEmailTaken         = errors.New("email already registered")

	// ErrConflict — транзиентный конфликт per-room секции, можно ретраить.
	ErrConflict = errors.New("concurrent update conflict")
)
