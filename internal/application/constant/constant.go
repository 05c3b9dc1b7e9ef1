package constant

// Ключи атрибутов для slog.
const (
	Error    = "error"
	UserID   = "user_id"
	RoomID   = "room_id"
	UserName = "username"
)
