package dto

type CreateRoomRequest struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	MaxPlayers int    `json:"max_players"`
	Password   string `json:"password"`
}

type JoinRoomRequest struct {
	Password string `json:"password"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}
