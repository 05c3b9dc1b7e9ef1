// Package memory содержит in-memory реализации репозиториев. Используется в
// тестах и как референс семантики: те же инварианты, что и у postgres-адаптера,
// но на мьютексах вместо транзакций.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mkarwowski/bingoroom/internal/domain/models"
)

// Store — общее состояние in-memory адаптеров.
//
// Порядок блокировок: mu можно брать, держа roomState.mu, но не наоборот.
type Store struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*models.User
	tasks map[int]models.Task
	rooms map[uuid.UUID]*roomState
}

// roomState — агрегат комнаты: доска и участники живут под одним мьютексом,
// он же даёт per-room критическую секцию claim -> evaluate -> finalize.
type roomState struct {
	mu       sync.Mutex
	room     models.Room
	members  []models.RoomMember
	tiles    []models.TileAssignment
	messages []models.Message
}

func NewStore() *Store {
	return &Store{
		users: make(map[uuid.UUID]*models.User),
		tasks: make(map[int]models.Task),
		rooms: make(map[uuid.UUID]*roomState),
	}
}

func (s *Store) roomByID(id uuid.UUID) (*roomState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rs, ok := s.rooms[id]
	return rs, ok
}

func (s *Store) taskByID(id int) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	return task, ok
}

func (s *Store) usernameByID(id uuid.UUID) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if user, ok := s.users[id]; ok {
		return user.Username
	}
	return ""
}

func (s *Store) bumpCounters(memberIDs []uuid.UUID, winnerID *uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range memberIDs {
		if user, ok := s.users[id]; ok {
			user.GamesPlayed++
			user.UpdatedAt = time.Now()
		}
	}

	if winnerID != nil {
		if user, ok := s.users[*winnerID]; ok {
			user.GamesWon++
			user.UpdatedAt = time.Now()
		}
	}
}
