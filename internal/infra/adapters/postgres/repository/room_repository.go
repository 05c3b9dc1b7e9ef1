package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mkarwowski/bingoroom/internal/domain"
	"github.com/mkarwowski/bingoroom/internal/domain/game"
	"github.com/mkarwowski/bingoroom/internal/domain/models"
	"github.com/mkarwowski/bingoroom/internal/domain/output"
)

type RoomRepository interface {
	// Create атомарно создаёт комнату, членство владельца и 25 клеток доски.
	Create(ctx context.Context, room *models.Room, ownerColor string, assignments []models.TileAssignment) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error)
	List(ctx context.Context) ([]output.RoomSummary, error)

	// AddMember добавляет участника, выдавая ему цвет. Вставка сериализована
	// по комнате, поэтому max_players соблюдается точно и при конкурентных
	// join. Повторный join существующего участника идемпотентен.
	AddMember(ctx context.Context, roomID, userID uuid.UUID) (*models.RoomMember, error)

	IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error)
	Members(ctx context.Context, roomID uuid.UUID) ([]output.MemberView, error)
}

type roomRepo struct {
	db *sqlx.DB
}

func NewRoomRepo(db *sqlx.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) Create(ctx context.Context, room *models.Room, ownerColor string, assignments []models.TileAssignment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create room tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO rooms (id, name, category, password_hash, max_players, owner_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		room.ID,
		room.Name,
		room.Category,
		room.PasswordHash,
		room.MaxPlayers,
		room.OwnerID,
		room.CreatedAt,
		room.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert room: %w", err)
	}

	_, err = tx.ExecContext(
		ctx,
		"INSERT INTO room_members (room_id, user_id, color) VALUES ($1, $2, $3)",
		room.ID,
		room.OwnerID,
		ownerColor,
	)
	if err != nil {
		return fmt.Errorf("insert owner membership: %w", err)
	}

	for _, a := range assignments {
		_, err = tx.ExecContext(
			ctx,
			"INSERT INTO assignments (id, room_id, task_id, position) VALUES ($1, $2, $3, $4)",
			a.ID,
			a.RoomID,
			a.TaskID,
			a.Position,
		)
		if err != nil {
			return fmt.Errorf("insert assignment %d: %w", a.Position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create room tx: %w", err)
	}

	return nil
}

func (r *roomRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	var room models.Room

	query := `SELECT id, name, category, password_hash, max_players, owner_id, done, winner_uid, created_at, updated_at
		FROM rooms WHERE id = $1`

	if err := r.db.GetContext(ctx, &room, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}

		return nil, fmt.Errorf("get room: %w", err)
	}

	return &room, nil
}

func (r *roomRepo) List(ctx context.Context) ([]output.RoomSummary, error) {
	rooms := []output.RoomSummary{}

	query := `
		SELECT
			r.id,
			r.name,
			r.category,
			r.password_hash IS NOT NULL AS has_password,
			r.max_players,
			COUNT(m.user_id) AS players_count
		FROM rooms r
		LEFT JOIN room_members m ON m.room_id = r.id
		GROUP BY r.id
		ORDER BY r.created_at DESC
	`

	if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	return rooms, nil
}

func (r *roomRepo) AddMember(ctx context.Context, roomID, userID uuid.UUID) (*models.RoomMember, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin join tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	// Блокируем строку комнаты: конкурентные join одной комнаты идут по очереди.
	var maxPlayers int
	err = tx.GetContext(ctx, &maxPlayers, "SELECT max_players FROM rooms WHERE id = $1 FOR UPDATE", roomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}

		return nil, asConflict(fmt.Errorf("lock room: %w", err))
	}

	var members []models.RoomMember
	err = tx.SelectContext(ctx, &members, "SELECT room_id, user_id, color, joined_at FROM room_members WHERE room_id = $1", roomID)
	if err != nil {
		return nil, fmt.Errorf("select members: %w", err)
	}

	usedColors := make([]string, 0, len(members))
	for _, m := range members {
		if m.UserID == userID {
			return &m, tx.Commit()
		}
		usedColors = append(usedColors, m.Color)
	}

	if len(members) >= maxPlayers {
		return nil, domain.ErrRoomFull
	}

	member := &models.RoomMember{
		RoomID:   roomID,
		UserID:   userID,
		Color:    game.PickColor(usedColors),
		JoinedAt: time.Now(),
	}

	_, err = tx.ExecContext(
		ctx,
		"INSERT INTO room_members (room_id, user_id, color, joined_at) VALUES ($1, $2, $3, $4)",
		member.RoomID,
		member.UserID,
		member.Color,
		member.JoinedAt,
	)
	if err != nil {
		return nil, asConflict(fmt.Errorf("insert member: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, asConflict(fmt.Errorf("commit join tx: %w", err))
	}

	return member, nil
}

func (r *roomRepo) IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error) {
	var exists bool

	query := "SELECT EXISTS (SELECT 1 FROM room_members WHERE room_id = $1 AND user_id = $2)"

	if err := r.db.GetContext(ctx, &exists, query, roomID, userID); err != nil {
		return false, fmt.Errorf("check membership: %w", err)
	}

	return exists, nil
}

func (r *roomRepo) Members(ctx context.Context, roomID uuid.UUID) ([]output.MemberView, error) {
	members := []output.MemberView{}

	query := `
		SELECT m.user_id, u.username, m.color, m.joined_at
		FROM room_members m
		INNER JOIN users u ON u.id = m.user_id
		WHERE m.room_id = $1
		ORDER BY m.joined_at ASC
	`

	if err := r.db.SelectContext(ctx, &members, query, roomID); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	return members, nil
}
