package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mkarwowski/bingoroom/internal/domain"
)

// Коды Postgres, означающие транзиентный конфликт: serialization_failure,
// deadlock_detected, lock_not_available.
var transientCodes = map[string]bool{
	"40001": true,
	"40P01": true,
	"55P03": true,
}

// asConflict заворачивает транзиентные ошибки БД в domain.ErrConflict,
// остальные возвращает как есть.
func asConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && transientCodes[pgErr.Code] {
		return errors.Join(domain.ErrConflict, err)
	}

	return err
}
