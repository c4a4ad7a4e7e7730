package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Preechanamchu/KT-Monitor/internal/auth"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdminRepository хранит bcrypt-хэши PIN администраторов
type AdminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

// PasswordHash возвращает хэш PIN для указанного пользователя
func (r *AdminRepository) PasswordHash(ctx context.Context, username string) (string, error) {
	var hash string
	err := r.db.QueryRow(ctx, `SELECT password_hash FROM admins WHERE username = $1;`, username).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", auth.ErrAdminNotFound
		}
		return "", fmt.Errorf("failed to get admin password hash: %w", err)
	}
	return hash, nil
}

// EnsureAdmin создает администратора с указанным хэшем, если записи еще нет
func (r *AdminRepository) EnsureAdmin(ctx context.Context, username, passwordHash string) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `
		INSERT INTO admins (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING;`,
		username, passwordHash,
	)
	if err != nil {
		return false, fmt.Errorf("failed to ensure admin: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}
