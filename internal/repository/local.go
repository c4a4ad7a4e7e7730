package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Preechanamchu/KT-Monitor/internal/models"
)

// LocalStore - локальный резервный реестр сотрудников в SQLite
type LocalStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewLocalStore создает схему при необходимости и заполняет пустую таблицу реестром по умолчанию
func NewLocalStore(ctx context.Context, db *sql.DB) (*LocalStore, error) {
	s := &LocalStore{db: db, now: time.Now}
	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("error while migrating local store: %w", err)
	}
	if err := s.seed(ctx, DefaultRoster()); err != nil {
		return nil, fmt.Errorf("error while seeding local store: %w", err)
	}
	return s, nil
}

func (s *LocalStore) migrate(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS staff (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			lat REAL NOT NULL,
			lng REAL NOT NULL,
			area TEXT,
			status TEXT,
			image_ref TEXT,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

func (s *LocalStore) seed(ctx context.Context, roster []models.Responder) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM staff;`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	now := s.now().UnixMilli()
	for _, r := range roster {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO staff (id, name, phone, lat, lng, area, status, image_ref, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
			r.ID, r.Name, r.Phone, r.Location.Lat, r.Location.Lng,
			r.Area, statusValue(r.Status), r.ImageRef, now, now,
		)
		if err != nil {
			return fmt.Errorf("insert seed staff %d: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

// List возвращает всех сотрудников, новые записи первыми (по убыванию id)
func (s *LocalStore) List(ctx context.Context) ([]models.Responder, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+staffColumns+` FROM staff ORDER BY id DESC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list local staff: %w", err)
	}
	defer rows.Close()

	roster := make([]models.Responder, 0)
	for rows.Next() {
		responder, err := scanLocalResponder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan local staff row: %w", err)
		}
		roster = append(roster, responder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error local staff list iteration: %w", err)
	}
	return roster, nil
}

// Save создает сотрудника при ID == 0, иначе обновляет существующую запись
func (s *LocalStore) Save(ctx context.Context, responder models.Responder) (models.Responder, error) {
	now := s.now().UnixMilli()
	var row *sql.Row
	if responder.ID == 0 {
		row = s.db.QueryRowContext(ctx, `
			INSERT INTO staff (name, phone, lat, lng, area, status, image_ref, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING `+staffColumns+`;`,
			responder.Name, responder.Phone, responder.Location.Lat, responder.Location.Lng,
			responder.Area, statusValue(responder.Status), responder.ImageRef, now, now,
		)
	} else {
		row = s.db.QueryRowContext(ctx, `
			UPDATE staff SET
				name = ?, phone = ?, lat = ?, lng = ?, area = ?, status = ?, image_ref = ?, updated_at = ?
			WHERE id = ?
			RETURNING `+staffColumns+`;`,
			responder.Name, responder.Phone, responder.Location.Lat, responder.Location.Lng,
			responder.Area, statusValue(responder.Status), responder.ImageRef, now, responder.ID,
		)
	}

	saved, err := scanLocalResponder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Responder{}, fmt.Errorf("local staff with id %d: %w", responder.ID, ErrNotFound)
		}
		return models.Responder{}, fmt.Errorf("failed to save local staff: %w", err)
	}
	return saved, nil
}

// Delete удаляет сотрудника по идентификатору
func (s *LocalStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM staff WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete local staff: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("local staff with id %d: %w", id, ErrNotFound)
	}
	return nil
}

// Метки времени хранятся в SQLite как миллисекунды Unix
func scanLocalResponder(row rowScanner) (models.Responder, error) {
	var (
		responder          models.Responder
		status             *string
		createdAt, updated int64
	)
	err := row.Scan(
		&responder.ID,
		&responder.Name,
		&responder.Phone,
		&responder.Location.Lat,
		&responder.Location.Lng,
		&responder.Area,
		&status,
		&responder.ImageRef,
		&createdAt,
		&updated,
	)
	if err != nil {
		return models.Responder{}, err
	}
	if status != nil {
		st := models.Status(*status)
		responder.Status = &st
	}
	responder.CreatedAt = time.UnixMilli(createdAt).UTC()
	responder.UpdatedAt = time.UnixMilli(updated).UTC()
	return responder, nil
}
