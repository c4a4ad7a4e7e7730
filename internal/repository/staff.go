package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Preechanamchu/KT-Monitor/internal/models"
	"github.com/Preechanamchu/KT-Monitor/internal/session"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const staffColumns = `id, name, phone, lat, lng, area, status, image_ref, created_at, updated_at`

// StaffRepository - удаленный реестр сотрудников в PostgreSQL
type StaffRepository struct {
	db *pgxpool.Pool
}

func NewStaffRepository(db *pgxpool.Pool) session.RosterStore {
	return &StaffRepository{db: db}
}

// List возвращает всех сотрудников, новые записи первыми (по убыванию id)
func (r *StaffRepository) List(ctx context.Context) ([]models.Responder, error) {
	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY id DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	roster := make([]models.Responder, 0)
	for rows.Next() {
		responder, err := scanResponder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		roster = append(roster, responder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error staff list iteration: %w", err)
	}
	return roster, nil
}

// Save создает сотрудника при ID == 0, иначе обновляет существующую запись
func (r *StaffRepository) Save(ctx context.Context, responder models.Responder) (models.Responder, error) {
	var (
		row pgx.Row
		op  string
	)
	if responder.ID == 0 {
		op = "create"
		row = r.db.QueryRow(ctx, `
			INSERT INTO staff (name, phone, lat, lng, area, status, image_ref)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+staffColumns+`;`,
			responder.Name,
			responder.Phone,
			responder.Location.Lat,
			responder.Location.Lng,
			responder.Area,
			statusValue(responder.Status),
			responder.ImageRef,
		)
	} else {
		op = "update"
		row = r.db.QueryRow(ctx, `
			UPDATE staff SET
				name = $1,
				phone = $2,
				lat = $3,
				lng = $4,
				area = $5,
				status = $6,
				image_ref = $7,
				updated_at = NOW()
			WHERE id = $8
			RETURNING `+staffColumns+`;`,
			responder.Name,
			responder.Phone,
			responder.Location.Lat,
			responder.Location.Lng,
			responder.Area,
			statusValue(responder.Status),
			responder.ImageRef,
			responder.ID,
		)
	}

	saved, err := scanResponder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Responder{}, fmt.Errorf("staff with id %d: %w", responder.ID, ErrNotFound)
		}
		return models.Responder{}, fmt.Errorf("failed to %s staff: %w", op, err)
	}
	return saved, nil
}

// Delete удаляет сотрудника по идентификатору
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM staff WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}

	// RowsAffected() == 0 означает, что сотрудника с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("staff with id %d: %w", id, ErrNotFound)
	}
	return nil
}

// rowScanner покрывает pgx.Row, pgx.Rows и *sql.Row/*sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanResponder(row rowScanner) (models.Responder, error) {
	var (
		responder models.Responder
		status    *string
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
		&responder.CreatedAt,
		&responder.UpdatedAt,
	)
	if err != nil {
		return models.Responder{}, err
	}
	if status != nil {
		s := models.Status(*status)
		responder.Status = &s
	}
	return responder, nil
}

func statusValue(s *models.Status) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
