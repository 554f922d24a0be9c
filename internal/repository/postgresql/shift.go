package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/peoplehr/hrms-backend-go/internal/domain/schedule"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) schedule.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// GetByID implements schedule.ShiftRepository.
func (s *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, start_time, end_time, description, created_at, updated_at
		FROM shifts
		WHERE id = $1
	`

	var sh schedule.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&sh.ID, &sh.Name, &sh.StartTime, &sh.EndTime, &sh.Description,
		&sh.CreatedAt, &sh.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Shift{}, schedule.ErrShiftNotFound
		}
		return schedule.Shift{}, fmt.Errorf("failed to get shift by id: %w", err)
	}
	return sh, nil
}

// List implements schedule.ShiftRepository.
func (s *shiftRepositoryImpl) List(ctx context.Context) ([]schedule.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, start_time, end_time, description, created_at, updated_at
		FROM shifts
		ORDER BY start_time ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []schedule.Shift
	for rows.Next() {
		var sh schedule.Shift
		err := rows.Scan(
			&sh.ID, &sh.Name, &sh.StartTime, &sh.EndTime, &sh.Description,
			&sh.CreatedAt, &sh.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, sh)
	}

	return shifts, rows.Err()
}

// Count implements schedule.ShiftRepository.
func (s *shiftRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, s.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM shifts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count shifts: %w", err)
	}
	return count, nil
}

// Create implements schedule.ShiftRepository.
func (s *shiftRepositoryImpl) Create(ctx context.Context, shift schedule.Shift) (schedule.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO shifts (name, start_time, end_time, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, start_time, end_time, description, created_at, updated_at
	`

	var created schedule.Shift
	err := q.QueryRow(ctx, query, shift.Name, shift.StartTime, shift.EndTime, shift.Description).Scan(
		&created.ID, &created.Name, &created.StartTime, &created.EndTime,
		&created.Description, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return schedule.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return created, nil
}
