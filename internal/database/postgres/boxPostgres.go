package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bookmybox/backend/internal/entity"
)

type boxRepository struct {
	db *sql.DB
}

func NewBoxRepository(db *sql.DB) BoxRepository {
	return &boxRepository{db: db}
}

func (r *boxRepository) Create(ctx context.Context, box *entity.Box) error {
	query := `
		INSERT INTO boxes (
			owner_id, name, sport, location, price, rating, capacity,
			status, rejection_reason, description, is_featured, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	now := time.Now()

	err := r.db.QueryRowContext(ctx, query,
		box.OwnerID,
		box.Name,
		box.Sport,
		box.Location,
		box.Price,
		box.Rating,
		box.Capacity,
		box.Status,
		box.RejectionReason,
		box.Description,
		box.IsFeatured,
		now,
		now,
	).Scan(&box.ID)

	if err != nil {
		return fmt.Errorf("failed to create box: %w", err)
	}

	box.CreatedAt = now
	box.UpdatedAt = now

	return nil
}

func (r *boxRepository) GetByID(ctx context.Context, id int64) (*entity.Box, error) {
	query := `
		SELECT
			id, owner_id, name, sport, location, price, rating, capacity,
			status, rejection_reason, description, is_featured, created_at, updated_at
		FROM boxes
		WHERE id = $1
	`

	var box entity.Box
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&box.ID,
		&box.OwnerID,
		&box.Name,
		&box.Sport,
		&box.Location,
		&box.Price,
		&box.Rating,
		&box.Capacity,
		&box.Status,
		&box.RejectionReason,
		&box.Description,
		&box.IsFeatured,
		&box.CreatedAt,
		&box.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrBoxNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get box: %w", err)
	}

	return &box, nil
}

func (r *boxRepository) GetByStatus(ctx context.Context, status entity.BoxStatus) ([]*entity.Box, error) {
	query := `
		SELECT
			id, owner_id, name, sport, location, price, rating, capacity,
			status, rejection_reason, description, is_featured, created_at, updated_at
		FROM boxes
		WHERE status = $1
		ORDER BY rating DESC, name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to query boxes by status: %w", err)
	}
	defer rows.Close()

	return scanBoxes(rows)
}

func (r *boxRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]*entity.Box, error) {
	query := `
		SELECT
			id, owner_id, name, sport, location, price, rating, capacity,
			status, rejection_reason, description, is_featured, created_at, updated_at
		FROM boxes
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query boxes by owner: %w", err)
	}
	defer rows.Close()

	return scanBoxes(rows)
}

func (r *boxRepository) UpdateStatus(ctx context.Context, id int64, status entity.BoxStatus, reason string) error {
	query := `UPDATE boxes SET status = $1, rejection_reason = $2, updated_at = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, status, reason, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update box status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrBoxNotFound
	}

	return nil
}

func (r *boxRepository) UpdateRating(ctx context.Context, id int64, rating float64) error {
	query := `UPDATE boxes SET rating = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, rating, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update box rating: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrBoxNotFound
	}

	return nil
}

func scanBoxes(rows *sql.Rows) ([]*entity.Box, error) {
	var boxes []*entity.Box
	for rows.Next() {
		var box entity.Box
		err := rows.Scan(
			&box.ID,
			&box.OwnerID,
			&box.Name,
			&box.Sport,
			&box.Location,
			&box.Price,
			&box.Rating,
			&box.Capacity,
			&box.Status,
			&box.RejectionReason,
			&box.Description,
			&box.IsFeatured,
			&box.CreatedAt,
			&box.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan box: %w", err)
		}
		boxes = append(boxes, &box)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating boxes: %w", err)
	}

	return boxes, nil
}
