package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bookmybox/backend/internal/entity"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (box_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	now := time.Now()

	err := r.db.QueryRowContext(ctx, query,
		review.BoxID,
		review.UserID,
		review.Rating,
		review.Comment,
		now,
	).Scan(&review.ID)

	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	review.CreatedAt = now
	return nil
}

func (r *reviewRepository) GetByBoxID(ctx context.Context, boxID int64) ([]*entity.Review, error) {
	query := `
		SELECT id, box_id, user_id, rating, comment, created_at
		FROM reviews
		WHERE box_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews by box: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.BoxID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) AverageRating(ctx context.Context, boxID int64) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE box_id = $1`

	var avg float64
	if err := r.db.QueryRowContext(ctx, query, boxID).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to get average rating: %w", err)
	}

	return avg, nil
}
