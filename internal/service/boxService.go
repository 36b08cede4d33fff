package service

import (
	"context"
	"fmt"

	repository "github.com/bookmybox/backend/internal/database/postgres"
	"github.com/bookmybox/backend/internal/entity"

	"github.com/sirupsen/logrus"
)

// CreateBoxRequest represents the data needed to list a new box
type CreateBoxRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Sport       string  `json:"sport" binding:"required,min=1,max=100"`
	Location    string  `json:"location" binding:"required,min=1,max=255"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Capacity    int     `json:"capacity" binding:"min=1"`
	Description string  `json:"description" binding:"max=2000"`
	OwnerID     int64   `json:"-"`
}

// AddReviewRequest represents the data needed to review a box
type AddReviewRequest struct {
	BoxID   int64  `json:"-"`
	UserID  int64  `json:"-"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment" binding:"max=1000"`
}

type boxService struct {
	boxRepo    repository.BoxRepository
	reviewRepo repository.ReviewRepository
}

// NewBoxService creates a new instance of BoxService
func NewBoxService(boxRepo repository.BoxRepository, reviewRepo repository.ReviewRepository) BoxService {
	return &boxService{
		boxRepo:    boxRepo,
		reviewRepo: reviewRepo,
	}
}

// CreateBox registers a new box listing. Listings always start pending and
// become bookable through admin approval.
func (s *boxService) CreateBox(ctx context.Context, req *CreateBoxRequest) (*entity.Box, error) {
	capacity := req.Capacity
	if capacity == 0 {
		capacity = 1
	}

	box := &entity.Box{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Sport:       req.Sport,
		Location:    req.Location,
		Price:       req.Price,
		Capacity:    capacity,
		Status:      entity.BoxStatusPending,
		Description: req.Description,
	}

	if err := s.boxRepo.Create(ctx, box); err != nil {
		return nil, fmt.Errorf("failed to create box: %w", err)
	}

	logrus.Infof("Box submitted for approval: ID=%d, Owner=%d, Name=%s", box.ID, box.OwnerID, box.Name)

	return box, nil
}

func (s *boxService) GetBox(ctx context.Context, id int64) (*entity.Box, error) {
	return s.boxRepo.GetByID(ctx, id)
}

func (s *boxService) GetApprovedBoxes(ctx context.Context) ([]*entity.Box, error) {
	boxes, err := s.boxRepo.GetByStatus(ctx, entity.BoxStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved boxes: %w", err)
	}
	return boxes, nil
}

func (s *boxService) GetOwnerBoxes(ctx context.Context, ownerID int64) ([]*entity.Box, error) {
	boxes, err := s.boxRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner boxes: %w", err)
	}
	return boxes, nil
}

func (s *boxService) ApproveBox(ctx context.Context, id int64) error {
	box, err := s.boxRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if box.Status != entity.BoxStatusPending {
		return entity.ErrBoxNotPending
	}

	if err := s.boxRepo.UpdateStatus(ctx, id, entity.BoxStatusApproved, ""); err != nil {
		return err
	}

	logrus.Infof("Box approved: ID=%d", id)
	return nil
}

func (s *boxService) RejectBox(ctx context.Context, id int64, reason string) error {
	box, err := s.boxRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if box.Status != entity.BoxStatusPending {
		return entity.ErrBoxNotPending
	}

	if err := s.boxRepo.UpdateStatus(ctx, id, entity.BoxStatusRejected, reason); err != nil {
		return err
	}

	logrus.Infof("Box rejected: ID=%d, reason=%s", id, reason)
	return nil
}

// AddReview stores a review and recomputes the box's average rating.
func (s *boxService) AddReview(ctx context.Context, req *AddReviewRequest) (*entity.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, entity.ErrInvalidRating
	}

	if _, err := s.boxRepo.GetByID(ctx, req.BoxID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		BoxID:   req.BoxID,
		UserID:  req.UserID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to add review: %w", err)
	}

	avg, err := s.reviewRepo.AverageRating(ctx, req.BoxID)
	if err != nil {
		logrus.Errorf("Failed to recompute rating for box %d: %v", req.BoxID, err)
		return review, nil
	}

	if err := s.boxRepo.UpdateRating(ctx, req.BoxID, avg); err != nil {
		logrus.Errorf("Failed to update rating for box %d: %v", req.BoxID, err)
	}

	return review, nil
}

func (s *boxService) GetBoxReviews(ctx context.Context, boxID int64) ([]*entity.Review, error) {
	if _, err := s.boxRepo.GetByID(ctx, boxID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.GetByBoxID(ctx, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	return reviews, nil
}
