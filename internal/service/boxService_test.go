package service

import (
	"context"
	"sync"
	"testing"

	"github.com/bookmybox/backend/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	mu      sync.Mutex
	nextID  int64
	reviews []*entity.Review
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	review.ID = r.nextID
	copied := *review
	r.reviews = append(r.reviews, &copied)
	return nil
}

func (r *fakeReviewRepo) GetByBoxID(ctx context.Context, boxID int64) ([]*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*entity.Review, 0)
	for _, rev := range r.reviews {
		if rev.BoxID == boxID {
			copied := *rev
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeReviewRepo) AverageRating(ctx context.Context, boxID int64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sum, count := 0, 0
	for _, rev := range r.reviews {
		if rev.BoxID == boxID {
			sum += rev.Rating
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}

func newBoxFixture() (BoxService, *fakeBoxRepo, *fakeReviewRepo) {
	boxRepo := newFakeBoxRepo()
	reviewRepo := &fakeReviewRepo{}
	return NewBoxService(boxRepo, reviewRepo), boxRepo, reviewRepo
}

// TestCreateBox тестирует создание объявления: всегда начинает с pending
func TestCreateBox(t *testing.T) {
	svc, _, _ := newBoxFixture()

	box, err := svc.CreateBox(context.Background(), &CreateBoxRequest{
		Name:     "Smash Arena",
		Sport:    "badminton",
		Location: "Indiranagar",
		Price:    500,
		OwnerID:  7,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.BoxStatusPending, box.Status)
	assert.Equal(t, 1, box.Capacity) // default when omitted
	assert.NotZero(t, box.ID)
}

// TestBoxApprovalFlow тестирует модерацию объявлений
func TestBoxApprovalFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("approve pending box", func(t *testing.T) {
		svc, boxRepo, _ := newBoxFixture()
		box, err := svc.CreateBox(ctx, &CreateBoxRequest{Name: "A", Sport: "cricket", Location: "HSR", Price: 700, OwnerID: 1})
		require.NoError(t, err)

		require.NoError(t, svc.ApproveBox(ctx, box.ID))

		stored, err := boxRepo.GetByID(ctx, box.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.BoxStatusApproved, stored.Status)
	})

	t.Run("reject pending box with reason", func(t *testing.T) {
		svc, boxRepo, _ := newBoxFixture()
		box, err := svc.CreateBox(ctx, &CreateBoxRequest{Name: "B", Sport: "cricket", Location: "HSR", Price: 700, OwnerID: 1})
		require.NoError(t, err)

		require.NoError(t, svc.RejectBox(ctx, box.ID, "incomplete address"))

		stored, err := boxRepo.GetByID(ctx, box.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.BoxStatusRejected, stored.Status)
		assert.Equal(t, "incomplete address", stored.RejectionReason)
	})

	t.Run("approve is not repeatable", func(t *testing.T) {
		svc, _, _ := newBoxFixture()
		box, err := svc.CreateBox(ctx, &CreateBoxRequest{Name: "C", Sport: "cricket", Location: "HSR", Price: 700, OwnerID: 1})
		require.NoError(t, err)

		require.NoError(t, svc.ApproveBox(ctx, box.ID))
		require.ErrorIs(t, svc.ApproveBox(ctx, box.ID), entity.ErrBoxNotPending)
		require.ErrorIs(t, svc.RejectBox(ctx, box.ID, "late"), entity.ErrBoxNotPending)
	})

	t.Run("unknown box", func(t *testing.T) {
		svc, _, _ := newBoxFixture()
		require.ErrorIs(t, svc.ApproveBox(ctx, 42), entity.ErrBoxNotFound)
	})

	t.Run("catalog lists approved only", func(t *testing.T) {
		svc, _, _ := newBoxFixture()

		approved, err := svc.CreateBox(ctx, &CreateBoxRequest{Name: "D", Sport: "tennis", Location: "BTM", Price: 400, OwnerID: 1})
		require.NoError(t, err)
		_, err = svc.CreateBox(ctx, &CreateBoxRequest{Name: "E", Sport: "tennis", Location: "BTM", Price: 400, OwnerID: 1})
		require.NoError(t, err)

		require.NoError(t, svc.ApproveBox(ctx, approved.ID))

		boxes, err := svc.GetApprovedBoxes(ctx)
		require.NoError(t, err)
		require.Len(t, boxes, 1)
		assert.Equal(t, approved.ID, boxes[0].ID)
	})
}

// TestAddReview тестирует отзывы и пересчет рейтинга
func TestAddReview(t *testing.T) {
	ctx := context.Background()

	t.Run("rating bounds", func(t *testing.T) {
		svc, _, _ := newBoxFixture()
		box, err := svc.CreateBox(ctx, &CreateBoxRequest{Name: "A", Sport: "cricket", Location: "HSR", Price: 700, OwnerID: 1})
		require.NoError(t, err)

		for _, rating := range []int{0, 6, -1} {
			_, err := svc.AddReview(ctx, &AddReviewRequest{BoxID: box.ID, UserID: 2, Rating: rating})
			require.ErrorIs(t, err, entity.ErrInvalidRating)
		}
	})

	t.Run("unknown box", func(t *testing.T) {
		svc, _, _ := newBoxFixture()
		_, err := svc.AddReview(ctx, &AddReviewRequest{BoxID: 42, UserID: 2, Rating: 5})
		require.ErrorIs(t, err, entity.ErrBoxNotFound)
	})

	t.Run("recomputes average rating", func(t *testing.T) {
		svc, boxRepo, _ := newBoxFixture()
		box, err := svc.CreateBox(ctx, &CreateBoxRequest{Name: "A", Sport: "cricket", Location: "HSR", Price: 700, OwnerID: 1})
		require.NoError(t, err)

		_, err = svc.AddReview(ctx, &AddReviewRequest{BoxID: box.ID, UserID: 2, Rating: 5, Comment: "great turf"})
		require.NoError(t, err)
		_, err = svc.AddReview(ctx, &AddReviewRequest{BoxID: box.ID, UserID: 3, Rating: 4})
		require.NoError(t, err)

		stored, err := boxRepo.GetByID(ctx, box.ID)
		require.NoError(t, err)
		assert.InDelta(t, 4.5, stored.Rating, 0.001)

		reviews, err := svc.GetBoxReviews(ctx, box.ID)
		require.NoError(t, err)
		assert.Len(t, reviews, 2)
	})
}
