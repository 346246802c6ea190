package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"food-explorer/internal/domain"
)

var ErrDishNotFound = errors.New("dish not found")

type VoteService struct {
	repo      DishRepository
	publisher EventPublisher
}

func NewVoteService(repo DishRepository, publisher EventPublisher) *VoteService {
	return &VoteService{repo: repo, publisher: publisher}
}

// Vote bumps one counter of one dish and announces the change. The increment
// is read-modify-write: concurrent votes on the same dish can race and lose
// one, an accepted weakness of the store contract.
func (s *VoteService) Vote(ctx context.Context, dishID int, isUpvote bool) (*domain.Dish, error) {
	row, err := s.repo.GetDishRow(dishID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}

	upvotes, downvotes := row.Upvotes, row.Downvotes
	if isUpvote {
		upvotes++
	} else {
		downvotes++
	}

	if err := s.repo.UpdateDishVotes(dishID, upvotes, downvotes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishDishEvent(ctx, domain.KafkaMessage{
			Type:      "dish_voted",
			DishID:    dishID,
			Category:  row.Category,
			Upvotes:   upvotes,
			Downvotes: downvotes,
			Timestamp: time.Now(),
		}); err != nil {
			// The vote is already persisted; clients catch up on the next search.
			log.Printf("Warning: failed to publish vote event for dish %d: %v", dishID, err)
		}
	}

	return &domain.Dish{
		ID:        dishID,
		Name:      row.Name,
		Category:  row.Category,
		Upvotes:   upvotes,
		Downvotes: downvotes,
	}, nil
}

var _ VoteServiceInterface = (*VoteService)(nil)
