package service

import (
	"errors"
	"fmt"

	"food-explorer/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	ErrValidation    = errors.New("invalid entry")
	ErrDuplicateDish = errors.New("dish already exists for this restaurant")
)

// EntryService handles add-form submissions, reusing an existing restaurant
// when the name is already known.
type EntryService struct {
	repo     DishRepository
	validate *validator.Validate
}

func NewEntryService(repo DishRepository) *EntryService {
	return &EntryService{repo: repo, validate: validator.New()}
}

func (s *EntryService) Add(entry domain.NewEntry) (*domain.Dish, error) {
	if err := s.validate.Struct(entry); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	restaurantID, err := s.repo.UpsertRestaurant(entry.Restaurant, entry.City)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert restaurant: %w", err)
	}

	dish := &domain.Dish{
		RestaurantID: restaurantID,
		Name:         entry.Dish,
		Category:     entry.Category,
	}
	inserted, err := s.repo.UpsertDish(dish)
	if err != nil {
		return nil, fmt.Errorf("failed to insert dish: %w", err)
	}
	if !inserted {
		return nil, ErrDuplicateDish
	}

	return dish, nil
}

var _ EntryServiceInterface = (*EntryService)(nil)
