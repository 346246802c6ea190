package service

import (
	"context"

	"food-explorer/internal/domain"
)

type DishRepository interface {
	SearchDishes(c domain.SearchCriteria) ([]domain.DishRow, error)
	GetDishRow(dishID int) (*domain.DishRow, error)
	UpdateDishVotes(dishID, upvotes, downvotes int) error
	UpsertRestaurant(name, city string) (int, error)
	UpsertDish(dish *domain.Dish) (bool, error)
	TopDishesByCategory(category string, limit int) ([]domain.DishRow, error)
}

type RestaurantRepository interface {
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
}

type LeaderboardCache interface {
	RecordScore(ctx context.Context, category string, dishID, score int) error
	TopDishIDs(ctx context.Context, category string, limit int) ([]int, error)
}

type EventPublisher interface {
	PublishDishEvent(ctx context.Context, msg domain.KafkaMessage) error
}

type DatasetClient interface {
	FetchMenuItems(ctx context.Context, query string) ([]domain.MenuItemRow, error)
}

type ImporterInterface interface {
	Run(ctx context.Context, c domain.SearchCriteria) (int, error)
}

type SearchServiceInterface interface {
	Search(ctx context.Context, c domain.SearchCriteria) (domain.ResultSet, error)
	TopDishes(ctx context.Context, limit int) (domain.ResultSet, error)
}

type VoteServiceInterface interface {
	Vote(ctx context.Context, dishID int, isUpvote bool) (*domain.Dish, error)
}

type EntryServiceInterface interface {
	Add(entry domain.NewEntry) (*domain.Dish, error)
}

type RestaurantServiceInterface interface {
	List() ([]domain.Restaurant, error)
	Get(id int) (*domain.Restaurant, error)
}
