// Package mocks provides testify mocks for the service-layer interfaces.
package mocks

import (
	"context"
	"testing"

	"food-explorer/internal/domain"

	"github.com/stretchr/testify/mock"
)

type DishRepository struct {
	mock.Mock
}

func NewDishRepository(t *testing.T) *DishRepository {
	m := &DishRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DishRepository) SearchDishes(c domain.SearchCriteria) ([]domain.DishRow, error) {
	args := m.Called(c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DishRow), args.Error(1)
}

func (m *DishRepository) GetDishRow(dishID int) (*domain.DishRow, error) {
	args := m.Called(dishID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DishRow), args.Error(1)
}

func (m *DishRepository) UpdateDishVotes(dishID, upvotes, downvotes int) error {
	args := m.Called(dishID, upvotes, downvotes)
	return args.Error(0)
}

func (m *DishRepository) UpsertRestaurant(name, city string) (int, error) {
	args := m.Called(name, city)
	return args.Int(0), args.Error(1)
}

func (m *DishRepository) UpsertDish(dish *domain.Dish) (bool, error) {
	args := m.Called(dish)
	return args.Bool(0), args.Error(1)
}

func (m *DishRepository) TopDishesByCategory(category string, limit int) ([]domain.DishRow, error) {
	args := m.Called(category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DishRow), args.Error(1)
}

type RestaurantRepository struct {
	mock.Mock
}

func NewRestaurantRepository(t *testing.T) *RestaurantRepository {
	m := &RestaurantRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RestaurantRepository) ListRestaurants() ([]domain.Restaurant, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Restaurant), args.Error(1)
}

func (m *RestaurantRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

type LeaderboardCache struct {
	mock.Mock
}

func NewLeaderboardCache(t *testing.T) *LeaderboardCache {
	m := &LeaderboardCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *LeaderboardCache) RecordScore(ctx context.Context, category string, dishID, score int) error {
	args := m.Called(ctx, category, dishID, score)
	return args.Error(0)
}

func (m *LeaderboardCache) TopDishIDs(ctx context.Context, category string, limit int) ([]int, error) {
	args := m.Called(ctx, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t *testing.T) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EventPublisher) PublishDishEvent(ctx context.Context, msg domain.KafkaMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type DatasetClient struct {
	mock.Mock
}

func NewDatasetClient(t *testing.T) *DatasetClient {
	m := &DatasetClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *DatasetClient) FetchMenuItems(ctx context.Context, query string) ([]domain.MenuItemRow, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItemRow), args.Error(1)
}

type Importer struct {
	mock.Mock
}

func NewImporter(t *testing.T) *Importer {
	m := &Importer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Importer) Run(ctx context.Context, c domain.SearchCriteria) (int, error) {
	args := m.Called(ctx, c)
	return args.Int(0), args.Error(1)
}

type SearchServiceInterface struct {
	mock.Mock
}

func NewSearchServiceInterface(t *testing.T) *SearchServiceInterface {
	m := &SearchServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SearchServiceInterface) Search(ctx context.Context, c domain.SearchCriteria) (domain.ResultSet, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.ResultSet), args.Error(1)
}

func (m *SearchServiceInterface) TopDishes(ctx context.Context, limit int) (domain.ResultSet, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).(domain.ResultSet), args.Error(1)
}

type VoteServiceInterface struct {
	mock.Mock
}

func NewVoteServiceInterface(t *testing.T) *VoteServiceInterface {
	m := &VoteServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *VoteServiceInterface) Vote(ctx context.Context, dishID int, isUpvote bool) (*domain.Dish, error) {
	args := m.Called(ctx, dishID, isUpvote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

type EntryServiceInterface struct {
	mock.Mock
}

func NewEntryServiceInterface(t *testing.T) *EntryServiceInterface {
	m := &EntryServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EntryServiceInterface) Add(entry domain.NewEntry) (*domain.Dish, error) {
	args := m.Called(entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dish), args.Error(1)
}

type RestaurantServiceInterface struct {
	mock.Mock
}

func NewRestaurantServiceInterface(t *testing.T) *RestaurantServiceInterface {
	m := &RestaurantServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RestaurantServiceInterface) List() ([]domain.Restaurant, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Restaurant), args.Error(1)
}

func (m *RestaurantServiceInterface) Get(id int) (*domain.Restaurant, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}
