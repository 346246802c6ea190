package tests

import (
	"context"
	"database/sql"
	"testing"

	"food-explorer/internal/domain"
	"food-explorer/internal/mocks"
	"food-explorer/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSearchService_ImportFailureDoesNotFailSearch(t *testing.T) {
	mockRepo := mocks.NewDishRepository(t)
	mockImporter := mocks.NewImporter(t)
	svc := service.NewSearchService(mockRepo, mockImporter, nil)

	criteria := domain.SearchCriteria{Dish: "pizza"}
	mockImporter.On("Run", mock.Anything, criteria).Return(0, assert.AnError).Once()
	mockRepo.On("SearchDishes", criteria).Return([]domain.DishRow{
		{ID: 1, Name: "Pizza", Category: "main", RestaurantName: "Lombardi's", City: "New York", Upvotes: 2},
	}, nil).Once()

	result, err := svc.Search(context.Background(), criteria)

	assert.NoError(t, err)
	assert.Equal(t, domain.ResultSingle, result.Type)
}

func TestSearchService_RemoteQueryError(t *testing.T) {
	mockRepo := mocks.NewDishRepository(t)
	svc := service.NewSearchService(mockRepo, nil, nil)

	criteria := domain.SearchCriteria{City: "paris"}
	mockRepo.On("SearchDishes", criteria).Return(nil, assert.AnError).Once()

	_, err := svc.Search(context.Background(), criteria)

	assert.ErrorIs(t, err, service.ErrRemoteQuery)
}

func TestSearchService_NoMatches(t *testing.T) {
	mockRepo := mocks.NewDishRepository(t)
	svc := service.NewSearchService(mockRepo, nil, nil)

	criteria := domain.SearchCriteria{Dish: "unicorn"}
	mockRepo.On("SearchDishes", criteria).Return([]domain.DishRow{}, nil).Once()

	result, err := svc.Search(context.Background(), criteria)

	assert.NoError(t, err)
	assert.Equal(t, domain.ResultEmpty, result.Type)
	assert.NotEmpty(t, result.Message)
}

func TestSearchService_TopDishesPrefersLeaderboard(t *testing.T) {
	mockRepo := mocks.NewDishRepository(t)
	mockCache := mocks.NewLeaderboardCache(t)
	svc := service.NewSearchService(mockRepo, nil, mockCache)

	mockCache.On("TopDishIDs", mock.Anything, domain.CategoryAppetizer, 10).Return([]int{4}, nil).Once()
	mockRepo.On("GetDishRow", 4).Return(&domain.DishRow{
		ID: 4, Name: "Wings", Category: "appetizer", RestaurantName: "Anchor Bar", City: "Buffalo", Upvotes: 9,
	}, nil).Once()

	// Empty leaderboards fall back to Postgres.
	mockCache.On("TopDishIDs", mock.Anything, domain.CategoryMain, 10).Return([]int{}, nil).Once()
	mockRepo.On("TopDishesByCategory", domain.CategoryMain, 10).Return([]domain.DishRow{
		{ID: 5, Name: "Steak", Category: "main", RestaurantName: "Peter Luger", City: "New York", Upvotes: 7},
	}, nil).Once()
	mockCache.On("TopDishIDs", mock.Anything, domain.CategoryDessert, 10).Return(nil, assert.AnError).Once()
	mockRepo.On("TopDishesByCategory", domain.CategoryDessert, 10).Return([]domain.DishRow{}, nil).Once()

	result, err := svc.TopDishes(context.Background(), 10)

	assert.NoError(t, err)
	assert.Equal(t, domain.ResultMultiple, result.Type)
	assert.Len(t, result.Appetizers, 1)
	assert.Equal(t, "Wings", result.Appetizers[0].Dish)
	assert.Len(t, result.Mains, 1)
	assert.Empty(t, result.Desserts)
}

func TestVoteService_Upvote(t *testing.T) {
	mockRepo := mocks.NewDishRepository(t)
	mockPublisher := mocks.NewEventPublisher(t)
	svc := service.NewVoteService(mockRepo, mockPublisher)

	mockRepo.On("GetDishRow", 7).Return(&domain.DishRow{
		ID: 7, Name: "Pizza", Category: "main", RestaurantName: "Lombardi's", City: "New York",
		Upvotes: 2, Downvotes: 1,
	}, nil).Once()
	mockRepo.On("UpdateDishVotes", 7, 3, 1).Return(nil).Once()
	mockPublisher.On("PublishDishEvent", mock.Anything, mock.MatchedBy(func(msg domain.KafkaMessage) bool {
		return msg.Type == "dish_voted" && msg.DishID == 7 && msg.Upvotes == 3 && msg.Downvotes == 1
	})).Return(nil).Once()

	dish, err := svc.Vote(context.Background(), 7, true)

	assert.NoError(t, err)
	assert.Equal(t, 3, dish.Upvotes)
	assert.Equal(t, 1, dish.Downvotes)
}

func TestVoteService_DownvoteTouchesOnlyDownvotes(t *testing.T) {
	mockRepo := mocks.NewDishRepository(t)
	svc := service.NewVoteService(mockRepo, nil)

	mockRepo.On("GetDishRow", 7).Return(&domain.DishRow{
		ID: 7, Name: "Pizza", Category: "main", Upvotes: 2, Downvotes: 1,
	}, nil).Once()
	mockRepo.On("UpdateDishVotes", 7, 2, 2).Return(nil).Once()

	dish, err := svc.Vote(context.Background(), 7, false)

	assert.NoError(t, err)
	assert.Equal(t, 2, dish.Upvotes)
	assert.Equal(t, 2, dish.Downvotes)
}

func TestVoteService_NotFound(t *testing.T) {
	mockRepo := mocks.NewDishRepository(t)
	svc := service.NewVoteService(mockRepo, nil)

	mockRepo.On("GetDishRow", 999).Return(nil, sql.ErrNoRows).Once()

	_, err := svc.Vote(context.Background(), 999, true)

	assert.ErrorIs(t, err, service.ErrDishNotFound)
	mockRepo.AssertNotCalled(t, "UpdateDishVotes", mock.Anything, mock.Anything, mock.Anything)
}

func TestVoteService_WriteFailure(t *testing.T) {
	mockRepo := mocks.NewDishRepository(t)
	svc := service.NewVoteService(mockRepo, nil)

	mockRepo.On("GetDishRow", 7).Return(&domain.DishRow{ID: 7, Upvotes: 1}, nil).Once()
	mockRepo.On("UpdateDishVotes", 7, 2, 0).Return(assert.AnError).Once()

	dish, err := svc.Vote(context.Background(), 7, true)

	assert.Error(t, err)
	assert.Nil(t, dish)
}

func TestEntryService_Add(t *testing.T) {
	tests := []struct {
		name    string
		entry   domain.NewEntry
		wantErr error
	}{
		{
			name:  "valid entry",
			entry: domain.NewEntry{City: "New York", Restaurant: "Carbone", Dish: "Rigatoni", Category: "main"},
		},
		{
			name:    "missing dish",
			entry:   domain.NewEntry{City: "New York", Restaurant: "Carbone", Category: "main"},
			wantErr: service.ErrValidation,
		},
		{
			name:    "bad category",
			entry:   domain.NewEntry{City: "New York", Restaurant: "Carbone", Dish: "Rigatoni", Category: "brunch"},
			wantErr: service.ErrValidation,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.DishRepository)
			svc := service.NewEntryService(mockRepo)

			if testCase.wantErr == nil {
				mockRepo.On("UpsertRestaurant", testCase.entry.Restaurant, testCase.entry.City).Return(3, nil).Once()
				mockRepo.On("UpsertDish", mock.Anything).Return(true, nil).Once()
			}

			dish, err := svc.Add(testCase.entry)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, dish.RestaurantID)
				assert.Equal(t, testCase.entry.Dish, dish.Name)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestEntryService_Duplicate(t *testing.T) {
	mockRepo := mocks.NewDishRepository(t)
	svc := service.NewEntryService(mockRepo)

	entry := domain.NewEntry{City: "New York", Restaurant: "Carbone", Dish: "Rigatoni", Category: "main"}
	mockRepo.On("UpsertRestaurant", "Carbone", "New York").Return(3, nil).Once()
	mockRepo.On("UpsertDish", mock.Anything).Return(false, nil).Once()

	_, err := svc.Add(entry)

	assert.ErrorIs(t, err, service.ErrDuplicateDish)
}
