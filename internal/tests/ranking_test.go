package tests

import (
	"testing"

	"food-explorer/internal/domain"
	"food-explorer/internal/service"

	"github.com/stretchr/testify/assert"
)

func mainRow(id int, name string, score int) domain.DishRow {
	up, down := 0, 0
	if score >= 0 {
		up = score
	} else {
		down = -score
	}
	return domain.DishRow{
		ID:             id,
		Name:           name,
		Category:       "main",
		RestaurantName: "Lombardi's",
		City:           "New York",
		Upvotes:        up,
		Downvotes:      down,
	}
}

func TestClassify_Empty(t *testing.T) {
	result := service.Classify(nil)

	assert.Equal(t, domain.ResultEmpty, result.Type)
	assert.NotEmpty(t, result.Message)
}

func TestClassify_DropsUnjoinedRows(t *testing.T) {
	rows := []domain.DishRow{
		{ID: 1, Name: "Pizza", Category: "main", RestaurantName: "", City: "New York"},
		{ID: 2, Name: "Pasta", Category: "main", RestaurantName: "Carbone", City: ""},
	}

	result := service.Classify(rows)

	assert.Equal(t, domain.ResultEmpty, result.Type)
}

func TestClassify_SingleCategoryScenario(t *testing.T) {
	// Three pizza mains with scores 5, -2, 0.
	rows := []domain.DishRow{
		mainRow(1, "Pizza Margherita", 5),
		mainRow(2, "Pizza Hawaii", -2),
		mainRow(3, "Pizza Funghi", 0),
	}

	result := service.Classify(rows)

	assert.Equal(t, domain.ResultSingle, result.Type)
	assert.Len(t, result.HighlyRated, 2)
	assert.Len(t, result.LeastRated, 1)
	assert.Equal(t, 5, result.HighlyRated[0].Score)
	assert.Equal(t, 0, result.HighlyRated[1].Score)
	assert.Equal(t, -2, result.LeastRated[0].Score)
}

func TestClassify_SplitSizes(t *testing.T) {
	rows := []domain.DishRow{
		mainRow(1, "A", 9),
		mainRow(2, "B", 7),
		mainRow(3, "C", 5),
		mainRow(4, "D", 3),
		mainRow(5, "E", 1),
	}

	result := service.Classify(rows)

	// ceil(5/2) = 3 highly rated, floor(5/2) = 2 least rated.
	assert.Equal(t, domain.ResultSingle, result.Type)
	assert.Len(t, result.HighlyRated, 3)
	assert.Len(t, result.LeastRated, 2)

	// Highly rated descends, least rated ascends from the lowest score.
	assert.Equal(t, []int{9, 7, 5}, scores(result.HighlyRated))
	assert.Equal(t, []int{1, 3}, scores(result.LeastRated))
}

func TestClassify_StableOnTies(t *testing.T) {
	rows := []domain.DishRow{
		mainRow(1, "First", 2),
		mainRow(2, "Second", 2),
		mainRow(3, "Third", 2),
		mainRow(4, "Fourth", 2),
	}

	result := service.Classify(rows)

	assert.Equal(t, "First", result.HighlyRated[0].Dish)
	assert.Equal(t, "Second", result.HighlyRated[1].Dish)
	// Tail [Third, Fourth] reversed.
	assert.Equal(t, "Fourth", result.LeastRated[0].Dish)
	assert.Equal(t, "Third", result.LeastRated[1].Dish)
}

func TestClassify_MultipleCategories(t *testing.T) {
	rows := []domain.DishRow{
		{ID: 1, Name: "Wings", Category: "appetizer", RestaurantName: "Anchor Bar", City: "Buffalo", Upvotes: 3},
		{ID: 2, Name: "Steak", Category: "main", RestaurantName: "Peter Luger", City: "New York", Upvotes: 1},
		{ID: 3, Name: "Cheesecake", Category: "dessert", RestaurantName: "Junior's", City: "New York", Upvotes: 8},
		{ID: 4, Name: "Soup", Category: "appetizer", RestaurantName: "Anchor Bar", City: "Buffalo", Upvotes: 9},
		{ID: 5, Name: "Mystery", Category: "other", RestaurantName: "Anchor Bar", City: "Buffalo", Upvotes: 99},
	}

	result := service.Classify(rows)

	assert.Equal(t, domain.ResultMultiple, result.Type)
	assert.Equal(t, []int{9, 3}, scores(result.Appetizers))
	assert.Len(t, result.Mains, 1)
	assert.Len(t, result.Desserts, 1)

	// Unrecognized categories have no column in the multi-category view.
	total := len(result.Appetizers) + len(result.Mains) + len(result.Desserts)
	assert.Equal(t, 4, total)
}

func TestClassify_CategoryNormalization(t *testing.T) {
	rows := []domain.DishRow{
		{ID: 1, Name: "Wings", Category: "Appetizer", RestaurantName: "Anchor Bar", City: "Buffalo"},
		{ID: 2, Name: "Surprise", Category: "", RestaurantName: "Anchor Bar", City: "Buffalo"},
	}

	result := service.Classify(rows)

	// "Appetizer" lowercases, "" defaults to other: two distinct categories.
	assert.Equal(t, domain.ResultMultiple, result.Type)
	assert.Len(t, result.Appetizers, 1)
	assert.Equal(t, "appetizer", result.Appetizers[0].Category)
}

func TestClassify_ScoreIsDerived(t *testing.T) {
	rows := []domain.DishRow{
		{ID: 1, Name: "Pizza", Category: "main", RestaurantName: "Lombardi's", City: "New York", Upvotes: 7, Downvotes: 3},
	}

	result := service.Classify(rows)

	assert.Equal(t, 4, result.HighlyRated[0].Score)
	assert.Equal(t, 7, result.HighlyRated[0].Upvotes)
	assert.Equal(t, 3, result.HighlyRated[0].Downvotes)
}

func scores(dishes []domain.RankedDish) []int {
	out := make([]int, len(dishes))
	for i, dish := range dishes {
		out[i] = dish.Score
	}
	return out
}
