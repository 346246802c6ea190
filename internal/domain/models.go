package domain

import "time"

const (
	CategoryAppetizer = "appetizer"
	CategoryMain      = "main"
	CategoryDessert   = "dessert"
	CategoryOther     = "other"
)

type Restaurant struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}

type Dish struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Upvotes      int       `json:"upvotes"`
	Downvotes    int       `json:"downvotes"`
	CreatedAt    time.Time `json:"created_at"`
}

// SearchCriteria holds the three optional substring filters of the search form.
type SearchCriteria struct {
	Dish       string `json:"dish"`
	City       string `json:"city"`
	Restaurant string `json:"restaurant"`
}

func (c SearchCriteria) IsEmpty() bool {
	return c.Dish == "" && c.City == "" && c.Restaurant == ""
}

// DishRow is one row of the dish/restaurant search join before classification.
// RestaurantName and City are empty when the join found no restaurant.
type DishRow struct {
	ID             int
	Name           string
	Category       string
	RestaurantName string
	City           string
	Upvotes        int
	Downvotes      int
}

// RankedDish is a dish with its derived score and denormalized restaurant fields.
type RankedDish struct {
	ID         int    `json:"id"`
	Dish       string `json:"dish"`
	Category   string `json:"category"`
	Restaurant string `json:"restaurant"`
	City       string `json:"city"`
	Upvotes    int    `json:"upvotes"`
	Downvotes  int    `json:"downvotes"`
	Score      int    `json:"score"`
}

const (
	ResultEmpty    = "empty"
	ResultSingle   = "single"
	ResultMultiple = "multiple"
)

// ResultSet is the classified search output. Exactly one of the three shapes is
// populated: nothing (empty), highly/least rated (single), or the three
// category buckets (multiple).
type ResultSet struct {
	Type        string       `json:"type"`
	Message     string       `json:"message,omitempty"`
	HighlyRated []RankedDish `json:"highly_rated,omitempty"`
	LeastRated  []RankedDish `json:"least_rated,omitempty"`
	Appetizers  []RankedDish `json:"appetizers,omitempty"`
	Mains       []RankedDish `json:"mains,omitempty"`
	Desserts    []RankedDish `json:"desserts,omitempty"`
}

type KafkaMessage struct {
	Type      string    `json:"type"`
	DishID    int       `json:"dish_id"`
	Category  string    `json:"category"`
	Upvotes   int       `json:"upvotes"`
	Downvotes int       `json:"downvotes"`
	Timestamp time.Time `json:"timestamp"`
}

// MenuItemRow is one record returned by the external menu dataset API.
// Identifier carries the city.
type MenuItemRow struct {
	Name           string  `json:"name"`
	RestaurantName string  `json:"restaurant_name"`
	Identifier     string  `json:"identifier"`
	PriceUSD       float64 `json:"price_usd"`
}

// NewEntry is the add-form payload.
type NewEntry struct {
	City       string `json:"city" validate:"required"`
	Restaurant string `json:"restaurant" validate:"required"`
	Dish       string `json:"dish" validate:"required"`
	Category   string `json:"category" validate:"required,oneof=appetizer main dessert other"`
}
