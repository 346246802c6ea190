package service

import (
	"sort"
	"strings"

	"food-explorer/internal/domain"
)

// Classify turns the flat search join into the presentation shape: a single
// category splits into highly/least rated halves, several categories bucket
// by course. Rows without a joined restaurant name and city are dropped.
func Classify(rows []domain.DishRow) domain.ResultSet {
	ranked := make([]domain.RankedDish, 0, len(rows))
	for _, row := range rows {
		if row.RestaurantName == "" || row.City == "" {
			continue
		}
		category := strings.ToLower(row.Category)
		if category == "" {
			category = domain.CategoryOther
		}
		ranked = append(ranked, domain.RankedDish{
			ID:         row.ID,
			Dish:       row.Name,
			Category:   category,
			Restaurant: row.RestaurantName,
			City:       row.City,
			Upvotes:    row.Upvotes,
			Downvotes:  row.Downvotes,
			Score:      row.Upvotes - row.Downvotes,
		})
	}

	if len(ranked) == 0 {
		return domain.ResultSet{Type: domain.ResultEmpty, Message: "No results found"}
	}

	categories := map[string]bool{}
	for _, dish := range ranked {
		categories[dish.Category] = true
	}

	if len(categories) == 1 {
		sortByScoreDesc(ranked)
		split := (len(ranked) + 1) / 2
		return domain.ResultSet{
			Type:        domain.ResultSingle,
			HighlyRated: ranked[:split],
			LeastRated:  reversed(ranked[split:]),
		}
	}

	buckets := map[string][]domain.RankedDish{
		domain.CategoryAppetizer: {},
		domain.CategoryMain:      {},
		domain.CategoryDessert:   {},
	}
	for _, dish := range ranked {
		bucket, ok := buckets[dish.Category]
		if !ok {
			// "other" has no column in the multi-category view.
			continue
		}
		buckets[dish.Category] = append(bucket, dish)
	}
	for _, bucket := range buckets {
		sortByScoreDesc(bucket)
	}

	return domain.ResultSet{
		Type:       domain.ResultMultiple,
		Appetizers: buckets[domain.CategoryAppetizer],
		Mains:      buckets[domain.CategoryMain],
		Desserts:   buckets[domain.CategoryDessert],
	}
}

func sortByScoreDesc(dishes []domain.RankedDish) {
	sort.SliceStable(dishes, func(i, j int) bool {
		return dishes[i].Score > dishes[j].Score
	})
}

// reversed copies the tail so the least-rated column ascends from the lowest
// score upward.
func reversed(dishes []domain.RankedDish) []domain.RankedDish {
	out := make([]domain.RankedDish, len(dishes))
	for i, dish := range dishes {
		out[len(dishes)-1-i] = dish
	}
	return out
}
