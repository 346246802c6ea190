package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"food-explorer/internal/domain"
)

var ErrRemoteQuery = errors.New("remote query failed")

type SearchService struct {
	repo     DishRepository
	importer ImporterInterface
	cache    LeaderboardCache
}

// NewSearchService wires the pipeline. importer and cache may be nil: the
// import phase is skipped and top dishes fall through to Postgres.
func NewSearchService(repo DishRepository, importer ImporterInterface, cache LeaderboardCache) *SearchService {
	return &SearchService{repo: repo, importer: importer, cache: cache}
}

// Search runs the full pipeline: best-effort import, filtered fetch, classify.
// An import failure never fails the search.
func (s *SearchService) Search(ctx context.Context, c domain.SearchCriteria) (domain.ResultSet, error) {
	if s.importer != nil {
		if imported, err := s.importer.Run(ctx, c); err != nil {
			log.Printf("[search] import skipped: %v", err)
		} else if imported > 0 {
			log.Printf("[search] imported %d dishes from external dataset", imported)
		}
	}

	rows, err := s.repo.SearchDishes(c)
	if err != nil {
		return domain.ResultSet{}, fmt.Errorf("%w: %v", ErrRemoteQuery, err)
	}

	return Classify(rows), nil
}

// TopDishes returns the highest-upvoted dishes per category, preferring the
// Redis leaderboards and falling back to Postgres.
func (s *SearchService) TopDishes(ctx context.Context, limit int) (domain.ResultSet, error) {
	result := domain.ResultSet{Type: domain.ResultMultiple}

	for _, category := range []string{domain.CategoryAppetizer, domain.CategoryMain, domain.CategoryDessert} {
		rows, err := s.topForCategory(ctx, category, limit)
		if err != nil {
			return domain.ResultSet{}, fmt.Errorf("%w: %v", ErrRemoteQuery, err)
		}

		ranked := make([]domain.RankedDish, 0, len(rows))
		for _, row := range rows {
			if row.RestaurantName == "" || row.City == "" {
				continue
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

		switch category {
		case domain.CategoryAppetizer:
			result.Appetizers = ranked
		case domain.CategoryMain:
			result.Mains = ranked
		case domain.CategoryDessert:
			result.Desserts = ranked
		}
	}

	return result, nil
}

func (s *SearchService) topForCategory(ctx context.Context, category string, limit int) ([]domain.DishRow, error) {
	if s.cache != nil {
		if ids, err := s.cache.TopDishIDs(ctx, category, limit); err == nil && len(ids) > 0 {
			rows := make([]domain.DishRow, 0, len(ids))
			for _, id := range ids {
				row, err := s.repo.GetDishRow(id)
				if err != nil {
					continue
				}
				rows = append(rows, *row)
			}
			return rows, nil
		}
	}
	return s.repo.TopDishesByCategory(category, limit)
}

var _ SearchServiceInterface = (*SearchService)(nil)
