package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"food-explorer/internal/domain"
)

// VoteSeeder decides the starting vote counts of an imported dish.
type VoteSeeder interface {
	Seed() (upvotes, downvotes int)
}

type ZeroSeeder struct{}

func (ZeroSeeder) Seed() (int, int) { return 0, 0 }

// RandomSeeder gives imported dishes a small head start so fresh rows do not
// all tie at zero. Negative bounds are treated as zero.
type RandomSeeder struct {
	MaxUp   int
	MaxDown int
}

func (s RandomSeeder) Seed() (int, int) {
	return rand.Intn(max(s.MaxUp, 0) + 1), rand.Intn(max(s.MaxDown, 0) + 1)
}

// NewSeeder selects the seeding strategy for imported dishes.
func NewSeeder(mode string, maxUp, maxDown int) VoteSeeder {
	if mode != "random" {
		return ZeroSeeder{}
	}
	return RandomSeeder{MaxUp: maxUp, MaxDown: maxDown}
}

// BuildDatasetQuery assembles the dataset API's SQL-like query string. User
// terms are reduced to letters, digits and spaces first, so they can never
// act as query syntax.
func BuildDatasetQuery(c domain.SearchCriteria) string {
	var b strings.Builder
	b.WriteString("SELECT name, restaurant_name, identifier, price_usd FROM `menu_items` WHERE 1=1")

	addClause := func(column, term string) {
		term = sanitizeTerm(term)
		if term == "" {
			return
		}
		fmt.Fprintf(&b, " AND %s LIKE '%%%s%%'", column, term)
	}

	addClause("name", c.Dish)
	addClause("identifier", c.City)
	addClause("restaurant_name", c.Restaurant)

	b.WriteString(" LIMIT 10")
	return b.String()
}

func sanitizeTerm(term string) string {
	var b strings.Builder
	for _, r := range term {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// ToTitleCase strips non-alphabetic characters and capitalizes the first
// letter of each word, the normalization the dataset rows need before
// display.
func ToTitleCase(s string) string {
	var stripped strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			stripped.WriteRune(r)
		}
	}

	words := strings.Fields(stripped.String())
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
	}
	return strings.Join(words, " ")
}

// CategoryForPrice derives a category from the dataset's price column. The
// dataset has no dessert signal, so imports only produce appetizers and mains.
func CategoryForPrice(priceUSD float64) string {
	if priceUSD < 10 {
		return domain.CategoryAppetizer
	}
	return domain.CategoryMain
}

// HTTPDatasetClient talks to the external menu dataset API.
type HTTPDatasetClient struct {
	BaseURL string
	Client  *http.Client
}

func (c *HTTPDatasetClient) FetchMenuItems(ctx context.Context, query string) ([]domain.MenuItemRow, error) {
	endpoint := c.BaseURL + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset API returned status %d", resp.StatusCode)
	}

	var items []domain.MenuItemRow
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode dataset response: %w", err)
	}
	return items, nil
}

// ImportService enriches the local store from the external dataset before a
// search. It is strictly best-effort: row failures are logged and skipped.
type ImportService struct {
	repo   DishRepository
	client DatasetClient
	seeder VoteSeeder
}

func NewImportService(repo DishRepository, client DatasetClient, seeder VoteSeeder) *ImportService {
	if seeder == nil {
		seeder = ZeroSeeder{}
	}
	return &ImportService{repo: repo, client: client, seeder: seeder}
}

// Run fetches matching dataset rows and upserts them, returning how many new
// dishes were created. The restaurant upsert and dish upsert are two separate
// writes; a restaurant without its dish is tolerated.
func (s *ImportService) Run(ctx context.Context, c domain.SearchCriteria) (int, error) {
	rows, err := s.client.FetchMenuItems(ctx, BuildDatasetQuery(c))
	if err != nil {
		return 0, fmt.Errorf("dataset fetch: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	imported := 0
	for _, row := range rows {
		name := ToTitleCase(row.Name)
		restaurant := ToTitleCase(row.RestaurantName)
		city := ToTitleCase(row.Identifier)
		if name == "" || restaurant == "" {
			log.Printf("[import] skipping row with empty name or restaurant: %+v", row)
			continue
		}

		restaurantID, err := s.repo.UpsertRestaurant(restaurant, city)
		if err != nil {
			log.Printf("[import] restaurant upsert failed for %q: %v", restaurant, err)
			continue
		}

		upvotes, downvotes := s.seeder.Seed()
		dish := &domain.Dish{
			RestaurantID: restaurantID,
			Name:         name,
			Category:     CategoryForPrice(row.PriceUSD),
			Upvotes:      upvotes,
			Downvotes:    downvotes,
		}
		inserted, err := s.repo.UpsertDish(dish)
		if err != nil {
			log.Printf("[import] dish upsert failed for %q: %v", name, err)
			continue
		}
		if inserted {
			imported++
		}
	}

	return imported, nil
}

var _ ImporterInterface = (*ImportService)(nil)
