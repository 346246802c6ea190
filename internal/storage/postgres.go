package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"food-explorer/internal/domain"
)

// DefaultPageSize bounds an unfiltered search, matching the remote default
// page size the browser client relied on.
const DefaultPageSize = 100

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			city TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT 'other',
			upvotes INT NOT NULL DEFAULT 0,
			downvotes INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (restaurant_id, name)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

// BuildSearchQuery turns the criteria into the dish/restaurant join with one
// ILIKE clause per non-empty field. User terms travel only as $n arguments.
func BuildSearchQuery(c domain.SearchCriteria) (string, []interface{}) {
	query := `
		SELECT d.id, d.name, COALESCE(d.category, ''), COALESCE(r.name, ''), COALESCE(r.city, ''), d.upvotes, d.downvotes
		FROM dishes d
		LEFT JOIN restaurants r ON d.restaurant_id = r.id`

	var clauses []string
	var args []interface{}
	add := func(column, term string) {
		args = append(args, term)
		clauses = append(clauses, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", column, len(args)))
	}

	if c.Dish != "" {
		add("d.name", c.Dish)
	}
	if c.City != "" {
		add("r.city", c.City)
	}
	if c.Restaurant != "" {
		add("r.name", c.Restaurant)
	}

	if len(clauses) > 0 {
		query += "\n\t\tWHERE " + strings.Join(clauses, " AND ")
	}
	query += fmt.Sprintf("\n\t\tORDER BY d.id\n\t\tLIMIT %d", DefaultPageSize)
	return query, args
}

func (r *PostgresRepository) SearchDishes(c domain.SearchCriteria) ([]domain.DishRow, error) {
	query, args := BuildSearchQuery(c)
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.DishRow
	for rows.Next() {
		var row domain.DishRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Category, &row.RestaurantName, &row.City, &row.Upvotes, &row.Downvotes); err != nil {
			continue
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// UpsertRestaurant inserts the restaurant or, when the name is already taken,
// overwrites its city (last write wins) and returns the existing id.
func (r *PostgresRepository) UpsertRestaurant(name, city string) (int, error) {
	var id int
	err := r.DB.QueryRow(`
		INSERT INTO restaurants (name, city)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET city = EXCLUDED.city
		RETURNING id`, name, city).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpsertDish inserts the dish keyed on (restaurant_id, name). An existing dish
// is left untouched so re-imports never clobber accumulated votes. Returns
// whether a row was inserted.
func (r *PostgresRepository) UpsertDish(dish *domain.Dish) (bool, error) {
	err := r.DB.QueryRow(`
		INSERT INTO dishes (restaurant_id, name, category, upvotes, downvotes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (restaurant_id, name) DO NOTHING
		RETURNING id, created_at`,
		dish.RestaurantID, dish.Name, dish.Category, dish.Upvotes, dish.Downvotes).
		Scan(&dish.ID, &dish.CreatedAt)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresRepository) GetDishRow(dishID int) (*domain.DishRow, error) {
	var row domain.DishRow
	err := r.DB.QueryRow(`
		SELECT d.id, d.name, COALESCE(d.category, ''), COALESCE(r.name, ''), COALESCE(r.city, ''), d.upvotes, d.downvotes
		FROM dishes d
		LEFT JOIN restaurants r ON d.restaurant_id = r.id
		WHERE d.id = $1`, dishID).
		Scan(&row.ID, &row.Name, &row.Category, &row.RestaurantName, &row.City, &row.Upvotes, &row.Downvotes)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *PostgresRepository) UpdateDishVotes(dishID, upvotes, downvotes int) error {
	result, err := r.DB.Exec(`
		UPDATE dishes
		SET upvotes = $1, downvotes = $2
		WHERE id = $3`, upvotes, downvotes, dishID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresRepository) TopDishesByCategory(category string, limit int) ([]domain.DishRow, error) {
	rows, err := r.DB.Query(`
		SELECT d.id, d.name, COALESCE(d.category, ''), COALESCE(r.name, ''), COALESCE(r.city, ''), d.upvotes, d.downvotes
		FROM dishes d
		JOIN restaurants r ON d.restaurant_id = r.id
		WHERE d.category = $1
		ORDER BY d.upvotes DESC
		LIMIT $2`, category, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.DishRow
	for rows.Next() {
		var row domain.DishRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Category, &row.RestaurantName, &row.City, &row.Upvotes, &row.Downvotes); err != nil {
			continue
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, city, created_at
		FROM restaurants
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.City, &rest.CreatedAt); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, name, city, created_at
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.City, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}
